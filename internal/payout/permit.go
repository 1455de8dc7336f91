package payout

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"issue-bounty-bot/internal/model"
	"issue-bounty-bot/internal/payout/repository"
	pkgLog "issue-bounty-bot/pkg/log"
)

// Skip reasons reported when no permit is produced. These are soft skips,
// not failures: the lifecycle layer posts them, it does not retry.
const (
	SkipNoReward     = "no reward for qualifying comments"
	SkipExceedsPrice = "reward exceeds permit max price"
)

// Generator turns a user's comments into a payable permit. The wallet store
// is consulted fresh on every call.
type Generator struct {
	wallets repository.WalletStore
	l       pkgLog.Logger
}

func NewGenerator(wallets repository.WalletStore, l pkgLog.Logger) *Generator {
	return &Generator{
		wallets: wallets,
		l:       l,
	}
}

// GenerateForComments computes the reward for a user's comments and wraps it
// in a permit.
//
// A nil permit with a non-empty skip reason means no payment is attempted:
// either the reward is exactly zero, or reward x multiplier exceeds the
// permit max price. A wallet-less user still gets a permit, but with the
// placeholder account and a zero amount: funds pending, no route. A wallet
// lookup failure (including context cancellation) degrades to that same
// placeholder path rather than failing the computation.
func (g *Generator) GenerateForComments(
	ctx context.Context,
	user model.User,
	comments []model.Comment,
	multiplier decimal.Decimal,
	incentives Incentives,
	permitMaxPrice decimal.Decimal,
) (*Permit, string) {
	byType := Classify(comments, DefaultExclusions)
	reward := ComputeReward(byType, incentives)
	if reward.IsZero() {
		g.l.Infof(ctx, "payout: no reward for user %s, %d comment(s) in %d bucket(s)",
			user.Login, len(comments), len(byType))
		return nil, SkipNoReward
	}

	g.l.Debugf(ctx, "payout: comments classified for user %s, sum=%s", user.Login, reward)

	account, err := g.wallets.GetAddress(ctx, user.ID)
	if err != nil {
		g.l.Warnf(ctx, "payout: wallet unresolved for user %s, falling back to placeholder: %v", user.Login, err)
		account = ""
	}

	amount := reward.Mul(multiplier)
	if amount.GreaterThan(permitMaxPrice) {
		g.l.Infof(ctx, "payout: skipping reward for user %s: amount %s exceeds permit max price %s",
			user.Login, amount, permitMaxPrice)
		return nil, SkipExceedsPrice
	}

	if account == "" {
		return &Permit{
			ID:      uuid.NewString(),
			Account: PlaceholderAccount,
			Amount:  decimal.Zero,
		}, ""
	}

	return &Permit{
		ID:      uuid.NewString(),
		Account: account,
		Amount:  amount,
	}, ""
}
