package payout

import (
	"fmt"

	"github.com/shopspring/decimal"

	"issue-bounty-bot/internal/model"
)

// Incentives maps a comment classification bucket to its credit rate.
// Read-only during a computation; configured per repository.
type Incentives map[model.CommentType]decimal.Decimal

// ParseIncentives builds an incentives table from raw config values.
// A rate that does not parse as a non-negative decimal is a configuration
// error and is rejected before the table takes effect.
func ParseIncentives(raw map[string]string) (Incentives, error) {
	incentives := make(Incentives, len(raw))
	for key, value := range raw {
		rate, err := decimal.NewFromString(value)
		if err != nil {
			return nil, fmt.Errorf("%w: %q=%q", ErrMalformedIncentives, key, value)
		}
		if rate.IsNegative() {
			return nil, fmt.Errorf("%w: %q has negative rate %s", ErrMalformedIncentives, key, rate)
		}
		incentives[model.CommentType(key)] = rate
	}
	return incentives, nil
}

// PlaceholderAccount is the payee written on a permit when the user has no
// registered wallet. It renders as a valid-looking address on the wire but
// routes no funds: such permits always carry a zero amount.
const PlaceholderAccount = "0x"

// Permit authorizes payment of Amount to Account. Produced here, signed and
// posted by an external collaborator; never persisted by this package.
type Permit struct {
	ID      string // unique per generation, for at-most-once handling downstream
	Account string
	Amount  decimal.Decimal
}

// Routable reports whether the permit targets a real wallet.
func (p Permit) Routable() bool {
	return p.Account != PlaceholderAccount
}

// DefaultExclusions are the administrative comment buckets that never earn
// credit: the bot's own replies and slash-command invocations.
var DefaultExclusions = []model.CommentType{
	model.CommentCommand,
	model.CommentBot,
}
