package usecase

import (
	"issue-bounty-bot/internal/lifecycle"
	"issue-bounty-bot/internal/payout"
	"issue-bounty-bot/internal/payout/repository"
	pkgLog "issue-bounty-bot/pkg/log"
)

type implUseCase struct {
	l           pkgLog.Logger
	gh          lifecycle.GitHub
	wallets     repository.WalletStore
	multipliers repository.MultiplierStore
	access      repository.AccessStore
	generator   *payout.Generator
	cfg         lifecycle.Config
}

// New creates the lifecycle UseCase. Wallet and multiplier stores are
// consulted fresh on every invocation; the usecase holds no cross-event
// state of its own.
func New(
	l pkgLog.Logger,
	gh lifecycle.GitHub,
	wallets repository.WalletStore,
	multipliers repository.MultiplierStore,
	access repository.AccessStore,
	generator *payout.Generator,
	cfg lifecycle.Config,
) *implUseCase {
	return &implUseCase{
		l:           l,
		gh:          gh,
		wallets:     wallets,
		multipliers: multipliers,
		access:      access,
		generator:   generator,
		cfg:         cfg,
	}
}
