package usecase

import (
	"issue-bounty-bot/internal/configpush"
	pkgLog "issue-bounty-bot/pkg/log"
)

type implUseCase struct {
	l             pkgLog.Logger
	gh            configpush.GitHub
	defaultBranch string
}

func New(l pkgLog.Logger, gh configpush.GitHub, defaultBranch string) *implUseCase {
	if defaultBranch == "" {
		defaultBranch = "main"
	}
	return &implUseCase{
		l:             l,
		gh:            gh,
		defaultBranch: defaultBranch,
	}
}
