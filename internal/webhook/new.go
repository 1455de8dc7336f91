package webhook

import (
	"context"

	"issue-bounty-bot/internal/configpush"
	"issue-bounty-bot/internal/lifecycle"
	pkgGithub "issue-bounty-bot/pkg/github"
	pkgLog "issue-bounty-bot/pkg/log"
)

// GitHub is the slice of the API client the webhook layer needs beyond
// what the use cases consume themselves.
type GitHub interface {
	ListIssueComments(ctx context.Context, repo string, number int) ([]pkgGithub.IssueComment, error)
	CreateIssueComment(ctx context.Context, repo string, number int, body string) error
	GetUserPermission(ctx context.Context, repo, login string) (string, error)
}

type Handler struct {
	lifecycleUC lifecycle.UseCase
	configUC    configpush.UseCase
	gh          GitHub
	security    *SecurityValidator
	parser      *GitHubWebhookParser
	botLogin    string
	l           pkgLog.Logger
}

func NewHandler(
	lifecycleUC lifecycle.UseCase,
	configUC configpush.UseCase,
	gh GitHub,
	securityConfig SecurityConfig,
	botLogin string,
	l pkgLog.Logger,
) *Handler {
	return &Handler{
		lifecycleUC: lifecycleUC,
		configUC:    configUC,
		gh:          gh,
		security:    NewSecurityValidator(securityConfig),
		parser:      NewGitHubParser(),
		botLogin:    botLogin,
		l:           l,
	}
}
