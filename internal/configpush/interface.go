package configpush

import (
	"context"

	"issue-bounty-bot/internal/model"
)

// UseCase defines the business logic interface for repository config validation.
type UseCase interface {
	// OnPush validates the bot config file when a push touches it on the
	// default branch. Pushes elsewhere are ignored.
	OnPush(ctx context.Context, sc model.Scope, event model.WebhookEvent) (ValidateOutput, error)
}

// GitHub is the subset of the API client the validator needs.
type GitHub interface {
	GetFileContent(ctx context.Context, repo, ref, filePath string) ([]byte, error)
	CreateCommitComment(ctx context.Context, repo, sha, filePath, commentBody string) error
}
