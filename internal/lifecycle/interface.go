package lifecycle

import (
	"context"
	"time"

	"issue-bounty-bot/internal/model"
	pkgGithub "issue-bounty-bot/pkg/github"
)

// UseCase drives a task through its lifecycle: command handling while the
// issue is open and the one-shot funding decision at closure.
type UseCase interface {
	// HandleCommand executes a parsed slash command from an issue comment.
	HandleCommand(ctx context.Context, sc model.Scope, input CommandInput) error

	// OnIssueClosed runs the funding eligibility gate and, when eligible,
	// permit generation for the assignee and the issue creator.
	OnIssueClosed(ctx context.Context, sc model.Scope, input CloseInput) (CloseOutput, error)

	// OnIssueReopened acknowledges a reopen. Autopay flag and labels travel
	// with the issue; the next closure re-runs the gate from scratch.
	OnIssueReopened(ctx context.Context, sc model.Scope, task model.Task) error

	// OnIssueOpened acknowledges a newly opened issue.
	OnIssueOpened(ctx context.Context, sc model.Scope, task model.Task) error

	// CheckInactiveAssignee unassigns the task assignee when they have shown
	// no issue activity and no commits within the disqualify window.
	CheckInactiveAssignee(ctx context.Context, sc model.Scope, task model.Task) error
}

// GitHub is the slice of the GitHub API the lifecycle depends on.
// Satisfied by *pkg/github.Client.
type GitHub interface {
	CreateIssueComment(ctx context.Context, repo string, number int, body string) error
	AddAssignees(ctx context.Context, repo string, number int, logins []string) error
	RemoveAssignees(ctx context.Context, repo string, number int, logins []string) error
	GetUser(ctx context.Context, login string) (pkgGithub.User, error)
	GetUserPermission(ctx context.Context, repo, login string) (string, error)
	ListIssueEvents(ctx context.Context, repo string, number int) ([]pkgGithub.IssueEvent, error)
	ListCommits(ctx context.Context, repo, author string, since time.Time) ([]pkgGithub.Commit, error)
}
