package usecase

import (
	"context"
	"time"

	"issue-bounty-bot/internal/model"
)

// CheckInactiveAssignee removes the assignee from an open task when they have
// neither an issue event nor a commit within the disqualify window. Mirrors
// the closure gate in being stateless: every invocation re-reads the activity
// from GitHub.
func (uc *implUseCase) CheckInactiveAssignee(ctx context.Context, sc model.Scope, task model.Task) error {
	if uc.cfg.DisqualifyDuration <= 0 || task.Assignee == nil || task.State == model.TaskClosed {
		return nil
	}
	assignee := *task.Assignee
	cutoff := time.Now().Add(-uc.cfg.DisqualifyDuration)

	active, err := uc.assigneeActiveSince(ctx, task, assignee, cutoff)
	if err != nil {
		uc.l.Errorf(ctx, "lifecycle: activity check for %s#%d failed: %v", task.Repository, task.Number, err)
		return err
	}
	if active {
		return nil
	}

	uc.l.Warnf(ctx, "lifecycle: unassigning @%s from %s#%d for inactivity", assignee.Login, task.Repository, task.Number)
	if err := uc.gh.RemoveAssignees(ctx, task.Repository, task.Number, []string{assignee.Login}); err != nil {
		return err
	}
	return uc.reply(ctx, task, msgInactiveUnassigned(assignee.Login, uc.cfg.DisqualifyDuration))
}

func (uc *implUseCase) assigneeActiveSince(ctx context.Context, task model.Task, assignee model.User, cutoff time.Time) (bool, error) {
	events, err := uc.gh.ListIssueEvents(ctx, task.Repository, task.Number)
	if err != nil {
		return false, err
	}
	for _, e := range events {
		if e.Actor.ID == assignee.ID && e.CreatedAt.After(cutoff) {
			return true, nil
		}
	}

	commits, err := uc.gh.ListCommits(ctx, task.Repository, assignee.Login, cutoff)
	if err != nil {
		return false, err
	}
	for _, c := range commits {
		date := c.Commit.Author.Date
		if date.IsZero() {
			date = c.Commit.Committer.Date
		}
		if date.After(cutoff) {
			return true, nil
		}
	}
	return false, nil
}
