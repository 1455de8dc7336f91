package usecase

import (
	"context"

	"issue-bounty-bot/internal/command"
	"issue-bounty-bot/internal/lifecycle"
	"issue-bounty-bot/internal/model"
	"issue-bounty-bot/internal/payout"
)

// OnIssueClosed runs the one-shot funding decision for a closure event.
// The gate is evaluated fresh every time: a reopened and re-closed task
// never reuses a prior decision. Callers must treat each closure event as
// at-most-once; the usecase does not deduplicate retried deliveries.
func (uc *implUseCase) OnIssueClosed(ctx context.Context, sc model.Scope, input lifecycle.CloseInput) (lifecycle.CloseOutput, error) {
	task := input.Task
	task.Autopay = effectiveAutopay(task.Autopay, input.Comments)

	decision := payout.EvaluateFunding(task)
	uc.l.Infof(ctx, "lifecycle: funding decision for %s#%d: %s", task.Repository, task.Number, decision)

	if decision != payout.DecisionEligible {
		message := msgFundingDisabled(decision)
		if err := uc.reply(ctx, task, message); err != nil {
			return lifecycle.CloseOutput{}, err
		}
		return lifecycle.CloseOutput{Decision: decision, Message: message}, nil
	}

	permits := make([]payout.Permit, 0, 2)
	assignee := *task.Assignee

	// Assignee reward over the task's own comment stream.
	record := uc.resolveMultiplier(ctx, task.Repository, assignee.ID)
	assigneePermit, skip := uc.generator.GenerateForComments(ctx, assignee,
		commentsBy(input.Comments, assignee.ID), record.Value, uc.cfg.Incentives, uc.cfg.PermitMaxPrice)

	var message string
	if assigneePermit != nil {
		permits = append(permits, *assigneePermit)
		message = msgAssigneeReward(assignee.Login, *assigneePermit)
	} else {
		uc.l.Infof(ctx, "lifecycle: no assignee permit for @%s: %s", assignee.Login, skip)
		message = "Permit generation skipped: " + skip
	}

	// Issue creator reward, independently, with the creator's own
	// multiplier and the same price ceiling.
	if task.Creator.ID != assignee.ID {
		creatorRecord := uc.resolveMultiplier(ctx, task.Repository, task.Creator.ID)
		creatorPermit, creatorSkip := uc.generator.GenerateForComments(ctx, task.Creator,
			commentsBy(input.Comments, task.Creator.ID), creatorRecord.Value, uc.cfg.Incentives, uc.cfg.PermitMaxPrice)
		if creatorPermit != nil {
			permits = append(permits, *creatorPermit)
		} else {
			uc.l.Infof(ctx, "lifecycle: no issue creator permit for @%s: %s", task.Creator.Login, creatorSkip)
		}
	}

	if err := uc.reply(ctx, task, message); err != nil {
		return lifecycle.CloseOutput{}, err
	}

	return lifecycle.CloseOutput{
		Decision: decision,
		Permits:  permits,
		Message:  message,
	}, nil
}

// OnIssueReopened acknowledges a reopen. The autopay flag and labels travel
// with the issue snapshot; nothing is cached here, so the next closure
// re-evaluates the gate from scratch.
func (uc *implUseCase) OnIssueReopened(ctx context.Context, sc model.Scope, task model.Task) error {
	uc.l.Infof(ctx, "lifecycle: %s#%d reopened, funding decision discarded", task.Repository, task.Number)
	return nil
}

// OnIssueOpened acknowledges a newly opened issue.
func (uc *implUseCase) OnIssueOpened(ctx context.Context, sc model.Scope, task model.Task) error {
	uc.l.Infof(ctx, "lifecycle: %s#%d opened by @%s", task.Repository, task.Number, task.Creator.Login)
	return nil
}

// effectiveAutopay replays the "/autopay" toggles in the comment stream.
// The flag lives in the issue thread, so the latest valid toggle wins and
// survives reopen cycles.
func effectiveAutopay(initial bool, comments []model.Comment) bool {
	autopay := initial
	for _, c := range comments {
		if !command.IsCommand(c.Body) {
			continue
		}
		cmd, err := command.Parse(c.Body)
		if err != nil || cmd.Kind != command.KindAutopay {
			continue
		}
		autopay = cmd.Autopay
	}
	return autopay
}

func commentsBy(comments []model.Comment, userID int64) []model.Comment {
	var own []model.Comment
	for _, c := range comments {
		if c.Author.ID == userID {
			own = append(own, c)
		}
	}
	return own
}
