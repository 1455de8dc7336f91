package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"issue-bounty-bot/internal/command"
	"issue-bounty-bot/internal/lifecycle"
	"issue-bounty-bot/internal/model"
	"issue-bounty-bot/internal/payout/repository"
	"issue-bounty-bot/pkg/bountylabel"
)

// HandleCommand executes a parsed slash command and posts the reply.
func (uc *implUseCase) HandleCommand(ctx context.Context, sc model.Scope, input lifecycle.CommandInput) error {
	uc.l.Infof(ctx, "lifecycle: command %s from @%s on %s#%d",
		input.Command.Kind, input.Sender.Login, input.Task.Repository, input.Task.Number)

	switch input.Command.Kind {
	case command.KindWallet:
		return uc.setWallet(ctx, input)
	case command.KindMultiplier:
		return uc.setMultiplier(ctx, input)
	case command.KindQuery:
		return uc.query(ctx, input)
	case command.KindStart:
		return uc.start(ctx, input)
	case command.KindStop:
		return uc.stop(ctx, input)
	case command.KindAutopay:
		return uc.setAutopay(ctx, input)
	case command.KindAllow:
		return uc.setAccess(ctx, input)
	case command.KindHelp:
		return uc.reply(ctx, input.Task, msgHelp)
	}
	return lifecycle.ErrUnknownCommand
}

func (uc *implUseCase) setWallet(ctx context.Context, input lifecycle.CommandInput) error {
	if err := uc.wallets.SetAddress(ctx, input.Sender.ID, input.Command.Wallet); err != nil {
		return fmt.Errorf("failed to store wallet address: %w", err)
	}
	return uc.reply(ctx, input.Task, msgWalletUpdated(input.Sender.Login, input.Command.Wallet))
}

func (uc *implUseCase) setMultiplier(ctx context.Context, input lifecycle.CommandInput) error {
	allowed, err := uc.isPrivileged(ctx, input.Task.Repository, input.Sender, "multiplier")
	if err != nil {
		return fmt.Errorf("failed to check multiplier permission: %w", err)
	}
	if !allowed {
		return uc.reply(ctx, input.Task, msgPermissionDenied(input.Sender.Login, "multiplier"))
	}

	target, err := uc.resolveTarget(ctx, input.Sender, input.Command.Target)
	if err != nil {
		return fmt.Errorf("failed to resolve multiplier target: %w", err)
	}

	record := repository.MultiplierRecord{
		Value:  input.Command.Multiplier,
		Reason: input.Command.Reason,
	}
	if err := uc.multipliers.Set(ctx, input.Task.Repository, target.ID, record); err != nil {
		return fmt.Errorf("failed to store multiplier: %w", err)
	}
	return uc.reply(ctx, input.Task, msgMultiplierChanged(target.Login, record.Value, record.Reason))
}

func (uc *implUseCase) query(ctx context.Context, input lifecycle.CommandInput) error {
	target, err := uc.resolveTarget(ctx, input.Sender, input.Command.Target)
	if err != nil {
		return fmt.Errorf("failed to resolve query target: %w", err)
	}

	address, err := uc.wallets.GetAddress(ctx, target.ID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		uc.l.Warnf(ctx, "lifecycle: wallet lookup failed for @%s: %v", target.Login, err)
	}
	if address == "" {
		address = "not registered"
	}

	record := uc.resolveMultiplier(ctx, input.Task.Repository, target.ID)
	return uc.reply(ctx, input.Task, msgQueryResult(target.Login, address, record.Value))
}

// start assigns the sender and records the deadline computed from the
// duration label. Start-blocking conditions beyond the missing time label
// are evaluated by external collaborators.
func (uc *implUseCase) start(ctx context.Context, input lifecycle.CommandInput) error {
	if input.Task.State == model.TaskClosed {
		return lifecycle.ErrTaskClosed
	}

	deadline, ok := bountylabel.Deadline(input.Task.Labels, time.Now())
	if !ok {
		if err := uc.reply(ctx, input.Task, msgNoTimeLabel); err != nil {
			return err
		}
		return lifecycle.ErrNoTimeLabel
	}

	if err := uc.gh.AddAssignees(ctx, input.Task.Repository, input.Task.Number, []string{input.Sender.Login}); err != nil {
		return fmt.Errorf("failed to assign @%s: %w", input.Sender.Login, err)
	}

	address, err := uc.wallets.GetAddress(ctx, input.Sender.ID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		uc.l.Warnf(ctx, "lifecycle: wallet lookup failed for @%s: %v", input.Sender.Login, err)
	}
	record := uc.resolveMultiplier(ctx, input.Task.Repository, input.Sender.ID)

	return uc.reply(ctx, input.Task, msgAssigned(deadline, address, record.Value, record.Reason))
}

// stop unassigns the sender. Any partially earned reward is discarded.
func (uc *implUseCase) stop(ctx context.Context, input lifecycle.CommandInput) error {
	if err := uc.gh.RemoveAssignees(ctx, input.Task.Repository, input.Task.Number, []string{input.Sender.Login}); err != nil {
		return fmt.Errorf("failed to unassign @%s: %w", input.Sender.Login, err)
	}
	return uc.reply(ctx, input.Task, msgUnassigned(input.Sender.Login))
}

func (uc *implUseCase) setAutopay(ctx context.Context, input lifecycle.CommandInput) error {
	return uc.reply(ctx, input.Task, msgAutopay(input.Command.Autopay))
}

func (uc *implUseCase) setAccess(ctx context.Context, input lifecycle.CommandInput) error {
	allowed, err := uc.isPrivileged(ctx, input.Task.Repository, input.Sender, "allow")
	if err != nil {
		return fmt.Errorf("failed to check allow permission: %w", err)
	}
	if !allowed {
		return uc.reply(ctx, input.Task, msgPermissionDenied(input.Sender.Login, "allow"))
	}

	target, err := uc.resolveTarget(ctx, input.Sender, input.Command.Target)
	if err != nil {
		return fmt.Errorf("failed to resolve allow target: %w", err)
	}

	if err := uc.access.SetAccess(ctx, input.Task.Repository, target.ID, input.Command.AccessKind, input.Command.Allowed); err != nil {
		return fmt.Errorf("failed to store access: %w", err)
	}
	return uc.reply(ctx, input.Task, msgAccessUpdated(target.Login, input.Command.AccessKind, input.Task.Repository))
}

// isPrivileged reports whether the sender may run a restricted command.
// A grant committed via the allow command wins; otherwise repository
// collaborators with admin or write permission pass.
func (uc *implUseCase) isPrivileged(ctx context.Context, repo string, sender model.User, kind string) (bool, error) {
	granted, err := uc.access.GetAccess(ctx, repo, sender.ID, kind)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		uc.l.Warnf(ctx, "lifecycle: access lookup failed for @%s: %v", sender.Login, err)
	}
	if granted {
		return true, nil
	}

	permission, err := uc.gh.GetUserPermission(ctx, repo, sender.Login)
	if err != nil {
		return false, fmt.Errorf("failed to resolve repository permission for @%s: %w", sender.Login, err)
	}
	return permission == "admin" || permission == "write", nil
}

// resolveTarget maps a command's @target to a user, defaulting to the sender.
func (uc *implUseCase) resolveTarget(ctx context.Context, sender model.User, target string) (model.User, error) {
	if target == "" || target == sender.Login {
		return sender, nil
	}
	user, err := uc.gh.GetUser(ctx, target)
	if err != nil {
		return model.User{}, err
	}
	return model.User{ID: user.ID, Login: user.Login}, nil
}

// resolveMultiplier returns the committed record or the default of 1.
// Store failures degrade to the default rather than aborting.
func (uc *implUseCase) resolveMultiplier(ctx context.Context, repo string, userID int64) repository.MultiplierRecord {
	record, err := uc.multipliers.Get(ctx, repo, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return repository.MultiplierRecord{Value: decimal.NewFromInt(1)}
	}
	if err != nil {
		uc.l.Warnf(ctx, "lifecycle: multiplier unresolved for user %d in %s, using default: %v", userID, repo, err)
		return repository.MultiplierRecord{Value: decimal.NewFromInt(1)}
	}
	return record
}

func (uc *implUseCase) reply(ctx context.Context, task model.Task, body string) error {
	if err := uc.gh.CreateIssueComment(ctx, task.Repository, task.Number, body); err != nil {
		return fmt.Errorf("failed to post reply comment: %w", err)
	}
	return nil
}
