package lifecycle

import (
	"time"

	"github.com/shopspring/decimal"

	"issue-bounty-bot/internal/command"
	"issue-bounty-bot/internal/model"
	"issue-bounty-bot/internal/payout"
)

// Config carries the per-repository bounty configuration, loaded and
// validated outside the lifecycle.
type Config struct {
	Incentives     payout.Incentives
	PermitMaxPrice decimal.Decimal

	// DisqualifyDuration is the inactivity window after which an assignee
	// is removed from an open task. Zero disables the check.
	DisqualifyDuration time.Duration
}

// CommandInput is a parsed slash command in its task context.
type CommandInput struct {
	Task    model.Task
	Sender  model.User
	Command command.Command
}

// CloseInput is the closure snapshot: the task and its full comment stream.
type CloseInput struct {
	Task     model.Task
	Comments []model.Comment
}

// CloseOutput is the result of a closure evaluation. Permits are handed to
// the external signing collaborator; the bot itself only posts the message.
type CloseOutput struct {
	Decision payout.FundingDecision
	Permits  []payout.Permit
	Message  string
}
