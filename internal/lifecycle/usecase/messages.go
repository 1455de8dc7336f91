package usecase

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"issue-bounty-bot/internal/payout"
)

// Fixed reply texts posted to the issue thread. Downstream tooling matches
// on these, so they change only deliberately.

const (
	msgAboveOneWarning = " This feature is designed to limit the contributor's compensation for any task on the current repository due to other compensation structures (i.e. salary.) are you sure you want to use a price multiplier above 1?"

	msgNoTimeLabel = "Skipping `/start` since no time label is set to calculate the deadline"

	msgHelp = "Available Commands\n\n" +
		"| Command | Description |\n" +
		"| --- | --- |\n" +
		"| `/start` | Assign yourself to the task |\n" +
		"| `/stop` | Unassign yourself from the task |\n" +
		"| `/wallet <address>` | Register your wallet or ENS address |\n" +
		"| `/multiplier @user <value> \"<reason>\"` | Set the payout multiplier for a user |\n" +
		"| `/query @user` | Show a user's wallet and multiplier |\n" +
		"| `/autopay true\\|false` | Toggle automatic payment on closure |\n" +
		"| `/allow set-<access> @user true\\|false` | Grant or revoke label permissions |"
)

func msgWalletUpdated(login, address string) string {
	return fmt.Sprintf("Updated the wallet address for @%s successfully!\t Your new address: `%s`", login, address)
}

func msgMultiplierChanged(login string, value decimal.Decimal, reason string) string {
	msg := fmt.Sprintf("Successfully changed the payout multiplier for @%s to %s.", login, value)
	if reason == "" {
		msg += " The reason is not provided."
	} else {
		msg += fmt.Sprintf(" The reason provided is %q.", reason)
	}
	if value.GreaterThan(decimal.NewFromInt(1)) {
		msg += msgAboveOneWarning
	}
	return msg
}

func msgQueryResult(login, address string, value decimal.Decimal) string {
	return fmt.Sprintf("@%s's wallet address is %s, multiplier is %s", login, address, value)
}

func msgAccessUpdated(login, kind, repo string) string {
	return fmt.Sprintf("Updated access for @%s successfully!\t Access: **%s** for %q", login, kind, repo)
}

func msgUnassigned(login string) string {
	return fmt.Sprintf("You have been unassigned from the task @%s", login)
}

func msgInactiveUnassigned(login string, window time.Duration) string {
	return fmt.Sprintf("@%s has been unassigned for having no activity on this task within the last %s", login, window)
}

func msgPermissionDenied(login, command string) string {
	return fmt.Sprintf("@%s is not allowed to use `/%s`. Ask a repository admin for access.", login, command)
}

func msgAutopay(enabled bool) string {
	return fmt.Sprintf("Automatic payment for this issue is enabled: **%v**", enabled)
}

func msgAssigned(deadline time.Time, address string, multiplier decimal.Decimal, reason string) string {
	if address == "" {
		address = "none"
	}
	if reason == "" {
		reason = "not provided"
	}
	return fmt.Sprintf(
		"Task assigned.\n\n"+
			"| Deadline | %s |\n"+
			"| Registered Wallet | %s |\n"+
			"| Payment Multiplier | %s |\n"+
			"| Multiplier Reason | %s |",
		deadline.UTC().Format(time.RFC3339), address, multiplier, reason,
	)
}

// msgFundingDisabled renders the closure reply for a disqualified task.
func msgFundingDisabled(decision payout.FundingDecision) string {
	const prefix = "Permit generation disabled because "
	switch decision {
	case payout.DecisionUnqualifiedLabels:
		return prefix + "this issue didn't qualify for funding"
	case payout.DecisionNoAssignee:
		return prefix + "assignee is undefined"
	case payout.DecisionAutopayDisabled:
		return prefix + "automatic payment for this issue is disabled."
	case payout.DecisionMarkedUnplanned:
		return prefix + "this is marked as unplanned"
	}
	return prefix + "of an unknown reason"
}

func msgAssigneeReward(login string, permit payout.Permit) string {
	if !permit.Routable() {
		return fmt.Sprintf("#### Task Assignee Reward\n@%s has no registered wallet; funds are pending until one is set with `/wallet`.", login)
	}
	return fmt.Sprintf("#### Task Assignee Reward\n**Amount**: %s\n**Account**: `%s`", permit.Amount, permit.Account)
}
