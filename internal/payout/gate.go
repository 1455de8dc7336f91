package payout

import (
	"issue-bounty-bot/internal/model"
	"issue-bounty-bot/pkg/bountylabel"
)

// FundingDecision is the outcome of the eligibility gate for a closed task.
type FundingDecision int

const (
	DecisionUnqualifiedLabels FundingDecision = iota
	DecisionNoAssignee
	DecisionAutopayDisabled
	DecisionMarkedUnplanned
	DecisionEligible
)

func (d FundingDecision) String() string {
	switch d {
	case DecisionUnqualifiedLabels:
		return "UNQUALIFIED_LABELS"
	case DecisionNoAssignee:
		return "NO_ASSIGNEE"
	case DecisionAutopayDisabled:
		return "AUTOPAY_DISABLED"
	case DecisionMarkedUnplanned:
		return "MARKED_UNPLANNED"
	case DecisionEligible:
		return "ELIGIBLE"
	}
	return "UNKNOWN"
}

type gateCheck struct {
	decision     FundingDecision
	disqualifies func(model.Task) bool
}

// gateChecks is evaluated in order and the first matching check wins.
// The order is a structural invariant of the gate; see TestGatePrecedence.
var gateChecks = []gateCheck{
	{DecisionUnqualifiedLabels, func(t model.Task) bool { return !bountylabel.Qualified(t.Labels) }},
	{DecisionNoAssignee, func(t model.Task) bool { return t.Assignee == nil }},
	{DecisionAutopayDisabled, func(t model.Task) bool { return !t.Autopay }},
	{DecisionMarkedUnplanned, func(t model.Task) bool { return t.ClosureReason == model.ClosedNotPlanned }},
}

// EvaluateFunding runs the eligibility gate over a closed task snapshot.
// Pure function, evaluated fresh on every closure event; a reopened and
// re-closed task gets a brand new evaluation.
func EvaluateFunding(t model.Task) FundingDecision {
	for _, check := range gateChecks {
		if check.disqualifies(t) {
			return check.decision
		}
	}
	return DecisionEligible
}
