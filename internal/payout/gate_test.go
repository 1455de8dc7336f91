package payout_test

import (
	"testing"

	"issue-bounty-bot/internal/model"
	"issue-bounty-bot/internal/payout"
)

func eligibleTask() model.Task {
	assignee := model.User{ID: 7, Login: "worker"}
	return model.Task{
		Repository:    "acme/bounties",
		Number:        42,
		Creator:       model.User{ID: 1, Login: "alice"},
		State:         model.TaskClosed,
		ClosureReason: model.ClosedCompleted,
		Assignee:      &assignee,
		Autopay:       true,
		Labels:        []string{"Price: 100 USD", "Time: <1 Week"},
	}
}

func TestEvaluateFunding(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*model.Task)
		want   payout.FundingDecision
	}{
		{
			name:   "fully qualified task is eligible",
			mutate: func(t *model.Task) {},
			want:   payout.DecisionEligible,
		},
		{
			name:   "missing price label",
			mutate: func(t *model.Task) { t.Labels = []string{"Time: <1 Week"} },
			want:   payout.DecisionUnqualifiedLabels,
		},
		{
			name:   "no assignee",
			mutate: func(t *model.Task) { t.Assignee = nil },
			want:   payout.DecisionNoAssignee,
		},
		{
			name:   "autopay disabled",
			mutate: func(t *model.Task) { t.Autopay = false },
			want:   payout.DecisionAutopayDisabled,
		},
		{
			name:   "closed as not planned",
			mutate: func(t *model.Task) { t.ClosureReason = model.ClosedNotPlanned },
			want:   payout.DecisionMarkedUnplanned,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := eligibleTask()
			tt.mutate(&task)
			if got := payout.EvaluateFunding(task); got != tt.want {
				t.Errorf("EvaluateFunding = %s, want %s", got, tt.want)
			}
		})
	}
}

// The gate is an ordered chain: the first matching condition wins even when
// several disqualifiers hold at once.
func TestGatePrecedence(t *testing.T) {
	task := eligibleTask()
	task.Labels = nil
	task.Assignee = nil
	task.Autopay = false
	task.ClosureReason = model.ClosedNotPlanned

	if got := payout.EvaluateFunding(task); got != payout.DecisionUnqualifiedLabels {
		t.Fatalf("EvaluateFunding = %s, want UNQUALIFIED_LABELS (first match wins)", got)
	}

	// Restore conditions one at a time and confirm the next check fires.
	task.Labels = []string{"Price: 100 USD", "Time: <1 Week"}
	if got := payout.EvaluateFunding(task); got != payout.DecisionNoAssignee {
		t.Errorf("after labels restored: %s, want NO_ASSIGNEE", got)
	}

	assignee := model.User{ID: 7, Login: "worker"}
	task.Assignee = &assignee
	if got := payout.EvaluateFunding(task); got != payout.DecisionAutopayDisabled {
		t.Errorf("after assignee restored: %s, want AUTOPAY_DISABLED", got)
	}

	task.Autopay = true
	if got := payout.EvaluateFunding(task); got != payout.DecisionMarkedUnplanned {
		t.Errorf("after autopay restored: %s, want MARKED_UNPLANNED", got)
	}

	task.ClosureReason = model.ClosedCompleted
	if got := payout.EvaluateFunding(task); got != payout.DecisionEligible {
		t.Errorf("all conditions restored: %s, want ELIGIBLE", got)
	}
}

// Re-closing after a reopen re-runs the gate from scratch; nothing is
// memoized between evaluations.
func TestGateReevaluatedOnReclose(t *testing.T) {
	task := eligibleTask()
	task.Autopay = false

	if got := payout.EvaluateFunding(task); got != payout.DecisionAutopayDisabled {
		t.Fatalf("first close: %s, want AUTOPAY_DISABLED", got)
	}

	// Reopen, toggle autopay back on, close again.
	task.State = model.TaskUnassigned
	task.Autopay = true
	task.State = model.TaskClosed

	if got := payout.EvaluateFunding(task); got != payout.DecisionEligible {
		t.Errorf("second close: %s, want ELIGIBLE", got)
	}
}
