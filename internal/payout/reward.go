package payout

import (
	"github.com/shopspring/decimal"

	"issue-bounty-bot/internal/model"
)

// ComputeReward sums per-comment credits over a classification using exact
// decimal arithmetic. A bucket missing from the incentives table (including
// the unknown bucket) contributes nothing. Empty input yields exactly zero.
// Rates are non-negative by construction (ParseIncentives rejects negatives),
// so the result is never negative.
func ComputeReward(byType map[model.CommentType][]model.Comment, incentives Incentives) decimal.Decimal {
	reward := decimal.Zero
	for bucket, comments := range byType {
		rate, ok := incentives[bucket]
		if !ok || len(comments) == 0 {
			continue
		}
		reward = reward.Add(rate.Mul(decimal.NewFromInt(int64(len(comments)))))
	}
	return reward
}
