package payout

import "issue-bounty-bot/internal/model"

// Classify groups comments by their classification bucket, dropping excluded
// buckets. Comments with an unrecognized type land in the CommentUnknown
// bucket, which carries a zero credit rate; they are not an error.
// Pure function: deterministic, no side effects, input order preserved
// within each bucket.
func Classify(comments []model.Comment, excluded []model.CommentType) map[model.CommentType][]model.Comment {
	skip := make(map[model.CommentType]bool, len(excluded))
	for _, t := range excluded {
		skip[t] = true
	}

	known := make(map[model.CommentType]bool, len(model.KnownCommentTypes))
	for _, t := range model.KnownCommentTypes {
		known[t] = true
	}

	byType := make(map[model.CommentType][]model.Comment)
	for _, comment := range comments {
		bucket := comment.Type
		if !known[bucket] {
			bucket = model.CommentUnknown
		}
		if skip[bucket] {
			continue
		}
		byType[bucket] = append(byType[bucket], comment)
	}
	return byType
}
