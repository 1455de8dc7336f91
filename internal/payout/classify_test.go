package payout_test

import (
	"testing"

	"issue-bounty-bot/internal/model"
	"issue-bounty-bot/internal/payout"
)

func comment(login string, kind model.CommentType) model.Comment {
	return model.Comment{
		Author: model.User{ID: 1, Login: login},
		Body:   "some comment",
		Type:   kind,
	}
}

func TestClassify(t *testing.T) {
	comments := []model.Comment{
		comment("alice", model.CommentIssuer),
		comment("bob", model.CommentContributor),
		comment("alice", model.CommentIssuer),
		comment("bot", model.CommentBot),
		comment("carol", model.CommentType("something-new")),
	}

	byType := payout.Classify(comments, payout.DefaultExclusions)

	if got := len(byType[model.CommentIssuer]); got != 2 {
		t.Errorf("issuer bucket = %d comments, want 2", got)
	}
	if got := len(byType[model.CommentContributor]); got != 1 {
		t.Errorf("contributor bucket = %d comments, want 1", got)
	}
	if _, ok := byType[model.CommentBot]; ok {
		t.Errorf("excluded bot bucket must not appear")
	}
	if got := len(byType[model.CommentUnknown]); got != 1 {
		t.Errorf("unknown bucket = %d comments, want 1", got)
	}
}

func TestClassifyEmpty(t *testing.T) {
	byType := payout.Classify(nil, payout.DefaultExclusions)
	if len(byType) != 0 {
		t.Errorf("empty input produced %d buckets, want 0", len(byType))
	}
}

func TestClassifyPreservesOrder(t *testing.T) {
	comments := []model.Comment{
		{Author: model.User{Login: "a"}, Body: "first", Type: model.CommentContributor},
		{Author: model.User{Login: "b"}, Body: "second", Type: model.CommentContributor},
	}

	byType := payout.Classify(comments, nil)
	bucket := byType[model.CommentContributor]
	if len(bucket) != 2 || bucket[0].Body != "first" || bucket[1].Body != "second" {
		t.Errorf("classification must preserve input order within a bucket, got %+v", bucket)
	}
}
