package model

import "time"

// CommentType is the classification bucket used to look up a credit rate
// in the incentives table.
type CommentType string

const (
	CommentIssuer       CommentType = "issuer"       // issue creator
	CommentAssignee     CommentType = "assignee"     // current assignee
	CommentCollaborator CommentType = "collaborator" // repo collaborator
	CommentContributor  CommentType = "contributor"  // everyone else
	CommentCommand      CommentType = "command"      // slash-command invocations
	CommentBot          CommentType = "bot"          // the bot's own replies
	CommentUnknown      CommentType = "unknown"      // unrecognized classification
)

// KnownCommentTypes lists every recognized classification bucket.
// Anything else lands in the CommentUnknown bucket with a zero rate.
var KnownCommentTypes = []CommentType{
	CommentIssuer,
	CommentAssignee,
	CommentCollaborator,
	CommentContributor,
	CommentCommand,
	CommentBot,
}

// Comment is one issue comment. Immutable once created.
type Comment struct {
	Author    User
	Body      string
	Type      CommentType
	CreatedAt time.Time
}
