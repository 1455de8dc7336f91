package model

import "time"

// WebhookEvent is a parsed GitHub webhook event.
type WebhookEvent struct {
	EventType     string // issues, issue_comment, push
	Action        string // opened, closed, reopened, created, ...
	Repository    string // "owner/repo"
	Sender        User
	Task          *Task    // issue snapshot (issues / issue_comment events)
	Comment       *Comment // the new comment (issue_comment events)
	Ref           string   // push events
	HeadCommit    string   // push events
	ChangedFiles  []string // push events: added + modified across commits
	ReceivedAt    time.Time
}

// Scope carries the acting user through a use case invocation.
type Scope struct {
	UserID   string
	Username string
}
