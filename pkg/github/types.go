package github

import "time"

// User is a GitHub user record.
type User struct {
	ID    int64  `json:"id"`
	Login string `json:"login"`
}

// IssueEvent is one entry from the issue events API (assigned, labeled,
// cross-referenced and so on). Comments are served by a separate endpoint.
type IssueEvent struct {
	ID        int64     `json:"id"`
	Event     string    `json:"event"`
	Actor     User      `json:"actor"`
	CreatedAt time.Time `json:"created_at"`
}

// Commit is one entry from the repository commits API, trimmed to the
// fields needed for activity checks.
type Commit struct {
	SHA    string `json:"sha"`
	Commit struct {
		Author struct {
			Date time.Time `json:"date"`
		} `json:"author"`
		Committer struct {
			Date time.Time `json:"date"`
		} `json:"committer"`
	} `json:"commit"`
}

// IssueComment is one comment from the issue comments API.
type IssueComment struct {
	ID   int64 `json:"id"`
	User struct {
		ID    int64  `json:"id"`
		Login string `json:"login"`
		Type  string `json:"type"` // "User" or "Bot"
	} `json:"user"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}
