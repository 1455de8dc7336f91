package model

import "time"

// TaskState is the assignment state of a bounty task.
type TaskState string

const (
	TaskUnassigned TaskState = "unassigned"
	TaskAssigned   TaskState = "assigned"
	TaskClosed     TaskState = "closed"
)

// ClosureReason is the GitHub state_reason of a closed issue.
type ClosureReason string

const (
	ClosedCompleted  ClosureReason = "completed"
	ClosedNotPlanned ClosureReason = "not_planned"
)

// Task is the bounty view of a single GitHub issue. The bot never stores
// tasks; each webhook event carries a fresh snapshot built from the payload.
type Task struct {
	Repository    string // "owner/repo"
	Number        int    // issue number
	Title         string
	Creator       User // issue author
	State         TaskState
	ClosureReason ClosureReason // only meaningful when State == TaskClosed
	Assignee      *User         // nil when unassigned
	Autopay       bool          // automatic payment flag, defaults to true
	Labels        []string      // raw label names, price/time labels included
	Deadline      time.Time     // derived from the time label on assignment
	ClosedAt      time.Time
}

// User identifies a GitHub user.
type User struct {
	ID    int64
	Login string
}
