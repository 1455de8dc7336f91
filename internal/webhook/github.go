package webhook

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"issue-bounty-bot/internal/model"
	"issue-bounty-bot/pkg/bountylabel"
)

// GitHubWebhookParser turns raw GitHub payloads into domain events.
type GitHubWebhookParser struct{}

func NewGitHubParser() *GitHubWebhookParser {
	return &GitHubWebhookParser{}
}

// payload fragments shared by issue-bearing events

type payloadUser struct {
	ID    int64  `json:"id"`
	Login string `json:"login"`
}

type payloadLabel struct {
	Name string `json:"name"`
}

type payloadIssue struct {
	Number      int            `json:"number"`
	Title       string         `json:"title"`
	State       string         `json:"state"` // open, closed
	StateReason string         `json:"state_reason"`
	User        payloadUser    `json:"user"`
	Assignee    *payloadUser   `json:"assignee"`
	Labels      []payloadLabel `json:"labels"`
	ClosedAt    *time.Time     `json:"closed_at"`
}

// toTask builds the issue snapshot the lifecycle operates on. The autopay
// flag defaults to enabled; an `/autopay false` marker comment or repo
// config turns it off upstream of the funding gate.
func (i payloadIssue) toTask(repo string) model.Task {
	task := model.Task{
		Repository: repo,
		Number:     i.Number,
		Title:      i.Title,
		Creator:    model.User{ID: i.User.ID, Login: i.User.Login},
		State:      model.TaskUnassigned,
		// Autopay defaults on; the closure path replays any "/autopay"
		// toggles from the comment thread over this default.
		Autopay: true,
	}
	for _, label := range i.Labels {
		task.Labels = append(task.Labels, label.Name)
	}
	if i.Assignee != nil {
		task.Assignee = &model.User{ID: i.Assignee.ID, Login: i.Assignee.Login}
		task.State = model.TaskAssigned
	}
	if i.State == "closed" {
		task.State = model.TaskClosed
		task.ClosureReason = model.ClosedCompleted
		if i.StateReason == "not_planned" {
			task.ClosureReason = model.ClosedNotPlanned
		}
		if i.ClosedAt != nil {
			task.ClosedAt = *i.ClosedAt
		}
	}
	if deadline, ok := bountylabel.Deadline(task.Labels, time.Now()); ok {
		task.Deadline = deadline
	}
	return task
}

// ParseIssueEvent parses an issues event (opened, closed, reopened, ...).
func (p *GitHubWebhookParser) ParseIssueEvent(payload []byte) (*model.WebhookEvent, error) {
	var event struct {
		Action     string       `json:"action"`
		Issue      payloadIssue `json:"issue"`
		Repository struct {
			FullName string `json:"full_name"`
		} `json:"repository"`
		Sender payloadUser `json:"sender"`
	}

	if err := json.Unmarshal(payload, &event); err != nil {
		return nil, fmt.Errorf("failed to parse issue event: %w", err)
	}

	task := event.Issue.toTask(event.Repository.FullName)
	return &model.WebhookEvent{
		EventType:  "issues",
		Action:     event.Action,
		Repository: event.Repository.FullName,
		Sender:     model.User{ID: event.Sender.ID, Login: event.Sender.Login},
		Task:       &task,
		ReceivedAt: time.Now(),
	}, nil
}

// ParseIssueCommentEvent parses an issue_comment event.
func (p *GitHubWebhookParser) ParseIssueCommentEvent(payload []byte) (*model.WebhookEvent, error) {
	var event struct {
		Action  string `json:"action"`
		Comment struct {
			User      payloadUser `json:"user"`
			Body      string      `json:"body"`
			CreatedAt time.Time   `json:"created_at"`
		} `json:"comment"`
		Issue      payloadIssue `json:"issue"`
		Repository struct {
			FullName string `json:"full_name"`
		} `json:"repository"`
		Sender payloadUser `json:"sender"`
	}

	if err := json.Unmarshal(payload, &event); err != nil {
		return nil, fmt.Errorf("failed to parse issue comment event: %w", err)
	}

	task := event.Issue.toTask(event.Repository.FullName)
	comment := model.Comment{
		Author:    model.User{ID: event.Comment.User.ID, Login: event.Comment.User.Login},
		Body:      event.Comment.Body,
		CreatedAt: event.Comment.CreatedAt,
	}
	return &model.WebhookEvent{
		EventType:  "issue_comment",
		Action:     event.Action,
		Repository: event.Repository.FullName,
		Sender:     model.User{ID: event.Sender.ID, Login: event.Sender.Login},
		Task:       &task,
		Comment:    &comment,
		ReceivedAt: time.Now(),
	}, nil
}

// ParsePushEvent parses a push event, collecting the files changed across
// all commits in the delivery.
func (p *GitHubWebhookParser) ParsePushEvent(payload []byte) (*model.WebhookEvent, error) {
	var event struct {
		Ref        string `json:"ref"`
		Repository struct {
			FullName string `json:"full_name"`
		} `json:"repository"`
		Sender  payloadUser `json:"sender"`
		Commits []struct {
			Added    []string `json:"added"`
			Modified []string `json:"modified"`
		} `json:"commits"`
		HeadCommit struct {
			ID string `json:"id"`
		} `json:"head_commit"`
	}

	if err := json.Unmarshal(payload, &event); err != nil {
		return nil, fmt.Errorf("failed to parse push event: %w", err)
	}

	changed := make([]string, 0)
	seen := make(map[string]bool)
	for _, commit := range event.Commits {
		for _, f := range append(commit.Added, commit.Modified...) {
			if !seen[f] {
				seen[f] = true
				changed = append(changed, f)
			}
		}
	}

	return &model.WebhookEvent{
		EventType:    "push",
		Action:       strings.TrimPrefix(event.Ref, "refs/heads/"),
		Repository:   event.Repository.FullName,
		Sender:       model.User{ID: event.Sender.ID, Login: event.Sender.Login},
		Ref:          event.Ref,
		HeadCommit:   event.HeadCommit.ID,
		ChangedFiles: changed,
		ReceivedAt:   time.Now(),
	}, nil
}
