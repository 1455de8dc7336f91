package webhook

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"issue-bounty-bot/internal/command"
	"issue-bounty-bot/internal/lifecycle"
	"issue-bounty-bot/internal/model"
	pkgResponse "issue-bounty-bot/pkg/response"
)

// HandleGitHubWebhook authenticates a delivery, parses it, and dispatches
// processing to the background. GitHub retries slow responders, so the
// request is acknowledged before any domain work runs.
func (h *Handler) HandleGitHubWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.security.ValidateIPAddress(c.Request); err != nil {
		h.l.Warnf(ctx, "webhook: origin rejected: %v", err)
		c.JSON(http.StatusForbidden, gin.H{"error": "origin not allowed"})
		return
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		h.l.Errorf(ctx, "webhook: failed to read body: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	signature := c.GetHeader("X-Hub-Signature-256")
	if err := h.security.ValidateSignature(body, signature); err != nil {
		h.l.Errorf(ctx, "webhook: signature verification failed: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid signature"})
		return
	}

	if err := h.security.CheckRateLimit("github"); err != nil {
		h.l.Warnf(ctx, "webhook: rate limit exceeded: %v", err)
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
		return
	}

	eventType := c.GetHeader("X-GitHub-Event")

	var event *model.WebhookEvent
	switch eventType {
	case "issues":
		event, err = h.parser.ParseIssueEvent(body)
	case "issue_comment":
		event, err = h.parser.ParseIssueCommentEvent(body)
	case "push":
		event, err = h.parser.ParsePushEvent(body)
	default:
		h.l.Infof(ctx, "webhook: unsupported event type: %s", eventType)
		pkgResponse.OK(c, gin.H{"status": "ignored", "reason": "unsupported event type"})
		return
	}

	if err != nil {
		h.l.Errorf(ctx, "webhook: failed to parse %s event: %v", eventType, err)
		pkgResponse.Error(c, err, nil)
		return
	}

	go h.processAsync(*event)

	pkgResponse.OK(c, gin.H{"status": "accepted"})
}

func (h *Handler) processAsync(event model.WebhookEvent) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	h.l.Infof(ctx, "webhook: processing %s/%s from %s", event.EventType, event.Action, event.Repository)

	sc := model.Scope{UserID: "system_webhook", Username: event.Sender.Login}

	var err error
	switch event.EventType {
	case "issues":
		err = h.processIssueEvent(ctx, sc, event)
	case "issue_comment":
		err = h.processCommentEvent(ctx, sc, event)
	case "push":
		_, err = h.configUC.OnPush(ctx, sc, event)
	}

	if err != nil {
		h.l.Errorf(ctx, "webhook: processing %s/%s failed: %v", event.EventType, event.Action, err)
	}

	h.sweepInactiveAssignee(ctx, sc, event)
}

// sweepInactiveAssignee piggybacks the inactivity check on issue traffic.
// The bot keeps no issue inventory, so any event touching an assigned open
// task is the moment to re-check its assignee.
func (h *Handler) sweepInactiveAssignee(ctx context.Context, sc model.Scope, event model.WebhookEvent) {
	if event.Task == nil || event.Task.Assignee == nil || event.Task.State == model.TaskClosed {
		return
	}
	if err := h.lifecycleUC.CheckInactiveAssignee(ctx, sc, *event.Task); err != nil {
		h.l.Errorf(ctx, "webhook: inactivity check for %s#%d failed: %v", event.Repository, event.Task.Number, err)
	}
}

func (h *Handler) processIssueEvent(ctx context.Context, sc model.Scope, event model.WebhookEvent) error {
	task := *event.Task

	switch event.Action {
	case "opened":
		return h.lifecycleUC.OnIssueOpened(ctx, sc, task)
	case "reopened":
		return h.lifecycleUC.OnIssueReopened(ctx, sc, task)
	case "closed":
		comments, err := h.collectComments(ctx, task)
		if err != nil {
			return err
		}
		_, err = h.lifecycleUC.OnIssueClosed(ctx, sc, lifecycle.CloseInput{
			Task:     task,
			Comments: comments,
		})
		return err
	}

	h.l.Debugf(ctx, "webhook: ignoring issues action %s", event.Action)
	return nil
}

func (h *Handler) processCommentEvent(ctx context.Context, sc model.Scope, event model.WebhookEvent) error {
	if event.Action != "created" {
		return nil
	}
	comment := *event.Comment
	if comment.Author.Login == h.botLogin {
		return nil
	}
	if !command.IsCommand(comment.Body) {
		// Plain comments only matter at closure, when the full thread
		// is collected and scored.
		return nil
	}

	cmd, err := command.Parse(comment.Body)
	if err != nil {
		if usage := lifecycle.ErrorReply(err); usage != "" {
			return h.gh.CreateIssueComment(ctx, event.Repository, event.Task.Number, usage)
		}
		h.l.Debugf(ctx, "webhook: unparseable command from @%s: %v", comment.Author.Login, err)
		return nil
	}

	return h.lifecycleUC.HandleCommand(ctx, sc, lifecycle.CommandInput{
		Task:    *event.Task,
		Sender:  comment.Author,
		Command: cmd,
	})
}

// collectComments fetches the full comment thread and classifies each
// comment by its author's relationship to the task. Permission lookups
// are cached per author for the duration of the collection.
func (h *Handler) collectComments(ctx context.Context, task model.Task) ([]model.Comment, error) {
	raw, err := h.gh.ListIssueComments(ctx, task.Repository, task.Number)
	if err != nil {
		return nil, err
	}

	permissions := make(map[string]string)
	comments := make([]model.Comment, 0, len(raw))
	for _, rc := range raw {
		author := model.User{ID: rc.User.ID, Login: rc.User.Login}
		comments = append(comments, model.Comment{
			Author:    author,
			Body:      rc.Body,
			Type:      h.classifyAuthor(ctx, task, author, rc.User.Type, rc.Body, permissions),
			CreatedAt: rc.CreatedAt,
		})
	}
	return comments, nil
}

func (h *Handler) classifyAuthor(ctx context.Context, task model.Task, author model.User, accountType, body string, permissions map[string]string) model.CommentType {
	if author.Login == h.botLogin || strings.EqualFold(accountType, "Bot") {
		return model.CommentBot
	}
	if command.IsCommand(body) {
		return model.CommentCommand
	}
	if author.ID == task.Creator.ID {
		return model.CommentIssuer
	}
	if task.Assignee != nil && author.ID == task.Assignee.ID {
		return model.CommentAssignee
	}

	permission, ok := permissions[author.Login]
	if !ok {
		var err error
		permission, err = h.gh.GetUserPermission(ctx, task.Repository, author.Login)
		if err != nil {
			h.l.Warnf(ctx, "webhook: permission lookup failed for @%s: %v", author.Login, err)
			permission = "none"
		}
		permissions[author.Login] = permission
	}
	if permission == "admin" || permission == "write" {
		return model.CommentCollaborator
	}
	return model.CommentContributor
}
