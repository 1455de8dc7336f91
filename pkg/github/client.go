package github

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/oauth2"
)

const defaultBaseURL = "https://api.github.com"

// Client is a minimal GitHub REST API wrapper covering what the bot needs:
// posting issue and commit comments, listing issue comments and events,
// listing commits, fetching file content, and managing assignees.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a GitHub client authenticated with a personal access
// token. An empty baseURL selects api.github.com.
func NewClient(ctx context.Context, token, baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	return &Client{
		baseURL:    baseURL,
		httpClient: oauth2.NewClient(ctx, src),
	}
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to marshal github request: %w", err)
		}
		body = bytes.NewBuffer(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to build github request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call github API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("github API error %d on %s %s: %s", resp.StatusCode, method, path, string(raw))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode github response: %w", err)
		}
	}
	return nil
}

// CreateIssueComment posts a comment on an issue.
func (c *Client) CreateIssueComment(ctx context.Context, repo string, number int, commentBody string) error {
	path := fmt.Sprintf("/repos/%s/issues/%d/comments", repo, number)
	return c.do(ctx, http.MethodPost, path, map[string]string{"body": commentBody}, nil)
}

// ListIssueComments returns all comments on an issue in creation order.
func (c *Client) ListIssueComments(ctx context.Context, repo string, number int) ([]IssueComment, error) {
	var comments []IssueComment
	path := fmt.Sprintf("/repos/%s/issues/%d/comments?per_page=100", repo, number)
	if err := c.do(ctx, http.MethodGet, path, nil, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

// ListIssueEvents returns the events recorded on an issue in creation order.
func (c *Client) ListIssueEvents(ctx context.Context, repo string, number int) ([]IssueEvent, error) {
	var events []IssueEvent
	path := fmt.Sprintf("/repos/%s/issues/%d/events?per_page=100", repo, number)
	if err := c.do(ctx, http.MethodGet, path, nil, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// ListCommits returns commits on the default branch authored by a user
// since the given time.
func (c *Client) ListCommits(ctx context.Context, repo, author string, since time.Time) ([]Commit, error) {
	var commits []Commit
	path := fmt.Sprintf("/repos/%s/commits?author=%s&since=%s&per_page=100",
		repo, url.QueryEscape(author), url.QueryEscape(since.UTC().Format(time.RFC3339)))
	if err := c.do(ctx, http.MethodGet, path, nil, &commits); err != nil {
		return nil, err
	}
	return commits, nil
}

// CreateCommitComment posts a comment on a commit, optionally attached to a
// file path.
func (c *Client) CreateCommitComment(ctx context.Context, repo, sha, filePath, commentBody string) error {
	path := fmt.Sprintf("/repos/%s/commits/%s/comments", repo, sha)
	in := map[string]string{"body": commentBody}
	if filePath != "" {
		in["path"] = filePath
	}
	return c.do(ctx, http.MethodPost, path, in, nil)
}

// GetFileContent fetches and decodes a file from a repository at a ref.
func (c *Client) GetFileContent(ctx context.Context, repo, ref, filePath string) ([]byte, error) {
	var out struct {
		Content  string `json:"content"`
		Encoding string `json:"encoding"`
	}
	path := fmt.Sprintf("/repos/%s/contents/%s?ref=%s", repo, filePath, url.QueryEscape(ref))
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}

	if out.Encoding != "base64" {
		return []byte(out.Content), nil
	}
	decoded, err := base64.StdEncoding.DecodeString(out.Content)
	if err != nil {
		return nil, fmt.Errorf("failed to decode file content: %w", err)
	}
	return decoded, nil
}

// GetUser resolves a login to a user record.
func (c *Client) GetUser(ctx context.Context, login string) (User, error) {
	var user User
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/users/%s", login), nil, &user); err != nil {
		return User{}, err
	}
	return user, nil
}

// GetUserPermission returns a user's permission level on a repository:
// "admin", "write", "read" or "none".
func (c *Client) GetUserPermission(ctx context.Context, repo, login string) (string, error) {
	var out struct {
		Permission string `json:"permission"`
	}
	path := fmt.Sprintf("/repos/%s/collaborators/%s/permission", repo, login)
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return "", err
	}
	return out.Permission, nil
}

// AddAssignees assigns users to an issue.
func (c *Client) AddAssignees(ctx context.Context, repo string, number int, logins []string) error {
	path := fmt.Sprintf("/repos/%s/issues/%d/assignees", repo, number)
	return c.do(ctx, http.MethodPost, path, map[string][]string{"assignees": logins}, nil)
}

// RemoveAssignees unassigns users from an issue.
func (c *Client) RemoveAssignees(ctx context.Context, repo string, number int, logins []string) error {
	path := fmt.Sprintf("/repos/%s/issues/%d/assignees", repo, number)
	return c.do(ctx, http.MethodDelete, path, map[string][]string{"assignees": logins}, nil)
}
