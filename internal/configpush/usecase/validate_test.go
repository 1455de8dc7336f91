package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"issue-bounty-bot/internal/configpush"
	"issue-bounty-bot/internal/configpush/usecase"
	"issue-bounty-bot/internal/model"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type mockGitHub struct {
	content        []byte
	fetchErr       error
	commitComments []string
}

func (m *mockGitHub) GetFileContent(ctx context.Context, repo, ref, filePath string) ([]byte, error) {
	if m.fetchErr != nil {
		return nil, m.fetchErr
	}
	return m.content, nil
}

func (m *mockGitHub) CreateCommitComment(ctx context.Context, repo, sha, filePath, commentBody string) error {
	m.commitComments = append(m.commitComments, commentBody)
	return nil
}

func pushEvent(ref string, files ...string) model.WebhookEvent {
	return model.WebhookEvent{
		EventType:    "push",
		Repository:   "acme/bounties",
		Sender:       model.User{ID: 1, Login: "alice"},
		Ref:          ref,
		HeadCommit:   "abc123",
		ChangedFiles: files,
		ReceivedAt:   time.Now(),
	}
}

func TestOnPush_IgnoresOtherBranches(t *testing.T) {
	gh := &mockGitHub{}
	uc := usecase.New(&mockLogger{}, gh, "main")

	out, err := uc.OnPush(context.Background(), model.Scope{}, pushEvent("refs/heads/feature", configpush.ConfigPath))
	if err != nil {
		t.Fatalf("OnPush() error = %v", err)
	}
	if out.Checked {
		t.Error("push on a feature branch should not be checked")
	}
}

func TestOnPush_IgnoresUnrelatedFiles(t *testing.T) {
	gh := &mockGitHub{}
	uc := usecase.New(&mockLogger{}, gh, "main")

	out, err := uc.OnPush(context.Background(), model.Scope{}, pushEvent("refs/heads/main", "README.md", "src/main.go"))
	if err != nil {
		t.Fatalf("OnPush() error = %v", err)
	}
	if out.Checked {
		t.Error("push without config changes should not be checked")
	}
	if len(gh.commitComments) != 0 {
		t.Errorf("unexpected commit comments: %v", gh.commitComments)
	}
}

func TestOnPush_ValidConfig(t *testing.T) {
	gh := &mockGitHub{content: []byte(`
evm-network-id: 100
price-multiplier: "1.5"
payment-permit-max-price: "100"
comment-incentives:
  issuer: "10"
  assignee: "5"
default-labels:
  - "Time: <1 Week"
auto-pay-mode: true
`)}
	uc := usecase.New(&mockLogger{}, gh, "main")

	out, err := uc.OnPush(context.Background(), model.Scope{}, pushEvent("refs/heads/main", configpush.ConfigPath))
	if err != nil {
		t.Fatalf("OnPush() error = %v", err)
	}
	if !out.Checked || !out.Valid {
		t.Errorf("out = %+v, want checked and valid", out)
	}
	if len(gh.commitComments) != 0 {
		t.Errorf("valid config must not produce commit comments, got %v", gh.commitComments)
	}
}

func TestOnPush_InvalidConfig(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantIn  string
	}{
		{
			name:    "unknown key",
			content: "payment-permit-max-pricee: \"100\"\n",
			wantIn:  "invalid YAML",
		},
		{
			name:    "non numeric multiplier",
			content: "price-multiplier: \"abc\"\n",
			wantIn:  "price-multiplier",
		},
		{
			name:    "negative max price",
			content: "payment-permit-max-price: \"-5\"\n",
			wantIn:  "payment-permit-max-price",
		},
		{
			name:    "bad incentive rate",
			content: "comment-incentives:\n  issuer: \"ten\"\n",
			wantIn:  "comment-incentives",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gh := &mockGitHub{content: []byte(tt.content)}
			uc := usecase.New(&mockLogger{}, gh, "main")

			out, err := uc.OnPush(context.Background(), model.Scope{}, pushEvent("refs/heads/main", configpush.ConfigPath))
			if err != nil {
				t.Fatalf("OnPush() error = %v", err)
			}
			if !out.Checked || out.Valid {
				t.Errorf("out = %+v, want checked and invalid", out)
			}
			if len(gh.commitComments) != 1 {
				t.Fatalf("commit comments = %v, want exactly one", gh.commitComments)
			}
			comment := gh.commitComments[0]
			if !strings.Contains(comment, "@alice") || !strings.Contains(comment, tt.wantIn) {
				t.Errorf("comment = %q, want mention of @alice and %q", comment, tt.wantIn)
			}
		})
	}
}

func TestOnPush_FetchFailure(t *testing.T) {
	gh := &mockGitHub{fetchErr: errors.New("not found")}
	uc := usecase.New(&mockLogger{}, gh, "main")

	_, err := uc.OnPush(context.Background(), model.Scope{}, pushEvent("refs/heads/main", configpush.ConfigPath))
	if !errors.Is(err, configpush.ErrFetchConfig) {
		t.Fatalf("OnPush() error = %v, want ErrFetchConfig", err)
	}
}
