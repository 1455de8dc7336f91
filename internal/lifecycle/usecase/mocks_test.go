package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"issue-bounty-bot/internal/lifecycle"
	"issue-bounty-bot/internal/model"
	"issue-bounty-bot/internal/payout"
	"issue-bounty-bot/internal/payout/repository"
	pkgGithub "issue-bounty-bot/pkg/github"
)

// mock dependencies

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any) {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Info(ctx context.Context, args ...any) {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Warn(ctx context.Context, args ...any) {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Error(ctx context.Context, args ...any) {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any) {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any) {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any) {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any) {}

type mockGitHub struct {
	comments    []string
	assigned    []string
	unassigned  []string
	users       map[string]pkgGithub.User
	permissions map[string]string
	issueEvents []pkgGithub.IssueEvent
	commitList  []pkgGithub.Commit
	failPost    bool
}

func (m *mockGitHub) CreateIssueComment(ctx context.Context, repo string, number int, body string) error {
	if m.failPost {
		return errors.New("comment post failed")
	}
	m.comments = append(m.comments, body)
	return nil
}

func (m *mockGitHub) AddAssignees(ctx context.Context, repo string, number int, logins []string) error {
	m.assigned = append(m.assigned, logins...)
	return nil
}

func (m *mockGitHub) RemoveAssignees(ctx context.Context, repo string, number int, logins []string) error {
	m.unassigned = append(m.unassigned, logins...)
	return nil
}

func (m *mockGitHub) GetUser(ctx context.Context, login string) (pkgGithub.User, error) {
	if user, ok := m.users[login]; ok {
		return user, nil
	}
	return pkgGithub.User{}, fmt.Errorf("user %s not found", login)
}

func (m *mockGitHub) GetUserPermission(ctx context.Context, repo, login string) (string, error) {
	if permission, ok := m.permissions[login]; ok {
		return permission, nil
	}
	return "none", nil
}

func (m *mockGitHub) ListIssueEvents(ctx context.Context, repo string, number int) ([]pkgGithub.IssueEvent, error) {
	return m.issueEvents, nil
}

func (m *mockGitHub) ListCommits(ctx context.Context, repo, author string, since time.Time) ([]pkgGithub.Commit, error) {
	return m.commitList, nil
}

func (m *mockGitHub) lastComment() string {
	if len(m.comments) == 0 {
		return ""
	}
	return m.comments[len(m.comments)-1]
}

type mockWalletStore struct {
	addresses map[int64]string
	err       error
}

func (m *mockWalletStore) GetAddress(ctx context.Context, userID int64) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	address, ok := m.addresses[userID]
	if !ok {
		return "", repository.ErrNotFound
	}
	return address, nil
}

func (m *mockWalletStore) SetAddress(ctx context.Context, userID int64, address string) error {
	if m.err != nil {
		return m.err
	}
	if m.addresses == nil {
		m.addresses = make(map[int64]string)
	}
	m.addresses[userID] = address
	return nil
}

type multiplierKey struct {
	repo   string
	userID int64
}

type mockMultiplierStore struct {
	records map[multiplierKey]repository.MultiplierRecord
	err     error
}

func (m *mockMultiplierStore) Get(ctx context.Context, repo string, userID int64) (repository.MultiplierRecord, error) {
	if m.err != nil {
		return repository.MultiplierRecord{}, m.err
	}
	record, ok := m.records[multiplierKey{repo, userID}]
	if !ok {
		return repository.MultiplierRecord{}, repository.ErrNotFound
	}
	return record, nil
}

func (m *mockMultiplierStore) Set(ctx context.Context, repo string, userID int64, record repository.MultiplierRecord) error {
	if m.err != nil {
		return m.err
	}
	if m.records == nil {
		m.records = make(map[multiplierKey]repository.MultiplierRecord)
	}
	m.records[multiplierKey{repo, userID}] = record
	return nil
}

type accessKey struct {
	repo   string
	userID int64
	kind   string
}

type mockAccessStore struct {
	grants map[accessKey]bool
}

func (m *mockAccessStore) GetAccess(ctx context.Context, repo string, userID int64, kind string) (bool, error) {
	allowed, ok := m.grants[accessKey{repo, userID, kind}]
	if !ok {
		return false, repository.ErrNotFound
	}
	return allowed, nil
}

func (m *mockAccessStore) SetAccess(ctx context.Context, repo string, userID int64, kind string, allowed bool) error {
	if m.grants == nil {
		m.grants = make(map[accessKey]bool)
	}
	m.grants[accessKey{repo, userID, kind}] = allowed
	return nil
}

// fixtures

func mustDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func testConfig() lifecycle.Config {
	incentives, err := payout.ParseIncentives(map[string]string{
		"issuer":      "10",
		"assignee":    "10",
		"contributor": "10",
	})
	if err != nil {
		panic(err)
	}
	return lifecycle.Config{
		Incentives:     incentives,
		PermitMaxPrice: mustDecimal("100"),
	}
}

func openTask() model.Task {
	return model.Task{
		Repository: "acme/bounties",
		Number:     42,
		Title:      "Fix the flux capacitor",
		Creator:    model.User{ID: 1, Login: "alice"},
		State:      model.TaskUnassigned,
		Autopay:    true,
		Labels:     []string{"Price: 100 USD", "Time: <1 Week"},
	}
}

func closedTask() model.Task {
	assignee := model.User{ID: 7, Login: "worker"}
	task := openTask()
	task.State = model.TaskClosed
	task.ClosureReason = model.ClosedCompleted
	task.Assignee = &assignee
	return task
}
