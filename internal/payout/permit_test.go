package payout_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"issue-bounty-bot/internal/model"
	"issue-bounty-bot/internal/payout"
	"issue-bounty-bot/internal/payout/repository"
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
	if m.addresses == nil {
		m.addresses = make(map[int64]string)
	}
	m.addresses[userID] = address
	return nil
}

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal %q: %v", s, err)
	}
	return d
}

func TestGenerateForComments(t *testing.T) {
	user := model.User{ID: 7, Login: "worker"}
	incentives := testIncentives(t, map[string]string{"contributor": "10"})
	oneComment := []model.Comment{comment("worker", model.CommentContributor)}

	t.Run("wallet present within ceiling", func(t *testing.T) {
		wallets := &mockWalletStore{addresses: map[int64]string{7: "0xABC"}}
		gen := payout.NewGenerator(wallets, &mockLogger{})

		permit, skip := gen.GenerateForComments(context.Background(), user, oneComment,
			dec(t, "2"), incentives, dec(t, "100"))
		if skip != "" {
			t.Fatalf("unexpected skip: %s", skip)
		}
		if permit.Account != "0xABC" {
			t.Errorf("account = %s, want 0xABC", permit.Account)
		}
		if !permit.Amount.Equal(dec(t, "20")) {
			t.Errorf("amount = %s, want 20", permit.Amount)
		}
		if permit.ID == "" {
			t.Errorf("permit must carry a generation id")
		}
		if !permit.Routable() {
			t.Errorf("permit with real wallet must be routable")
		}
	})

	t.Run("zero reward produces no permit", func(t *testing.T) {
		wallets := &mockWalletStore{addresses: map[int64]string{7: "0xABC"}}
		gen := payout.NewGenerator(wallets, &mockLogger{})

		permit, skip := gen.GenerateForComments(context.Background(), user, nil,
			dec(t, "2"), incentives, dec(t, "100"))
		if permit != nil || skip != payout.SkipNoReward {
			t.Errorf("got permit=%v skip=%q, want nil permit and no-reward skip", permit, skip)
		}
	})

	t.Run("amount above ceiling skips even with wallet", func(t *testing.T) {
		wallets := &mockWalletStore{addresses: map[int64]string{7: "0xABC"}}
		gen := payout.NewGenerator(wallets, &mockLogger{})

		permit, skip := gen.GenerateForComments(context.Background(), user, oneComment,
			dec(t, "2"), incentives, dec(t, "15"))
		if permit != nil || skip != payout.SkipExceedsPrice {
			t.Errorf("got permit=%v skip=%q, want nil permit and exceeds-price skip", permit, skip)
		}
	})

	t.Run("absent wallet yields placeholder with zero amount", func(t *testing.T) {
		gen := payout.NewGenerator(&mockWalletStore{}, &mockLogger{})

		permit, skip := gen.GenerateForComments(context.Background(), user, oneComment,
			dec(t, "2"), incentives, dec(t, "100"))
		if skip != "" {
			t.Fatalf("unexpected skip: %s", skip)
		}
		if permit.Account != payout.PlaceholderAccount {
			t.Errorf("account = %s, want placeholder %s", permit.Account, payout.PlaceholderAccount)
		}
		if !permit.Amount.IsZero() {
			t.Errorf("wallet-less user must never be paid a nonzero amount, got %s", permit.Amount)
		}
		if permit.Routable() {
			t.Errorf("placeholder permit must not be routable")
		}
	})

	t.Run("wallet store failure degrades to placeholder", func(t *testing.T) {
		gen := payout.NewGenerator(&mockWalletStore{err: errors.New("store down")}, &mockLogger{})

		permit, skip := gen.GenerateForComments(context.Background(), user, oneComment,
			dec(t, "2"), incentives, dec(t, "100"))
		if skip != "" {
			t.Fatalf("unexpected skip: %s", skip)
		}
		if permit.Account != payout.PlaceholderAccount || !permit.Amount.IsZero() {
			t.Errorf("resolver failure must fall back to placeholder/zero, got %+v", permit)
		}
	})

	t.Run("ceiling check happens before wallet fallback", func(t *testing.T) {
		// Wallet absent AND amount above ceiling: the skip wins.
		gen := payout.NewGenerator(&mockWalletStore{}, &mockLogger{})

		permit, skip := gen.GenerateForComments(context.Background(), user, oneComment,
			dec(t, "2"), incentives, dec(t, "15"))
		if permit != nil || skip != payout.SkipExceedsPrice {
			t.Errorf("got permit=%v skip=%q, want exceeds-price skip regardless of wallet", permit, skip)
		}
	})
}
