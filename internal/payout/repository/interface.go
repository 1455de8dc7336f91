package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// WalletStore is the external per-user wallet registry. Addresses are
// global, not per-task; the core never caches them between calls.
type WalletStore interface {
	// GetAddress returns the registered wallet address, or ErrNotFound
	// when the user never registered one.
	GetAddress(ctx context.Context, userID int64) (string, error)
	SetAddress(ctx context.Context, userID int64, address string) error
}

// MultiplierRecord is the per (repository, user) payout multiplier.
type MultiplierRecord struct {
	Value  decimal.Decimal // >= 0, defaults to 1
	Reason string          // optional free text
}

// MultiplierStore is the external per-repository multiplier registry.
type MultiplierStore interface {
	// Get returns the current record, or ErrNotFound when no multiplier
	// was ever set (callers fall back to the default of 1).
	Get(ctx context.Context, repo string, userID int64) (MultiplierRecord, error)
	Set(ctx context.Context, repo string, userID int64, record MultiplierRecord) error
}

// AccessStore tracks per-user label-management permissions granted via the
// allow command.
type AccessStore interface {
	GetAccess(ctx context.Context, repo string, userID int64, kind string) (bool, error)
	SetAccess(ctx context.Context, repo string, userID int64, kind string, allowed bool) error
}
