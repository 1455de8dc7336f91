package httpstore

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/shopspring/decimal"

	"issue-bounty-bot/internal/payout/repository"
	pkgLog "issue-bounty-bot/pkg/log"
)

var errNotFound = errors.New("httpstore: not found")

// Store implements the wallet, multiplier, and access registries over the
// registry REST API. The bot holds no local copy of any record: every call
// hits the store so concurrent command updates resolve to the latest
// committed value.
type Store struct {
	client *Client
	l      pkgLog.Logger
}

var (
	_ repository.WalletStore     = (*Store)(nil)
	_ repository.MultiplierStore = (*Store)(nil)
	_ repository.AccessStore     = (*Store)(nil)
)

func New(client *Client, l pkgLog.Logger) *Store {
	return &Store{
		client: client,
		l:      l,
	}
}

// GetAddress returns the registered wallet address for the user.
func (s *Store) GetAddress(ctx context.Context, userID int64) (string, error) {
	var out struct {
		Address string `json:"address"`
	}
	err := s.client.getJSON(ctx, fmt.Sprintf("/api/v1/wallets/%d", userID), &out)
	if errors.Is(err, errNotFound) {
		return "", repository.ErrNotFound
	}
	if err != nil {
		return "", err
	}
	if out.Address == "" {
		return "", repository.ErrNotFound
	}
	return out.Address, nil
}

// SetAddress registers the wallet address for the user.
func (s *Store) SetAddress(ctx context.Context, userID int64, address string) error {
	in := map[string]string{"address": address}
	if err := s.client.putJSON(ctx, fmt.Sprintf("/api/v1/wallets/%d", userID), in); err != nil {
		return err
	}
	s.l.Debugf(ctx, "httpstore: wallet address updated for user %d", userID)
	return nil
}

// Get returns the multiplier record for (repo, user).
func (s *Store) Get(ctx context.Context, repo string, userID int64) (repository.MultiplierRecord, error) {
	var out struct {
		Value  string `json:"value"`
		Reason string `json:"reason"`
	}
	path := fmt.Sprintf("/api/v1/multipliers/%d?repo=%s", userID, url.QueryEscape(repo))
	err := s.client.getJSON(ctx, path, &out)
	if errors.Is(err, errNotFound) {
		return repository.MultiplierRecord{}, repository.ErrNotFound
	}
	if err != nil {
		return repository.MultiplierRecord{}, err
	}

	value, err := decimal.NewFromString(out.Value)
	if err != nil {
		return repository.MultiplierRecord{}, fmt.Errorf("invalid multiplier value %q: %w", out.Value, err)
	}
	return repository.MultiplierRecord{Value: value, Reason: out.Reason}, nil
}

// Set stores the multiplier record for (repo, user). The store applies
// last-write-wins; the bot performs no read-modify-write.
func (s *Store) Set(ctx context.Context, repo string, userID int64, record repository.MultiplierRecord) error {
	in := map[string]string{
		"value":  record.Value.String(),
		"reason": record.Reason,
	}
	path := fmt.Sprintf("/api/v1/multipliers/%d?repo=%s", userID, url.QueryEscape(repo))
	if err := s.client.putJSON(ctx, path, in); err != nil {
		return err
	}
	s.l.Debugf(ctx, "httpstore: multiplier updated for user %d in %s", userID, repo)
	return nil
}

// GetAccess returns whether the user holds the named permission in the repo.
func (s *Store) GetAccess(ctx context.Context, repo string, userID int64, kind string) (bool, error) {
	var out struct {
		Allowed bool `json:"allowed"`
	}
	path := fmt.Sprintf("/api/v1/access/%d/%s?repo=%s", userID, url.PathEscape(kind), url.QueryEscape(repo))
	err := s.client.getJSON(ctx, path, &out)
	if errors.Is(err, errNotFound) {
		return false, repository.ErrNotFound
	}
	if err != nil {
		return false, err
	}
	return out.Allowed, nil
}

// SetAccess grants or revokes the named permission.
func (s *Store) SetAccess(ctx context.Context, repo string, userID int64, kind string, allowed bool) error {
	in := map[string]bool{"allowed": allowed}
	path := fmt.Sprintf("/api/v1/access/%d/%s?repo=%s", userID, url.PathEscape(kind), url.QueryEscape(repo))
	return s.client.putJSON(ctx, path, in)
}
