package usecase

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"issue-bounty-bot/internal/configpush"
	"issue-bounty-bot/internal/model"
	"issue-bounty-bot/internal/payout"
)

// OnPush validates the repository config when a default-branch push touches
// it. Validation failures are reported back as a commit comment so the
// author sees them where the mistake was made.
func (uc *implUseCase) OnPush(ctx context.Context, sc model.Scope, event model.WebhookEvent) (configpush.ValidateOutput, error) {
	branch := strings.TrimPrefix(event.Ref, "refs/heads/")
	if branch != uc.defaultBranch {
		uc.l.Debugf(ctx, "configpush: ignoring push to %s on %s", branch, event.Repository)
		return configpush.ValidateOutput{}, nil
	}

	if !touchesConfig(event.ChangedFiles) {
		return configpush.ValidateOutput{}, nil
	}

	if event.HeadCommit == "" {
		uc.l.Warnf(ctx, "configpush: push on %s has no head commit, skipping", event.Repository)
		return configpush.ValidateOutput{}, nil
	}

	uc.l.Infof(ctx, "configpush: validating %s at %s in %s", configpush.ConfigPath, event.HeadCommit, event.Repository)

	raw, err := uc.gh.GetFileContent(ctx, event.Repository, event.HeadCommit, configpush.ConfigPath)
	if err != nil {
		return configpush.ValidateOutput{}, fmt.Errorf("%w: %v", configpush.ErrFetchConfig, err)
	}

	if vErr := validateConfig(raw); vErr != nil {
		message := "@" + event.Sender.Login + " Config validation failed: " + vErr.Error()
		if event.Sender.Login == "" {
			message = "Config validation failed: " + vErr.Error()
		}
		if err := uc.gh.CreateCommitComment(ctx, event.Repository, event.HeadCommit, configpush.ConfigPath, message); err != nil {
			uc.l.Errorf(ctx, "configpush: failed to post commit comment: %v", err)
		}
		return configpush.ValidateOutput{Checked: true, Valid: false, Message: message}, nil
	}

	return configpush.ValidateOutput{Checked: true, Valid: true, Message: "config is valid"}, nil
}

func touchesConfig(changed []string) bool {
	for _, f := range changed {
		if f == configpush.ConfigPath {
			return true
		}
	}
	return false
}

// validateConfig parses and checks the config schema. Unknown keys are
// rejected so typos surface instead of silently falling back to defaults.
func validateConfig(raw []byte) error {
	var cfg configpush.RepoConfig
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return fmt.Errorf("invalid YAML: %v", err)
	}

	if cfg.PriceMultiplier != "" {
		value, err := decimal.NewFromString(cfg.PriceMultiplier)
		if err != nil {
			return fmt.Errorf("price-multiplier %q is not a number", cfg.PriceMultiplier)
		}
		if value.IsNegative() {
			return fmt.Errorf("price-multiplier must not be negative, got %s", value)
		}
	}

	if cfg.PaymentPermitMaxPrice != "" {
		price, err := decimal.NewFromString(cfg.PaymentPermitMaxPrice)
		if err != nil {
			return fmt.Errorf("payment-permit-max-price %q is not a number", cfg.PaymentPermitMaxPrice)
		}
		if price.IsNegative() {
			return fmt.Errorf("payment-permit-max-price must not be negative, got %s", price)
		}
	}

	if len(cfg.CommentIncentives) > 0 {
		if _, err := payout.ParseIncentives(cfg.CommentIncentives); err != nil {
			return fmt.Errorf("comment-incentives: %v", err)
		}
	}

	if cfg.EvmNetworkID < 0 {
		return fmt.Errorf("evm-network-id must not be negative, got %d", cfg.EvmNetworkID)
	}

	return nil
}
