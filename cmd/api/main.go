package main

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"issue-bounty-bot/config"
	configpushUC "issue-bounty-bot/internal/configpush/usecase"
	"issue-bounty-bot/internal/httpserver"
	"issue-bounty-bot/internal/lifecycle"
	lifecycleUC "issue-bounty-bot/internal/lifecycle/usecase"
	"issue-bounty-bot/internal/payout"
	"issue-bounty-bot/internal/payout/repository/httpstore"
	"issue-bounty-bot/internal/webhook"
	pkgGithub "issue-bounty-bot/pkg/github"
	"issue-bounty-bot/pkg/log"
)

func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx := context.Background()
	logger.Info(ctx, "Starting issue bounty bot...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Bounty parameters
	incentives, err := payout.ParseIncentives(cfg.Bounty.Incentives)
	if err != nil {
		logger.Error(ctx, "Invalid bounty.incentives: ", err)
		return
	}
	permitMaxPrice, err := decimal.NewFromString(cfg.Bounty.PermitMaxPrice)
	if err != nil {
		logger.Error(ctx, "Invalid bounty.permit_max_price: ", err)
		return
	}

	// 4. Clients
	gh := pkgGithub.NewClient(ctx, cfg.GitHub.Token, cfg.GitHub.BaseURL)
	registry := httpstore.New(httpstore.NewClient(cfg.Registry.BaseURL, cfg.Registry.AccessToken), logger)

	// 5. Use cases
	generator := payout.NewGenerator(registry, logger)
	tasksUC := lifecycleUC.New(logger, gh, registry, registry, registry, generator, lifecycle.Config{
		Incentives:         incentives,
		PermitMaxPrice:     permitMaxPrice,
		DisqualifyDuration: cfg.Bounty.DisqualifyDuration,
	})
	configCheck := configpushUC.New(logger, gh, cfg.GitHub.DefaultBranch)

	// 6. Webhook delivery
	var webhookHandler *webhook.Handler
	if cfg.Webhook.Enabled {
		webhookHandler = webhook.NewHandler(tasksUC, configCheck, gh, webhook.SecurityConfig{
			Secret:          cfg.Webhook.Secret,
			AllowedIPs:      cfg.Webhook.AllowedIPs,
			RateLimitPerMin: cfg.Webhook.RateLimitPerMin,
		}, cfg.GitHub.BotLogin, logger)
	} else {
		logger.Warn(ctx, "Webhooks disabled, the bot will not react to events")
	}

	// 7. HTTP server
	srvCfg := httpserver.Config{
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
	}
	if webhookHandler != nil {
		srvCfg.WebhookHandler = webhookHandler
	}
	httpServer, err := httpserver.New(logger, srvCfg)
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
