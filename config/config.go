package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Bounty bot specifics
	GitHub   GitHubConfig
	Registry RegistryConfig
	Bounty   BountyConfig

	// Webhooks
	Webhook WebhookConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// GitHubConfig configures the API client and the bot identity.
type GitHubConfig struct {
	Token         string
	BaseURL       string // empty means api.github.com
	BotLogin      string // the bot's own comments are excluded from scoring
	DefaultBranch string // branch whose config pushes are validated
}

// RegistryConfig points at the wallet and multiplier registry service.
type RegistryConfig struct {
	BaseURL     string
	AccessToken string
}

// BountyConfig holds the payout parameters. Money values stay as strings
// here and are parsed into decimals at wiring time.
type BountyConfig struct {
	Incentives         map[string]string // comment bucket -> credit rate
	PermitMaxPrice     string
	DisqualifyDuration time.Duration // assignee inactivity window, 0 disables
}

type WebhookConfig struct {
	Enabled         bool
	Secret          string
	AllowedIPs      []string
	RateLimitPerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// GitHub
	cfg.GitHub.Token = viper.GetString("github.token")
	cfg.GitHub.BaseURL = viper.GetString("github.base_url")
	cfg.GitHub.BotLogin = viper.GetString("github.bot_login")
	cfg.GitHub.DefaultBranch = viper.GetString("github.default_branch")
	if token := viper.GetString("github_token"); token != "" {
		cfg.GitHub.Token = token
	}

	// Wallet and multiplier registry
	cfg.Registry.BaseURL = viper.GetString("registry.base_url")
	cfg.Registry.AccessToken = viper.GetString("registry.access_token")
	if token := viper.GetString("registry_access_token"); token != "" {
		cfg.Registry.AccessToken = token
	}

	// Bounty parameters
	cfg.Bounty.Incentives = viper.GetStringMapString("bounty.incentives")
	cfg.Bounty.PermitMaxPrice = viper.GetString("bounty.permit_max_price")
	cfg.Bounty.DisqualifyDuration = viper.GetDuration("bounty.disqualify_duration")

	// Webhooks
	cfg.Webhook.Enabled = viper.GetBool("webhook.enabled")
	cfg.Webhook.Secret = viper.GetString("webhook.secret")
	if secret := viper.GetString("webhook_secret"); secret != "" {
		cfg.Webhook.Secret = secret
	}
	cfg.Webhook.RateLimitPerMin = viper.GetInt("webhook.rate_limit_per_min")

	// Split allowed IPs since viper might not parse array seamlessly from env
	var ips []string
	if rawIps := viper.GetString("webhook.allowed_ips"); rawIps != "" {
		for _, ip := range strings.Split(rawIps, ",") {
			ip = strings.TrimSpace(ip)
			if ip != "" {
				ips = append(ips, ip)
			}
		}
	}
	cfg.Webhook.AllowedIPs = ips

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("github.bot_login", "bounty-bot")
	viper.SetDefault("github.default_branch", "main")
	viper.SetDefault("bounty.permit_max_price", "1000")
	viper.SetDefault("bounty.disqualify_duration", "168h")
	viper.SetDefault("bounty.incentives", map[string]string{
		"issuer":      "10",
		"assignee":    "10",
		"contributor": "5",
	})
	viper.SetDefault("webhook.rate_limit_per_min", 60)
	viper.SetDefault("webhook.enabled", true)
}

func validate(cfg *Config) error {
	if cfg.GitHub.Token == "" {
		return fmt.Errorf("github.token is required - set it in config.yaml or GITHUB_TOKEN")
	}
	if cfg.Webhook.Enabled && cfg.Webhook.Secret == "" {
		return fmt.Errorf("webhook.secret is required when webhooks are enabled")
	}
	return nil
}
