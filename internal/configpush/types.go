package configpush

// ConfigPath is where repositories keep their bot configuration.
const ConfigPath = ".github/bounty-bot-config.yml"

// ValidateOutput reports the result of a config push validation.
type ValidateOutput struct {
	Checked bool   // false when the push did not touch the config file
	Valid   bool
	Message string // human readable summary, also posted as a commit comment on failure
}

// RepoConfig is the schema of the per-repository configuration file.
// Numeric money fields are kept as strings and parsed with decimals so
// repositories can write exact values.
type RepoConfig struct {
	EvmNetworkID          int               `yaml:"evm-network-id"`
	PriceMultiplier       string            `yaml:"price-multiplier"`
	PaymentPermitMaxPrice string            `yaml:"payment-permit-max-price"`
	CommentIncentives     map[string]string `yaml:"comment-incentives"`
	DefaultLabels         []string          `yaml:"default-labels"`
	AutoPayMode           *bool             `yaml:"auto-pay-mode"`
}
