package webhook

// SecurityConfig holds the checks applied to inbound GitHub deliveries.
type SecurityConfig struct {
	Secret          string   // shared secret for X-Hub-Signature-256 verification
	AllowedIPs      []string // optional IP or CIDR whitelist
	RateLimitPerMin int      // max deliveries per minute per source
}
