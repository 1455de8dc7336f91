package command

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Kind names a slash command.
type Kind string

const (
	KindWallet     Kind = "wallet"
	KindMultiplier Kind = "multiplier"
	KindQuery      Kind = "query"
	KindStart      Kind = "start"
	KindStop       Kind = "stop"
	KindAutopay    Kind = "autopay"
	KindAllow      Kind = "allow"
	KindHelp       Kind = "help"
)

// Command is a parsed slash-command invocation.
type Command struct {
	Kind       Kind
	Wallet     string          // wallet: validated address
	Target     string          // multiplier/query/allow: login without the @; empty means the sender
	Multiplier decimal.Decimal // multiplier: parsed value, defaults to 1
	Reason     string          // multiplier: optional reason, quotes stripped, text verbatim
	Autopay    bool            // autopay: requested flag value
	AccessKind string          // allow: permission name, e.g. "priority"
	Allowed    bool            // allow: grant or revoke
}

var (
	walletRe   = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)
	usernameRe = regexp.MustCompile(`^@([a-zA-Z0-9-]+)$`)
)

// IsCommand reports whether a comment body is a slash command at all.
func IsCommand(body string) bool {
	return strings.HasPrefix(strings.TrimSpace(body), "/")
}

// Parse turns a comment body into a typed command invocation.
// Returns ErrUnknownCommand for slash text that matches no command and
// command-specific errors for malformed arguments. A malformed multiplier
// value is NOT an error: it falls back to 1 with the argument kept as the
// reason.
func Parse(body string) (Command, error) {
	fields := strings.Fields(strings.TrimSpace(body))
	if len(fields) == 0 || !strings.HasPrefix(fields[0], "/") {
		return Command{}, ErrNotCommand
	}

	name := strings.ToLower(fields[0])
	args := fields[1:]

	switch name {
	case "/wallet":
		return parseWallet(args)
	case "/multiplier":
		return parseMultiplier(args)
	case "/query":
		return parseQuery(args)
	case "/start":
		return Command{Kind: KindStart}, nil
	case "/stop":
		return Command{Kind: KindStop}, nil
	case "/autopay":
		return parseAutopay(args)
	case "/allow":
		return parseAllow(args)
	case "/help":
		return Command{Kind: KindHelp}, nil
	}
	return Command{}, ErrUnknownCommand
}

func parseWallet(args []string) (Command, error) {
	if len(args) != 1 {
		return Command{Kind: KindWallet}, ErrInvalidWallet
	}
	address := args[0]
	// Hex address or ENS name.
	if !walletRe.MatchString(address) && !strings.HasSuffix(address, ".eth") {
		return Command{Kind: KindWallet}, ErrInvalidWallet
	}
	return Command{Kind: KindWallet, Wallet: address}, nil
}

func parseMultiplier(args []string) (Command, error) {
	cmd := Command{Kind: KindMultiplier, Multiplier: decimal.NewFromInt(1)}

	if len(args) > 0 {
		if m := usernameRe.FindStringSubmatch(args[0]); m != nil {
			cmd.Target = m[1]
			args = args[1:]
		}
	}
	if len(args) == 0 {
		return cmd, nil
	}

	if value, err := decimal.NewFromString(args[0]); err == nil && !value.IsNegative() {
		cmd.Multiplier = value
		args = args[1:]
	}
	// Whatever remains, numeric or not, is the reason.
	if len(args) > 0 {
		cmd.Reason = stripQuotes(strings.Join(args, " "))
	}
	return cmd, nil
}

func parseQuery(args []string) (Command, error) {
	if len(args) != 1 {
		return Command{Kind: KindQuery}, ErrInvalidQuery
	}
	m := usernameRe.FindStringSubmatch(args[0])
	if m == nil {
		return Command{Kind: KindQuery}, ErrInvalidQuery
	}
	return Command{Kind: KindQuery, Target: m[1]}, nil
}

func parseAutopay(args []string) (Command, error) {
	if len(args) != 1 {
		return Command{Kind: KindAutopay}, ErrInvalidAutopay
	}
	switch strings.ToLower(args[0]) {
	case "true":
		return Command{Kind: KindAutopay, Autopay: true}, nil
	case "false":
		return Command{Kind: KindAutopay, Autopay: false}, nil
	}
	return Command{Kind: KindAutopay}, ErrInvalidAutopay
}

// parseAllow handles "/allow set-<kind> @user true|false".
func parseAllow(args []string) (Command, error) {
	if len(args) != 3 || !strings.HasPrefix(args[0], "set-") {
		return Command{Kind: KindAllow}, ErrInvalidAllow
	}
	m := usernameRe.FindStringSubmatch(args[1])
	if m == nil {
		return Command{Kind: KindAllow}, ErrInvalidAllow
	}
	var allowed bool
	switch strings.ToLower(args[2]) {
	case "true":
		allowed = true
	case "false":
		allowed = false
	default:
		return Command{Kind: KindAllow}, ErrInvalidAllow
	}
	return Command{
		Kind:       KindAllow,
		Target:     m[1],
		AccessKind: strings.TrimPrefix(args[0], "set-"),
		Allowed:    allowed,
	}, nil
}

func stripQuotes(s string) string {
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}
