package lifecycle

import (
	"errors"

	"issue-bounty-bot/internal/command"
)

// Usage texts posted back to the thread when a command does not parse.
const (
	MsgWalletUsage = "Please include your wallet or ENS address.\n usage: /wallet 0x0000000000000000000000000000000000000000"
	MsgQueryUsage  = "Invalid syntax for query command \n usage /query @user"
	MsgAllowUsage  = "Invalid syntax for allow command \n usage /allow set-<access> @user true|false"
)

// ErrorReply maps a command parse error to the usage text posted back to
// the thread. Returns "" for errors with no canned reply.
func ErrorReply(err error) string {
	switch {
	case errors.Is(err, command.ErrInvalidWallet):
		return MsgWalletUsage
	case errors.Is(err, command.ErrInvalidQuery):
		return MsgQueryUsage
	case errors.Is(err, command.ErrInvalidAllow):
		return MsgAllowUsage
	}
	return ""
}
