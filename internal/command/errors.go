package command

import "errors"

var (
	ErrNotCommand     = errors.New("not a slash command")
	ErrUnknownCommand = errors.New("unknown command")
	ErrInvalidWallet  = errors.New("invalid wallet address")
	ErrInvalidQuery   = errors.New("invalid query syntax")
	ErrInvalidAutopay = errors.New("invalid autopay argument")
	ErrInvalidAllow   = errors.New("invalid allow syntax")
)
