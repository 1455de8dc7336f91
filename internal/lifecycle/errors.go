package lifecycle

import "errors"

// Domain-specific errors for the lifecycle package.
var (
	ErrNoTimeLabel    = errors.New("no time label to compute a deadline from")
	ErrTaskClosed     = errors.New("task is closed")
	ErrUnknownCommand = errors.New("command has no lifecycle handler")
)
