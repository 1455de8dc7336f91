package payout

import "errors"

// Domain-specific errors for the payout package.
var (
	ErrMalformedIncentives = errors.New("malformed incentive rate")
)
