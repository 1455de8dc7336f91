package repository

import "errors"

// ErrNotFound is returned when a wallet, multiplier, or access record does
// not exist for the requested key.
var ErrNotFound = errors.New("record not found")
