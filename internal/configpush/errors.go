package configpush

import "errors"

var (
	ErrNotDefaultBranch = errors.New("push is not on the default branch")
	ErrFetchConfig      = errors.New("failed to fetch config file")
)
