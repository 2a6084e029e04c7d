package memory

import "errors"

// Sentinel errors for store operations.
var (
	ErrSaveFailed = errors.New("save failed")
	ErrLoadFailed = errors.New("load failed")
)
