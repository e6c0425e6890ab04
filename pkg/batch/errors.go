package batch

import "errors"

var (
	ErrNoChecks          = errors.New("batch: no checks")
	ErrInvalidCheck      = errors.New("batch: invalid check")
	ErrDecode            = errors.New("batch: failed to decode checks")
	ErrEncode            = errors.New("batch: failed to encode report")
	ErrUnsupportedFormat = errors.New("batch: unsupported output format")
	ErrRunCancelled      = errors.New("batch: run cancelled")
)
