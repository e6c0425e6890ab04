package cli

import "errors"

var (
	// ErrUsage marks invalid arguments or flags.
	ErrUsage = errors.New("usage error")
	// ErrConfig marks invalid configuration.
	ErrConfig = errors.New("configuration error")
	// ErrChecksFailed is returned when at least one check did not pass.
	ErrChecksFailed = errors.New("checks failed")
)

// Exit codes.
const (
	ExitOK     = 0
	ExitFailed = 1
	ExitError  = 2
)

// ExitCode maps an Execute error to the process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrChecksFailed):
		return ExitFailed
	default:
		return ExitError
	}
}
