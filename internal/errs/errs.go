// Package errs holds the sentinel errors shared by the game packages.
// Callers wrap them with fmt.Errorf("...: %w") and test with errors.Is.
package errs

import "errors"

var (
	// ErrInvalidArgument reports a missing, empty or out-of-domain input.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrSourceUnavailable reports a word or texture source that cannot be read.
	ErrSourceUnavailable = errors.New("source unavailable")
	// ErrIndexOutOfRange reports an index outside [0, Len).
	ErrIndexOutOfRange = errors.New("index out of range")
)
