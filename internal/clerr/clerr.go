// Package clerr classifies the solver's failure modes into the four kinds
// the CLI maps to distinct process exit codes, and wraps them with
// pkg/errors so the printed error message carries the full chain of context.
package clerr

import (
	"errors"

	pkgerrors "github.com/pkg/errors"
)

// Kind distinguishes the CLI-visible failure categories.
type Kind int

const (
	// InputIOError covers failures opening or reading the input file.
	InputIOError Kind = iota + 1
	// MalformedInput covers input that opened fine but violates the file
	// format (bad header, truncated edge list, non-integer tokens, ...).
	MalformedInput
	// UsageError covers invalid CLI invocations (wrong argument count, bad
	// FILE_TYPE or mode). An unparsable thread count is not an error; the
	// CLI falls back to the hardware concurrency.
	UsageError
	// InternalInvariantViolation covers conditions the solver itself
	// asserts can never happen (a degree-accounting mismatch, an
	// out-of-range index); reaching one is a bug, not bad input.
	InternalInvariantViolation
)

var exitCodes = map[Kind]int{
	InputIOError:               2,
	MalformedInput:             3,
	UsageError:                 64,
	InternalInvariantViolation: 70,
}

// Error pairs a Kind with an underlying, pkg/errors-wrapped cause.
type Error struct {
	Kind Kind
	err  error
}

func (e *Error) Error() string { return e.err.Error() }
func (e *Error) Unwrap() error { return e.err }

// ExitCode returns the process exit code for e.Kind.
func (e *Error) ExitCode() int { return exitCodes[e.Kind] }

// New builds a Kind-tagged error with a fresh message and stack trace.
func New(kind Kind, message string) error {
	return &Error{Kind: kind, err: pkgerrors.New(message)}
}

// Wrap tags err with kind, attaching message as context.
func Wrap(kind Kind, err error, message string) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, err: pkgerrors.WithMessage(err, message)}
}

// Wrapf is Wrap with a format string.
func Wrapf(kind Kind, err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, err: pkgerrors.WithMessagef(err, format, args...)}
}

// ExitCode extracts the exit code for err, defaulting to 1 for any error
// that was never classified by this package (e.g. a flag-parsing error
// reported by cobra).
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var ce *Error
	if errors.As(err, &ce) {
		return ce.ExitCode()
	}
	return 1
}
