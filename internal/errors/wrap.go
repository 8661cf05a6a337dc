package errors

import "github.com/cockroachdb/errors"

// Thin delegates to cockroachdb/errors so callers need a single errors
// import for sentinels, wrapping, and inspection alike.

// New creates an error with a message and stack trace.
func New(msg string) error {
	return errors.New(msg)
}

// Newf creates an error with a formatted message and stack trace.
func Newf(format string, args ...any) error {
	return errors.Newf(format, args...)
}

// Wrap annotates err with a message, preserving the error chain.
// Returns nil if err is nil.
func Wrap(err error, msg string) error {
	return errors.Wrap(err, msg)
}

// Wrapf annotates err with a formatted message, preserving the error chain.
// Returns nil if err is nil.
func Wrapf(err error, format string, args ...any) error {
	return errors.Wrapf(err, format, args...)
}

// WithDetailf attaches a formatted user-facing detail to err.
func WithDetailf(err error, format string, args ...any) error {
	return errors.WithDetailf(err, format, args...)
}

// GetAllDetails returns the user-facing details attached to err's chain
// via WithDetailf, outermost first.
func GetAllDetails(err error) []string {
	return errors.GetAllDetails(err)
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}
