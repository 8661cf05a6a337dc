// Package errors provides error handling conventions for the git-alias CLI.
//
// It defines sentinel errors for the failure conditions the tool can hit
// (missing aliases or files, overwrite conflicts, failed clones), an
// ExitError type carrying an exit code and an optional suggestion, and
// thin delegates to cockroachdb/errors for wrapping and inspection.
//
// Callers check conditions with [Is]:
//
//	if errors.Is(err, errors.ErrNotFound) {
//	    // handle missing alias
//	}
//
// and the root command unwraps [ExitError] to pick the process exit code:
//
//	var exitErr *errors.ExitError
//	if errors.As(err, &exitErr) {
//	    os.Exit(exitErr.Code)
//	}
package errors
