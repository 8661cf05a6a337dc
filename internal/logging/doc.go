// Package logging configures structured logging for the git-alias CLI.
//
// It builds on log/slog with a TTY-aware text handler that colorizes
// output when writing to a terminal, a JSON handler for machine
// consumption, and a multi-handler so --log-file can capture JSON logs
// alongside terminal output. Verbosity flags map to levels via
// [LevelFromVerbosity]; by default only warnings and errors are logged.
package logging
