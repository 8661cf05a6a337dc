// Package commands implements the CLI commands for git-alias.
package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/git-alias/internal/config"
	"github.com/thoreinstein/git-alias/internal/errors"
	"github.com/thoreinstein/git-alias/internal/logging"
)

const version = "0.1.0"

// Scope selection flags. At most one may be set; the default comes from
// the tool configuration.
var (
	scopeSystem   bool
	scopeGlobal   bool
	scopeLocal    bool
	scopeWorktree bool
	scopeFileFlag string
)

// Logging flags.
var (
	verbosity int
	quiet     bool
	logFormat string
	logFile   string
)

// cfg holds the loaded tool configuration; configLoadErr any error that
// occurred while loading it.
var (
	cfg           *config.Config
	configLoadErr error
)

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().BoolVarP(&scopeSystem, "system", "s", false,
		"manage aliases in the system configuration (/etc/gitconfig)")
	rootCmd.PersistentFlags().BoolVarP(&scopeGlobal, "global", "g", false,
		"manage aliases in the global configuration (~/.gitconfig)")
	rootCmd.PersistentFlags().BoolVarP(&scopeLocal, "local", "l", false,
		"manage aliases in the repository configuration (.git/config)")
	rootCmd.PersistentFlags().BoolVarP(&scopeWorktree, "worktree", "w", false,
		"manage aliases in the worktree configuration (.git/config.worktree)")
	rootCmd.PersistentFlags().StringVar(&scopeFileFlag, "file", "",
		"manage aliases in the named configuration file")

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text",
		"log format: text, json")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"write logs to file in JSON format")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("git-alias version {{.Version}}\n")

	// Silence errors and usage so Execute controls error output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

func initConfig() {
	config.Init()
	cfg, configLoadErr = config.Load("")
}

var rootCmd = &cobra.Command{
	Use:   "git-alias",
	Short: "Manage git aliases from definition files",
	Long: `git-alias manages named shell-command shortcuts stored in git's
configuration. Aliases are written as small definition files (comments
and blank lines for documentation, the command itself on one or more
lines) and installed into a chosen git config scope, either from a
local path or straight out of a git repository.

Installed as git-alias on PATH, git's extension mechanism makes the
tool available as `+ "`git alias`" + `.`,
	Example: `  # Install an alias from a local definition file
  git alias add ./pr.alias

  # Install from a repository of shared aliases
  git alias add -R https://github.com/user/aliases.git pr.alias

  # List installed aliases in the repository configuration
  git alias -l list

  See Also: git alias list, git alias show, git alias remove`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := setupLogging(cmd); err != nil {
			return err
		}
		return checkConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cmd.Help()
	},
}

// setupLogging configures the default logger based on verbosity flags.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return errors.NewUserError(nil, "cannot use --quiet and --verbose together")
	}

	var level slog.Level
	if quiet {
		level = slog.LevelError
	} else {
		v := verbosity

		// CLI flags take precedence, but if not set, check env var
		if v == 0 {
			if val, ok := os.LookupEnv("GIT_ALIAS_DEBUG"); ok {
				switch val {
				case "1", "true":
					v = 2
				case "2":
					v = 3
				}
			}
		}
		level = logging.LevelFromVerbosity(v)
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var primaryHandler slog.Handler
	switch logging.Format(logFormat) {
	case logging.FormatJSON:
		primaryHandler = slog.NewJSONHandler(cmd.ErrOrStderr(), opts)
	default:
		primaryHandler = logging.NewHandler(cmd.ErrOrStderr(), opts)
	}

	handlers := []slog.Handler{primaryHandler}

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return errors.NewUserError(err, "failed to open log file")
		}
		// File output uses JSON format
		handlers = append(handlers, slog.NewJSONHandler(f, &slog.HandlerOptions{
			Level: level,
		}))
	}

	var handler slog.Handler
	if len(handlers) > 1 {
		handler = logging.NewMultiHandler(handlers...)
	} else {
		handler = handlers[0]
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.NewContext(ctx, logger))

	return nil
}

// checkConfig surfaces configuration problems before any command runs.
func checkConfig(cmd *cobra.Command) error {
	if cmd.Name() == "help" || cmd.Name() == "version" {
		return nil
	}

	if configLoadErr != nil {
		return errors.NewConfigError(configLoadErr)
	}

	if errs := config.Validate(cfg); len(errs) > 0 {
		return errors.NewConfigError(errs[0])
	}

	return nil
}

// Execute runs the root command and returns the process exit code,
// printing any error (and suggestion) to stderr.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		for _, detail := range errors.GetAllDetails(err) {
			fmt.Fprintln(os.Stderr, detail)
		}

		var exitErr *errors.ExitError
		if errors.As(err, &exitErr) {
			if exitErr.Suggestion != "" {
				fmt.Fprintln(os.Stderr, "Suggestion:", exitErr.Suggestion)
			}
			return exitErr.Code
		}
		return errors.ExitUser
	}
	return errors.ExitSuccess
}
