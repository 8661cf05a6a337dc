package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/git-alias/internal/config"
	"github.com/thoreinstein/git-alias/internal/errors"
	"github.com/thoreinstein/git-alias/internal/paths"
	"github.com/thoreinstein/git-alias/pkg/fileutil"
)

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the git-alias tool configuration",
	Long: `Manage the configuration of the git-alias tool itself: the default
scope aliases are stored in and how remote alias repositories are
cloned. Not to be confused with the git configuration the aliases
live in.`,
	Example: `  # Show the effective configuration
  git alias config show

  # Write a default config file to edit
  git alias config init`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cmd.Help()
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runConfigShow(cmd.OutOrStdout())
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default configuration file",
	Long: `Write the built-in defaults to the configuration file so they can be
edited. Fails if the file already exists.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runConfigInit(cmd.OutOrStdout())
	},
}

func runConfigShow(w io.Writer) error {
	c := currentConfig()

	fmt.Fprintf(w, "Config file: %s\n", paths.ConfigFile())
	fmt.Fprintf(w, "Scope: %s\n", c.Scope)
	fmt.Fprintf(w, "Clone depth: %d\n", c.Clone.Depth)
	fmt.Fprintf(w, "Clone recurse submodules: %v\n", c.Clone.RecurseSubmodules)
	return nil
}

func runConfigInit(w io.Writer) error {
	path := paths.ConfigFile()

	if _, err := os.Stat(path); err == nil {
		return errors.NewUserError(
			errors.Newf("config file already exists: %s", path),
			"edit the existing file instead")
	}

	if err := paths.EnsureDir(paths.ConfigDir(), 0); err != nil {
		return errors.Wrap(err, "creating config directory")
	}
	if err := fileutil.AtomicWriteTOML(path, config.Default()); err != nil {
		return err
	}

	fmt.Fprintf(w, "✓ Wrote %s\n", path)
	return nil
}
