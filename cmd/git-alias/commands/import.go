package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/git-alias/internal/aliasfile"
	"github.com/thoreinstein/git-alias/internal/errors"
	"github.com/thoreinstein/git-alias/internal/store"
)

var importForce bool

func init() {
	importCmd.Flags().BoolVarP(&importForce, "force", "f", false,
		"overwrite existing aliases")
	rootCmd.AddCommand(importCmd)
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Install aliases from a YAML export",
	Long: `Install every alias from a YAML file produced by git alias export.

Each entry is installed independently; entries that collide with an
existing alias are skipped and reported unless --force is given.`,
	Example: `  # Install shared aliases into the global configuration
  git alias import aliases.yaml

  # Replace colliding aliases
  git alias import aliases.yaml --force

  See Also:
    git alias export  - Export installed aliases`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func runImport(cmd *cobra.Command, args []string) error {
	st, err := resolveStore()
	if err != nil {
		return err
	}
	return runImportWithWriter(cmd.OutOrStdout(), st, args[0], importForce)
}

// runImportWithWriter allows injecting a writer and store for testing.
func runImportWithWriter(w io.Writer, st store.Store, path string, force bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.WithDetailf(errors.ErrNotFound, "import file %s does not exist", path)
		}
		return errors.Wrapf(err, "reading %s", path)
	}

	var entries []aliasEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return errors.Wrapf(err, "parsing %s", path)
	}

	var installed int
	var failed []string
	for _, e := range entries {
		if err := aliasfile.ValidateName(e.Name); err != nil {
			failed = append(failed, fmt.Sprintf("%s: %v", e.Name, err))
			continue
		}
		if e.Command == "" {
			failed = append(failed, fmt.Sprintf("%s: %v", e.Name, errors.ErrEmptyAlias))
			continue
		}
		if err := st.Set(e.Name, e.Command, force); err != nil {
			failed = append(failed, fmt.Sprintf("%s: %v", e.Name, err))
			continue
		}
		installed++
	}

	fmt.Fprintf(w, "✓ Imported %d alias(es) from %s\n", installed, path)

	if len(failed) > 0 {
		return errors.New("failed to import some aliases:\n  " + strings.Join(failed, "\n  "))
	}
	return nil
}
