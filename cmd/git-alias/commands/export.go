package commands

import (
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/git-alias/internal/errors"
	"github.com/thoreinstein/git-alias/internal/store"
	"github.com/thoreinstein/git-alias/pkg/fileutil"
)

// aliasEntry is the YAML document element shared by export and import.
type aliasEntry struct {
	Name    string `yaml:"name"`
	Command string `yaml:"command"`
}

var exportOutput string

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "",
		"write to this file instead of stdout")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export installed aliases as YAML",
	Long: `Export every alias in the selected configuration scope as a YAML
list of name/command pairs, suitable for git alias import on another
machine. Output goes to stdout unless --output is given; files are
written atomically.`,
	Example: `  # Print all global aliases as YAML
  git alias export

  # Save the current repository's aliases
  git alias -l export -o aliases.yaml

  See Also:
    git alias import  - Install aliases from an export`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func runExport(cmd *cobra.Command, _ []string) error {
	st, err := resolveStore()
	if err != nil {
		return err
	}
	return runExportWithWriter(cmd.OutOrStdout(), st, exportOutput)
}

// runExportWithWriter allows injecting a writer and store for testing.
func runExportWithWriter(w io.Writer, st store.Store, output string) error {
	names, err := st.List()
	if err != nil {
		return errors.Wrap(err, "listing aliases")
	}
	sort.Strings(names)

	entries := make([]aliasEntry, 0, len(names))
	for _, name := range names {
		body, err := st.Get(name)
		if err != nil {
			return errors.Wrapf(err, "reading alias %q", name)
		}
		entries = append(entries, aliasEntry{Name: name, Command: body})
	}

	if output != "" {
		if err := fileutil.AtomicWriteYAML(output, entries); err != nil {
			return err
		}
		fmt.Fprintf(w, "✓ Exported %d alias(es) to %s\n", len(entries), output)
		return nil
	}

	data, err := yaml.Marshal(entries)
	if err != nil {
		return errors.Wrap(err, "marshaling YAML")
	}
	_, err = w.Write(data)
	return err
}
