package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/git-alias/internal/errors"
	"github.com/thoreinstein/git-alias/internal/store"
)

const listBodyPreviewLength = 60

var listJSON bool

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List installed aliases",
	Long: `List the aliases installed in the selected configuration scope,
sorted by name, with a preview of each command.`,
	Example: `  # List aliases in the global configuration
  git alias list

  # List aliases in the current repository
  git alias -l list

  # Output as JSON
  git alias list --json

  See Also:
    git alias show  - Print an alias in full
    git alias add   - Install a new alias`,
	Args: cobra.NoArgs,
	RunE: runList,
}

// aliasJSON represents an alias in JSON output.
type aliasJSON struct {
	Name    string `json:"name"`
	Command string `json:"command"`
}

func runList(cmd *cobra.Command, _ []string) error {
	st, err := resolveStore()
	if err != nil {
		return err
	}
	return runListWithWriter(cmd.OutOrStdout(), st)
}

// runListWithWriter allows injecting a writer and store for testing.
func runListWithWriter(w io.Writer, st store.Store) error {
	names, err := st.List()
	if err != nil {
		return errors.Wrap(err, "listing aliases")
	}
	// The store reports backend order; sort for display.
	sort.Strings(names)

	entries := make([]aliasJSON, 0, len(names))
	for _, name := range names {
		body, err := st.Get(name)
		if err != nil {
			return errors.Wrapf(err, "reading alias %q", name)
		}
		entries = append(entries, aliasJSON{Name: name, Command: body})
	}

	if listJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	if len(entries) == 0 {
		fmt.Fprintln(w, "No aliases installed")
		return nil
	}

	bold := color.New(color.Bold)
	green := color.New(color.FgGreen)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\n", bold.Sprint("NAME"), bold.Sprint("COMMAND"))
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%s\n", green.Sprint(e.Name), truncate(e.Command, listBodyPreviewLength))
	}
	return tw.Flush()
}
