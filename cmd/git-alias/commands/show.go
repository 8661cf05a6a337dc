package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/git-alias/internal/errors"
	"github.com/thoreinstein/git-alias/internal/store"
)

var showJSON bool

func init() {
	showCmd.Flags().BoolVar(&showJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(showCmd)
}

var showCmd = &cobra.Command{
	Use:     "show [name]",
	Aliases: []string{"cat"},
	Short:   "Print an installed alias",
	Long: `Print the command stored under an alias name.

With no argument, opens an interactive picker over the installed
aliases with a preview of each command.`,
	Example: `  # Print the "pr" alias
  git alias show pr

  # Pick an alias interactively
  git alias show

  # Output as JSON
  git alias show pr --json

  See Also:
    git alias list    - List installed aliases
    git alias remove  - Remove an alias`,
	Args: cobra.MaximumNArgs(1),
	RunE: runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	st, err := resolveStore()
	if err != nil {
		return err
	}

	var name string
	if len(args) == 1 {
		name = args[0]
	} else {
		name, err = pickAlias(st)
		if err != nil || name == "" {
			return err
		}
	}

	return runShowWithWriter(cmd.OutOrStdout(), st, name)
}

// runShowWithWriter allows injecting a writer and store for testing.
func runShowWithWriter(w io.Writer, st store.Store, name string) error {
	body, err := st.Get(name)
	if err != nil {
		return err
	}

	if showJSON {
		data, err := json.MarshalIndent(aliasJSON{Name: name, Command: body}, "", "  ")
		if err != nil {
			return errors.Wrap(err, "marshaling JSON")
		}
		fmt.Fprintln(w, string(data))
		return nil
	}

	fmt.Fprintln(w, body)
	return nil
}

// pickAlias lets the user choose an alias interactively.
// Returns an empty name when the picker is aborted.
func pickAlias(st store.Store) (string, error) {
	names, err := st.List()
	if err != nil {
		return "", errors.Wrap(err, "listing aliases")
	}
	if len(names) == 0 {
		return "", errors.WithDetailf(errors.ErrNotFound, "no aliases installed")
	}

	idx, err := fuzzyfinder.Find(
		names,
		func(i int) string {
			return names[i]
		},
		fuzzyfinder.WithPreviewWindow(func(i, _, _ int) string {
			if i == -1 {
				return ""
			}
			body, err := st.Get(names[i])
			if err != nil {
				return ""
			}
			return fmt.Sprintf("git %s\n\n%s", names[i], body)
		}),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return "", nil
		}
		return "", errors.Wrap(err, "interactive selection failed")
	}

	return names[idx], nil
}
