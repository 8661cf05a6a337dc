package commands

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/git-alias/internal/store"
)

var removeForce bool

func init() {
	removeCmd.Flags().BoolVar(&removeForce, "force", false, "Skip confirmation prompt")
	rootCmd.AddCommand(removeCmd)
}

var removeCmd = &cobra.Command{
	Use:     "remove <name>",
	Aliases: []string{"rm"},
	Short:   "Remove an installed alias",
	Long: `Remove an alias from the selected configuration scope.

A confirmation prompt is shown before removal unless --force is specified.`,
	Example: `  # Remove the "pr" alias (with confirmation)
  git alias remove pr

  # Remove without confirmation
  git alias remove pr --force

  See Also:
    git alias list  - List installed aliases
    git alias add   - Install a new alias`,
	Args: cobra.ExactArgs(1),
	RunE: runRemove,
}

func runRemove(cmd *cobra.Command, args []string) error {
	st, err := resolveStore()
	if err != nil {
		return err
	}
	return runRemoveWithIO(cmd.OutOrStdout(), os.Stdin, st, args[0], removeForce)
}

// runRemoveWithIO allows injecting streams and a store for testing.
func runRemoveWithIO(w io.Writer, r io.Reader, st store.Store, name string, force bool) error {
	// Look the alias up first so the prompt can show what goes away.
	body, err := st.Get(name)
	if err != nil {
		return err
	}

	if !force {
		if !confirmRemoval(w, r, name, body) {
			fmt.Fprintln(w, "Removal cancelled")
			return nil
		}
	}

	slog.Info("removing alias", "name", name)
	if err := st.Remove(name); err != nil {
		return err
	}

	fmt.Fprintf(w, "✓ Alias %q removed\n", name)
	return nil
}

// confirmRemoval prompts the user to confirm alias removal.
// Returns true only if the user enters "y" or "yes" (case-insensitive).
func confirmRemoval(w io.Writer, r io.Reader, name, body string) bool {
	fmt.Fprintf(w, "Remove alias %q?\n", name)
	fmt.Fprintf(w, "  %s\n", truncate(body, 70))
	fmt.Fprint(w, "Continue? [y/N]: ")

	reader := bufio.NewReader(r)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes"
}
