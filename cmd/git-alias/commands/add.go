package commands

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/git-alias/internal/aliasfile"
	"github.com/thoreinstein/git-alias/internal/errors"
	"github.com/thoreinstein/git-alias/internal/source"
	"github.com/thoreinstein/git-alias/internal/store"
)

var (
	addRepository string
	addRef        string
	addDirectory  string
	addName       string
	addForce      bool
)

func init() {
	addCmd.Flags().StringVarP(&addRepository, "repository", "R", "",
		"clone this repository and install the alias from it")
	addCmd.Flags().StringVarP(&addRef, "ref", "r", "",
		"check out this ref after cloning (requires --repository)")
	addCmd.Flags().StringVarP(&addDirectory, "directory", "C", "",
		"resolve the alias file relative to this directory")
	addCmd.Flags().StringVarP(&addName, "name", "n", "",
		"install under this name instead of deriving it from the file name")
	addCmd.Flags().BoolVarP(&addForce, "force", "f", false,
		"overwrite an existing alias")
	rootCmd.AddCommand(addCmd)
}

var addCmd = &cobra.Command{
	Use:     "add <file>",
	Aliases: []string{"install"},
	Short:   "Install an alias from a definition file",
	Long: `Install an alias from a definition file into git's configuration.

The file may live on disk, or inside a git repository given with
--repository, in which case it names a path within the checkout. The
repository is cloned into a temporary directory that is removed when the
install finishes, whether it succeeds or not.

Unless --name is given, the alias is named after the file with any
.alias extension stripped: pr.alias installs as "pr".`,
	Example: `  # Install ./pr.alias as "pr" into the global configuration
  git alias add ./pr.alias

  # Install into the current repository's configuration
  git alias -l add ./pr.alias

  # Install from a shared alias repository
  git alias add -R https://github.com/user/aliases.git pr.alias

  # Pin the repository to a tag and rename the alias
  git alias add -R git@example.com:aliases.git -r v1.2 -n fetch-pr pr.alias

  # Replace an existing alias
  git alias add ./pr.alias --force

  See Also:
    git alias show    - Print an installed alias
    git alias remove  - Remove an installed alias`,
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

func runAdd(cmd *cobra.Command, args []string) error {
	if addRef != "" && addRepository == "" {
		return errors.NewUserError(errors.New("--ref requires --repository"), "")
	}
	if addDirectory != "" && addRepository != "" {
		return errors.NewUserError(errors.New("--directory conflicts with --repository"), "")
	}

	src := buildSource(args[0])

	st, err := resolveStore()
	if err != nil {
		return err
	}

	return installAlias(cmd.OutOrStdout(), st, newResolver(), src, addName, addForce)
}

// buildSource maps the add flags onto a local or remote source.
func buildSource(file string) source.Source {
	if addRepository != "" {
		return source.Remote(addRepository, file, addRef)
	}
	if addDirectory != "" {
		return source.Local(filepath.Join(addDirectory, file))
	}
	return source.Local(file)
}

// installAlias resolves, parses, and stores one alias definition.
func installAlias(w io.Writer, st store.Store, res *source.Resolver, src source.Source, name string, force bool) error {
	file, cleanup, err := res.Resolve(src)
	if err != nil {
		return err
	}
	defer cleanup()

	body, err := aliasfile.ParseFile(file)
	if err != nil {
		return err
	}
	if body == "" {
		return errors.WithDetailf(errors.ErrEmptyAlias,
			"%s contains only comments and blank lines", src.Path)
	}

	if name == "" {
		name = aliasfile.DeriveName(file)
	}
	if err := aliasfile.ValidateName(name); err != nil {
		return err
	}

	slog.Info("installing alias", "name", name, "file", file)
	if err := st.Set(name, body, force); err != nil {
		return err
	}

	fmt.Fprintf(w, "✓ Alias %q installed\n", name)
	return nil
}
