// Package git provides wrappers for the git subprocess operations
// git-alias needs: cloning alias repositories and checking out refs.
package git

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/thoreinstein/git-alias/internal/errors"
)

// IsURL returns true if s looks like a git repository URL.
// It checks for:
//   - URLs containing "://" (e.g., https://, git://, file://)
//   - URLs ending with ".git"
//   - SSH-style URLs starting with "git@"
func IsURL(s string) bool {
	if strings.Contains(s, "://") {
		return true
	}
	if strings.HasSuffix(s, ".git") {
		return true
	}
	if strings.HasPrefix(s, "git@") {
		return true
	}
	return false
}

// CloneOptions control how Clone fetches a repository.
type CloneOptions struct {
	// Depth limits history; 0 means a full clone.
	Depth int
	// RecurseSubmodules also checks out submodules, for alias
	// collections that vendor definitions from other repositories.
	RecurseSubmodules bool
}

// Clone clones a git repository from url to dest. Output is streamed to
// os.Stdout and os.Stderr, and stdin is connected to os.Stdin to support
// interactive authentication (SSH passphrase, credentials).
func Clone(url, dest string, opts CloneOptions) error {
	args := []string{"clone"}
	if opts.Depth > 0 {
		args = append(args, fmt.Sprintf("--depth=%d", opts.Depth))
	}
	if opts.RecurseSubmodules {
		args = append(args, "--recurse-submodules")
	}
	args = append(args, url, dest)

	cmd := exec.Command("git", args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return errors.Wrap(err, "git clone failed")
	}
	return nil
}

// Checkout switches the repository at dir to the given ref.
func Checkout(dir, ref string) error {
	cmd := exec.Command("git", "-C", dir, "checkout", ref)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return errors.Wrapf(err, "git checkout %s failed", ref)
	}
	return nil
}
