package store

import (
	"bytes"
	"log/slog"
	"os/exec"
	"strings"

	"github.com/thoreinstein/git-alias/internal/errors"
)

// git config exit codes, from git-config(1).
const (
	// exitNoValue: the requested section or key was not found.
	exitNoValue = 1
	// exitUnsetMissing: --unset was given for an option that does not exist.
	exitUnsetMissing = 5
)

// GitConfig is a Store backed by git's configuration, manipulated by
// shelling out to `git config`. Quoting and escaping of stored values is
// delegated entirely to git's own config writer, so bodies round-trip
// exactly regardless of embedded quotes.
type GitConfig struct {
	scope Scope
	file  string
}

// NewGitConfig creates a store operating on the given configuration scope.
func NewGitConfig(scope Scope) *GitConfig {
	return &GitConfig{scope: scope}
}

// NewGitConfigFile creates a store operating on the named configuration file.
// The file is created by git on the first write.
func NewGitConfigFile(path string) *GitConfig {
	return &GitConfig{scope: ScopeFile, file: path}
}

// Scope returns the configuration scope the store operates on.
func (s *GitConfig) Scope() Scope {
	return s.scope
}

// List returns all alias names in the store's scope, in the order git
// reports them. A scope whose configuration file does not exist yet
// lists as empty rather than failing.
func (s *GitConfig) List() ([]string, error) {
	out, err := s.run("--list", "--name-only")
	if err != nil {
		if isMissingConfigFile(err) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "listing aliases")
	}

	var names []string
	for _, line := range strings.Split(out, "\n") {
		if name, ok := strings.CutPrefix(line, Section+"."); ok {
			names = append(names, name)
		}
	}
	return names, nil
}

// Get returns the command body stored under name.
func (s *GitConfig) Get(name string) (string, error) {
	out, err := s.run("--get", s.key(name))
	if err != nil {
		if exitCode(err) == exitNoValue || isMissingConfigFile(err) {
			return "", errors.WithDetailf(errors.ErrNotFound, "alias %q is not installed", name)
		}
		return "", errors.Wrapf(err, "reading alias %q", name)
	}
	return strings.TrimRight(out, "\n"), nil
}

// Set writes body under name. A single `git config` invocation assigns
// the key, so the write is as atomic as the backend makes it.
func (s *GitConfig) Set(name, body string, overwrite bool) error {
	if !overwrite {
		if _, err := s.Get(name); err == nil {
			return errors.WithDetailf(errors.ErrConflict,
				"alias %q already exists; use --force to overwrite", name)
		} else if !errors.Is(err, errors.ErrNotFound) {
			return err
		}
	}

	if _, err := s.run(s.key(name), body); err != nil {
		return errors.Wrapf(err, "writing alias %q", name)
	}
	return nil
}

// Remove deletes the alias entry for name.
func (s *GitConfig) Remove(name string) error {
	if _, err := s.run("--unset", s.key(name)); err != nil {
		if exitCode(err) == exitUnsetMissing || isMissingConfigFile(err) {
			return errors.WithDetailf(errors.ErrNotFound, "alias %q is not installed", name)
		}
		return errors.Wrapf(err, "removing alias %q", name)
	}
	return nil
}

func (s *GitConfig) key(name string) string {
	return Section + "." + name
}

// run invokes `git --no-pager config` with the store's scope arguments
// followed by args, returning captured stdout.
func (s *GitConfig) run(args ...string) (string, error) {
	argv := []string{"--no-pager", "config"}
	if s.scope == ScopeFile {
		argv = append(argv, "--file", s.file)
	} else {
		argv = append(argv, s.scope.flag())
	}
	argv = append(argv, args...)

	slog.Debug("running git config", "args", strings.Join(args, " "), "scope", s.scope.String())

	cmd := exec.Command("git", argv...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", &gitConfigError{
			err:    err,
			stderr: strings.TrimSpace(stderr.String()),
		}
	}
	return stdout.String(), nil
}

// gitConfigError preserves the subprocess exit status and stderr so
// callers can distinguish "key missing" from real failures.
type gitConfigError struct {
	err    error
	stderr string
}

func (e *gitConfigError) Error() string {
	if e.stderr != "" {
		return "git config: " + e.stderr
	}
	return "git config: " + e.err.Error()
}

func (e *gitConfigError) Unwrap() error {
	return e.err
}

// exitCode returns the subprocess exit code buried in err, or -1.
func exitCode(err error) int {
	var gitErr *gitConfigError
	if !errors.As(err, &gitErr) {
		return -1
	}
	var exitErr *exec.ExitError
	if !errors.As(gitErr.err, &exitErr) {
		return -1
	}
	return exitErr.ExitCode()
}

// isMissingConfigFile reports whether err is git complaining that the
// scoped configuration file does not exist, e.g. a fresh machine with no
// ~/.gitconfig or a --file path that was never written.
func isMissingConfigFile(err error) bool {
	var gitErr *gitConfigError
	if !errors.As(err, &gitErr) {
		return false
	}
	return strings.Contains(gitErr.stderr, "unable to read config file")
}
