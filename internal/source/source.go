// Package source resolves alias definitions to readable local files.
//
// A definition comes either from a path on disk or from a file inside a
// remote repository. The remote case clones into a fresh temporary
// directory whose lifetime is handed back to the caller as a cleanup
// function, so the checkout survives exactly as long as the parse and
// install that follow it.
package source

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/thoreinstein/git-alias/internal/errors"
	"github.com/thoreinstein/git-alias/internal/git"
)

// Kind tags the two variants of Source.
type Kind int

const (
	// KindLocal is a path on the local filesystem.
	KindLocal Kind = iota
	// KindRemote is a path inside a repository to be cloned.
	KindRemote
)

// Source identifies where an alias definition lives.
type Source struct {
	Kind Kind

	// Path is the definition file: an absolute or relative filesystem
	// path for KindLocal, or a path relative to the checkout root for
	// KindRemote.
	Path string

	// URL is the repository to clone. KindRemote only.
	URL string

	// Ref is an optional ref to check out after cloning. KindRemote only.
	Ref string
}

// Local creates a Source for a file on disk.
func Local(path string) Source {
	return Source{Kind: KindLocal, Path: path}
}

// Remote creates a Source for a file inside the repository at url.
// ref may be empty to use the repository's default branch.
func Remote(url, path, ref string) Source {
	return Source{Kind: KindRemote, URL: url, Path: path, Ref: ref}
}

// Resolver resolves Sources. The zero value performs full clones without
// submodules; commands populate it from the tool configuration.
type Resolver struct {
	// Clone controls how remote repositories are fetched.
	Clone git.CloneOptions
}

// Resolve produces a readable local file path for src. The returned
// cleanup function is never nil and must be called once the file has
// been consumed; for remote sources it removes the temporary checkout,
// so callers defer it immediately to cover parse and store failures too.
// Each remote resolution performs a fresh clone; nothing is cached.
func (r *Resolver) Resolve(src Source) (string, func(), error) {
	switch src.Kind {
	case KindRemote:
		return r.resolveRemote(src)
	default:
		return resolveLocal(src.Path)
	}
}

func resolveLocal(path string) (string, func(), error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return "", noop, errors.WithDetailf(errors.ErrNotFound, "alias file %s does not exist", path)
		}
		return "", noop, errors.Wrapf(err, "accessing alias file %s", path)
	}
	return path, noop, nil
}

func (r *Resolver) resolveRemote(src Source) (string, func(), error) {
	tmpDir, err := os.MkdirTemp("", "git-alias-*")
	if err != nil {
		return "", noop, errors.Wrap(err, "creating temporary directory")
	}
	cleanup := func() {
		if err := os.RemoveAll(tmpDir); err != nil {
			slog.Warn("failed to clean up temporary checkout", "dir", tmpDir, "error", err)
		}
	}

	opts := r.Clone
	if src.Ref != "" {
		// A pinned ref may not be reachable in a shallow history.
		opts.Depth = 0
	}

	slog.Info("cloning repository", "url", src.URL)
	if err := git.Clone(src.URL, tmpDir, opts); err != nil {
		cleanup()
		return "", noop, errors.Wrapf(errors.ErrFetchFailed, "cloning %s: %v", src.URL, err)
	}

	if src.Ref != "" {
		slog.Info("checking out ref", "ref", src.Ref)
		if err := git.Checkout(tmpDir, src.Ref); err != nil {
			cleanup()
			return "", noop, errors.Wrapf(errors.ErrFetchFailed, "checking out %s: %v", src.Ref, err)
		}
	}

	resolved := filepath.Join(tmpDir, src.Path)
	if _, err := os.Stat(resolved); err != nil {
		cleanup()
		if os.IsNotExist(err) {
			return "", noop, errors.WithDetailf(errors.ErrNotFound,
				"%s does not exist in %s", src.Path, src.URL)
		}
		return "", noop, errors.Wrapf(err, "accessing %s in checkout", src.Path)
	}

	return resolved, cleanup, nil
}

func noop() {}
