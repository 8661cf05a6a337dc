package commands

import (
	"github.com/thoreinstein/git-alias/internal/config"
	"github.com/thoreinstein/git-alias/internal/errors"
	"github.com/thoreinstein/git-alias/internal/git"
	"github.com/thoreinstein/git-alias/internal/source"
	"github.com/thoreinstein/git-alias/internal/store"
)

// resolveStore picks the git config scope from the scope flags, falling
// back to the configured default when none is set.
func resolveStore() (store.Store, error) {
	var scopes []store.Scope
	if scopeSystem {
		scopes = append(scopes, store.ScopeSystem)
	}
	if scopeGlobal {
		scopes = append(scopes, store.ScopeGlobal)
	}
	if scopeLocal {
		scopes = append(scopes, store.ScopeLocal)
	}
	if scopeWorktree {
		scopes = append(scopes, store.ScopeWorktree)
	}
	if scopeFileFlag != "" {
		scopes = append(scopes, store.ScopeFile)
	}

	if len(scopes) > 1 {
		return nil, errors.NewUserError(
			errors.New("conflicting scope flags"),
			"use at most one of --system, --global, --local, --worktree, --file")
	}

	if len(scopes) == 0 {
		scope, err := store.ParseScope(currentConfig().Scope)
		if err != nil {
			return nil, errors.NewConfigError(err)
		}
		return store.NewGitConfig(scope), nil
	}

	if scopes[0] == store.ScopeFile {
		return store.NewGitConfigFile(scopeFileFlag), nil
	}
	return store.NewGitConfig(scopes[0]), nil
}

// newResolver builds a source resolver from the clone settings.
func newResolver() *source.Resolver {
	c := currentConfig().Clone
	return &source.Resolver{
		Clone: git.CloneOptions{
			Depth:             c.Depth,
			RecurseSubmodules: c.RecurseSubmodules,
		},
	}
}

// currentConfig returns the loaded configuration, or defaults when
// nothing was loaded (e.g. in tests that bypass cobra initialization).
func currentConfig() *config.Config {
	if cfg == nil {
		return config.Default()
	}
	return cfg
}

// truncate shortens a string to maxLen characters, adding "..." if truncated.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
