package store

import "github.com/thoreinstein/git-alias/internal/errors"

// Scope selects which git configuration file a GitConfig store operates on.
// The values correspond to git config's --system, --global, --local, and
// --worktree options; ScopeFile addresses an arbitrary file via --file.
type Scope int

const (
	// ScopeGlobal targets the user's configuration (~/.gitconfig).
	ScopeGlobal Scope = iota
	// ScopeSystem targets the system configuration (/etc/gitconfig).
	ScopeSystem
	// ScopeLocal targets the repository configuration (.git/config).
	ScopeLocal
	// ScopeWorktree targets the worktree configuration (.git/config.worktree).
	ScopeWorktree
	// ScopeFile targets a named configuration file.
	ScopeFile
)

// String returns the scope name as used in configuration and flag help.
func (s Scope) String() string {
	switch s {
	case ScopeGlobal:
		return "global"
	case ScopeSystem:
		return "system"
	case ScopeLocal:
		return "local"
	case ScopeWorktree:
		return "worktree"
	case ScopeFile:
		return "file"
	default:
		return "unknown"
	}
}

// ParseScope converts a scope name to its Scope value.
// ScopeFile is not parseable by name; it is selected by providing a path.
func ParseScope(name string) (Scope, error) {
	switch name {
	case "global":
		return ScopeGlobal, nil
	case "system":
		return ScopeSystem, nil
	case "local":
		return ScopeLocal, nil
	case "worktree":
		return ScopeWorktree, nil
	default:
		return 0, errors.WithDetailf(errors.ErrInvalidConfig,
			"unknown scope %q (valid: system, global, local, worktree)", name)
	}
}

// flag returns the git config command line option selecting the scope.
// ScopeFile is handled separately because it carries a path argument.
func (s Scope) flag() string {
	switch s {
	case ScopeSystem:
		return "--system"
	case ScopeLocal:
		return "--local"
	case ScopeWorktree:
		return "--worktree"
	default:
		return "--global"
	}
}
