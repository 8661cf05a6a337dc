package config

import (
	"github.com/thoreinstein/git-alias/internal/errors"
	"github.com/thoreinstein/git-alias/internal/store"
)

// Validate checks a Config for validity.
// Returns nil if valid, or a slice of validation errors.
func Validate(cfg *Config) []error {
	if cfg == nil {
		return []error{errors.New("config is nil")}
	}

	var errs []error

	if _, err := store.ParseScope(cfg.Scope); err != nil {
		errs = append(errs, err)
	}

	if cfg.Clone.Depth < 0 {
		errs = append(errs, errors.WithDetailf(errors.ErrInvalidConfig,
			"clone.depth must be >= 0, got %d", cfg.Clone.Depth))
	}

	return errs
}
