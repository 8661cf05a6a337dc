// Package config provides tool configuration for git-alias using Viper.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/thoreinstein/git-alias/internal/paths"
)

// AppName is the application name used for config file naming and the
// environment variable prefix.
const AppName = "git-alias"

// Config represents the top-level configuration structure.
type Config struct {
	// Scope is the git config scope used when no scope flag is given:
	// system, global, local, or worktree.
	Scope string `mapstructure:"scope" toml:"scope"`

	Clone CloneConfig `mapstructure:"clone" toml:"clone"`
}

// CloneConfig controls how remote alias repositories are fetched.
type CloneConfig struct {
	// Depth limits clone history; 0 disables the limit.
	Depth int `mapstructure:"depth" toml:"depth"`

	// RecurseSubmodules also checks out submodules of alias repositories.
	RecurseSubmodules bool `mapstructure:"recurse_submodules" toml:"recurse_submodules"`
}

// Default returns the built-in configuration used when no file exists.
func Default() *Config {
	return &Config{
		Scope: "global",
		Clone: CloneConfig{
			Depth:             1,
			RecurseSubmodules: true,
		},
	}
}

// Init initializes Viper with default configuration.
// Call this once at application startup before accessing config values.
func Init() {
	viper.SetConfigName("config")
	viper.SetConfigType("toml")

	// Search paths (in order of precedence)
	viper.AddConfigPath(".")
	viper.AddConfigPath(paths.ConfigDir())

	// Environment variable support: GIT_ALIAS_SCOPE, GIT_ALIAS_CLONE_DEPTH etc.
	viper.SetEnvPrefix("GIT_ALIAS")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	def := Default()
	viper.SetDefault("scope", def.Scope)
	viper.SetDefault("clone.depth", def.Clone.Depth)
	viper.SetDefault("clone.recurse_submodules", def.Clone.RecurseSubmodules)
}

// Load reads the configuration file.
// If path is provided, it reads from that specific file.
// If path is empty, it searches in the default locations.
// Returns the loaded configuration or default values if no file is found (when path is empty).
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// If the user asked for a specific file, its absence is an error;
			// an implicit load just falls back to defaults.
			if path != "" {
				return nil, fmt.Errorf("config file not found at %s: %w", path, err)
			}
		} else {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}
