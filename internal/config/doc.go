// Package config loads and validates the git-alias tool configuration.
//
// Configuration lives in $XDG_CONFIG_HOME/git-alias/config.toml and can
// be overridden through GIT_ALIAS_* environment variables. It holds the
// default git config scope for alias storage and the clone behavior for
// remote alias repositories; everything has a sensible built-in default,
// so running without a config file is the common case.
package config
