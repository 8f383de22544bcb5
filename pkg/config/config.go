// Package config resolves the options for one run: embedded defaults, an
// optional project config file, and environment overrides, in that order.
// CLI flags are merged on top by the command layer and win on collision.
package config

import (
	_ "embed"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// Config is the flat mapping of recognized settings. It is resolved once
// per run and immutable afterwards.
type Config struct {
	// RulesDir is the rule document source directory
	RulesDir string `koanf:"rules_dir" toml:"rules_dir"`

	// FilePattern selects rule documents relative to RulesDir
	FilePattern string `koanf:"file_pattern" toml:"file_pattern"`

	// OutputDir is the base directory provider outputs are derived from
	OutputDir string `koanf:"output_dir" toml:"output_dir"`

	// Providers is the provider id allow-list; empty selects all built-ins
	Providers []string `koanf:"providers" toml:"providers"`

	// DryRun reports the plan without invoking providers
	DryRun bool `koanf:"dry_run" toml:"dry_run"`

	// Verbose promotes per-rule progress reporting
	Verbose bool `koanf:"verbose" toml:"verbose"`

	// Quiet suppresses everything but errors
	Quiet bool `koanf:"quiet" toml:"quiet"`
}

// Default returns the built-in configuration values
func Default() Config {
	return Config{
		RulesDir:    "rules",
		FilePattern: "*.md",
		OutputDir:   ".",
		Providers:   []string{},
	}
}
