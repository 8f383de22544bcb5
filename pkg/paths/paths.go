// Package paths provides centralized path handling for rulecast.
// It implements XDG Base Directory specification compliance for the
// locations rulecast owns (config file, log file) and resolves the
// rules root from the usual sources.
package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// Environment variable names
const (
	// EnvRulesDir overrides the rules source directory
	EnvRulesDir = "RULECAST_RULES_DIR"

	// EnvOutputDir overrides the output base directory
	EnvOutputDir = "RULECAST_OUTPUT_DIR"

	// EnvDebug enables full error detail on failure
	EnvDebug = "RULECAST_DEBUG"
)

// Default directories and files
const (
	// DefaultRulesDir is the default directory name for rule documents
	DefaultRulesDir = "rules"

	// ConfigFileName is the name of the project configuration file
	ConfigFileName = "rulecast.toml"

	// HiddenConfigFileName is the dotted variant of the configuration file
	HiddenConfigFileName = ".rulecast.toml"

	// LogFileName is the name of the log file
	LogFileName = "rulecast.log"
)

// LogFilePath returns the path to the log file under the XDG state
// directory, falling back to the working directory when the state home
// cannot be resolved.
func LogFilePath() string {
	path, err := xdg.StateFile(filepath.Join("rulecast", LogFileName))
	if err != nil {
		return LogFileName
	}
	return path
}

// UserConfigFilePath returns the per-user configuration file location.
func UserConfigFilePath() string {
	path, err := xdg.ConfigFile(filepath.Join("rulecast", ConfigFileName))
	if err != nil {
		return ""
	}
	return path
}

// ProjectConfigFile returns the first project-level config file that
// exists under root, or empty string when none is present.
func ProjectConfigFile(root string) string {
	for _, name := range []string{HiddenConfigFileName, ConfigFileName} {
		path := filepath.Join(root, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
