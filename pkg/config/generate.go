package config

import (
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/rulecast/pkg/errors"
)

// GenerateConfigContent renders the default configuration as a TOML file
// with every value commented out, ready for a user to uncomment and edit.
func GenerateConfigContent() (string, error) {
	defaults := Default()
	raw, err := toml.Marshal(defaults)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to render default config")
	}

	header := "# rulecast configuration\n# Uncomment values to override the defaults.\n\n"
	return header + commentOutConfigValues(string(raw)), nil
}

// commentOutConfigValues comments out all non-comment, non-blank assignment
// lines, keeping section headers readable
func commentOutConfigValues(content string) string {
	lines := strings.Split(content, "\n")
	var result []string

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			result = append(result, line)
			continue
		}

		if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
			result = append(result, line)
			continue
		}

		result = append(result, "# "+line)
	}

	return strings.Join(result, "\n")
}
