package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/rulecast/pkg/errors"
	"github.com/arthur-debert/rulecast/pkg/rules"
)

func TestParse(t *testing.T) {
	t.Run("with_front_matter", func(t *testing.T) {
		raw := []byte("---\ntitle: Style Guide\nglobs: \"**/*.go\"\nalwaysApply: true\n---\n\nUse tabs.\n")

		rule, err := rules.Parse("style.md", raw)
		require.NoError(t, err)

		assert.Equal(t, "style.md", rule.Filename)
		assert.Equal(t, "Style Guide", rule.FrontMatter["title"])
		assert.Equal(t, "**/*.go", rule.FrontMatter["globs"])
		assert.Equal(t, true, rule.FrontMatter["alwaysApply"])
		assert.Equal(t, "\nUse tabs.\n", rule.Content)
	})

	t.Run("without_front_matter", func(t *testing.T) {
		rule, err := rules.Parse("plain.md", []byte("Just a body.\n"))
		require.NoError(t, err)

		assert.NotNil(t, rule.FrontMatter)
		assert.Empty(t, rule.FrontMatter)
		assert.Equal(t, "Just a body.\n", rule.Content)
	})

	t.Run("nested_provider_block", func(t *testing.T) {
		raw := []byte("---\ntitle: Top\ncursor:\n  title: Cursor Title\n---\nbody\n")

		rule, err := rules.Parse("nested.md", raw)
		require.NoError(t, err)

		block, ok := rule.FrontMatter["cursor"].(map[string]any)
		require.True(t, ok, "provider block should decode as a map")
		assert.Equal(t, "Cursor Title", block["title"])
	})

	t.Run("nested_mappings_normalized_recursively", func(t *testing.T) {
		raw := []byte("---\nclaude:\n  meta:\n    owner: infra\n  tags:\n    - a: 1\n---\nbody\n")

		rule, err := rules.Parse("deep.md", raw)
		require.NoError(t, err)

		block, ok := rule.FrontMatter["claude"].(map[string]any)
		require.True(t, ok)

		meta, ok := block["meta"].(map[string]any)
		require.True(t, ok, "second-level mapping should decode as a map")
		assert.Equal(t, "infra", meta["owner"])

		tags, ok := block["tags"].([]any)
		require.True(t, ok)
		_, ok = tags[0].(map[string]any)
		assert.True(t, ok, "mappings inside sequences should decode as maps")
	})

	t.Run("malformed_front_matter", func(t *testing.T) {
		raw := []byte("---\ntitle: [unclosed\n---\nbody\n")

		_, err := rules.Parse("broken.md", raw)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrRuleParse))
	})
}
