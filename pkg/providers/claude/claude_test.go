package claude_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/rulecast/pkg/filesystem"
	"github.com/arthur-debert/rulecast/pkg/providers"
	"github.com/arthur-debert/rulecast/pkg/providers/claude"
	"github.com/arthur-debert/rulecast/pkg/rules"
)

func newProvider(t *testing.T) (*claude.Provider, string) {
	t.Helper()
	out := t.TempDir()
	return claude.New(providers.Options{OutputDir: out, FS: filesystem.NewOS()}), out
}

func TestProvider_Identity(t *testing.T) {
	p, out := newProvider(t)
	assert.Equal(t, "claude", p.ID())
	assert.Equal(t, filepath.Join(out, "CLAUDE.md"), p.OutputPath())
}

func TestProvider_InitRemovesStaleOutput(t *testing.T) {
	p, _ := newProvider(t)
	require.NoError(t, os.WriteFile(p.OutputPath(), []byte("stale"), 0644))

	require.NoError(t, p.Init())

	_, err := os.Stat(p.OutputPath())
	assert.True(t, os.IsNotExist(err))

	// Init on an already-clean target is fine too
	require.NoError(t, p.Init())
}

func TestProvider_Aggregate(t *testing.T) {
	t.Run("sections_with_title_priority", func(t *testing.T) {
		p, _ := newProvider(t)
		require.NoError(t, p.Init())

		require.NoError(t, p.Handle(&rules.RuleFile{
			Filename:    "a.md",
			FrontMatter: map[string]any{"title": "Alpha"},
			Content:     "Content A\n",
		}))
		require.NoError(t, p.Handle(&rules.RuleFile{
			Filename:    "b.md",
			FrontMatter: map[string]any{"description": "Beta description"},
			Content:     "Content B\n",
		}))
		require.NoError(t, p.Handle(&rules.RuleFile{
			Filename:    "c.md",
			FrontMatter: map[string]any{},
			Content:     "Content C\n",
		}))
		require.NoError(t, p.Finish())

		raw, err := os.ReadFile(p.OutputPath())
		require.NoError(t, err)

		want := "## Alpha\n\nContent A\n\n" +
			"## Beta description\n\nContent B\n\n" +
			"## Untitled\n\nContent C\n"
		assert.Equal(t, want, string(raw))
	})

	t.Run("override_title_wins", func(t *testing.T) {
		p, _ := newProvider(t)
		require.NoError(t, p.Init())

		require.NoError(t, p.Handle(&rules.RuleFile{
			Filename: "a.md",
			FrontMatter: map[string]any{
				"title":  "Top",
				"claude": map[string]any{"title": "For Claude"},
			},
			Content: "body",
		}))
		require.NoError(t, p.Finish())

		raw, err := os.ReadFile(p.OutputPath())
		require.NoError(t, err)
		assert.Contains(t, string(raw), "## For Claude\n")
	})

	t.Run("empty_run_writes_single_newline", func(t *testing.T) {
		p, _ := newProvider(t)
		require.NoError(t, p.Init())
		require.NoError(t, p.Finish())

		raw, err := os.ReadFile(p.OutputPath())
		require.NoError(t, err)
		assert.Equal(t, "\n", string(raw))
	})
}
