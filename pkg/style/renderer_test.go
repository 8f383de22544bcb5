package style_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arthur-debert/rulecast/pkg/errors"
	"github.com/arthur-debert/rulecast/pkg/style"
)

func providers() []style.ProviderInfo {
	return []style.ProviderInfo{
		{ID: "claude", OutputPath: "CLAUDE.md"},
		{ID: "cursor", OutputPath: ".cursor/rules"},
	}
}

func TestPlainRenderer_Plan(t *testing.T) {
	r := style.NewPlainRenderer()
	out := r.RenderPlan("rules", []string{"a.md", "b.md"}, providers())

	assert.Contains(t, out, "Dry run: 2 rule document(s) in rules")
	assert.Contains(t, out, "a.md")
	assert.Contains(t, out, "b.md")
	assert.Contains(t, out, "claude -> CLAUDE.md")
	assert.Contains(t, out, "cursor -> .cursor/rules")
	assert.Contains(t, out, "No files were written.")
}

func TestPlainRenderer_Summary(t *testing.T) {
	r := style.NewPlainRenderer()
	out := r.RenderSummary(3, map[string]int{"cursor": 3, "claude": 2})

	assert.Contains(t, out, "Processed 3 rule document(s)")
	assert.Contains(t, out, "claude: 2 rule(s)")
	assert.Contains(t, out, "cursor: 3 rule(s)")
	// Deterministic ordering by provider id
	assert.Less(t, strings.Index(out, "claude"), strings.Index(out, "cursor"))
}

func TestPlainRenderer_Lists(t *testing.T) {
	r := style.NewPlainRenderer()

	assert.Equal(t, "No providers available", r.RenderProviderList(nil))
	assert.Equal(t, "No rule documents found", r.RenderRuleList(nil))
	assert.Equal(t, "a.md\nsub/b.md", r.RenderRuleList([]string{"a.md", "sub/b.md"}))
}

func TestPlainRenderer_Error(t *testing.T) {
	r := style.NewPlainRenderer()

	assert.Empty(t, r.RenderError(nil))

	err := errors.New(errors.ErrRulesDirNotFound, "rules directory does not exist")
	out := r.RenderError(err)
	assert.Contains(t, out, "RULES_DIR_NOT_FOUND")
	assert.Contains(t, out, "rules directory does not exist")
}

func TestTerminalRenderer_CarriesContent(t *testing.T) {
	r := style.NewTerminalRenderer()

	plan := r.RenderPlan("rules", []string{"a.md"}, providers())
	assert.Contains(t, plan, "a.md")
	assert.Contains(t, plan, "claude")
	assert.Contains(t, plan, "CLAUDE.md")

	summary := r.RenderSummary(1, map[string]int{"cursor": 1})
	assert.Contains(t, summary, "1 rule document(s)")
	assert.Contains(t, summary, "cursor")

	assert.Empty(t, r.RenderError(nil))
	assert.Contains(t, r.RenderError(errors.New(errors.ErrInternal, "boom")), "boom")
}
