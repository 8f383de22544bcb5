package style

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pterm/pterm"
)

// ProviderInfo is the renderer-facing view of an active provider
type ProviderInfo struct {
	ID         string
	OutputPath string
}

// Renderer defines the interface for rendering rulecast output
type Renderer interface {
	RenderPlan(rulesDir string, files []string, providers []ProviderInfo) string
	RenderSummary(fileCount int, handled map[string]int) string
	RenderProviderList(providers []ProviderInfo) string
	RenderRuleList(files []string) string
	RenderNotice(msg string) string
	RenderError(err error) string
}

// TerminalRenderer implements Renderer with rich terminal output
type TerminalRenderer struct{}

// NewTerminalRenderer creates a new terminal renderer
func NewTerminalRenderer() *TerminalRenderer {
	return &TerminalRenderer{}
}

// RenderPlan renders the dry-run plan: what would be read and what each
// provider would write
func (r *TerminalRenderer) RenderPlan(rulesDir string, files []string, providers []ProviderInfo) string {
	var result strings.Builder
	result.WriteString(TitleStyle.Render("Dry run") + "\n\n")

	result.WriteString(fmt.Sprintf("%s %d rule document(s) in %s\n",
		pterm.Info.Prefix.Text, len(files), PathStyle.Render(rulesDir)))
	for _, f := range files {
		result.WriteString("  " + MutedStyle.Render(f) + "\n")
	}

	result.WriteString("\n")
	result.WriteString(fmt.Sprintf("%s %d provider(s) would run\n", pterm.Info.Prefix.Text, len(providers)))
	for _, p := range providers {
		result.WriteString(fmt.Sprintf("  %s %s %s\n",
			ProviderStyle.Render(p.ID), MutedStyle.Render("→"), PathStyle.Render(p.OutputPath)))
	}

	result.WriteString("\n" + MutedStyle.Render("No files were written."))
	return result.String()
}

// RenderSummary renders the completion notice for a real run
func (r *TerminalRenderer) RenderSummary(fileCount int, handled map[string]int) string {
	var result strings.Builder
	result.WriteString(SuccessStyle.Render(fmt.Sprintf("Processed %d rule document(s)", fileCount)) + "\n")

	ids := make([]string, 0, len(handled))
	for id := range handled {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		result.WriteString(fmt.Sprintf("  %s: %d rule(s)\n", ProviderStyle.Render(id), handled[id]))
	}

	return strings.TrimRight(result.String(), "\n")
}

// RenderProviderList renders the known providers
func (r *TerminalRenderer) RenderProviderList(providers []ProviderInfo) string {
	if len(providers) == 0 {
		return MutedStyle.Render("No providers available")
	}

	var result strings.Builder
	result.WriteString(TitleStyle.Render("Providers") + "\n\n")
	for _, p := range providers {
		result.WriteString(fmt.Sprintf("  %s %s %s\n",
			ProviderStyle.Render(p.ID), MutedStyle.Render("→"), PathStyle.Render(p.OutputPath)))
	}
	return strings.TrimRight(result.String(), "\n")
}

// RenderRuleList renders discovered rule documents
func (r *TerminalRenderer) RenderRuleList(files []string) string {
	if len(files) == 0 {
		return MutedStyle.Render("No rule documents found")
	}

	var result strings.Builder
	result.WriteString(TitleStyle.Render("Rule documents") + "\n\n")
	for _, f := range files {
		result.WriteString("  " + PathStyle.Render(f) + "\n")
	}
	return strings.TrimRight(result.String(), "\n")
}

// RenderNotice renders an informational one-liner
func (r *TerminalRenderer) RenderNotice(msg string) string {
	return fmt.Sprintf("%s %s", pterm.Info.Prefix.Text, msg)
}

// RenderError renders an error message. RulecastError messages already
// carry their code, so no special casing is needed here.
func (r *TerminalRenderer) RenderError(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("%s %s", pterm.Error.Prefix.Text, pterm.Error.MessageStyle.Sprint(err.Error()))
}

// PlainRenderer implements Renderer with plain text output (no styling)
type PlainRenderer struct{}

// NewPlainRenderer creates a new plain text renderer
func NewPlainRenderer() *PlainRenderer {
	return &PlainRenderer{}
}

// RenderPlan renders a plain dry-run plan
func (r *PlainRenderer) RenderPlan(rulesDir string, files []string, providers []ProviderInfo) string {
	var result strings.Builder
	result.WriteString(fmt.Sprintf("Dry run: %d rule document(s) in %s\n", len(files), rulesDir))
	for _, f := range files {
		result.WriteString("  " + f + "\n")
	}
	result.WriteString(fmt.Sprintf("%d provider(s) would run:\n", len(providers)))
	for _, p := range providers {
		result.WriteString(fmt.Sprintf("  %s -> %s\n", p.ID, p.OutputPath))
	}
	result.WriteString("No files were written.")
	return result.String()
}

// RenderSummary renders a plain completion notice
func (r *PlainRenderer) RenderSummary(fileCount int, handled map[string]int) string {
	var result strings.Builder
	result.WriteString(fmt.Sprintf("Processed %d rule document(s)\n", fileCount))

	ids := make([]string, 0, len(handled))
	for id := range handled {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		result.WriteString(fmt.Sprintf("  %s: %d rule(s)\n", id, handled[id]))
	}
	return strings.TrimRight(result.String(), "\n")
}

// RenderProviderList renders a plain provider list
func (r *PlainRenderer) RenderProviderList(providers []ProviderInfo) string {
	if len(providers) == 0 {
		return "No providers available"
	}
	var result strings.Builder
	for _, p := range providers {
		result.WriteString(fmt.Sprintf("%s -> %s\n", p.ID, p.OutputPath))
	}
	return strings.TrimRight(result.String(), "\n")
}

// RenderRuleList renders a plain rule list
func (r *PlainRenderer) RenderRuleList(files []string) string {
	if len(files) == 0 {
		return "No rule documents found"
	}
	return strings.Join(files, "\n")
}

// RenderNotice renders a plain informational line
func (r *PlainRenderer) RenderNotice(msg string) string {
	return msg
}

// RenderError renders a plain error message
func (r *PlainRenderer) RenderError(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %s", err.Error())
}
