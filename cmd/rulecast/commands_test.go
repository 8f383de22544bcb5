package rulecast

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/rulecast/pkg/paths"
)

// runCommand executes the CLI against args inside dir and captures stdout
func runCommand(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	if args == nil {
		args = []string{}
	}

	var out bytes.Buffer
	rootCmd := NewRootCmd()
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)

	execErr := rootCmd.Execute()
	return out.String(), execErr
}

func writeRule(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestGenerateCmd_WritesOutputs(t *testing.T) {
	root := t.TempDir()
	rulesDir := filepath.Join(root, "rules")
	writeRule(t, rulesDir, "a.md", "---\ntitle: Alpha\n---\n\nAlpha body\n")

	_, err := runCommand(t, root, "generate", "--format", "text")
	require.NoError(t, err)

	claude, err := os.ReadFile(filepath.Join(root, "CLAUDE.md"))
	require.NoError(t, err)
	assert.Equal(t, "## Alpha\n\nAlpha body\n", string(claude))

	cursor, err := os.ReadFile(filepath.Join(root, ".cursor", "rules", "a.mdc"))
	require.NoError(t, err)
	assert.Contains(t, string(cursor), "Alpha body")
}

func TestGenerateCmd_DryRunWritesNothing(t *testing.T) {
	root := t.TempDir()
	rulesDir := filepath.Join(root, "rules")
	writeRule(t, rulesDir, "a.md", "---\ntitle: Alpha\n---\n\nAlpha body\n")

	out, err := runCommand(t, root, "generate", "--dry-run", "--format", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "No files were written.")
	assert.Contains(t, out, "a.md")

	_, statErr := os.Stat(filepath.Join(root, "CLAUDE.md"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestGenerateCmd_ProviderSubset(t *testing.T) {
	root := t.TempDir()
	rulesDir := filepath.Join(root, "rules")
	writeRule(t, rulesDir, "a.md", "Body only\n")

	_, err := runCommand(t, root, "generate", "--providers", "cline", "--format", "text")
	require.NoError(t, err)

	mirrored, err := os.ReadFile(filepath.Join(root, ".clinerules", "a.md"))
	require.NoError(t, err)
	assert.Equal(t, "Body only\n", string(mirrored))

	_, statErr := os.Stat(filepath.Join(root, "CLAUDE.md"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestGenerateCmd_UnknownProvider(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "rules"), 0755))

	_, err := runCommand(t, root, "generate", "--providers", "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope")
}

func TestGenerateCmd_MissingRulesDir(t *testing.T) {
	root := t.TempDir()

	_, err := runCommand(t, root, "generate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")
}

func TestGenerateCmd_JSONFormat(t *testing.T) {
	root := t.TempDir()
	rulesDir := filepath.Join(root, "rules")
	writeRule(t, rulesDir, "a.md", "Body\n")

	out, err := runCommand(t, root, "generate", "--dry-run", "--format", "json")
	require.NoError(t, err)

	var report struct {
		Files  []string `json:"files"`
		DryRun bool     `json:"dry_run"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.True(t, report.DryRun)
	assert.Equal(t, []string{"a.md"}, report.Files)
}

func TestListProvidersCmd(t *testing.T) {
	root := t.TempDir()

	out, err := runCommand(t, root, "list", "providers", "--format", "json")
	require.NoError(t, err)

	var infos []struct {
		ID         string
		OutputPath string
	}
	require.NoError(t, json.Unmarshal([]byte(out), &infos))

	ids := make([]string, 0, len(infos))
	for _, info := range infos {
		ids = append(ids, info.ID)
	}
	assert.Equal(t, []string{"claude", "cline", "copilot", "cursor", "windsurf"}, ids)
}

func TestListRulesCmd(t *testing.T) {
	root := t.TempDir()
	rulesDir := filepath.Join(root, "rules")
	writeRule(t, rulesDir, "a.md", "A\n")
	writeRule(t, rulesDir, "sub/b.md", "B\n")

	out, err := runCommand(t, root, "list", "rules", "--format", "text", "--pattern", "**/*.md")
	require.NoError(t, err)
	assert.Contains(t, out, "a.md")
	assert.Contains(t, out, "sub/b.md")
}

func TestInitCmd_ScaffoldsAndIsIdempotent(t *testing.T) {
	root := t.TempDir()

	out, err := runCommand(t, root, "init", "--format", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "rulecast is ready")

	starter := filepath.Join(root, "rules", "conventions.md")
	assert.FileExists(t, starter)
	assert.FileExists(t, filepath.Join(root, "rulecast.toml"))

	// A second run must not clobber anything
	require.NoError(t, os.WriteFile(starter, []byte("edited\n"), 0644))
	out, err = runCommand(t, root, "init", "--format", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "already exists")

	edited, err := os.ReadFile(starter)
	require.NoError(t, err)
	assert.Equal(t, "edited\n", string(edited))
}

func TestGenConfigCmd(t *testing.T) {
	root := t.TempDir()

	out, err := runCommand(t, root, "gen-config")
	require.NoError(t, err)
	assert.Contains(t, out, "rules_dir")
	assert.Contains(t, out, "file_pattern")
}

func TestVersionCmd(t *testing.T) {
	root := t.TempDir()

	out, err := runCommand(t, root, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "rulecast version")
}

func TestRootCmd_NoSubcommandFails(t *testing.T) {
	root := t.TempDir()

	_, err := runCommand(t, root)
	require.Error(t, err)
}

func TestGenerateCmd_RulesDirFlagBeatsEnv(t *testing.T) {
	root := t.TempDir()
	realDir := filepath.Join(root, "actual-rules")
	writeRule(t, realDir, "a.md", "---\ntitle: Alpha\n---\n\nBody\n")

	t.Setenv(paths.EnvRulesDir, filepath.Join(root, "does-not-exist"))

	_, err := runCommand(t, root, "generate", "--rules-dir", "actual-rules", "--format", "text")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(root, "CLAUDE.md"))
}

func TestGenerateCmd_ConfigFileDrivesRun(t *testing.T) {
	root := t.TempDir()
	writeRule(t, filepath.Join(root, "docs", "rules"), "a.md", "---\ntitle: Alpha\n---\n\nBody\n")
	require.NoError(t, os.WriteFile(filepath.Join(root, "rulecast.toml"),
		[]byte("rules_dir = \"docs/rules\"\nproviders = [\"claude\"]\n"), 0644))

	_, err := runCommand(t, root, "generate", "--format", "text")
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(root, "CLAUDE.md"))
	_, statErr := os.Stat(filepath.Join(root, ".cursor"))
	assert.True(t, os.IsNotExist(statErr))
}
