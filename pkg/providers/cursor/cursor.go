// Package cursor rewrites each rule document into a Cursor .mdc file:
// repackaged YAML front-matter plus the rule body, one output file per rule
// under .cursor/rules/.
package cursor

import (
	"bytes"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/rulecast/pkg/errors"
	"github.com/arthur-debert/rulecast/pkg/logging"
	"github.com/arthur-debert/rulecast/pkg/providers"
	"github.com/arthur-debert/rulecast/pkg/rules"
	"github.com/arthur-debert/rulecast/pkg/types"
)

// Name is the provider id
const Name = "cursor"

// ActivationKey is the front-matter field controlling when Cursor loads a
// rule. When the top-level alwaysApply boolean is true and no explicit
// activation override exists, the provider synthesizes "always"; an explicit
// override, even a contradicting one, wins.
const ActivationKey = "activation"

// knownKeys are emitted first and in this order; remaining keys follow sorted
var knownKeys = []string{"description", "globs", "alwaysApply", ActivationKey}

// Provider writes one .mdc file per rule
type Provider struct {
	fs     types.FS
	outDir string
	logger zerolog.Logger
}

// New creates a cursor provider rooted at outputDir/.cursor/rules
func New(opts providers.Options) *Provider {
	return &Provider{
		fs:     opts.FS,
		outDir: filepath.Join(opts.OutputDir, ".cursor", "rules"),
		logger: logging.GetLogger("providers.cursor"),
	}
}

// ID returns the provider id
func (p *Provider) ID() string { return Name }

// OutputPath returns the directory this provider owns
func (p *Provider) OutputPath() string { return p.outDir }

// Init recreates the output directory empty so stale files from a previous
// run never leak forward
func (p *Provider) Init() error {
	if err := p.fs.RemoveAll(p.outDir); err != nil {
		return errors.Wrapf(err, errors.ErrProviderInit, "clearing %s", p.outDir)
	}
	if err := p.fs.MkdirAll(p.outDir, 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "creating %s", p.outDir)
	}
	return nil
}

// Handle writes the .mdc rendition of one rule
func (p *Provider) Handle(rule *rules.RuleFile) error {
	effective := providers.EffectiveFrontMatter(rule.FrontMatter, Name)

	if always, ok := effective["alwaysApply"].(bool); ok && always {
		if _, overridden := effective[ActivationKey]; !overridden {
			effective[ActivationKey] = "always"
		}
	}

	rel := strings.TrimSuffix(rule.Filename, path.Ext(rule.Filename)) + ".mdc"
	outPath := filepath.Join(p.outDir, filepath.FromSlash(rel))

	if dir := filepath.Dir(outPath); dir != p.outDir {
		if err := p.fs.MkdirAll(dir, 0755); err != nil {
			return errors.Wrapf(err, errors.ErrDirCreate, "creating %s", dir)
		}
	}

	doc, err := renderDocument(effective, rule.Content)
	if err != nil {
		return err
	}
	if err := p.fs.WriteFile(outPath, doc, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "writing %s", outPath)
	}

	p.logger.Debug().Str("rule", rule.Filename).Str("output", outPath).Msg("Rule rewritten")
	return nil
}

// Finish is a no-op: every rule was already written during Handle
func (p *Provider) Finish() error {
	return nil
}

// renderDocument assembles the .mdc text: a YAML front-matter block with
// deterministic key order, a blank line, the trimmed body, one trailing
// newline.
func renderDocument(fm map[string]any, body string) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("---\n")

	emitted := make(map[string]struct{}, len(fm))
	emit := func(key string) error {
		value, ok := fm[key]
		if !ok {
			return nil
		}
		line, err := yaml.Marshal(map[string]any{key: value})
		if err != nil {
			return errors.Wrapf(err, errors.ErrProviderHandle, "encoding front-matter key %q", key)
		}
		buf.Write(line)
		emitted[key] = struct{}{}
		return nil
	}

	for _, key := range knownKeys {
		if err := emit(key); err != nil {
			return nil, err
		}
	}

	extras := make([]string, 0, len(fm))
	for key := range fm {
		if _, done := emitted[key]; !done {
			extras = append(extras, key)
		}
	}
	sort.Strings(extras)
	for _, key := range extras {
		if err := emit(key); err != nil {
			return nil, err
		}
	}

	buf.WriteString("---\n\n")
	buf.WriteString(strings.TrimSpace(body))
	buf.WriteString("\n")
	return buf.Bytes(), nil
}
