// Package claude aggregates all processed rules into a single CLAUDE.md:
// one "## " section per rule, sorted by source filename.
package claude

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/rulecast/pkg/errors"
	"github.com/arthur-debert/rulecast/pkg/logging"
	"github.com/arthur-debert/rulecast/pkg/providers"
	"github.com/arthur-debert/rulecast/pkg/rules"
	"github.com/arthur-debert/rulecast/pkg/types"
)

// Name is the provider id
const Name = "claude"

// Provider accumulates sections in memory and writes them once at Finish
type Provider struct {
	fs      types.FS
	outFile string
	buf     providers.SectionBuffer
	logger  zerolog.Logger
}

// New creates a claude provider writing outputDir/CLAUDE.md
func New(opts providers.Options) *Provider {
	return &Provider{
		fs:      opts.FS,
		outFile: filepath.Join(opts.OutputDir, "CLAUDE.md"),
		logger:  logging.GetLogger("providers.claude"),
	}
}

// ID returns the provider id
func (p *Provider) ID() string { return Name }

// OutputPath returns the file this provider owns
func (p *Provider) OutputPath() string { return p.outFile }

// Init deletes any pre-existing output file and resets the buffer
func (p *Provider) Init() error {
	p.buf.Reset()
	if err := p.fs.Remove(p.outFile); err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, errors.ErrProviderInit, "removing stale %s", p.outFile)
	}
	return nil
}

// Handle appends one section for the rule
func (p *Provider) Handle(rule *rules.RuleFile) error {
	title := providers.SectionTitle(rule.FrontMatter, Name)
	p.buf.Add(rule.Filename, title, rule.Content)
	return nil
}

// Finish writes the accumulated document. An empty run still produces a
// file containing a single newline.
func (p *Provider) Finish() error {
	if err := p.fs.MkdirAll(filepath.Dir(p.outFile), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "creating %s", filepath.Dir(p.outFile))
	}
	if err := p.fs.WriteFile(p.outFile, p.buf.Render(), 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "writing %s", p.outFile)
	}

	p.logger.Debug().Int("sections", p.buf.Len()).Str("output", p.outFile).Msg("Aggregate written")
	return nil
}
