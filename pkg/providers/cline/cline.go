// Package cline mirrors rule documents into the .clinerules/ directory:
// same relative filename, front-matter stripped, body written verbatim with
// leading whitespace removed.
package cline

import (
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/rulecast/pkg/errors"
	"github.com/arthur-debert/rulecast/pkg/logging"
	"github.com/arthur-debert/rulecast/pkg/providers"
	"github.com/arthur-debert/rulecast/pkg/rules"
	"github.com/arthur-debert/rulecast/pkg/types"
)

// Name is the provider id
const Name = "cline"

// Provider mirrors rule bodies into its output directory
type Provider struct {
	fs     types.FS
	outDir string
	logger zerolog.Logger
}

// New creates a cline provider rooted at outputDir/.clinerules
func New(opts providers.Options) *Provider {
	return &Provider{
		fs:     opts.FS,
		outDir: filepath.Join(opts.OutputDir, ".clinerules"),
		logger: logging.GetLogger("providers.cline"),
	}
}

// ID returns the provider id
func (p *Provider) ID() string { return Name }

// OutputPath returns the directory this provider owns
func (p *Provider) OutputPath() string { return p.outDir }

// Init recreates the output directory empty
func (p *Provider) Init() error {
	if err := p.fs.RemoveAll(p.outDir); err != nil {
		return errors.Wrapf(err, errors.ErrProviderInit, "clearing %s", p.outDir)
	}
	if err := p.fs.MkdirAll(p.outDir, 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "creating %s", p.outDir)
	}
	return nil
}

// Handle writes the rule body under the same relative filename, performing
// no front-matter repackaging at all
func (p *Provider) Handle(rule *rules.RuleFile) error {
	outPath := filepath.Join(p.outDir, filepath.FromSlash(rule.Filename))

	if dir := filepath.Dir(outPath); dir != p.outDir {
		if err := p.fs.MkdirAll(dir, 0755); err != nil {
			return errors.Wrapf(err, errors.ErrDirCreate, "creating %s", dir)
		}
	}

	body := strings.TrimLeft(rule.Content, " \t\r\n")
	if err := p.fs.WriteFile(outPath, []byte(body), 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "writing %s", outPath)
	}

	p.logger.Debug().Str("rule", rule.Filename).Str("output", outPath).Msg("Rule mirrored")
	return nil
}

// Finish is a no-op for the mirror variant
func (p *Provider) Finish() error {
	return nil
}
