package providers

import (
	"github.com/arthur-debert/rulecast/pkg/rules"
	"github.com/arthur-debert/rulecast/pkg/types"
)

// Provider is an output-format adapter. Implementations keep their output
// target private; no other code reads or writes it directly.
type Provider interface {
	// ID returns the unique name of this provider
	ID() string

	// OutputPath returns the file or directory this provider owns.
	// Ownership is exclusive across the active provider set.
	OutputPath() string

	// Init prepares the output target. It must not assume any particular
	// filesystem state beyond target existence being uncertain, and must
	// leave no stale output from a previous run behind.
	Init() error

	// Handle converts one rule into this provider's format. The rule's
	// front-matter never contains routing directives.
	Handle(rule *rules.RuleFile) error

	// Finish flushes any accumulated output. For providers that write per
	// file this is a no-op.
	Finish() error
}

// Options carries the construction-time inputs every provider needs.
type Options struct {
	// OutputDir is the base directory provider output paths are derived from
	OutputDir string

	// FS is the filesystem implementation providers write through
	FS types.FS
}
