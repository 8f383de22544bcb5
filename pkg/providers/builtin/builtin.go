// Package builtin wires the shipped provider set into a registry.
package builtin

import (
	"github.com/arthur-debert/rulecast/pkg/providers"
	"github.com/arthur-debert/rulecast/pkg/providers/claude"
	"github.com/arthur-debert/rulecast/pkg/providers/cline"
	"github.com/arthur-debert/rulecast/pkg/providers/copilot"
	"github.com/arthur-debert/rulecast/pkg/providers/cursor"
	"github.com/arthur-debert/rulecast/pkg/providers/windsurf"
)

// Registry returns a registry holding every built-in provider
func Registry() *providers.Registry {
	reg := providers.NewRegistry()
	reg.MustRegister(cursor.Name, func(opts providers.Options) providers.Provider { return cursor.New(opts) })
	reg.MustRegister(cline.Name, func(opts providers.Options) providers.Provider { return cline.New(opts) })
	reg.MustRegister(windsurf.Name, func(opts providers.Options) providers.Provider { return windsurf.New(opts) })
	reg.MustRegister(claude.Name, func(opts providers.Options) providers.Provider { return claude.New(opts) })
	reg.MustRegister(copilot.Name, func(opts providers.Options) providers.Provider { return copilot.New(opts) })
	return reg
}

// IDs returns the built-in provider ids, sorted
func IDs() []string {
	return Registry().IDs()
}

// Build constructs the active provider set from the built-in registry
func Build(ids []string, opts providers.Options) ([]providers.Provider, error) {
	return Registry().Build(ids, opts)
}
