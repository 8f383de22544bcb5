package core

import (
	"path/filepath"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/arthur-debert/rulecast/pkg/errors"
	"github.com/arthur-debert/rulecast/pkg/filesystem"
	"github.com/arthur-debert/rulecast/pkg/logging"
	"github.com/arthur-debert/rulecast/pkg/providers"
	"github.com/arthur-debert/rulecast/pkg/rules"
	"github.com/arthur-debert/rulecast/pkg/types"
)

// ExecuteOptions contains the resolved options for one run
type ExecuteOptions struct {
	// Providers is the active provider set, already built and validated
	Providers []providers.Provider

	// RulesDir is the rule document source directory; it must exist
	RulesDir string

	// FilePattern selects rule documents relative to RulesDir
	FilePattern string

	// DryRun reports the discovered work without invoking any provider
	// lifecycle method or reading rule contents
	DryRun bool

	// Verbose promotes per-rule progress to info-level logging
	Verbose bool

	// FileSystem defaults to the OS filesystem when nil
	FileSystem types.FS
}

// Result summarizes one run for the CLI layer
type Result struct {
	// Files are the discovered rule paths, relative to the rules directory
	Files []string

	// DryRun mirrors the option so renderers know nothing was written
	DryRun bool

	// Handled maps provider id to the number of rules it processed
	Handled map[string]int
}

// Execute runs the pipeline to completion or first failure.
//
// Ordering guarantees: every provider's Init completes before any Handle is
// issued, and every Handle across all files completes before any Finish is
// issued. Within one file the selected providers' Handle calls run
// concurrently, and across files no ordering is guaranteed at all. Every
// provider whose Init ran gets exactly one Finish, even with zero Handle
// calls.
func Execute(opts ExecuteOptions) (*Result, error) {
	logger := logging.GetLogger("core.execute")
	logger.Info().
		Str("rulesDir", opts.RulesDir).
		Str("pattern", opts.FilePattern).
		Bool("dryRun", opts.DryRun).
		Int("providers", len(opts.Providers)).
		Msg("Starting run")

	fs := opts.FileSystem
	if fs == nil {
		fs = filesystem.NewOS()
	}

	info, err := fs.Stat(opts.RulesDir)
	if err != nil || !info.IsDir() {
		return nil, errors.Newf(errors.ErrRulesDirNotFound, "rules directory %s does not exist", opts.RulesDir)
	}

	files, err := rules.Discover(fs, opts.RulesDir, opts.FilePattern)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Files:   files,
		DryRun:  opts.DryRun,
		Handled: make(map[string]int, len(opts.Providers)),
	}
	for _, p := range opts.Providers {
		result.Handled[p.ID()] = 0
	}

	if opts.DryRun {
		logger.Info().Int("files", len(files)).Msg("Dry run, no provider invoked")
		return result, nil
	}

	if len(files) == 0 {
		logger.Info().Msg("No rule documents matched, nothing to do")
		return result, nil
	}

	if err := initProviders(opts.Providers); err != nil {
		return nil, err
	}

	if err := handleFiles(fs, opts, files, result); err != nil {
		return nil, err
	}

	if err := finishProviders(opts.Providers); err != nil {
		return nil, err
	}

	logger.Info().Int("files", len(files)).Msg("Run complete")
	return result, nil
}

// initProviders prepares every active provider's output target in parallel
func initProviders(active []providers.Provider) error {
	var group errgroup.Group
	for _, p := range active {
		p := p
		group.Go(func() error {
			if err := p.Init(); err != nil {
				return errors.Wrapf(err, errors.ErrProviderInit, "provider %s init failed", p.ID())
			}
			return nil
		})
	}
	return group.Wait()
}

// handleFiles reads, parses, routes, and dispatches every discovered rule.
// Files are processed concurrently; within one file the selected providers
// run concurrently too.
func handleFiles(fs types.FS, opts ExecuteOptions, files []string, result *Result) error {
	logger := logging.GetLogger("core.execute")

	var mu sync.Mutex
	var group errgroup.Group
	for _, file := range files {
		file := file
		group.Go(func() error {
			raw, err := fs.ReadFile(filepath.Join(opts.RulesDir, filepath.FromSlash(file)))
			if err != nil {
				return errors.Wrapf(err, errors.ErrRuleRead, "reading %s", file)
			}

			rule, err := rules.Parse(file, raw)
			if err != nil {
				return err
			}

			subset := providers.SelectForRule(opts.Providers, rule.FrontMatter)
			rule.FrontMatter = providers.StripDirectives(rule.FrontMatter)

			progress := logger.Debug()
			if opts.Verbose {
				progress = logger.Info()
			}
			progress.Str("rule", file).Int("providers", len(subset)).Msg("Dispatching rule")

			var dispatch errgroup.Group
			for _, p := range subset {
				p := p
				dispatch.Go(func() error {
					if err := p.Handle(rule); err != nil {
						return errors.Wrapf(err, errors.ErrProviderHandle,
							"provider %s failed on %s", p.ID(), file)
					}
					mu.Lock()
					result.Handled[p.ID()]++
					mu.Unlock()
					return nil
				})
			}
			return dispatch.Wait()
		})
	}
	return group.Wait()
}

// finishProviders flushes every provider that was initialized, regardless of
// how many rules were routed to it
func finishProviders(active []providers.Provider) error {
	var group errgroup.Group
	for _, p := range active {
		p := p
		group.Go(func() error {
			if err := p.Finish(); err != nil {
				return errors.Wrapf(err, errors.ErrProviderFinish, "provider %s finish failed", p.ID())
			}
			return nil
		})
	}
	return group.Wait()
}
