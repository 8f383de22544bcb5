package rulecast

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Translate markdown rule documents into AI assistant formats"
	MsgGenerateShort   = "Generate provider outputs from the rule documents"
	MsgGenerateLong    = "Generate reads every matching rule document and rewrites the output of each active provider from scratch."
	MsgListShort       = "List providers or rule documents"
	MsgListProviders   = "List the available providers and their output paths"
	MsgListRules       = "List the rule documents a run would process"
	MsgPreviewShort    = "Render a rule document as a provider would receive it"
	MsgInitShort       = "Scaffold a rules directory and starter configuration"
	MsgGenConfigShort  = "Print a fully commented default configuration file"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgInitCreated    = "Created %s\n"
	MsgInitSkipped    = "Skipped %s (already exists)\n"
	MsgInitDone       = "rulecast is ready. Edit %s and run 'rulecast generate'."
	MsgNoCommandError = "no command specified"

	// Flag descriptions
	MsgFlagVerbose   = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun    = "Preview the plan without writing any files"
	MsgFlagQuiet     = "Suppress all output except errors"
	MsgFlagFormat    = "Output format: auto, term, text, json"
	MsgFlagRulesDir  = "Rule document source directory"
	MsgFlagPattern   = "Glob pattern selecting rule documents (supports **)"
	MsgFlagOutputDir = "Base directory provider outputs are written under"
	MsgFlagProviders = "Provider ids to run (default: all)"
	MsgFlagProvider  = "Preview with this provider's effective front-matter"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/init-long.txt
	msgInitLongRaw string
	MsgInitLong    = strings.TrimSpace(msgInitLongRaw)

	//go:embed templates/starter.md
	starterRule string
)
