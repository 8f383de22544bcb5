package rulecast

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/glamour"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/rulecast/internal/version"
	"github.com/arthur-debert/rulecast/pkg/config"
	"github.com/arthur-debert/rulecast/pkg/core"
	"github.com/arthur-debert/rulecast/pkg/errors"
	"github.com/arthur-debert/rulecast/pkg/filesystem"
	"github.com/arthur-debert/rulecast/pkg/logging"
	"github.com/arthur-debert/rulecast/pkg/paths"
	"github.com/arthur-debert/rulecast/pkg/providers"
	"github.com/arthur-debert/rulecast/pkg/providers/builtin"
	"github.com/arthur-debert/rulecast/pkg/rules"
	"github.com/arthur-debert/rulecast/pkg/style"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var (
		verbosity int
		dryRun    bool
		quiet     bool
		format    string
	)

	rootCmd := &cobra.Command{
		Use:     "rulecast",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			if quiet {
				logging.SetQuiet()
			}
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand: show help but exit non-zero
			_ = cmd.Help()
			return fmt.Errorf(MsgNoCommandError)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, MsgFlagDryRun)
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, MsgFlagQuiet)
	rootCmd.PersistentFlags().StringVar(&format, "format", "auto", MsgFlagFormat)

	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newPreviewCmd())
	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newGenConfigCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

// loadConfig resolves the layered configuration for the working directory
// and merges any changed command flags on top.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	root, err := os.Getwd()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "cannot resolve working directory")
	}

	// Only flags the user actually set become overrides, so config file and
	// environment values survive untouched flags
	overrides := map[string]interface{}{}
	flags := cmd.Flags()
	if flags.Changed("rules-dir") {
		overrides["rules_dir"], _ = flags.GetString("rules-dir")
	}
	if flags.Changed("pattern") {
		overrides["file_pattern"], _ = flags.GetString("pattern")
	}
	if flags.Changed("output-dir") {
		overrides["output_dir"], _ = flags.GetString("output-dir")
	}
	if flags.Changed("providers") {
		overrides["providers"], _ = flags.GetStringSlice("providers")
	}

	persistent := cmd.Root().PersistentFlags()
	if persistent.Changed("dry-run") {
		overrides["dry_run"], _ = persistent.GetBool("dry-run")
	}
	if persistent.Changed("quiet") {
		overrides["quiet"], _ = persistent.GetBool("quiet")
	}
	if v, _ := persistent.GetCount("verbose"); v > 0 {
		overrides["verbose"] = true
	}

	return config.Load(root, overrides)
}

// rendererFor picks the output renderer from the persistent --format flag
func rendererFor(cmd *cobra.Command) (style.Renderer, style.Format, error) {
	raw, _ := cmd.Root().PersistentFlags().GetString("format")
	f, err := style.ParseFormat(raw)
	if err != nil {
		return nil, "", err
	}

	f = f.Detect(os.Stdout)
	return style.RendererFor(f), f, nil
}

func providerInfos(active []providers.Provider) []style.ProviderInfo {
	infos := make([]style.ProviderInfo, 0, len(active))
	for _, p := range active {
		infos = append(infos, style.ProviderInfo{ID: p.ID(), OutputPath: p.OutputPath()})
	}
	return infos
}

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "generate",
		Aliases: []string{"gen"},
		Short:   MsgGenerateShort,
		Long:    MsgGenerateLong,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			renderer, format, err := rendererFor(cmd)
			if err != nil {
				return err
			}

			active, err := builtin.Build(cfg.Providers, providers.Options{
				OutputDir: cfg.OutputDir,
				FS:        filesystem.NewOS(),
			})
			if err != nil {
				return err
			}

			// Precedence is fully resolved in cfg: flag > env > file > default
			rulesDir := cfg.RulesDir
			result, err := core.Execute(core.ExecuteOptions{
				Providers:   active,
				RulesDir:    rulesDir,
				FilePattern: cfg.FilePattern,
				DryRun:      cfg.DryRun,
				Verbose:     cfg.Verbose,
			})
			if err != nil {
				return err
			}

			if cfg.Quiet {
				return nil
			}

			out := cmd.OutOrStdout()
			if format == style.FormatJSON {
				return json.NewEncoder(out).Encode(generateReport{
					Files:   result.Files,
					DryRun:  result.DryRun,
					Handled: result.Handled,
				})
			}

			if result.DryRun {
				fmt.Fprintln(out, renderer.RenderPlan(rulesDir, result.Files, providerInfos(active)))
				return nil
			}
			fmt.Fprintln(out, renderer.RenderSummary(len(result.Files), result.Handled))
			return nil
		},
	}

	cmd.Flags().String("rules-dir", "", MsgFlagRulesDir)
	cmd.Flags().String("pattern", "", MsgFlagPattern)
	cmd.Flags().String("output-dir", "", MsgFlagOutputDir)
	cmd.Flags().StringSliceP("providers", "p", nil, MsgFlagProviders)

	return cmd
}

// generateReport is the JSON shape of a run result
type generateReport struct {
	Files   []string       `json:"files"`
	DryRun  bool           `json:"dry_run"`
	Handled map[string]int `json:"handled"`
}

func newListCmd() *cobra.Command {
	listCmd := &cobra.Command{
		Use:   "list",
		Short: MsgListShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf(MsgNoCommandError)
		},
	}

	providersCmd := &cobra.Command{
		Use:   "providers",
		Short: MsgListProviders,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			renderer, format, err := rendererFor(cmd)
			if err != nil {
				return err
			}

			active, err := builtin.Build(cfg.Providers, providers.Options{
				OutputDir: cfg.OutputDir,
				FS:        filesystem.NewOS(),
			})
			if err != nil {
				return err
			}

			infos := providerInfos(active)
			out := cmd.OutOrStdout()
			if format == style.FormatJSON {
				return json.NewEncoder(out).Encode(infos)
			}
			fmt.Fprintln(out, renderer.RenderProviderList(infos))
			return nil
		},
	}

	rulesCmd := &cobra.Command{
		Use:   "rules",
		Short: MsgListRules,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			renderer, format, err := rendererFor(cmd)
			if err != nil {
				return err
			}

			fs := filesystem.NewOS()
			rulesDir := cfg.RulesDir
			if info, err := fs.Stat(rulesDir); err != nil || !info.IsDir() {
				return errors.Newf(errors.ErrRulesDirNotFound, "rules directory %s does not exist", rulesDir)
			}

			files, err := rules.Discover(fs, rulesDir, cfg.FilePattern)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if format == style.FormatJSON {
				return json.NewEncoder(out).Encode(files)
			}
			fmt.Fprintln(out, renderer.RenderRuleList(files))
			return nil
		},
	}
	rulesCmd.Flags().String("rules-dir", "", MsgFlagRulesDir)
	rulesCmd.Flags().String("pattern", "", MsgFlagPattern)

	listCmd.AddCommand(providersCmd)
	listCmd.AddCommand(rulesCmd)
	return listCmd
}

func newPreviewCmd() *cobra.Command {
	var providerID string

	cmd := &cobra.Command{
		Use:   "preview <rule-file>",
		Short: MsgPreviewShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return errors.Wrapf(err, errors.ErrRuleRead, "reading %s", args[0])
			}

			rule, err := rules.Parse(filepath.Base(args[0]), raw)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fm := providers.StripDirectives(rule.FrontMatter)
			if providerID != "" {
				fm = providers.EffectiveFrontMatter(fm, providerID)
				title := providers.SectionTitle(fm, providerID)
				fmt.Fprintf(out, "%s\n\n", style.TitleStyle.Render(title))
			}

			fmt.Fprintln(out, renderMarkdown(rule.Content))
			return nil
		},
	}

	cmd.Flags().StringVarP(&providerID, "provider", "p", "", MsgFlagProvider)
	return cmd
}

// renderMarkdown renders markdown for the terminal, falling back to the
// raw content when glamour cannot run (no TTY, unknown style).
func renderMarkdown(content string) string {
	renderer, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
	if err != nil {
		return content
	}
	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: MsgInitShort,
		Long:  MsgInitLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			rulesDir := paths.DefaultRulesDir
			if err := os.MkdirAll(rulesDir, 0755); err != nil {
				return errors.Wrapf(err, errors.ErrDirCreate, "creating %s", rulesDir)
			}

			starterPath := filepath.Join(rulesDir, "conventions.md")
			if err := writeIfAbsent(out, starterPath, starterRule); err != nil {
				return err
			}

			content, err := config.GenerateConfigContent()
			if err != nil {
				return err
			}
			if err := writeIfAbsent(out, paths.ConfigFileName, content); err != nil {
				return err
			}

			fmt.Fprintln(out, style.SuccessStyle.Render(fmt.Sprintf(MsgInitDone, starterPath)))
			return nil
		},
	}
}

// writeIfAbsent creates path with content unless it already exists
func writeIfAbsent(out io.Writer, path, content string) error {
	if _, err := os.Stat(path); err == nil {
		fmt.Fprintf(out, MsgInitSkipped, path)
		return nil
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "writing %s", path)
	}
	fmt.Fprintf(out, MsgInitCreated, path)
	return nil
}

func newGenConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gen-config",
		Short: MsgGenConfigShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := config.GenerateConfigContent()
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), content)
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "rulecast version %s\n", version.Version)
			fmt.Fprintf(out, "  commit: %s\n", version.Commit)
			fmt.Fprintf(out, "  built:  %s\n", version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(cmd.OutOrStdout())
			case "zsh":
				return cmd.Root().GenZshCompletion(cmd.OutOrStdout())
			case "fish":
				return cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
			}
			return nil
		},
	}
}
