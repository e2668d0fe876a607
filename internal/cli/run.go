package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/aeolusmd/mdfixup/internal/configloader"
	"github.com/aeolusmd/mdfixup/internal/logging"
	"github.com/aeolusmd/mdfixup/internal/ui/pretty"
	"github.com/aeolusmd/mdfixup/pkg/config"
	"github.com/aeolusmd/mdfixup/pkg/discover"
	"github.com/aeolusmd/mdfixup/pkg/engine"
	"github.com/aeolusmd/mdfixup/pkg/pipeline"
	"github.com/aeolusmd/mdfixup/pkg/replace"
	"github.com/aeolusmd/mdfixup/pkg/rules"
)

// runFlags holds the root command's flags.
type runFlags struct {
	overwrite        bool
	width            int
	skip             []string
	initConfig       bool
	initConfigLocal  bool
	replacements     bool
	noReplacements   bool
	replacementsFile string
	backup           bool
	jobs             int
	continueOnError  bool
}

func addRunFlags(cmd *cobra.Command, flags *runFlags) {
	cmd.Flags().BoolVar(&flags.overwrite, "overwrite", false,
		"write results back to each input file atomically instead of printing to stdout")
	cmd.Flags().IntVar(&flags.width, "width", config.DefaultWidth,
		"wrap width for rule 14; 0 disables wrapping")
	cmd.Flags().StringSliceVar(&flags.skip, "skip", nil,
		"comma-separated rule IDs, keywords, or group aliases to skip; merges with config file skips")
	cmd.Flags().BoolVar(&flags.initConfig, "init-config", false,
		"write a default config file to the user config path and exit")
	cmd.Flags().BoolVar(&flags.initConfigLocal, "local", false,
		"with --init-config, write .md-fixup.yml beside the working directory instead")
	cmd.Flags().BoolVar(&flags.replacements, "replacements", false,
		"force-enable the Replacements Engine")
	cmd.Flags().BoolVar(&flags.noReplacements, "no-replacements", false,
		"force-disable the Replacements Engine")
	cmd.Flags().StringVar(&flags.replacementsFile, "replacements-file", "",
		"path to a YAML file of replacement entries")
	cmd.Flags().BoolVar(&flags.backup, "backup", false,
		"write a .md-fixup.bak sidecar before the first overwrite of a file")
	cmd.Flags().IntVar(&flags.jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().BoolVar(&flags.continueOnError, "continue-on-error", false,
		"exit 0 even if a replacement pattern fails to compile")
}

func runFixup(cmd *cobra.Command, args []string, configPath string, flags *runFlags) error {
	logger := logging.Default()
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if flags.initConfig {
		return runInitConfig(flags.initConfigLocal)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return &RunError{Code: ExitInternalError, Err: fmt.Errorf("get working directory: %w", err)}
	}

	reg := rules.NewRegistry()

	cliCfg := config.NewConfig()
	if cmd.Flags().Changed("width") {
		w := flags.width
		cliCfg.Width = &w
	}
	if cmd.Flags().Changed("overwrite") {
		o := flags.overwrite
		cliCfg.Overwrite = &o
	}
	if cmd.Flags().Changed("backup") {
		b := flags.backup
		cliCfg.Backup = &b
	}
	if flags.replacements {
		r := true
		cliCfg.Replacements = &r
	}
	if flags.noReplacements {
		r := false
		cliCfg.Replacements = &r
	}
	cliCfg.ReplacementsFile = flags.replacementsFile
	cliCfg.Jobs = flags.jobs

	loadResult, err := configloader.Load(ctx, reg, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cliCfg,
	})
	if err != nil {
		return &RunError{Code: ExitConfigError, Err: fmt.Errorf("load configuration: %w", err)}
	}
	cfg := loadResult.Config

	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", logging.FieldFiles, loadResult.LoadedFrom)
	}

	skipSet, unknown := engine.BuildSkipSet(reg, cfg.Rules.Skip, cfg.Rules.Include, flags.skip)
	if len(unknown) > 0 {
		return &RunError{Code: ExitInvalidUsage,
			Err: fmt.Errorf("unknown rule identifier in --skip: %s", strings.Join(unknown, ", "))}
	}

	opts := engine.Options{WrapWidth: cfg.WidthOr(config.DefaultWidth)}

	reps, compileErrs := loadReplacements(cfg, workDir)
	for _, e := range compileErrs {
		logger.Warn("replacement skipped", logging.FieldError, e)
	}
	if len(compileErrs) > 0 && !flags.continueOnError {
		return &RunError{Code: ExitRunErrors, Err: fmt.Errorf("%d replacement(s) failed to compile", len(compileErrs))}
	}

	paths, err := resolveInputPaths(ctx, args, workDir)
	if err != nil {
		return &RunError{Code: ExitRunErrors, Err: err}
	}
	if len(paths) == 0 {
		logger.Warn("no input files")
		return nil
	}

	p := pipeline.New(reg, reps)
	runOpts := pipeline.RunOptions{
		Jobs:      cfg.Jobs,
		Overwrite: cfg.OverwriteOr(false),
		Backup:    cfg.BackupOr(false),
	}
	outcomes := p.Run(ctx, paths, skipSet, opts, runOpts)

	colorMode, _ := cmd.Flags().GetString("color")
	styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, cmd.OutOrStdout()))

	return reportOutcomes(cmd, outcomes, runOpts.Overwrite, styles)
}

func reportOutcomes(cmd *cobra.Command, outcomes []pipeline.FileOutcome, overwrite bool, styles *pretty.Styles) error {
	var failed []pipeline.FileOutcome
	for _, o := range outcomes {
		if o.Err != nil {
			failed = append(failed, o)
			continue
		}
		if !overwrite {
			fmt.Fprint(cmd.OutOrStdout(), o.Output)
		}
	}

	for _, o := range failed {
		fmt.Fprintln(cmd.ErrOrStderr(), styles.Failure.Render(o.Path+": "+o.Err.Error()))
	}

	if len(outcomes) > 1 && overwrite {
		fmt.Fprint(cmd.OutOrStdout(), styles.FormatSummaryOneLine(pipeline.Summarize(outcomes)))
	}

	if len(failed) > 0 {
		return &RunError{Code: ExitRunErrors, Err: fmt.Errorf("%d of %d files failed", len(failed), len(outcomes))}
	}
	return nil
}

// loadReplacements resolves the effective replacement list: none if
// the engine is disabled, otherwise the configured file (relative
// paths resolve against workDir) compiled via replace.Compile.
func loadReplacements(cfg *config.Config, workDir string) ([]replace.Replacement, []error) {
	if !cfg.ReplacementsOr(false) || cfg.ReplacementsFile == "" {
		return nil, nil
	}

	path := cfg.ReplacementsFile
	if !filepath.IsAbs(path) {
		path = filepath.Join(workDir, path)
	}

	reps, err := replace.LoadFile(path)
	if err != nil {
		return nil, []error{err}
	}
	return replace.Compile(reps)
}

// resolveInputPaths resolves which files to process: explicit paths
// win (directories among them expand recursively to their Markdown
// files); otherwise a non-TTY stdin supplies a newline-separated path
// list; otherwise every *.md file directly in workDir is used (no
// recursion into subdirectories).
func resolveInputPaths(ctx context.Context, args []string, workDir string) ([]string, error) {
	if len(args) > 0 {
		return discover.Files(ctx, args, workDir)
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		var paths []string
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line != "" {
				paths = append(paths, line)
			}
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("read paths from stdin: %w", err)
		}
		return discover.Files(ctx, paths, workDir)
	}

	matches, err := filepath.Glob(filepath.Join(workDir, "*.md"))
	if err != nil {
		return nil, fmt.Errorf("glob *.md: %w", err)
	}
	return discover.Files(ctx, matches, workDir)
}
