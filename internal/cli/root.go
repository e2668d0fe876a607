// Package cli provides the Cobra command structure for md-fixup.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/aeolusmd/mdfixup/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root md-fixup command. There is no
// separate verb for the main operation: running the binary on a set
// of files transforms them directly. "rules" and "version" remain as
// small informational subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string
	flags := &runFlags{}

	rootCmd := &cobra.Command{
		Use:   "md-fixup [paths...]",
		Short: "A self-fixing Markdown formatter",
		Long: `md-fixup rewrites Markdown files into a canonical form: normalized
whitespace, wrapped prose, aligned tables, consistent emphasis markers,
and more, applied through 33 independent, individually skippable rules.

Given no paths, it reads a list of paths from stdin if stdin is not a
terminal, and otherwise operates on every *.md file in the current
directory. Without --overwrite it prints the result to stdout; with
--overwrite it rewrites each input file atomically.`,
		Args: cobra.ArbitraryArgs,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFixup(cmd, args, configPath, flags)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	addRunFlags(rootCmd, flags)

	// Add subcommands.
	rootCmd.AddCommand(newRulesCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	// Apply styled help formatting.
	helpFormatter := NewHelpFormatter(color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}
