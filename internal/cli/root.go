// Package cli implements the bips2bib command tree.
package cli

import (
	"context"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/real-or-random/bips2bib/internal/config"
	"github.com/real-or-random/bips2bib/internal/logging"
)

// version is injected at build time via -ldflags.
var version = "dev"

var (
	jsonOutput bool
	noColor    bool
	verbose    bool
	quiet      bool
)

var rootCmd = &cobra.Command{
	Use:          "bips2bib <bips-dir>",
	Short:        "Generate a BibTeX file from a bitcoin/bips checkout",
	Long:         "bips2bib reads the preamble of every BIP file in a bitcoin/bips repository checkout and writes a BibTeX bibliography with title-cased entries.",
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose && quiet {
			verbose = false
		}
		l := newConfiguredLogger()
		ctx := logging.WithLogger(cmd.Context(), l)
		cmd.SetContext(ctx)

		// Load config from disk so malformed files surface a warning.
		if _, err := config.Init(); err != nil {
			l.Warn("config file is malformed, using defaults", "err", err)
		}
	},
	RunE: runGenerate,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&jsonOutput, "json", "j", false, "Output as JSON")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show detailed output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Minimal output")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output .bib file (default from config)")
	rootCmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite the output file without asking")
	rootCmd.Flags().Bool("version", false, "Show version and exit")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(titleCmd)
	rootCmd.AddCommand(configCmd)
}

func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with the given context. Commands
// access it via cmd.Context().
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// isTerminal reports whether stdout is a TTY. Tests replace it to reach
// the interactive paths.
var isTerminal = func() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}
