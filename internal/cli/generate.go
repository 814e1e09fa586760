package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/real-or-random/bips2bib/internal/bibtex"
	"github.com/real-or-random/bips2bib/internal/bip"
	"github.com/real-or-random/bips2bib/internal/config"
	"github.com/real-or-random/bips2bib/internal/display"
	"github.com/real-or-random/bips2bib/internal/logging"
	"github.com/real-or-random/bips2bib/internal/prompt"
)

var (
	outputPath string
	force      bool
)

func runGenerate(cmd *cobra.Command, args []string) error {
	if v, _ := cmd.Flags().GetBool("version"); v {
		out("bips2bib %s\n", version)
		return nil
	}
	if len(args) != 1 {
		return fmt.Errorf("expected the path to a bips repository checkout")
	}

	ctx := cmd.Context()
	logger := logging.FromContext(ctx)
	cfg := config.Get()

	outPath := outputPath
	if outPath == "" {
		outPath = cfg.Output.Path
	}

	start := time.Now()

	docs, skipped, err := loadCorpus(ctx, args[0], cfg)
	if err != nil {
		return err
	}

	if !force && !jsonOutput && isTerminal() && fileExists(outPath) {
		ok, err := prompt.Default.Confirm(prompt.ConfirmConfig{
			Title: fmt.Sprintf("%s already exists. Overwrite?", outPath),
		})
		if err != nil {
			return fmt.Errorf("reading confirmation: %w", err)
		}
		if !ok {
			outln("Aborted.")
			return nil
		}
	}

	aliases := loadAliases(ctx)

	bib := bibtex.Render(docs, aliases)
	if err := os.WriteFile(outPath, []byte(bib), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}

	logger.Debug("generation complete",
		"entries", len(docs),
		"skipped", skipped,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	if jsonOutput {
		return display.OutputJSON(outWriter, display.GenerateJSON{
			Output:  outPath,
			Entries: len(docs),
			Skipped: skipped,
		})
	}
	if !quiet {
		out("Wrote %d entries to %s.\n", len(docs), outPath)
	}
	return nil
}

// loadCorpus parses the BIP files under dir, behind a progress spinner
// when the terminal allows one. It also counts the files that did not
// produce an entry.
func loadCorpus(ctx context.Context, dir string, cfg config.Config) ([]bip.Document, int, error) {
	var (
		docs    []bip.Document
		skipped int
		loadErr error
	)

	progress := func(onFile func(display.ScanInfo)) {
		docs, loadErr = bip.Load(ctx, dir, func(p bip.Progress) {
			if !p.Parsed {
				skipped++
			}
			if onFile != nil {
				onFile(display.ScanInfo{File: p.File, Parsed: p.Parsed})
			}
		})
	}

	if cfg.Display.Spinner && display.SpinnerShouldShow(quiet, jsonOutput, !isTerminal()) {
		if err := display.SpinnerRun("parsing BIPs", progress); err != nil {
			return nil, 0, fmt.Errorf("spinner error: %w", err)
		}
	} else {
		progress(nil)
	}

	if loadErr != nil {
		return nil, 0, loadErr
	}
	return docs, skipped, nil
}

// loadAliases returns the alias table, falling back to the built-ins when
// the overrides file is malformed.
func loadAliases(ctx context.Context) map[int]string {
	aliases, err := bibtex.LoadAliases(config.AliasesFile())
	if err != nil {
		logging.FromContext(ctx).Warn("alias overrides are malformed, using built-ins", "err", err)
		return bibtex.DefaultAliases()
	}
	return aliases
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
