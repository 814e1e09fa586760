package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/real-or-random/bips2bib/internal/config"
)

// resetFlags restores the package-level flag state so tests don't leak
// into each other, and points the config at a temp dir.
func resetFlags(t *testing.T) {
	t.Helper()
	t.Setenv("BIPS2BIB_CONFIG_DIR", t.TempDir())
	t.Setenv("BIPS2BIB_OUTPUT", "")
	t.Setenv("BIPS2BIB_NO_COLOR", "")
	jsonOutput = false
	noColor = false
	verbose = false
	quiet = false
	outputPath = ""
	force = false
	titleNoWrap = false
	configInitForce = false
	// The version flag has no bound variable, so clear it by hand.
	_ = rootCmd.Flags().Set("version", "false")
	t.Cleanup(func() {
		jsonOutput = false
		noColor = false
		verbose = false
		quiet = false
		outputPath = ""
		force = false
		titleNoWrap = false
		configInitForce = false
	})
	_, _ = config.Reload()
}

// captureOutput redirects command output into a buffer for the duration
// of the test.
func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	outWriter = &buf
	t.Cleanup(func() { outWriter = os.Stdout })
	return &buf
}

// writeCorpus creates a minimal bips checkout and returns its path.
func writeCorpus(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	files := map[string]string{
		"bip-0002.md":        "```\nBIP: 2\nTitle: BIP process, revised\nAuthor: Luke Dashjr <luke+bip@dashjr.org>\nCreated: 2016-02-03\n```\n",
		"bip-0141.mediawiki": "<pre>\n  BIP: 141\n  Title: Segregated Witness \n  Author: Pieter Wuille <pieter.wuille@gmail.com>\n  Created: 2015-12-21\n</pre>\n",
		"bip-0009.mediawiki": "<pre>\n  BIP: 9\n  Title: Version bits with timeout and delay\n  Author: Pieter Wuille\n</pre>\n", // missing Created: skipped
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("WriteFile(%s): %v", name, err)
		}
	}
	return dir
}
