package bip

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/real-or-random/bips2bib/internal/logging"
)

const mediawikiBIP = `<pre>
  BIP: 141
  Layer: Consensus (soft fork)
  Title: Segregated Witness (Consensus layer)
  Author: Eric Lombrozo <elombrozo@gmail.com>
          Johnson Lau <jl2012@xbt.hk>
          Pieter Wuille <pieter.wuille@gmail.com>
  Status: Final
  Type: Standards Track
  Created: 2015-12-21
</pre>

==Abstract==
This BIP defines a new structure called a "witness".
`

const markdownBIP = "# BIP 2\n\n```\nBIP: 2\nTitle: BIP process, revised\nAuthor: Luke Dashjr <luke+bip@dashjr.org>\nStatus: Active\nCreated: 2016-02-03\n```\n\nSome body text.\n"

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile(%s): %v", name, err)
	}
	return path
}

func TestFindFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "bip-0141.mediawiki", mediawikiBIP)
	writeFile(t, dir, "bip-0002.md", markdownBIP)
	writeFile(t, dir, "README.mediawiki", "not a bip")
	writeFile(t, dir, "bip-0001.txt", "wrong suffix")
	if err := os.Mkdir(filepath.Join(dir, "bip-0003.md"), 0o755); err != nil {
		t.Fatal(err)
	}

	files, err := FindFiles(dir)
	if err != nil {
		t.Fatalf("FindFiles: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("expected 2 files, got %d: %v", len(files), files)
	}
	if filepath.Base(files[0]) != "bip-0002.md" || filepath.Base(files[1]) != "bip-0141.mediawiki" {
		t.Errorf("unexpected files: %v", files)
	}
}

func TestFindFilesMissingDir(t *testing.T) {
	if _, err := FindFiles(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("expected error for missing directory")
	}
}

func TestExtractPreamble(t *testing.T) {
	dir := t.TempDir()

	t.Run("mediawiki", func(t *testing.T) {
		path := writeFile(t, dir, "bip-0141.mediawiki", mediawikiBIP)
		lines, err := ExtractPreamble(path)
		if err != nil {
			t.Fatalf("ExtractPreamble: %v", err)
		}
		if len(lines) != 9 {
			t.Fatalf("expected 9 preamble lines, got %d: %v", len(lines), lines)
		}
		// The block regexp eats the whitespace after <pre>, so the first
		// line starts at its field name.
		if lines[0] != "BIP: 141" {
			t.Errorf("first line = %q", lines[0])
		}
	})

	t.Run("markdown", func(t *testing.T) {
		path := writeFile(t, dir, "bip-0002.md", markdownBIP)
		lines, err := ExtractPreamble(path)
		if err != nil {
			t.Fatalf("ExtractPreamble: %v", err)
		}
		if len(lines) != 5 {
			t.Fatalf("expected 5 preamble lines, got %d: %v", len(lines), lines)
		}
	})

	t.Run("no preamble", func(t *testing.T) {
		path := writeFile(t, dir, "bip-0003.mediawiki", "== No block here ==\n")
		lines, err := ExtractPreamble(path)
		if err != nil {
			t.Fatalf("ExtractPreamble: %v", err)
		}
		if lines != nil {
			t.Errorf("expected nil lines, got %v", lines)
		}
	})

	t.Run("unsupported suffix", func(t *testing.T) {
		path := writeFile(t, dir, "bip-0004.txt", "whatever")
		if _, err := ExtractPreamble(path); err == nil {
			t.Error("expected error for unsupported suffix")
		}
	})
}

func TestParsePreamble(t *testing.T) {
	lines := []string{
		"  BIP: 141",
		"  Title: Segregated Witness (Consensus layer)",
		"  Author: Eric Lombrozo <elombrozo@gmail.com>",
		"          Johnson Lau <jl2012@xbt.hk>",
		"  Created: 2015-12-21",
	}

	fields := ParsePreamble(lines)

	if fields["BIP"] != "141" {
		t.Errorf("BIP = %q", fields["BIP"])
	}
	if fields["Title"] != "Segregated Witness (Consensus layer)" {
		t.Errorf("Title = %q", fields["Title"])
	}
	if fields["Author"] != "Eric Lombrozo and Johnson Lau" {
		t.Errorf("Author = %q", fields["Author"])
	}
	if fields["Created"] != "2015-12-21" {
		t.Errorf("Created = %q", fields["Created"])
	}
}

func TestParsePreambleMultilineValue(t *testing.T) {
	lines := []string{
		"  Title: A very long title",
		"         that wraps onto a second line",
		"  Status: Draft",
	}

	fields := ParsePreamble(lines)
	want := "A very long title that wraps onto a second line"
	if fields["Title"] != want {
		t.Errorf("Title = %q, want %q", fields["Title"], want)
	}
}

func TestStripEmail(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Pieter Wuille <pieter.wuille@gmail.com>", "Pieter Wuille"},
		{"No Email Here", "No Email Here"},
		{"<only@email.org>", ""},
	}
	for _, tt := range tests {
		if got := StripEmail(tt.in); got != tt.want {
			t.Errorf("StripEmail(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "bip-0141.mediawiki", mediawikiBIP)
	writeFile(t, dir, "bip-0002.md", markdownBIP)
	// Preamble present but missing the Created field.
	writeFile(t, dir, "bip-0009.mediawiki", "<pre>\n  BIP: 9\n  Title: Version bits\n  Author: Pieter Wuille\n</pre>\n")
	// No preamble at all: skipped without a warning.
	writeFile(t, dir, "bip-0010.mediawiki", "== nothing ==\n")

	ctx, logBuf := logging.NewTestContext(logging.Flags{})

	var progress []Progress
	docs, err := Load(ctx, dir, func(p Progress) { progress = append(progress, p) })
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if len(docs) != 2 {
		t.Fatalf("expected 2 documents, got %d", len(docs))
	}
	if docs[0].Number != 2 || docs[1].Number != 141 {
		t.Errorf("documents not sorted by number: %+v", docs)
	}
	if docs[1].Title != "Segregated Witness (Consensus layer)" {
		t.Errorf("Title = %q", docs[1].Title)
	}
	if docs[1].Year != "2015" {
		t.Errorf("Year = %q, want 2015", docs[1].Year)
	}
	if docs[1].Authors != "Eric Lombrozo and Johnson Lau and Pieter Wuille" {
		t.Errorf("Authors = %q", docs[1].Authors)
	}
	if docs[0].File != "bip-0002.md" {
		t.Errorf("File = %q", docs[0].File)
	}

	if len(progress) != 4 {
		t.Errorf("expected 4 progress reports, got %d", len(progress))
	}
	parsed := 0
	for _, p := range progress {
		if p.Parsed {
			parsed++
		}
	}
	if parsed != 2 {
		t.Errorf("expected 2 parsed reports, got %d", parsed)
	}

	logs := logBuf.String()
	if !strings.Contains(logs, "bip-0009.mediawiki") {
		t.Errorf("expected a warning about bip-0009.mediawiki, got %q", logs)
	}
	if strings.Contains(logs, "bip-0010.mediawiki") {
		t.Errorf("file without preamble should be skipped silently, got %q", logs)
	}
}

func TestLoadNoFiles(t *testing.T) {
	_, err := Load(context.Background(), t.TempDir(), nil)
	if err == nil || !strings.Contains(err.Error(), "no BIP files") {
		t.Errorf("expected no-files error, got %v", err)
	}
}

func TestLoadNoUsableEntries(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "bip-0001.mediawiki", "== no preamble ==\n")

	_, err := Load(context.Background(), dir, nil)
	if err == nil || !strings.Contains(err.Error(), "no usable BIP entries") {
		t.Errorf("expected no-usable-entries error, got %v", err)
	}
}
