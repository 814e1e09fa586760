// Package bip reads bibliographic metadata out of a bitcoin/bips
// repository checkout. Each BIP file carries a structured preamble block
// with Title, Author, Created, and BIP number fields.
package bip

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/real-or-random/bips2bib/internal/logging"
)

// Document is the bibliographic metadata extracted from one BIP file.
type Document struct {
	Number  int
	Title   string
	Authors string
	Year    string
	File    string // base filename, e.g. "bip-0141.mediawiki"
}

// Progress reports one file's outcome while loading a corpus.
type Progress struct {
	File   string
	Parsed bool
}

var (
	fileNamePattern = regexp.MustCompile(`^bip-\d+\.(mediawiki|md)$`)
	preamblePre     = regexp.MustCompile(`<pre>\s*((?s).*?)\s*</pre>`)
	preambleFence   = regexp.MustCompile("```((?s).*?)```")
	fieldLine       = regexp.MustCompile(`^\s*([A-Za-z0-9\-]+):\s*(.*)$`)
	emailPattern    = regexp.MustCompile(`<[^>]+>`)
)

// FindFiles returns the BIP source files directly under dir, sorted by
// name. Only files named bip-<number>.mediawiki or bip-<number>.md count.
func FindFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading bips directory: %w", err)
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if fileNamePattern.MatchString(e.Name()) {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	return files, nil
}

// ExtractPreamble returns the preamble lines of a BIP file, with blank
// lines dropped and trailing whitespace trimmed. Mediawiki files carry the
// preamble in a <pre> block, markdown files in a ``` fence. The result is
// nil (with no error) when the file has no preamble block.
func ExtractPreamble(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var block *regexp.Regexp
	switch filepath.Ext(path) {
	case ".mediawiki":
		block = preamblePre
	case ".md":
		block = preambleFence
	default:
		return nil, fmt.Errorf("file %s has unsupported suffix", path)
	}

	m := block.FindSubmatch(data)
	if m == nil {
		return nil, nil
	}

	var lines []string
	for _, line := range strings.Split(string(m[1]), "\n") {
		line = strings.TrimRight(line, " \t\r")
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines, nil
}

// ParsePreamble parses "Key: value" preamble lines into a field map. A
// line that does not start a new field continues the previous one.
// Multi-valued Author fields are joined with " and " after email
// stripping; other multi-valued fields join with a single space.
func ParsePreamble(lines []string) map[string]string {
	fields := make(map[string][]string)
	var key string
	for _, line := range lines {
		if m := fieldLine.FindStringSubmatch(line); m != nil {
			key = m[1]
			if v := strings.TrimSpace(m[2]); v != "" {
				fields[key] = []string{v}
			} else {
				fields[key] = nil
			}
			continue
		}
		if key != "" {
			fields[key] = append(fields[key], strings.TrimSpace(line))
		}
	}

	out := make(map[string]string, len(fields))
	for k, values := range fields {
		var kept []string
		for _, v := range values {
			if v == "" {
				continue
			}
			if k == "Author" {
				v = StripEmail(v)
			}
			kept = append(kept, v)
		}
		if k == "Author" {
			out[k] = strings.Join(kept, " and ")
		} else {
			out[k] = strings.Join(kept, " ")
		}
	}
	return out
}

// StripEmail removes an <email> suffix from an author line.
func StripEmail(author string) string {
	return strings.TrimSpace(emailPattern.ReplaceAllString(author, ""))
}

// Load parses every BIP file under dir into Documents sorted by BIP
// number. Files without a preamble or with missing required fields are
// skipped; the latter logs a warning through the context logger. onFile,
// when non-nil, is called once per file as the scan progresses.
//
// Load fails when dir holds no BIP files at all, or when none of them
// yields a usable entry.
func Load(ctx context.Context, dir string, onFile func(Progress)) ([]Document, error) {
	logger := logging.FromContext(ctx)

	files, err := FindFiles(dir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no BIP files found in directory %q", dir)
	}

	var docs []Document
	for _, path := range files {
		doc, err := parseFile(path)
		if err != nil {
			logger.Warn("skipping file", "file", filepath.Base(path), "err", err)
		}
		if onFile != nil {
			onFile(Progress{File: filepath.Base(path), Parsed: doc != nil})
		}
		if doc == nil {
			continue
		}
		docs = append(docs, *doc)
	}
	if len(docs) == 0 {
		return nil, fmt.Errorf("no usable BIP entries in directory %q", dir)
	}

	sort.Slice(docs, func(i, j int) bool { return docs[i].Number < docs[j].Number })
	return docs, nil
}

// parseFile extracts one Document. It returns (nil, nil) for files without
// a preamble and an error when required fields are missing or malformed.
func parseFile(path string) (*Document, error) {
	lines, err := ExtractPreamble(path)
	if err != nil {
		return nil, err
	}
	if lines == nil {
		return nil, nil
	}
	fields := ParsePreamble(lines)

	numStr := fields["BIP"]
	title := fields["Title"]
	authors := fields["Author"]
	year := fields["Created"]
	if len(year) > 4 {
		year = year[:4]
	}

	num, convErr := strconv.Atoi(numStr)
	if numStr == "" || convErr != nil || num < 0 || title == "" || authors == "" || year == "" {
		return nil, fmt.Errorf("insufficient data: BIP=%q Title=%q Author=%q Year=%q",
			numStr, title, authors, year)
	}

	return &Document{
		Number:  num,
		Title:   title,
		Authors: authors,
		Year:    year,
		File:    filepath.Base(path),
	}, nil
}
