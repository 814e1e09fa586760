// Package titlecase normalizes free-text BIP titles into a citation-safe
// title-cased form, loosely following the Chicago Manual of Style.
package titlecase

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// punctuation is stripped from part edges before table lookups.
const punctuation = ".,!? \t;:\"'()[]{}"

// class tags the shape of a part. Shape checks run before any positional
// rule, so an acronym or version string keeps its casing anywhere in the
// title.
type class int

const (
	classOrdinary class = iota
	classAcronym
	classCall
	classMixedCase
	classDigitBearing
)

// position carries the flags the positional rules need for one part.
type position struct {
	titleFirst bool // first part of the first word
	titleLast  bool // last part of the last word
	wordFirst  bool // first part of a hyphenated/slashed word
}

// Title converts text to title case.
//
// Here a "part" is a segment of a hyphenated/slashed word:
//   - the first part of the first word is never touched (lowercase is
//     likely there for a reason)
//   - the last word is always capitalized, as are major words
//   - articles, coordinating conjunctions, and prepositions are lowercased
//   - parts containing digits (like "v1+"), fully capitalized parts of
//     length >= 2 (acronyms like "BIP"), mixed-case parts (like "SegWit"),
//     and parts containing "()" (like "tr()") are preserved verbatim
//   - the first part of a compound word is capitalized; the other parts
//     follow the rules above
//
// When wrap is true, preserved parts are wrapped in {} so BibTeX keeps
// their casing, as are proper names such as "Bitcoin" and "CoinJoin".
// A few known-problematic titles get literal fixups at the end.
//
// The function is total: any string is accepted and the empty string maps
// to itself.
func Title(text string, wrap bool) string {
	words := strings.Fields(text)
	rendered := make([]string, 0, len(words))

	for i, word := range words {
		parts, seps := splitParts(word)
		multi := len(parts) > 1

		var b strings.Builder
		for j, part := range parts {
			b.WriteString(renderPart(part, position{
				titleFirst: i == 0 && j == 0,
				titleLast:  i == len(words)-1 && j == len(parts)-1,
				wordFirst:  multi && j == 0,
			}, wrap))
			if j < len(seps) {
				b.WriteString(seps[j])
			}
		}
		rendered = append(rendered, b.String())
	}

	out := strings.Join(rendered, " ")
	for _, sub := range specialCases {
		out = strings.ReplaceAll(out, sub.old, sub.new)
	}
	return out
}

// renderPart decides the rendering of a single part. The checks form an
// ordered cascade; the first matching rule wins.
func renderPart(part string, pos position, wrap bool) string {
	if classify(part) != classOrdinary {
		if wrap && hasUpper(part) {
			return "{" + part + "}"
		}
		return part
	}

	// The opening token keeps whatever casing the author chose, and is
	// never wrapped.
	if pos.titleFirst {
		return part
	}

	core, prefix, suffix := stripEdges(part)

	if canonical, ok := properNames[strings.ToLower(core)]; ok {
		if wrap {
			return "{" + prefix + canonical + suffix + "}"
		}
		return prefix + canonical + suffix
	}

	if pos.titleLast || pos.wordFirst || !smallWords[strings.ToLower(core)] {
		return prefix + capitalize(core) + suffix
	}
	return prefix + strings.ToLower(core) + suffix
}

// classify returns the shape class of a part. Checks run in fixed
// priority order; the first match wins.
func classify(part string) class {
	switch {
	case isAcronym(part):
		return classAcronym
	case strings.Contains(part, "()"):
		return classCall
	case isMixedCase(part):
		return classMixedCase
	case containsDigit(part):
		return classDigitBearing
	default:
		return classOrdinary
	}
}

// stripEdges splits a part into its leading punctuation, clean core, and
// trailing punctuation. "hello," gives ("hello", "", ","); `"world"` gives
// ("world", `"`, `"`).
func stripEdges(part string) (core, prefix, suffix string) {
	trimmed := strings.TrimLeft(part, punctuation)
	prefix = part[:len(part)-len(trimmed)]
	core = strings.TrimRight(trimmed, punctuation)
	suffix = trimmed[len(core):]
	return core, prefix, suffix
}

// isAcronym reports whether part is a fully capitalized token of at least
// two characters, like "BIP" or "P2SH".
func isAcronym(part string) bool {
	return utf8.RuneCountInString(part) >= 2 && isUpper(part)
}

// isMixedCase reports whether part mixes upper and lower case letters in a
// way that is not plain capitalization, like "SegWit" or "CoinJoin".
func isMixedCase(part string) bool {
	runes := []rune(part)
	if len(runes) <= 1 {
		return false
	}

	// Normal capitalization: first rune upper, rest lower (like "Scheme").
	if unicode.IsUpper(runes[0]) && isLower(string(runes[1:])) {
		return false
	}

	if isLower(part) || isUpper(part) {
		return false
	}

	return hasUpper(part) && hasLower(part)
}

// isUpper reports whether s has at least one cased letter and no lowercase
// letters. Digits and punctuation are ignored, so "P2SH" counts.
func isUpper(s string) bool {
	cased := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			cased = true
		}
	}
	return cased
}

// isLower reports whether s has at least one cased letter and no uppercase
// letters.
func isLower(s string) bool {
	cased := false
	for _, r := range s {
		if unicode.IsUpper(r) {
			return false
		}
		if unicode.IsLower(r) {
			cased = true
		}
	}
	return cased
}

func hasUpper(s string) bool {
	for _, r := range s {
		if unicode.IsUpper(r) {
			return true
		}
	}
	return false
}

func hasLower(s string) bool {
	for _, r := range s {
		if unicode.IsLower(r) {
			return true
		}
	}
	return false
}

func containsDigit(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

// capitalize uppercases the first rune and lowercases the rest.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}

// splitParts splits a word on "-" and "/", keeping the separators in
// order. A word may mix both separators.
func splitParts(word string) (parts, seps []string) {
	start := 0
	for i, r := range word {
		if r == '-' || r == '/' {
			parts = append(parts, word[start:i])
			seps = append(seps, string(r))
			start = i + 1
		}
	}
	parts = append(parts, word[start:])
	return parts, seps
}
