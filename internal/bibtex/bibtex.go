// Package bibtex assembles @techreport entries for BIP documents.
package bibtex

import (
	"fmt"
	"strings"

	"github.com/real-or-random/bips2bib/internal/bip"
	"github.com/real-or-random/bips2bib/internal/titlecase"
)

const reportType = "Bitcoin Improvement Proposal (BIP)"

// texEscapes maps TeX-special characters to their escaped spellings.
var texEscapes = map[rune]string{
	'&':  `\&`,
	'%':  `\%`,
	'$':  `\$`,
	'#':  `\#`,
	'_':  `\_`,
	'{':  `\{`,
	'}':  `\}`,
	'~':  `\textasciitilde{}`,
	'^':  `\textasciicircum{}`,
	'\\': `\textbackslash{}`,
}

// Escape escapes TeX-special characters in s.
func Escape(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if esc, ok := texEscapes[r]; ok {
			b.WriteString(esc)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// escapeTitle escapes TeX-special characters but leaves braces alone: the
// title string carries {...} wrapping from the title-case engine, and
// BibTeX must see those braces verbatim.
func escapeTitle(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if esc, ok := texEscapes[r]; ok && r != '{' && r != '}' {
			b.WriteString(esc)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// URL returns the canonical upstream location of a BIP document.
func URL(doc bip.Document) string {
	return "https://github.com/bitcoin/bips/blob/master/" + doc.File
}

// Entry renders one @techreport entry for doc. The title field is the
// title-cased form with preserved parts wrapped in braces. An alias, when
// present for the BIP number, gives the entry an extra citation id.
func Entry(doc bip.Document, aliases map[int]string) string {
	title := titlecase.Title(doc.Title, true)

	var b strings.Builder
	fmt.Fprintf(&b, "@techreport{bip:%04d,\n", doc.Number)
	if alias, ok := aliases[doc.Number]; ok {
		fmt.Fprintf(&b, "  ids          = {bip:%s},\n", Escape(alias))
	}
	fmt.Fprintf(&b, "  shorthand    = {BIP%d},\n", doc.Number)
	fmt.Fprintf(&b, "  author       = {%s},\n", Escape(doc.Authors))
	fmt.Fprintf(&b, "  title        = {%s},\n", escapeTitle(title))
	fmt.Fprintf(&b, "  year         = {%s},\n", Escape(doc.Year))
	fmt.Fprintf(&b, "  url          = {%s},\n", Escape(URL(doc)))
	fmt.Fprintf(&b, "  type         = {%s},\n", Escape(reportType))
	fmt.Fprintf(&b, "  number       = {%d},\n", doc.Number)
	b.WriteString("}\n")
	return b.String()
}

// Render renders the bibliography for docs in the given order.
func Render(docs []bip.Document, aliases map[int]string) string {
	var b strings.Builder
	for _, doc := range docs {
		b.WriteString(Entry(doc, aliases))
	}
	return b.String()
}
