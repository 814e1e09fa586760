package display

import (
	"encoding/json"
	"io"
)

// OutputJSON writes pretty-printed JSON to the given writer.
func OutputJSON(w io.Writer, data any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// EntryJSON is the JSON shape of one BIP entry in `bips2bib list --json`.
type EntryJSON struct {
	Number  int    `json:"number"`
	Title   string `json:"title"`
	Authors string `json:"author"`
	Year    string `json:"year"`
	URL     string `json:"url"`
	Alias   string `json:"alias,omitempty"`
}

// GenerateJSON summarizes a generation run for --json output.
type GenerateJSON struct {
	Output  string `json:"output"`
	Entries int    `json:"entries"`
	Skipped int    `json:"skipped"`
}

// TitleJSON is the JSON shape of `bips2bib title --json`.
type TitleJSON struct {
	Input string `json:"input"`
	Title string `json:"title"`
}
