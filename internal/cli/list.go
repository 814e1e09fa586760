package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/real-or-random/bips2bib/internal/bibtex"
	"github.com/real-or-random/bips2bib/internal/config"
	"github.com/real-or-random/bips2bib/internal/display"
	"github.com/real-or-random/bips2bib/internal/titlecase"
)

var listCmd = &cobra.Command{
	Use:   "list <bips-dir>",
	Short: "List the entries a generation run would produce",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		cfg := config.Get()

		docs, _, err := loadCorpus(ctx, args[0], cfg)
		if err != nil {
			return err
		}
		aliases := loadAliases(ctx)

		if jsonOutput {
			entries := make([]display.EntryJSON, 0, len(docs))
			for _, d := range docs {
				entries = append(entries, display.EntryJSON{
					Number:  d.Number,
					Title:   titlecase.Title(d.Title, false),
					Authors: d.Authors,
					Year:    d.Year,
					URL:     bibtex.URL(d),
					Alias:   aliases[d.Number],
				})
			}
			return display.OutputJSON(outWriter, entries)
		}

		if quiet {
			for _, d := range docs {
				out("%d\t%s\n", d.Number, d.Title)
			}
			return nil
		}

		rows := make([][]string, 0, len(docs))
		for _, d := range docs {
			rows = append(rows, []string{
				strconv.Itoa(d.Number),
				titlecase.Title(d.Title, false),
				d.Year,
				d.Authors,
			})
		}
		outln(display.NewTableWithOptions(
			[]string{"BIP", "Title", "Year", "Author"},
			rows,
			display.TableOptions{Title: "BIP entries", NoColor: noColor},
		))
		return nil
	},
}
