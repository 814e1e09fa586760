package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/real-or-random/bips2bib/internal/display"
	"github.com/real-or-random/bips2bib/internal/titlecase"
)

var titleNoWrap bool

var titleCmd = &cobra.Command{
	Use:   "title <text>...",
	Short: "Title-case a string the way generated entries do",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text := strings.Join(args, " ")
		result := titlecase.Title(text, !titleNoWrap)

		if jsonOutput {
			return display.OutputJSON(outWriter, display.TitleJSON{
				Input: text,
				Title: result,
			})
		}
		outln(result)
		return nil
	},
}

func init() {
	titleCmd.Flags().BoolVar(&titleNoWrap, "no-wrap", false, "Do not wrap preserved parts in braces")
}
