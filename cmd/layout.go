package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/juanibiapina/sideswipe/internal/carousel"
	"github.com/juanibiapina/sideswipe/internal/deck"
	"github.com/spf13/cobra"
)

var (
	layoutCount  int
	layoutWidth  float64
	layoutOffset float64
	layoutJSON   bool
)

var layoutCmd = &cobra.Command{
	Use:               "layout [deck.toml]",
	Short:             "Show where every item of a deck sits",
	ValidArgsFunction: completeDecks,
	Long: `Show the layout of every item for a page width.

offset is where the item starts in the content, including --offset.
snap is the scroll offset at which the item is the current page.

Without a deck file, --count untitled items are laid out.

Output format:
  <index>  <offset>  <length>  <snap>  <title>`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if layoutWidth <= 0 {
			return fmt.Errorf("--width must be positive")
		}

		var d *deck.Deck
		switch {
		case len(args) == 1:
			var err error
			d, err = deck.Read(args[0])
			if err != nil {
				return err
			}
		case layoutCount > 0:
			d = deck.Untitled(layoutCount)
		default:
			return fmt.Errorf("pass a deck file or --count")
		}

		rows := d.Layout(carousel.Geometry{ItemWidth: layoutWidth, ContentOffset: layoutOffset})

		if layoutJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(rows)
		}

		out := cmd.OutOrStdout()
		for _, row := range rows {
			fmt.Fprintf(out, "%4d  %8g  %6g  %8g  %s\n", row.Index, row.Offset, row.Length, row.SnapOffset, row.Title)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(layoutCmd)
	layoutCmd.Flags().IntVarP(&layoutCount, "count", "n", 0,
		"Number of untitled items when no deck is given")
	layoutCmd.Flags().Float64VarP(&layoutWidth, "width", "w", 0,
		"Page width")
	layoutCmd.Flags().Float64Var(&layoutOffset, "offset", 0,
		"Content offset of the first item")
	layoutCmd.Flags().BoolVar(&layoutJSON, "json", false,
		"Output in JSON format")
	layoutCmd.MarkFlagRequired("width")
}
