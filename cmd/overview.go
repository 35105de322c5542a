package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var overviewCmd = &cobra.Command{
	Use:   "overview",
	Short: "Show overview and common usage patterns",
	Long:  `Display an overview of sideswipe commands and common usage patterns.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), `sideswipe - Horizontally Paging Carousel

VIEWING
  sideswipe view <deck.toml>                 Page through a deck
  sideswipe view --item "A" --item "B"       Page through ad-hoc items
  sideswipe view <deck> --index 3            Open at an item (0-based)
  sideswipe view <deck> --watch              Reload when the file changes

INSPECTING
  sideswipe resolve --width 300 --count 5 --index 2 --dx -160
                                             Where a release settles
  sideswipe layout <deck> --width 300        Offset of every item

POSITIONS
  sideswipe positions                        List remembered positions
  sideswipe positions --forget <deck>        Forget a deck's position

A deck is a TOML file with one [[item]] table per page:
  title = "Talk"
  [[item]]
  title = "Intro"
  body = "..."

Use 'sideswipe <command> --help' for details.`)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(overviewCmd)
}
