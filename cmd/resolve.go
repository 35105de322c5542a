package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/juanibiapina/sideswipe/internal/carousel"
	"github.com/spf13/cobra"
)

var (
	resolveIndex     int
	resolveWidth     float64
	resolveCount     int
	resolveDX        float64
	resolveVX        float64
	resolveThreshold float64
	resolveJSON      bool
)

// resolveResult is the outcome of a release
type resolveResult struct {
	From  int `json:"from"`
	Index int `json:"index"`
	Pages int `json:"pages"`
}

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Show the index a drag release settles on",
	Long: `Run the release resolver for a drag that started at --index.

--dx is the drag displacement: negative when the pointer moved left, which
reveals later items. --vx is the release velocity in units per millisecond;
every whole unit above the first carries the release one more page.
--threshold is added to the displacement before rounding.

Example:
  sideswipe resolve --index 2 --width 300 --count 5 --dx -160
  2 -> 3 (+1)`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if resolveWidth <= 0 {
			return fmt.Errorf("--width must be positive")
		}
		if resolveCount < 1 {
			return fmt.Errorf("--count must be at least 1")
		}
		if resolveIndex < 0 || resolveIndex >= resolveCount {
			return fmt.Errorf("--index must be in [0, %d]", resolveCount-1)
		}

		target := carousel.Resolve(resolveIndex, resolveWidth, resolveThreshold, resolveDX, resolveVX, resolveCount)
		result := resolveResult{From: resolveIndex, Index: target, Pages: target - resolveIndex}

		if resolveJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%d -> %d (%+d)\n", result.From, result.Index, result.Pages)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(resolveCmd)
	resolveCmd.Flags().IntVar(&resolveIndex, "index", 0,
		"Committed index when the drag started")
	resolveCmd.Flags().Float64Var(&resolveWidth, "width", 0,
		"Page width")
	resolveCmd.Flags().IntVar(&resolveCount, "count", 0,
		"Number of items")
	resolveCmd.Flags().Float64Var(&resolveDX, "dx", 0,
		"Horizontal drag displacement")
	resolveCmd.Flags().Float64Var(&resolveVX, "vx", 0,
		"Horizontal release velocity")
	resolveCmd.Flags().Float64Var(&resolveThreshold, "threshold", 0,
		"Drag threshold")
	resolveCmd.Flags().BoolVar(&resolveJSON, "json", false,
		"Output in JSON format")
	resolveCmd.MarkFlagRequired("width")
	resolveCmd.MarkFlagRequired("count")
}
