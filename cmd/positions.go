package cmd

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"time"

	"github.com/juanibiapina/sideswipe/internal/paths"
	"github.com/juanibiapina/sideswipe/internal/storage"
	"github.com/spf13/cobra"
)

var (
	positionsForget string
	positionsJSON   bool
)

var positionsCmd = &cobra.Command{
	Use:   "positions",
	Short: "List or forget remembered positions",
	Long: `List the last item viewed in each deck, most recent first.

Output format:
  <item>  <updated>  <deck>

Use --forget <deck> to delete a deck's remembered position; the deck then
opens at its first item.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := paths.EnsureStateDir(); err != nil {
			return err
		}

		store, err := storage.Open(paths.GetDatabasePath())
		if err != nil {
			return err
		}
		defer store.Close()

		out := cmd.OutOrStdout()

		if positionsForget != "" {
			deckPath := positionsForget
			if abs, err := filepath.Abs(deckPath); err == nil {
				deckPath = abs
			}
			removed, err := store.Forget(deckPath)
			if err != nil {
				return err
			}
			if !removed {
				return fmt.Errorf("no position remembered for %s", deckPath)
			}
			fmt.Fprintf(out, "Forgot position of %s\n", deckPath)
			return nil
		}

		positions, err := store.Positions()
		if err != nil {
			return err
		}

		if len(positions) == 0 {
			if positionsJSON {
				fmt.Fprintln(out, "[]")
			} else {
				fmt.Fprintln(out, "No positions remembered")
			}
			return nil
		}

		if positionsJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(positions)
		}

		for _, p := range positions {
			fmt.Fprintf(out, "%4d  %-12s  %s\n", p.Index+1, formatRelativeTime(p.UpdatedAt), p.Deck)
		}
		return nil
	},
}

// formatRelativeTime formats a time as "3 mins ago"
func formatRelativeTime(t time.Time) string {
	d := time.Since(t)

	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return plural(int(d.Minutes()), "min")
	case d < 24*time.Hour:
		return plural(int(d.Hours()), "hour")
	default:
		return plural(int(d.Hours()/24), "day")
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}

func init() {
	RootCmd.AddCommand(positionsCmd)
	positionsCmd.Flags().StringVar(&positionsForget, "forget", "",
		"Forget the position of this deck")
	positionsCmd.Flags().BoolVar(&positionsJSON, "json", false,
		"Output in JSON format")
	positionsCmd.RegisterFlagCompletionFunc("forget", completeRememberedDecks)
}
