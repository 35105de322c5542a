package cmd

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/juanibiapina/sideswipe/internal/deck"
	"github.com/juanibiapina/sideswipe/internal/logging"
	"github.com/juanibiapina/sideswipe/internal/paths"
	"github.com/juanibiapina/sideswipe/internal/storage"
	"github.com/juanibiapina/sideswipe/internal/tui"
	"github.com/juanibiapina/sideswipe/internal/watch"
	"github.com/spf13/cobra"
)

var (
	viewItems    []string
	viewIndex    int
	viewWidth    int
	viewNoResume bool
	viewWatch    bool
)

var viewCmd = &cobra.Command{
	Use:               "view [deck.toml]",
	Short:             "Page through a deck in the terminal",
	ValidArgsFunction: completeDecks,
	Long: `Open a deck in an interactive carousel.

Drag a card sideways with the mouse to page; a fast flick skips pages.
The arrow keys, h/l and the mouse wheel step one item at a time.

Without a deck file, each --item flag becomes a page. The first line of an
item is its title.

ItemWidth defaults to the terminal width. The last item viewed in a deck
file is remembered and restored unless --index or --no-resume is given.
With --watch the deck file is re-read whenever it changes on disk.

Keys:
  ←/h →/l   previous/next
  g/G       first/last
  :         go to item
  +/-       change item width
  c         copy item to clipboard
  ?         help
  q         quit`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := loadDeck(args, viewItems)
		if err != nil {
			return err
		}
		if viewWatch && d.Source == "" {
			return errors.New("--watch needs a deck file")
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if viewWidth > 0 {
			cfg.ItemWidth = viewWidth
		}
		if viewNoResume {
			cfg.Resume = false
		}

		if _, err := paths.EnsureStateDir(); err != nil {
			return err
		}

		logs, err := logging.Init(paths.GetLogPath(), cfg.Debug)
		if err != nil {
			return err
		}
		defer logs.Close()

		opts := tui.Options{Deck: d, Config: cfg, Index: viewIndex}
		if cfg.Resume && d.Source != "" {
			store, err := storage.Open(paths.GetDatabasePath())
			if err != nil {
				// Without a store the position is neither restored nor saved
				slog.Warn("view: resume disabled", "error", err)
			} else {
				defer store.Close()
				opts.Store = store
			}
		}

		if viewWatch {
			w, err := watch.New(d.Source, watch.DefaultDelay)
			if err != nil {
				return fmt.Errorf("failed to watch deck: %w", err)
			}
			defer w.Stop()
			opts.Watcher = w
		}

		slog.Info("view: start", "deck", d.Title, "items", len(d.Items), "index", viewIndex)
		return tui.Start(opts)
	},
}

// loadDeck reads the deck named by args, or builds one from items
func loadDeck(args, items []string) (*deck.Deck, error) {
	switch {
	case len(args) == 1 && len(items) > 0:
		return nil, errors.New("give either a deck file or --item, not both")
	case len(args) == 1:
		return deck.Read(args[0])
	case len(items) > 0:
		return deck.FromStrings(items)
	default:
		return nil, fmt.Errorf("nothing to show: pass a deck file or --item")
	}
}

func init() {
	RootCmd.AddCommand(viewCmd)
	viewCmd.Flags().StringArrayVar(&viewItems, "item", nil,
		"Add an item (repeatable)")
	viewCmd.Flags().IntVarP(&viewIndex, "index", "i", -1,
		"Item to open at, 0-based (default: remembered position)")
	viewCmd.Flags().IntVarP(&viewWidth, "width", "w", 0,
		"Item width in cells (default: config or terminal width)")
	viewCmd.Flags().BoolVar(&viewNoResume, "no-resume", false,
		"Neither restore nor remember the position")
	viewCmd.Flags().BoolVar(&viewWatch, "watch", false,
		"Reload the deck when its file changes")
}
