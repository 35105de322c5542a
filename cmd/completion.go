package cmd

import (
	"os"
	"strconv"
	"strings"

	"github.com/juanibiapina/sideswipe/internal/paths"
	"github.com/juanibiapina/sideswipe/internal/storage"
	"github.com/spf13/cobra"
)

// completeDecks completes deck files on disk
func completeDecks(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return []string{"toml"}, cobra.ShellCompDirectiveFilterFileExt
}

// completeRememberedDecks provides completion for decks with a stored position
func completeRememberedDecks(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	dbPath := paths.GetDatabasePath()
	if _, err := os.Stat(dbPath); err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	store, err := storage.Open(dbPath)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	defer store.Close()

	positions, err := store.Positions()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	var completions []string
	for _, p := range positions {
		if strings.HasPrefix(p.Deck, toComplete) {
			// Format: deck\tdescription (tab-separated for description)
			completions = append(completions, p.Deck+"\titem "+strconv.Itoa(p.Index+1))
		}
	}

	return completions, cobra.ShellCompDirectiveNoFileComp
}
