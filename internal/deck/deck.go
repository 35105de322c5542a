package deck

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Deck is an ordered list of carousel items
type Deck struct {
	Title string `toml:"title"`
	Items []Item `toml:"item"`

	// Source identifies the deck for resume positions; empty for ad-hoc decks
	Source string `toml:"-"`
}

// Item is a single carousel page
type Item struct {
	Title string `toml:"title"`
	Body  string `toml:"body"`
}

// ErrEmpty is returned for a deck with no items
var ErrEmpty = errors.New("deck has no items")

// Read parses a TOML deck file:
//
//	title = "Slides"
//
//	[[item]]
//	title = "First"
//	body = "..."
func Read(path string) (*Deck, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read deck: %w", err)
	}

	var d Deck
	if err := toml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("failed to parse deck %s: %w", path, err)
	}
	if len(d.Items) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrEmpty)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	d.Source = abs
	if d.Title == "" {
		d.Title = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	return &d, nil
}

// FromStrings builds an ad-hoc deck with one item per string.
// The first line of each string becomes the item title.
func FromStrings(texts []string) (*Deck, error) {
	if len(texts) == 0 {
		return nil, ErrEmpty
	}

	d := &Deck{Title: "sideswipe"}
	for _, text := range texts {
		title, body, _ := strings.Cut(text, "\n")
		d.Items = append(d.Items, Item{Title: title, Body: body})
	}
	return d, nil
}

// Titles returns the item titles in order
func (d *Deck) Titles() []string {
	titles := make([]string, len(d.Items))
	for i, item := range d.Items {
		titles[i] = item.Title
	}
	return titles
}

// Text is the plain-text form of an item, as copied to the clipboard
func (i Item) Text() string {
	if i.Body == "" {
		return i.Title
	}
	return i.Title + "\n\n" + i.Body
}
