package deck

import (
	"strconv"

	"github.com/juanibiapina/sideswipe/internal/carousel"
)

// LayoutRow describes where one item sits in the carousel content
type LayoutRow struct {
	Index      int     `json:"index"`
	Key        string  `json:"key"`
	Title      string  `json:"title"`
	Offset     float64 `json:"offset"`
	Length     float64 `json:"length"`
	SnapOffset float64 `json:"snap_offset"`
}

// Layout returns the layout of every item of d under geometry g
func (d *Deck) Layout(g carousel.Geometry) []LayoutRow {
	rows := make([]LayoutRow, len(d.Items))
	for i, item := range d.Items {
		l := g.LayoutForIndex(i)
		rows[i] = LayoutRow{
			Index:      l.Index,
			Key:        carousel.DefaultExtractKey(item, i),
			Title:      item.Title,
			Offset:     l.Offset,
			Length:     l.Length,
			SnapOffset: g.SnapOffset(i),
		}
	}
	return rows
}

// Untitled builds a deck of count items with numbered titles
func Untitled(count int) *Deck {
	d := &Deck{Title: "untitled"}
	for i := 0; i < count; i++ {
		d.Items = append(d.Items, Item{Title: itemNumber(i)})
	}
	return d
}

func itemNumber(i int) string {
	return "Item " + strconv.Itoa(i+1)
}
