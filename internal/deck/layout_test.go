package deck

import (
	"testing"

	"github.com/juanibiapina/sideswipe/internal/carousel"
)

func TestDeck_Layout(t *testing.T) {
	d := &Deck{Items: []Item{{Title: "A"}, {Title: "B"}, {Title: "C"}}}

	rows := d.Layout(carousel.Geometry{ItemWidth: 300, ContentOffset: 10})
	if len(rows) != 3 {
		t.Fatalf("len(rows) = %d, want 3", len(rows))
	}

	want := LayoutRow{
		Index:      2,
		Key:        "sideswipe-carousel-item-2",
		Title:      "C",
		Offset:     610,
		Length:     300,
		SnapOffset: 600,
	}
	if rows[2] != want {
		t.Errorf("rows[2] = %+v, want %+v", rows[2], want)
	}
}

func TestUntitled(t *testing.T) {
	d := Untitled(3)

	titles := d.Titles()
	if len(titles) != 3 || titles[0] != "Item 1" || titles[2] != "Item 3" {
		t.Errorf("Titles() = %v", titles)
	}
	if d.Source != "" {
		t.Errorf("Source = %q, want empty", d.Source)
	}
}
