package tui

import (
	"math"
	"slices"

	"github.com/juanibiapina/sideswipe/internal/carousel"
)

// viewableIndices returns the items that count as viewable with the strip
// scrolled to position. An item is viewable when it is entirely inside the
// viewport or covers at least threshold percent of it.
func viewableIndices(g carousel.Geometry, count int, position, viewport, threshold float64) []int {
	if g.ItemWidth <= 0 || viewport <= 0 || count == 0 {
		return nil
	}

	windowStart := position
	windowEnd := position + viewport

	first := int(math.Floor((windowStart - g.ContentOffset) / g.ItemWidth))
	last := int(math.Ceil((windowEnd - g.ContentOffset) / g.ItemWidth))
	first = max(first, 0)
	last = min(last, count-1)

	var viewable []int
	for i := first; i <= last; i++ {
		start := g.ContentOffset + g.ItemWidth*float64(i)
		end := start + g.ItemWidth

		overlap := math.Min(end, windowEnd) - math.Max(start, windowStart)
		if overlap <= 0 {
			continue
		}

		entirelyVisible := start >= windowStart && end <= windowEnd
		if entirelyVisible || overlap/viewport*100 >= threshold {
			viewable = append(viewable, i)
		}
	}
	return viewable
}

// viewabilityTracker debounces viewable sets: a set is only reported once
// it has stayed unchanged for the minimum view time.
type viewabilityTracker struct {
	gen        uint64
	pending    []int
	hasPending bool
	reported   []int
}

// observe records the latest viewable set. When it starts a new dwell it
// returns the generation to pass to fire once the dwell elapses.
func (t *viewabilityTracker) observe(viewable []int) (uint64, bool) {
	if t.hasPending && slices.Equal(viewable, t.pending) {
		return t.gen, false
	}

	if slices.Equal(viewable, t.reported) {
		if t.hasPending {
			t.gen++
			t.hasPending = false
			t.pending = nil
		}
		return t.gen, false
	}

	t.gen++
	t.pending = slices.Clone(viewable)
	t.hasPending = true
	return t.gen, true
}

// fire reports the pending set if it is still the one generation gen saw.
func (t *viewabilityTracker) fire(gen uint64, key func(int) string) (*carousel.ViewabilityEvent, bool) {
	if gen != t.gen || !t.hasPending {
		return nil, false
	}

	ev := &carousel.ViewabilityEvent{}
	for _, i := range t.pending {
		ev.ViewableItems = append(ev.ViewableItems, carousel.ViewToken{Index: i, Key: key(i)})
		if !slices.Contains(t.reported, i) {
			ev.Changed = append(ev.Changed, carousel.ViewToken{Index: i, Key: key(i)})
		}
	}
	for _, i := range t.reported {
		if !slices.Contains(t.pending, i) {
			ev.Changed = append(ev.Changed, carousel.ViewToken{Index: i, Key: key(i)})
		}
	}

	t.reported = t.pending
	t.pending = nil
	t.hasPending = false
	return ev, true
}
