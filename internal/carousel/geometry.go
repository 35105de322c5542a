package carousel

import "math"

// Layout describes where an item sits along the scroll axis.
type Layout struct {
	Offset float64
	Length float64
	Index  int
}

// Geometry maps item indices to scroll offsets for a fixed item width and
// leading content inset. It holds no derived state, so a width change is just
// a new Geometry value.
type Geometry struct {
	ItemWidth     float64
	ContentOffset float64
}

// OffsetForIndex returns the content offset at which item index starts.
func (g Geometry) OffsetForIndex(index int) float64 {
	return g.ItemWidth*float64(index) + g.ContentOffset
}

// LayoutForIndex returns the layout of item index, letting the host place
// items without measuring them.
func (g Geometry) LayoutForIndex(index int) Layout {
	return Layout{
		Offset: g.OffsetForIndex(index),
		Length: g.ItemWidth,
		Index:  index,
	}
}

// IndexForOffset is the inverse of OffsetForIndex, rounding to the nearest item.
func (g Geometry) IndexForOffset(offset float64) int {
	return int(jsRound((offset - g.ContentOffset) / g.ItemWidth))
}

// SnapOffset returns the scroll offset that shows item index at the leading edge.
// It is the offset stored in PositionState, excluding the content inset.
func (g Geometry) SnapOffset(index int) float64 {
	return g.ItemWidth * float64(index)
}

// Progress expresses a scroll offset in units of item width.
func (g Geometry) Progress(offset float64) float64 {
	return offset / g.ItemWidth
}

// jsRound rounds half toward positive infinity, so -0.5 becomes 0 rather than -1.
func jsRound(x float64) float64 {
	return math.Floor(x + 0.5)
}
