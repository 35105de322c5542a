// Package carousel implements a horizontally paging carousel: geometry,
// gesture arbitration, release resolution and the position state machine
// that keeps a continuous offset in step with a committed index.
//
// The package draws nothing. A HostList renders the items and animates the
// scroll commands the carousel issues.
package carousel

import (
	"fmt"
	"log/slog"
	"time"
)

// DefaultSettleGrace is how long an external index change waits before the
// host is told to scroll, giving the render pass after a commit time to land.
const DefaultSettleGrace = 200 * time.Millisecond

// HostList is the list that actually displays the items. Scroll commands are
// fire and forget; a newer command supersedes an older one.
type HostList interface {
	ScrollToOffset(offset float64, animated bool)
	ScrollToIndex(index int, animated bool, viewOffset float64)
}

// Scheduler runs f on the caller's event loop after d has elapsed.
type Scheduler interface {
	AfterFunc(d time.Duration, f func())
}

// ItemContext is what RenderItem receives for each item.
type ItemContext[T any] struct {
	Item         T
	CurrentIndex int
	ItemIndex    int
	ItemCount    int
	Progress     float64
}

// Config holds the per-render inputs of a carousel. It is never mutated by
// the carousel.
type Config[T any] struct {
	Items []T
	Index int

	// ItemWidth is the page width. Zero means the host's default width.
	ItemWidth     float64
	ContentOffset float64

	// CaptureThreshold is the horizontal travel a gesture must exceed to be
	// captured. Zero captures any horizontal movement.
	CaptureThreshold float64
	DragThreshold    float64

	// UseNativeDriver is passed through to the host as an animation hint.
	UseNativeDriver bool

	// SettleGrace delays the scroll that follows an external index change.
	SettleGrace time.Duration

	ExtractKey    func(item T, index int) string
	RenderItem    func(ctx ItemContext[T]) string
	ShouldCapture Predicate
	ShouldRelease Predicate
	OnIndexChange func(index int)
}

// DefaultExtractKey keys items by position.
func DefaultExtractKey[T any](_ T, index int) string {
	return fmt.Sprintf("sideswipe-carousel-item-%d", index)
}

func (c Config[T]) withDefaults(defaultWidth float64) Config[T] {
	if c.ItemWidth == 0 {
		c.ItemWidth = defaultWidth
	}
	if c.ExtractKey == nil {
		c.ExtractKey = DefaultExtractKey[T]
	}
	if c.RenderItem == nil {
		c.RenderItem = func(ItemContext[T]) string { return "" }
	}
	if c.ShouldCapture == nil {
		c.ShouldCapture = CaptureBeyond(c.CaptureThreshold)
	}
	if c.ShouldRelease == nil {
		c.ShouldRelease = NeverYield
	}
	if c.OnIndexChange == nil {
		c.OnIndexChange = func(int) {}
	}
	return c
}

// Carousel is the widget boundary. It translates gestures, external index
// requests and viewability reports into PositionState transitions and host
// scroll commands.
type Carousel[T any] struct {
	cfg      Config[T]
	host     HostList
	sched    Scheduler
	position *Position
}

// New creates a carousel resting at cfg.Index. defaultWidth is the host's
// viewport width, used when cfg.ItemWidth is zero.
func New[T any](cfg Config[T], host HostList, sched Scheduler, defaultWidth float64) *Carousel[T] {
	cfg = cfg.withDefaults(defaultWidth)
	g := Geometry{ItemWidth: cfg.ItemWidth, ContentOffset: cfg.ContentOffset}
	return &Carousel[T]{
		cfg:      cfg,
		host:     host,
		sched:    sched,
		position: NewPosition(g, cfg.Index, len(cfg.Items)),
	}
}

// Index returns the committed index.
func (c *Carousel[T]) Index() int { return c.position.State().CurrentIndex }

// Offset returns the current logical offset.
func (c *Carousel[T]) Offset() float64 { return c.position.State().Offset }

// Progress returns the offset in units of item width.
func (c *Carousel[T]) Progress() float64 { return c.position.Progress() }

// Phase returns the state machine's phase.
func (c *Carousel[T]) Phase() Phase { return c.position.Phase() }

// Geometry returns the current geometry.
func (c *Carousel[T]) Geometry() Geometry { return c.position.Geometry() }

// Len returns the number of items.
func (c *Carousel[T]) Len() int { return len(c.cfg.Items) }

// Item returns item index.
func (c *Carousel[T]) Item(index int) T { return c.cfg.Items[index] }

// UseNativeDriver reports the animation backend hint.
func (c *Carousel[T]) UseNativeDriver() bool { return c.cfg.UseNativeDriver }

// ItemLayout is the host's layout lookup for item index.
func (c *Carousel[T]) ItemLayout(index int) Layout {
	return c.position.Geometry().LayoutForIndex(index)
}

// Key returns the key of item index.
func (c *Carousel[T]) Key(index int) string {
	return c.cfg.ExtractKey(c.cfg.Items[index], index)
}

// RenderItem renders item index with the current progress.
func (c *Carousel[T]) RenderItem(index int) string {
	return c.cfg.RenderItem(ItemContext[T]{
		Item:         c.cfg.Items[index],
		CurrentIndex: c.Index(),
		ItemIndex:    index,
		ItemCount:    len(c.cfg.Items),
		Progress:     c.Progress(),
	})
}

// HandleCapture asks whether the carousel should take over the gesture.
func (c *Carousel[T]) HandleCapture(s GestureState) bool {
	if !c.cfg.ShouldCapture(s) {
		return false
	}
	session := c.position.Capture()
	slog.Debug("carousel: capture", "index", session.StartIndex, "dx", s.DX)
	return true
}

// HandleMove makes the host follow the pointer one to one.
func (c *Carousel[T]) HandleMove(s GestureState) {
	offset, ok := c.position.Drag(s.DX)
	if !ok {
		return
	}
	c.host.ScrollToOffset(offset, false)
}

// HandleRelease resolves the gesture into a target index, commands the host
// to settle there and reports the index. The callback fires on every
// release, even when the index did not change.
func (c *Carousel[T]) HandleRelease(s GestureState) int {
	if c.position.Phase() != PhaseDragging {
		return c.Index()
	}

	g := c.position.Geometry()
	target := Resolve(c.Index(), g.ItemWidth, c.cfg.DragThreshold, s.DX, s.VX, len(c.cfg.Items))
	slog.Debug("carousel: release", "from", c.Index(), "to", target, "dx", s.DX, "vx", s.VX)

	c.host.ScrollToIndex(target, true, c.cfg.ContentOffset)
	c.position.Release(target)
	c.cfg.OnIndexChange(target)
	return target
}

// HandleTerminationRequest is called when an ancestor wants the gesture.
// It returns true when the carousel yields, in which case the drag ends
// without a commit and the host springs back to the committed offset.
func (c *Carousel[T]) HandleTerminationRequest(s GestureState) bool {
	if !c.cfg.ShouldRelease(s) {
		return false
	}
	if c.position.Concede() {
		slog.Debug("carousel: gesture conceded", "index", c.Index())
		c.host.ScrollToOffset(c.position.CommittedOffset(), true)
	}
	return true
}

// SetIndex applies an externally requested index. The index is committed at
// once; the scroll follows after the settle grace period. Requests for the
// committed index do nothing.
func (c *Carousel[T]) SetIndex(index int) {
	gen, schedule := c.position.RequestJump(index)
	if !schedule {
		return
	}
	slog.Debug("carousel: external jump", "index", c.Index(), "grace", c.cfg.SettleGrace)
	c.sched.AfterFunc(c.cfg.SettleGrace, func() {
		target, ok := c.position.CompleteJump(gen)
		if !ok {
			return
		}
		c.host.ScrollToIndex(target, true, c.cfg.ContentOffset)
	})
}

// SetItemWidth re-derives the geometry for a new width. The committed index
// is kept and no index change is reported. A non-positive width, or the
// current one, is ignored.
func (c *Carousel[T]) SetItemWidth(width float64) {
	g := c.position.Geometry()
	if width <= 0 || width == g.ItemWidth {
		return
	}
	g.ItemWidth = width
	offset := c.position.Resize(g)
	c.host.ScrollToOffset(offset, false)
	// The unanimated scroll replaces any settle in flight
	c.position.Settled()
}

// SetItems replaces the item list, clamping the committed index if needed.
func (c *Carousel[T]) SetItems(items []T) {
	c.cfg.Items = items
	if c.position.SetCount(len(items)) {
		c.host.ScrollToOffset(c.position.State().Offset, false)
		c.position.Settled()
	}
}

// ViewableItemsChanged forwards the host's viewability report. Only an
// event with exactly one viewable item produces a callback.
func (c *Carousel[T]) ViewableItemsChanged(ev *ViewabilityEvent) {
	index, ok := SingleViewable(ev)
	if !ok {
		return
	}
	c.cfg.OnIndexChange(index)
}

// AnimationComplete tells the carousel the host finished settling.
func (c *Carousel[T]) AnimationComplete() {
	c.position.Settled()
}
