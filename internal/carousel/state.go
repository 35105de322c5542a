package carousel

// Phase is the state of the position machine.
type Phase int

const (
	// PhaseIdle means the offset equals the committed index's offset.
	PhaseIdle Phase = iota
	// PhaseDragging means the offset follows a live gesture.
	PhaseDragging
	// PhaseSettling means the host is animating toward a committed index.
	PhaseSettling
	// PhaseExternalJump means an index was committed from outside a gesture
	// and the scroll command is waiting out the settle grace period.
	PhaseExternalJump
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseDragging:
		return "dragging"
	case PhaseSettling:
		return "settling"
	case PhaseExternalJump:
		return "jump"
	default:
		return "unknown"
	}
}

// PositionState is the single source of truth for where the carousel is.
// Offset excludes the leading content inset.
type PositionState struct {
	Offset       float64
	CurrentIndex int
}

// Position owns PositionState and the transitions between phases.
// It is not safe for concurrent use; callers drive it from one event loop.
type Position struct {
	geometry Geometry
	count    int
	state    PositionState
	phase    Phase
	session  GestureSession

	// jumpGen identifies the latest pending external jump. Bumping it
	// invalidates any deferred jump already scheduled.
	jumpGen uint64
}

// NewPosition creates a machine resting at index.
func NewPosition(g Geometry, index, count int) *Position {
	index = clampIndex(index, count)
	return &Position{
		geometry: g,
		count:    count,
		state: PositionState{
			Offset:       g.SnapOffset(index),
			CurrentIndex: index,
		},
	}
}

// State returns a copy of the current position.
func (p *Position) State() PositionState { return p.state }

// Phase returns the current phase.
func (p *Position) Phase() Phase { return p.phase }

// Geometry returns the geometry the machine currently uses.
func (p *Position) Geometry() Geometry { return p.geometry }

// Count returns the number of items.
func (p *Position) Count() int { return p.count }

// Progress is the offset in units of item width, recomputed on every call.
func (p *Position) Progress() float64 {
	return p.geometry.Progress(p.state.Offset)
}

// CommittedOffset is the offset of the committed index.
func (p *Position) CommittedOffset() float64 {
	return p.geometry.SnapOffset(p.state.CurrentIndex)
}

// Capture starts a gesture session from any phase. The session is pinned to
// whatever index is committed now, and any pending external jump is dropped
// because the gesture takes ownership of the scroll position.
func (p *Position) Capture() GestureSession {
	p.jumpGen++
	p.phase = PhaseDragging
	p.session = GestureSession{
		CommittedOffset: p.CommittedOffset(),
		StartIndex:      p.state.CurrentIndex,
	}
	return p.session
}

// Drag applies live displacement dx. It reports false unless a gesture is
// in progress. The committed index is never touched.
func (p *Position) Drag(dx float64) (float64, bool) {
	if p.phase != PhaseDragging {
		return 0, false
	}
	p.state.Offset = p.session.ResolveMove(dx)
	return p.state.Offset, true
}

// Release commits target and enters Settling. Offset and index change together.
func (p *Position) Release(target int) bool {
	if p.phase != PhaseDragging {
		return false
	}
	p.commit(target)
	p.phase = PhaseSettling
	return true
}

// Concede ends a gesture without committing, as when an ancestor takes it over.
func (p *Position) Concede() bool {
	if p.phase != PhaseDragging {
		return false
	}
	p.state.Offset = p.CommittedOffset()
	p.phase = PhaseIdle
	return true
}

// RequestJump commits index on behalf of an external request. It returns a
// generation for CompleteJump and whether a deferred scroll should be
// scheduled at all. Requests for the committed index are no-ops.
//
// While dragging the new index is committed and the session re-pinned to it,
// but nothing is scheduled: the release will settle the position instead.
func (p *Position) RequestJump(index int) (gen uint64, schedule bool) {
	index = clampIndex(index, p.count)
	if index == p.state.CurrentIndex {
		return p.jumpGen, false
	}

	if p.phase == PhaseDragging {
		p.state.CurrentIndex = index
		p.session.CommittedOffset = p.CommittedOffset()
		return p.jumpGen, false
	}

	p.jumpGen++
	p.commit(index)
	p.phase = PhaseExternalJump
	return p.jumpGen, true
}

// CompleteJump moves a pending jump into Settling and returns the index to
// scroll to. Stale generations are rejected.
func (p *Position) CompleteJump(gen uint64) (int, bool) {
	if p.phase != PhaseExternalJump || gen != p.jumpGen {
		return 0, false
	}
	p.phase = PhaseSettling
	return p.state.CurrentIndex, true
}

// Settled marks the end of a settle animation.
func (p *Position) Settled() bool {
	if p.phase != PhaseSettling {
		return false
	}
	p.phase = PhaseIdle
	return true
}

// Resize swaps in a new geometry and re-derives the offset from the
// committed index, so the same item stays in place under the new width.
func (p *Position) Resize(g Geometry) float64 {
	p.geometry = g
	p.state.Offset = p.CommittedOffset()
	if p.phase == PhaseDragging {
		p.session.CommittedOffset = p.state.Offset
	}
	return p.state.Offset
}

// SetCount changes the number of items, clamping the committed index when the
// list shrinks. It reports whether the committed index moved.
func (p *Position) SetCount(count int) bool {
	p.count = count
	index := clampIndex(p.state.CurrentIndex, count)
	if index == p.state.CurrentIndex {
		return false
	}
	p.commit(index)
	if p.phase == PhaseDragging {
		p.session.CommittedOffset = p.state.Offset
	}
	return true
}

func (p *Position) commit(index int) {
	p.state.CurrentIndex = index
	p.state.Offset = p.CommittedOffset()
}
