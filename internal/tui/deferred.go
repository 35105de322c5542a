package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// deferredMsg fires a callback registered with deferredQueue.AfterFunc
type deferredMsg struct {
	id uint64
}

type deferredCall struct {
	delay time.Duration
	fn    func()
}

// deferredQueue is the carousel scheduler. Callbacks run on the Bubble Tea
// event loop: AfterFunc only records them and commands turns the new ones
// into ticks.
type deferredQueue struct {
	nextID  uint64
	pending map[uint64]deferredCall
	queued  []uint64
}

func newDeferredQueue() *deferredQueue {
	return &deferredQueue{pending: make(map[uint64]deferredCall)}
}

func (q *deferredQueue) AfterFunc(d time.Duration, f func()) {
	q.nextID++
	q.pending[q.nextID] = deferredCall{delay: d, fn: f}
	q.queued = append(q.queued, q.nextID)
}

// commands returns one tick per callback registered since the last call
func (q *deferredQueue) commands() []tea.Cmd {
	if len(q.queued) == 0 {
		return nil
	}

	cmds := make([]tea.Cmd, 0, len(q.queued))
	for _, id := range q.queued {
		id := id
		cmds = append(cmds, tea.Tick(q.pending[id].delay, func(time.Time) tea.Msg {
			return deferredMsg{id: id}
		}))
	}
	q.queued = q.queued[:0]
	return cmds
}

// run executes and forgets callback id
func (q *deferredQueue) run(id uint64) bool {
	call, ok := q.pending[id]
	if !ok {
		return false
	}
	delete(q.pending, id)
	call.fn()
	return true
}

func (q *deferredQueue) len() int {
	return len(q.pending)
}
