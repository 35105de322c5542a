package tui

import (
	"time"

	"github.com/juanibiapina/sideswipe/internal/carousel"
)

// velocityWindow is how far back pointer samples count towards velocity
const velocityWindow = 100 * time.Millisecond

type pointerSample struct {
	x, y int
	at   time.Time
}

// dragTracker turns mouse events into gesture states. Displacement is in
// cells since the press; velocity is cells per millisecond over the recent
// samples, multiplied by scale.
type dragTracker struct {
	active   bool
	captured bool // set once the carousel claimed the gesture

	startX  int
	startY  int
	samples []pointerSample
	scale   float64
}

func (d *dragTracker) press(x, y int, at time.Time) {
	d.active = true
	d.captured = false
	d.startX = x
	d.startY = y
	d.samples = append(d.samples[:0], pointerSample{x: x, y: y, at: at})
}

// move records a pointer position and returns the gesture so far
func (d *dragTracker) move(x, y int, at time.Time) carousel.GestureState {
	d.samples = append(d.samples, pointerSample{x: x, y: y, at: at})
	d.trim(at)
	return d.state()
}

// end finishes the gesture, returning its final state
func (d *dragTracker) end(x, y int, at time.Time) carousel.GestureState {
	s := d.move(x, y, at)
	d.cancel()
	return s
}

// cancel drops the gesture without a final state
func (d *dragTracker) cancel() {
	d.active = false
	d.captured = false
}

func (d *dragTracker) trim(now time.Time) {
	cutoff := now.Add(-velocityWindow)
	i := 0
	for i < len(d.samples)-2 && d.samples[i].at.Before(cutoff) {
		i++
	}
	d.samples = d.samples[i:]
}

func (d *dragTracker) state() carousel.GestureState {
	last := d.samples[len(d.samples)-1]
	s := carousel.GestureState{
		DX: float64(last.x - d.startX),
		DY: float64(last.y - d.startY),
	}

	first := d.samples[0]
	elapsed := float64(last.at.Sub(first.at).Milliseconds())
	if elapsed > 0 {
		s.VX = float64(last.x-first.x) / elapsed * d.scale
		s.VY = float64(last.y-first.y) / elapsed * d.scale
	}
	return s
}
