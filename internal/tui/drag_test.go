package tui

import (
	"math"
	"testing"
	"time"
)

func TestDragTracker_Displacement(t *testing.T) {
	d := dragTracker{scale: 1}
	start := time.Unix(0, 0)

	d.press(50, 5, start)
	s := d.move(30, 6, start.Add(20*time.Millisecond))

	if s.DX != -20 || s.DY != 1 {
		t.Errorf("DX, DY = %v, %v, want -20, 1", s.DX, s.DY)
	}
	if !d.active {
		t.Error("tracker inactive during a drag")
	}
}

func TestDragTracker_Velocity(t *testing.T) {
	d := dragTracker{scale: 8}
	start := time.Unix(0, 0)

	d.press(100, 0, start)
	d.move(90, 0, start.Add(10*time.Millisecond))
	s := d.end(60, 0, start.Add(40*time.Millisecond))

	// 40 cells in 40ms, scaled by 8
	if math.Abs(s.VX-(-8)) > 1e-9 {
		t.Errorf("VX = %v, want -8", s.VX)
	}
	if d.active {
		t.Error("tracker still active after end")
	}
}

func TestDragTracker_OldSamplesIgnored(t *testing.T) {
	d := dragTracker{scale: 1}
	start := time.Unix(0, 0)

	d.press(0, 0, start)
	d.move(50, 0, start.Add(10*time.Millisecond))
	// Pointer rests, then creeps
	d.move(50, 0, start.Add(500*time.Millisecond))
	s := d.end(52, 0, start.Add(520*time.Millisecond))

	if s.DX != 52 {
		t.Errorf("DX = %v, want 52", s.DX)
	}
	if s.VX > 0.2 {
		t.Errorf("VX = %v, want the slow recent speed", s.VX)
	}
}

func TestDragTracker_NoElapsedTime(t *testing.T) {
	d := dragTracker{scale: 1}
	now := time.Unix(0, 0)

	d.press(10, 0, now)
	s := d.end(0, 0, now)

	if s.VX != 0 {
		t.Errorf("VX = %v, want 0", s.VX)
	}
}
