package tui

import (
	"testing"
	"time"
)

func TestDeferredQueue_RunsOnce(t *testing.T) {
	q := newDeferredQueue()

	calls := 0
	q.AfterFunc(200*time.Millisecond, func() { calls++ })

	if cmds := q.commands(); len(cmds) != 1 {
		t.Fatalf("commands() = %d cmds, want 1", len(cmds))
	}
	if cmds := q.commands(); len(cmds) != 0 {
		t.Errorf("commands() reissued %d ticks", len(cmds))
	}

	if !q.run(1) {
		t.Fatal("run(1) = false")
	}
	if q.run(1) {
		t.Error("run(1) ran twice")
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
	if q.len() != 0 {
		t.Errorf("len() = %d, want 0", q.len())
	}
}

func TestDeferredQueue_UnknownID(t *testing.T) {
	q := newDeferredQueue()
	if q.run(7) {
		t.Error("run() of an unknown id reported true")
	}
}

func TestDeferredQueue_KeepsOrder(t *testing.T) {
	q := newDeferredQueue()

	var order []string
	q.AfterFunc(0, func() { order = append(order, "a") })
	q.AfterFunc(0, func() { order = append(order, "b") })

	if cmds := q.commands(); len(cmds) != 2 {
		t.Fatalf("commands() = %d cmds, want 2", len(cmds))
	}
	q.run(1)
	q.run(2)

	if len(order) != 2 || order[0] != "a" || order[1] != "b" {
		t.Errorf("order = %v, want [a b]", order)
	}
}
