package core

import "testing"

func TestInputFrame(t *testing.T) {
	f := FrameOf(ActionUp, ActionFire)
	if !f.Has(ActionUp) || !f.Has(ActionFire) {
		t.Error("FrameOf() should set all given actions")
	}
	if f.Has(ActionDown) {
		t.Error("Has(Down) = true, expected false")
	}

	clone := f.Clone()
	f.Clear()
	if f.Has(ActionUp) {
		t.Error("Clear() should reset actions")
	}
	if !clone.Has(ActionUp) {
		t.Error("Clone() should be independent of the original")
	}

	var zero InputFrame
	if zero.Has(ActionFire) {
		t.Error("zero frame should have no actions")
	}
}

func TestActionOpposite(t *testing.T) {
	tests := []struct {
		a, expected Action
	}{
		{ActionUp, ActionDown},
		{ActionDown, ActionUp},
		{ActionLeft, ActionRight},
		{ActionRight, ActionLeft},
		{ActionFire, ActionNone},
	}
	for _, tc := range tests {
		if got := tc.a.Opposite(); got != tc.expected {
			t.Errorf("%v.Opposite() = %v, expected %v", tc.a, got, tc.expected)
		}
	}
}

func TestHoldTracker(t *testing.T) {
	h := NewHoldTracker(3)
	h.Press(ActionLeft)

	for tick := 0; tick < 3; tick++ {
		f := NewInputFrame()
		h.Apply(&f)
		if !f.Has(ActionLeft) {
			t.Fatalf("tick %d: Left should still be held", tick)
		}
	}

	f := NewInputFrame()
	h.Apply(&f)
	if f.Has(ActionLeft) {
		t.Error("Left should be released after ttl ticks")
	}
}

func TestHoldTrackerOppositeReleases(t *testing.T) {
	h := NewHoldTracker(10)
	h.Press(ActionLeft)
	h.Press(ActionUp)
	h.Press(ActionRight)

	if h.Held(ActionLeft) {
		t.Error("pressing Right should release Left")
	}
	if !h.Held(ActionUp) || !h.Held(ActionRight) {
		t.Error("Up and Right should be held")
	}

	h.Release()
	if h.Held(ActionUp) {
		t.Error("Release() should drop all holds")
	}
}

func TestTicksFor(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.TicksFor(2000); got != 100 {
		t.Errorf("TicksFor(2000) = %d, expected 100", got)
	}
	if got := cfg.TicksFor(1); got != 1 {
		t.Errorf("TicksFor(1) = %d, expected 1", got)
	}
}
