package core

import (
	"testing"
	"time"
)

func TestFixedStepDue(t *testing.T) {
	fs := NewFixedStep(10)
	if got := fs.Dt(); got < 0.0999 || got > 0.1001 {
		t.Fatalf("expected dt 0.1, got %v", got)
	}

	start := time.Unix(0, 0)
	if n := fs.Due(start); n != 0 {
		t.Fatalf("first frame should only prime the clock, got %d ticks", n)
	}
	if n := fs.Due(start.Add(50 * time.Millisecond)); n != 0 {
		t.Fatalf("half a step should not tick, got %d", n)
	}
	if n := fs.Due(start.Add(250 * time.Millisecond)); n != 2 {
		t.Fatalf("expected 2 ticks after 250ms, got %d", n)
	}
	if n := fs.Due(start.Add(300 * time.Millisecond)); n != 1 {
		t.Fatalf("remainder should carry over, got %d", n)
	}
}

func TestFixedStepCapsCatchUp(t *testing.T) {
	fs := NewFixedStep(10)
	start := time.Unix(0, 0)
	fs.Due(start)
	if n := fs.Due(start.Add(10 * time.Second)); n != 4 {
		t.Fatalf("expected hitch to be capped at 4 ticks, got %d", n)
	}
	if n := fs.Due(start.Add(10*time.Second + 10*time.Millisecond)); n != 0 {
		t.Fatalf("dropped time must not be replayed, got %d", n)
	}
}
