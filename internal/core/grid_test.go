package core

import (
	"math"
	"testing"
)

func TestCenteredGridToCellFloors(t *testing.T) {
	g := NewCenteredGrid(50, 1)
	cases := []struct {
		x, z   float32
		cx, cz int
	}{
		{0, 0, 0, 0},
		{0.99, 0.5, 0, 0},
		{-0.01, -0.5, -1, -1},
		{24.9, -25, 24, -25},
		{25, 0, 25, 0},
	}
	for _, tc := range cases {
		cx, cz := g.ToCell(tc.x, tc.z)
		if cx != tc.cx || cz != tc.cz {
			t.Fatalf("ToCell(%v,%v) = (%d,%d), want (%d,%d)", tc.x, tc.z, cx, cz, tc.cx, tc.cz)
		}
	}
}

func TestCenteredGridIndexRowMajor(t *testing.T) {
	g := NewCenteredGrid(50, 1)
	idx, ok := g.Index(-25, -25)
	if !ok || idx != 0 {
		t.Fatalf("expected first cell at index 0, got %d ok=%v", idx, ok)
	}
	idx, ok = g.Index(24, 24)
	if !ok || idx != 50*50-1 {
		t.Fatalf("expected last cell at %d, got %d ok=%v", 50*50-1, idx, ok)
	}
	idx, ok = g.Index(1, 2)
	if want := (2+25)*50 + (1 + 25); !ok || idx != want {
		t.Fatalf("expected index %d, got %d ok=%v", want, idx, ok)
	}
	for _, c := range [][2]int{{25, 0}, {0, 25}, {-26, 0}, {0, -26}} {
		if _, ok := g.Index(c[0], c[1]); ok {
			t.Fatalf("cell %v should be out of range", c)
		}
	}
}

func TestCenteredGridCellAtRoundTrip(t *testing.T) {
	g := NewCenteredGrid(7, 0.5)
	for idx := 0; idx < g.Len(); idx++ {
		cx, cz := g.CellAt(idx)
		back, ok := g.Index(cx, cz)
		if !ok || back != idx {
			t.Fatalf("round trip failed for %d: cell (%d,%d) -> %d ok=%v", idx, cx, cz, back, ok)
		}
	}
	lo, hi := g.Bounds()
	if hi-lo != 7 {
		t.Fatalf("odd grid should still span 7 cells, got [%d,%d)", lo, hi)
	}
}

func TestCenteredGridIndexAtUsesCellSize(t *testing.T) {
	g := NewCenteredGrid(4, 2)
	idx, ok := g.IndexAt(-3.5, 1.5)
	if !ok {
		t.Fatal("expected in-range position")
	}
	cx, cz := g.CellAt(idx)
	if cx != -2 || cz != 0 {
		t.Fatalf("expected cell (-2,0), got (%d,%d)", cx, cz)
	}
	if _, ok := g.IndexAt(4, 0); ok {
		t.Fatal("x = half extent must be out of range")
	}
	x, z := g.CellCenter(-2, 0)
	if x != -3 || z != 1 {
		t.Fatalf("expected centre (-3,1), got (%v,%v)", x, z)
	}
}

func TestCenteredGridRejectsNonFinite(t *testing.T) {
	g := NewCenteredGrid(10, 1)
	nan := float32(math.NaN())
	inf := float32(math.Inf(1))
	if _, ok := g.IndexAt(nan, 0); ok {
		t.Fatal("NaN coordinate must be out of range")
	}
	if _, ok := g.IndexAt(0, -inf); ok {
		t.Fatal("infinite coordinate must be out of range")
	}
}
