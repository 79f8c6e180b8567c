package soil

import (
	"math"
	"slices"
	"testing"
)

func TestRainSaturatesExactly(t *testing.T) {
	cfg := testConfig(5)
	cfg.Params.EvaporationRate = 0
	cfg.Params.RainCoefficient = 1000
	s := newTestSim(t, cfg, Signals{Weather: RainFunc(func() float32 { return 1 })})
	setField(t, s, Moisture, uniform(5, MaxMoisture))

	for i := 0; i < 25; i++ {
		s.Step()
	}
	for i, v := range s.SnapshotField(Moisture, nil) {
		if v != MaxMoisture {
			t.Fatalf("moisture[%d]=%v, want exactly %v", i, v, MaxMoisture)
		}
	}
}

func TestRainAddsTimeScaledAmount(t *testing.T) {
	cfg := testConfig(4)
	cfg.Params.EvaporationRate = 0
	cfg.Params.RainCoefficient = 2
	s := newTestSim(t, cfg, Signals{Weather: RainFunc(func() float32 { return 0.5 })})
	setField(t, s, Moisture, uniform(4, 10))

	s.Tick(0.1)

	want := float32(10 + 0.5*2*0.1)
	for i, v := range s.SnapshotField(Moisture, nil) {
		if math.Abs(float64(v-want)) > 1e-5 {
			t.Fatalf("moisture[%d]=%v, want %v", i, v, want)
		}
	}
	if s.LastRainIntensity() != 0.5 {
		t.Fatalf("expected recorded intensity 0.5, got %v", s.LastRainIntensity())
	}
}

func TestRainIntensityIsClamped(t *testing.T) {
	cases := []struct {
		in, want float32
	}{
		{5, 1},
		{-2, 0},
		{float32(math.NaN()), 0},
		{0.25, 0.25},
	}
	for _, tc := range cases {
		in := tc.in
		s := newTestSim(t, testConfig(3), Signals{Weather: RainFunc(func() float32 { return in })})
		s.Step()
		if got := s.LastRainIntensity(); got != tc.want {
			t.Fatalf("intensity %v: recorded %v, want %v", tc.in, got, tc.want)
		}
		assertBounded(t, s, "after clamped rain")
	}
}

func TestModifyOutOfBoundsIsNoop(t *testing.T) {
	s := newTestSim(t, DefaultConfig(), Signals{})
	beforeM := s.SnapshotField(Moisture, nil)
	beforeN := s.SnapshotField(Nitrogen, nil)
	version := s.Version()

	half := s.Grid().HalfExtent()
	for _, p := range [][2]float32{{half, 0}, {0, half}, {-half - 0.01, 0}, {1e9, -1e9}} {
		s.ModifyMoistureAt(p[0], p[1], 40)
		s.ModifyNitrogenAt(p[0], p[1], -40)
		if got := s.MoistureAt(p[0], p[1]); got != 0 {
			t.Fatalf("MoistureAt%v outside the grid = %v, want 0", p, got)
		}
		if got := s.NitrogenAt(p[0], p[1]); got != 0 {
			t.Fatalf("NitrogenAt%v outside the grid = %v, want 0", p, got)
		}
	}

	if !slices.Equal(beforeM, s.SnapshotField(Moisture, nil)) {
		t.Fatal("out-of-bounds moisture write changed the field")
	}
	if !slices.Equal(beforeN, s.SnapshotField(Nitrogen, nil)) {
		t.Fatal("out-of-bounds nitrogen write changed the field")
	}
	if s.Version() != version {
		t.Fatal("dropped writes must not bump the version")
	}
}

func TestModifyClampsAtBothEnds(t *testing.T) {
	s := newTestSim(t, testConfig(10), Signals{})

	s.ModifyMoistureAt(0.5, 0.5, 1000)
	if got := s.MoistureAt(0.5, 0.5); got != MaxMoisture {
		t.Fatalf("expected saturation, got %v", got)
	}
	s.ModifyMoistureAt(0.5, 0.5, -1000)
	if got := s.MoistureAt(0.5, 0.5); got != 0 {
		t.Fatalf("expected floor at zero, got %v", got)
	}
	s.ModifyNitrogenAt(-3.2, 2.7, 1e6)
	if got := s.NitrogenAtCell(-4, 2); got != MaxNitrogen {
		t.Fatalf("expected nitrogen saturation, got %v", got)
	}

	before := s.MoistureAt(1, 1)
	s.ModifyMoistureAt(1, 1, float32(math.NaN()))
	if got := s.MoistureAt(1, 1); got != before {
		t.Fatalf("NaN amount must be ignored, got %v want %v", got, before)
	}
}

func TestPointMutationBeforeTickIsDiffusedThatTick(t *testing.T) {
	cfg := testConfig(6)
	cfg.Params.EvaporationRate = 0
	s := newTestSim(t, cfg, Signals{})
	setField(t, s, Moisture, uniform(6, 10))

	s.ModifyMoistureAt(0.5, 0.5, 40)
	s.Step()

	if got := s.MoistureAtCell(1, 0); got <= 10 {
		t.Fatalf("neighbour should see the write in the same tick, got %v", got)
	}
}

func TestAbsorbWaterHotCellScenario(t *testing.T) {
	s := newTestSim(t, hotCellConfig(), Signals{})
	setField(t, s, Moisture, hotCellValues())
	before := s.SnapshotField(Moisture, nil)

	inRange := map[[2]int]bool{{-1, -1}: true, {-2, -1}: true, {0, -1}: true, {-1, -2}: true, {-1, 0}: true}
	var total float64
	for c := range inRange {
		total += float64(s.MoistureAtCell(c[0], c[1]))
	}

	got := s.AbsorbWater(-1.5, -1.5, 1, 1000)

	if float64(got) > total*0.5+1e-4 {
		t.Fatalf("absorbed %v, more than half of %v", got, total)
	}
	if math.Abs(float64(got)-total*0.5) > 1e-3 {
		t.Fatalf("absorbed %v, want %v", got, total*0.5)
	}

	grid := s.Grid()
	for idx, pre := range before {
		cx, cz := grid.CellAt(idx)
		post := s.MoistureAtCell(cx, cz)
		if !inRange[[2]int{cx, cz}] {
			if post != pre {
				t.Fatalf("cell (%d,%d) outside the radius changed %v -> %v", cx, cz, pre, post)
			}
			continue
		}
		share := float64(pre) / total
		wantLoss := float64(got) * share
		if loss := float64(pre - post); math.Abs(loss-wantLoss) > 1e-3 {
			t.Fatalf("cell (%d,%d) lost %v, want %v (share %v)", cx, cz, loss, wantLoss, share)
		}
	}
}

func TestAbsorbWaterRespectsMaxAmount(t *testing.T) {
	s := newTestSim(t, hotCellConfig(), Signals{})
	setField(t, s, Moisture, hotCellValues())

	got := s.AbsorbWater(-1.5, -1.5, 1, 3)
	if got > 3 {
		t.Fatalf("absorbed %v, above maxAmount 3", got)
	}
	if math.Abs(float64(got)-3) > 1e-4 {
		t.Fatalf("expected the full 3 to be available, got %v", got)
	}
}

func TestAbsorbWaterEdgeCases(t *testing.T) {
	s := newTestSim(t, testConfig(8), Signals{})
	before := s.SnapshotField(Moisture, nil)

	if got := s.AbsorbWater(0, 0, -1, 10); got != 0 {
		t.Fatalf("negative radius should absorb nothing, got %v", got)
	}
	if got := s.AbsorbWater(0, 0, 2, 0); got != 0 {
		t.Fatalf("zero maxAmount should absorb nothing, got %v", got)
	}
	if got := s.AbsorbWater(500, 500, 3, 10); got != 0 {
		t.Fatalf("far outside the grid should absorb nothing, got %v", got)
	}
	if got := s.AbsorbWater(float32(math.NaN()), 0, 3, 10); got != 0 {
		t.Fatalf("NaN position should absorb nothing, got %v", got)
	}
	if !slices.Equal(before, s.SnapshotField(Moisture, nil)) {
		t.Fatal("no-op absorption calls changed the field")
	}

	setField(t, s, Moisture, uniform(8, 0))
	if got := s.AbsorbWater(0.5, 0.5, 3, 10); got != 0 {
		t.Fatalf("dry soil should yield nothing, got %v", got)
	}
}

func TestAbsorbWaterZeroRadiusHitsOnlyCentredCell(t *testing.T) {
	s := newTestSim(t, testConfig(6), Signals{})
	setField(t, s, Moisture, uniform(6, 20))

	got := s.AbsorbWater(0.5, 0.5, 0, 100)
	if math.Abs(float64(got)-10) > 1e-4 {
		t.Fatalf("expected half of one cell (10), got %v", got)
	}
	if v := s.MoistureAtCell(1, 0); v != 20 {
		t.Fatalf("neighbour must be untouched, got %v", v)
	}
	if got := s.AbsorbWater(0.1, 0.1, 0, 100); got != 0 {
		t.Fatalf("off-centre point with zero radius covers no centre, got %v", got)
	}
}

func TestAbsorbWaterUsesCircularFootprint(t *testing.T) {
	s := newTestSim(t, testConfig(10), Signals{})
	setField(t, s, Moisture, uniform(10, 10))

	s.AbsorbWater(0.5, 0.5, 2, 1000)

	if v := s.MoistureAtCell(2, 0); v == 10 {
		t.Fatal("cell at distance 2 should be inside the radius")
	}
	if v := s.MoistureAtCell(2, 2); v != 10 {
		t.Fatalf("corner cell at distance 2.83 must be outside the circle, got %v", v)
	}
}

func TestAbsorbNitrogenMirrorsWater(t *testing.T) {
	s := newTestSim(t, hotCellConfig(), Signals{})
	setField(t, s, Nitrogen, hotCellValues())
	moisture := s.SnapshotField(Moisture, nil)

	got := s.AbsorbNitrogen(-1.5, -1.5, 1, 1000)
	if math.Abs(float64(got)-45) > 1e-3 {
		t.Fatalf("expected 45 nitrogen absorbed, got %v", got)
	}
	if !slices.Equal(moisture, s.SnapshotField(Moisture, nil)) {
		t.Fatal("nitrogen uptake must not touch moisture")
	}
}

func TestAbsorbIsOrderDependentAcrossCallers(t *testing.T) {
	s := newTestSim(t, testConfig(6), Signals{})
	setField(t, s, Moisture, uniform(6, 20))

	first := s.AbsorbWater(0.5, 0.5, 1, 1000)
	second := s.AbsorbWater(0.5, 0.5, 1, 1000)
	if !(second < first) {
		t.Fatalf("a second caller sees what the first left behind: first=%v second=%v", first, second)
	}
}
