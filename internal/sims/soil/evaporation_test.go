package soil

import (
	"math"
	"slices"
	"testing"
)

func TestEvaporationStrictlyDecreasesUniformMoisture(t *testing.T) {
	s := newTestSim(t, testConfig(6), Signals{})
	setField(t, s, Moisture, uniform(6, 30))
	setField(t, s, Nitrogen, uniform(6, 12))

	s.Step()

	vals := s.SnapshotField(Moisture, nil)
	for i, v := range vals {
		if v >= 30 {
			t.Fatalf("moisture[%d]=%v should drop below 30", i, v)
		}
		if v != vals[0] {
			t.Fatalf("uniform field should stay uniform, got %v vs %v", v, vals[0])
		}
	}
	if !slices.Equal(s.SnapshotField(Nitrogen, nil), uniform(6, 12)) {
		t.Fatal("nitrogen has no passive decay")
	}
}

func TestEvaporationLeavesDrySoilAtZero(t *testing.T) {
	s := newTestSim(t, testConfig(6), Signals{})
	setField(t, s, Moisture, uniform(6, 0))
	for i := 0; i < 10; i++ {
		s.Step()
	}
	if total := s.TotalMoisture(); total != 0 {
		t.Fatalf("dry soil must stay at zero, total %v", total)
	}
}

func TestEvaporationNeverOvershoots(t *testing.T) {
	cfg := testConfig(4)
	cfg.Params.EvaporationRate = 10
	s := newTestSim(t, cfg, Signals{})
	setField(t, s, Moisture, uniform(4, 0.5))
	s.Step()
	for i, v := range s.SnapshotField(Moisture, nil) {
		if v != 0 {
			t.Fatalf("moisture[%d]=%v, expected evaporation to stop at zero", i, v)
		}
	}
}

func TestShadowSlowsEvaporation(t *testing.T) {
	cfg := testConfig(8)
	cfg.Params.DiffusionRate = 0
	cfg.Params.EvaporationRate = 0.05
	shadeMul := cfg.Params.ShadowEvapMultiplier
	lit := LightFunc(func(worldX, _ float32) bool { return worldX < 0 })
	s := newTestSim(t, cfg, Signals{Light: lit})
	setField(t, s, Moisture, uniform(8, 50))

	s.Step()

	sunLoss := 50 - s.MoistureAtCell(-3, 0)
	shadeLoss := 50 - s.MoistureAtCell(2, 0)
	if !(shadeLoss < sunLoss) {
		t.Fatalf("shade should evaporate less: sun=%v shade=%v", sunLoss, shadeLoss)
	}
	ratio := float64(shadeLoss / sunLoss)
	if math.Abs(ratio-shadeMul) > 1e-3 {
		t.Fatalf("shade/sun loss ratio = %v, want %v", ratio, shadeMul)
	}
}

func TestEvaporationQueriesLightAtCellCentres(t *testing.T) {
	cfg := testConfig(4)
	cfg.CellSize = 2
	var calls [][2]float32
	light := LightFunc(func(x, z float32) bool {
		calls = append(calls, [2]float32{x, z})
		return true
	})
	s := newTestSim(t, cfg, Signals{Light: light})
	s.Step()

	if len(calls) != 16 {
		t.Fatalf("expected one light query per wet cell, got %d", len(calls))
	}
	if calls[0] != [2]float32{-3, -3} {
		t.Fatalf("first query should hit the first cell centre, got %v", calls[0])
	}
}
