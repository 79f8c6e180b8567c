package soil

import (
	"math"
	"testing"

	"soilsim/pkg/core"
)

// randomSignals returns weather and light sources driven by rng so every
// tick sees a different combination.
func randomSignals(rng *core.RNG) Signals {
	return Signals{
		Weather: RainFunc(func() float32 {
			if rng.Chance(0.4) {
				return 0
			}
			return rng.Float32Range(-0.5, 1.5)
		}),
		Light: LightFunc(func(_, _ float32) bool { return rng.Bool() }),
	}
}

func TestFieldsStayBoundedUnderRandomOperations(t *testing.T) {
	for _, seed := range []int64{1, 2, 3, 42} {
		rng := core.NewRNG(seed)
		cfg := testConfig(16)
		cfg.Params.RainCoefficient = 40
		cfg.Params.DiffusionRate = 0.5
		cfg.Params.DiffusionRateCap = 1
		s := newTestSim(t, cfg, randomSignals(rng))
		grid := s.Grid()
		reach := grid.HalfExtent() * 1.5

		for step := 0; step < 600; step++ {
			x := rng.Float32Range(-reach, reach)
			z := rng.Float32Range(-reach, reach)
			switch rng.IntN(6) {
			case 0:
				s.Tick(rng.Float32Range(0, 0.5))
			case 1:
				s.ModifyMoistureAt(x, z, rng.Float32Range(-250, 250))
			case 2:
				s.ModifyNitrogenAt(x, z, rng.Float32Range(-250, 250))
			case 3:
				s.AbsorbWater(x, z, rng.Float32Range(0, 6), rng.Float32Range(0, 500))
			case 4:
				s.AbsorbNitrogen(x, z, rng.Float32Range(0, 6), rng.Float32Range(0, 500))
			default:
				s.Step()
			}
			assertBounded(t, s, "random operation")
		}
	}
}

func TestAbsorbWaterNeverExceedsCaps(t *testing.T) {
	rng := core.NewRNG(99)
	s := newTestSim(t, testConfig(20), Signals{})
	grid := s.Grid()

	for i := 0; i < 300; i++ {
		x := rng.Float32Range(-12, 12)
		z := rng.Float32Range(-12, 12)
		radius := rng.Float32Range(0, 5)
		maxAmount := rng.Float32Range(0.01, 200)

		var total float64
		for idx := 0; idx < grid.Len(); idx++ {
			cx, cz := grid.CellAt(idx)
			px, pz := grid.CellCenter(cx, cz)
			dx := float64(px) - float64(x)
			dz := float64(pz) - float64(z)
			if dx*dx+dz*dz <= float64(radius)*float64(radius) {
				total += float64(s.MoistureAtCell(cx, cz))
			}
		}

		got := s.AbsorbWater(x, z, radius, maxAmount)
		if got > maxAmount {
			t.Fatalf("call %d: absorbed %v > maxAmount %v", i, got, maxAmount)
		}
		if float64(got) > total*0.5+1e-3 {
			t.Fatalf("call %d: absorbed %v > half of available %v", i, got, total)
		}
		if got < 0 || math.IsNaN(float64(got)) {
			t.Fatalf("call %d: invalid result %v", i, got)
		}

		if i%25 == 0 {
			s.ModifyMoistureAt(x, z, 60)
		}
	}
}
