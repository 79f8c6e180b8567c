package soil

import (
	opensimplex "github.com/ojrac/opensimplex-go"

	"soilsim/internal/core"
)

// nitrogenSeedSalt decorrelates the nitrogen baseline from moisture.
const nitrogenSeedSalt = 0x6e6974726f

// seedBaseline fills f with a low-frequency two-octave simplex pattern
// mapped onto [lo, hi]. The same seed always yields the same field.
func seedBaseline(f *field, grid core.CenteredGrid, seed int64, scale float64, lo, hi float32) {
	noise := opensimplex.New(seed)
	span := hi - lo
	for idx := range f.curr {
		cx, cz := grid.CellAt(idx)
		x, z := grid.CellCenter(cx, cz)
		u := float64(x) * scale
		v := float64(z) * scale
		n := 0.65*noise.Eval2(u, v) + 0.35*noise.Eval2(u*2.03+17.1, v*2.03-5.3)
		t := float32((n + 1) / 2)
		if t < 0 {
			t = 0
		}
		if t > 1 {
			t = 1
		}
		f.curr[idx] = clampValue(lo+t*span, f.max)
	}
	copy(f.next, f.curr)
}
