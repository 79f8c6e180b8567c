package soil

import "math"

// diffusionRate converts the base rate into the per-tick exchange fraction.
// The timestep is clamped so a hitch cannot destabilize the explicit
// scheme, and the result never exceeds the configured cap.
func (s *Sim) diffusionRate(dt float32) float32 {
	p := s.cfg.Params
	step := math.Min(float64(dt), p.MaxTimestep)
	rate := p.DiffusionRate * step * p.TickNormalization
	return float32(math.Min(p.DiffusionRateCap, rate))
}

// diffuse runs one flux-exchange pass over both fields and publishes the
// results.
func (s *Sim) diffuse(dt float32) {
	rate := s.diffusionRate(dt)
	if !(rate > 0) {
		return
	}
	n := s.grid.N()
	diffuseField(&s.moisture, n, rate)
	diffuseField(&s.nitrogen, n, rate)
}

// diffuseField reads only f.curr, writes f.next, then swaps. Edges have
// fewer neighbours; nothing wraps.
func diffuseField(f *field, n int, rate float32) {
	curr := f.curr
	for z := 0; z < n; z++ {
		row := z * n
		for x := 0; x < n; x++ {
			idx := row + x
			stock := curr[idx]
			var outflow, inflow float32
			if x > 0 {
				o, i := exchange(stock, curr[idx-1], rate)
				outflow += o
				inflow += i
			}
			if x+1 < n {
				o, i := exchange(stock, curr[idx+1], rate)
				outflow += o
				inflow += i
			}
			if z > 0 {
				o, i := exchange(stock, curr[idx-n], rate)
				outflow += o
				inflow += i
			}
			if z+1 < n {
				o, i := exchange(stock, curr[idx+n], rate)
				outflow += o
				inflow += i
			}
			// Scaling by stock/outflow leaves exactly the stock to give away.
			if outflow > stock {
				outflow = stock
			}
			f.setNext(idx, stock-outflow+inflow)
		}
	}
	f.swap()
}

// exchange splits one neighbour difference into outgoing and incoming flux.
func exchange(self, neighbor, rate float32) (out, in float32) {
	d := self - neighbor
	if d > 0 {
		return d * rate, 0
	}
	return 0, -d * rate
}
