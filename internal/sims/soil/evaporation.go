package soil

// evaporate removes moisture after diffusion. Shaded cells lose a fraction
// of the sunlit amount. Nitrogen has no passive decay.
func (s *Sim) evaporate(dt float32) {
	p := s.cfg.Params
	sunRate := float32(p.EvaporationRate * float64(dt) * p.TickNormalization)
	shadeRate := sunRate * float32(p.ShadowEvapMultiplier)

	f := &s.moisture
	for idx, m := range f.curr {
		if !(m > 0) || !(sunRate > 0) {
			f.setNext(idx, m)
			continue
		}
		rate := sunRate
		if !s.sunlit(idx) {
			rate = shadeRate
		}
		loss := rate
		if loss > m {
			loss = m
		}
		f.setNext(idx, m-loss)
	}
	f.swap()
}
