package soil

import "math"

// applyRain adds intensity*coefficient*dt to every cell, saturating at
// MaxMoisture. Rain never removes moisture.
func (s *Sim) applyRain(intensity, dt float32) {
	if !(intensity > 0) {
		return
	}
	add := intensity * float32(s.cfg.Params.RainCoefficient) * dt
	if !(add > 0) {
		return
	}
	f := &s.moisture
	for idx, m := range f.curr {
		f.setClamped(idx, m+add)
	}
}

// ModifyMoistureAt adds amount (which may be negative) to the cell under
// the world position. Out-of-range positions are ignored.
func (s *Sim) ModifyMoistureAt(worldX, worldZ, amount float32) {
	s.modifyAt(&s.moisture, worldX, worldZ, amount)
}

// ModifyNitrogenAt adds amount (which may be negative) to the cell under
// the world position. Decomposition releases nitrogen through this call.
func (s *Sim) ModifyNitrogenAt(worldX, worldZ, amount float32) {
	s.modifyAt(&s.nitrogen, worldX, worldZ, amount)
}

func (s *Sim) modifyAt(f *field, worldX, worldZ, amount float32) {
	if amount == 0 || math.IsNaN(float64(amount)) {
		return
	}
	idx, ok := s.grid.IndexAt(worldX, worldZ)
	if !ok {
		return
	}
	f.setClamped(idx, f.get(idx)+amount)
	s.version++
}

// AbsorbWater removes up to maxAmount of moisture from cells whose centres
// lie within radius of the query point and returns the amount removed. At
// most AbsorptionFraction of the moisture in range can be taken per call,
// split across cells in proportion to what each one holds.
func (s *Sim) AbsorbWater(worldX, worldZ, radius, maxAmount float32) float32 {
	return s.absorb(&s.moisture, worldX, worldZ, radius, maxAmount)
}

// AbsorbNitrogen is AbsorbWater for the nitrogen field.
func (s *Sim) AbsorbNitrogen(worldX, worldZ, radius, maxAmount float32) float32 {
	return s.absorb(&s.nitrogen, worldX, worldZ, radius, maxAmount)
}

func (s *Sim) absorb(f *field, worldX, worldZ, radius, maxAmount float32) float32 {
	if !(radius >= 0) || !(maxAmount > 0) || math.IsInf(float64(radius), 0) {
		return 0
	}
	if math.IsNaN(float64(worldX)) || math.IsNaN(float64(worldZ)) {
		return 0
	}

	cells, total := s.cellsInRadius(f, worldX, worldZ, radius)
	if !(total > 0) {
		return 0
	}

	toAbsorb := math.Min(float64(maxAmount), total*s.cfg.Params.AbsorptionFraction)
	if !(toAbsorb > 0) {
		return 0
	}

	var removed float64
	for _, idx := range cells {
		m := f.curr[idx]
		take := toAbsorb * float64(m) / total
		left := float32(float64(m) - take)
		// Round toward keeping moisture so the sum never exceeds toAbsorb.
		if float64(m)-float64(left) > take {
			left = math.Nextafter32(left, float32(math.Inf(1)))
		}
		if left < 0 {
			left = 0
		}
		removed += float64(m) - float64(left)
		f.curr[idx] = left
	}
	s.version++
	return float32(removed)
}

// cellsInRadius collects in-range cells with a positive value whose centre
// is within radius of the point, and the sum of their values. The returned
// slice is scratch storage reused by the next call.
func (s *Sim) cellsInRadius(f *field, worldX, worldZ, radius float32) ([]int, float64) {
	lo, hi := s.grid.Bounds()
	minX, minZ := s.grid.ToCell(worldX-radius, worldZ-radius)
	maxX, maxZ := s.grid.ToCell(worldX+radius, worldZ+radius)
	minX = max(minX, lo)
	minZ = max(minZ, lo)
	maxX = min(maxX, hi-1)
	maxZ = min(maxZ, hi-1)

	r2 := float64(radius) * float64(radius)
	cells := s.absorbScratch[:0]
	var total float64
	for cz := minZ; cz <= maxZ; cz++ {
		for cx := minX; cx <= maxX; cx++ {
			x, z := s.grid.CellCenter(cx, cz)
			dx := float64(x) - float64(worldX)
			dz := float64(z) - float64(worldZ)
			if dx*dx+dz*dz > r2 {
				continue
			}
			idx, ok := s.grid.Index(cx, cz)
			if !ok {
				continue
			}
			v := f.curr[idx]
			if !(v > 0) {
				continue
			}
			cells = append(cells, idx)
			total += float64(v)
		}
	}
	s.absorbScratch = cells
	return cells, total
}
