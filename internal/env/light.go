package env

import "math"

// Occluder is an axis-aligned box standing on the ground plane, such as a
// building or a large plant canopy.
type Occluder struct {
	MinX, MinZ float32
	MaxX, MaxZ float32
	Height     float32
}

// DayCycle models a sun that rises in +X, crosses overhead and sets in -X
// over DayLength seconds. It implements soil.LightSource.
type DayCycle struct {
	DayLength float32
	// MinElevation is the sine of the sun angle below which the ground is
	// considered dark.
	MinElevation float32

	elapsed   float32
	occluders []Occluder
}

// NewDayCycle starts a cycle at sunrise.
func NewDayCycle(dayLength float32) *DayCycle {
	if !(dayLength > 0) {
		dayLength = 240
	}
	return &DayCycle{DayLength: dayLength, MinElevation: 0.05}
}

// Advance moves the clock forward by dt seconds.
func (d *DayCycle) Advance(dt float32) {
	if !(dt > 0) {
		return
	}
	d.elapsed = float32(math.Mod(float64(d.elapsed+dt), float64(d.DayLength)))
}

// SetPhase jumps to a point in the day: 0 sunrise, 0.25 noon, 0.5 sunset.
func (d *DayCycle) SetPhase(phase float32) {
	p := math.Mod(float64(phase), 1)
	if p < 0 {
		p++
	}
	d.elapsed = float32(p) * d.DayLength
}

// Phase returns the position in the day in [0, 1).
func (d *DayCycle) Phase() float32 { return d.elapsed / d.DayLength }

// AddOccluder registers a shadow caster.
func (d *DayCycle) AddOccluder(o Occluder) {
	if o.MaxX < o.MinX {
		o.MinX, o.MaxX = o.MaxX, o.MinX
	}
	if o.MaxZ < o.MinZ {
		o.MinZ, o.MaxZ = o.MaxZ, o.MinZ
	}
	d.occluders = append(d.occluders, o)
}

// Occluders returns the registered shadow casters.
func (d *DayCycle) Occluders() []Occluder { return d.occluders }

func (d *DayCycle) sun() (horizontal, elevation float32) {
	angle := 2 * math.Pi * float64(d.Phase())
	return float32(math.Cos(angle)), float32(math.Sin(angle))
}

// IsDay reports whether the sun is above MinElevation.
func (d *DayCycle) IsDay() bool {
	_, e := d.sun()
	return e > d.MinElevation
}

// Sunlit implements soil.LightSource.
func (d *DayCycle) Sunlit(worldX, worldZ float32) bool {
	h, e := d.sun()
	if e <= d.MinElevation {
		return false
	}
	for _, o := range d.occluders {
		if shadows(o, worldX, worldZ, h, e) {
			return false
		}
	}
	return true
}

// shadows marches from the ground point towards the sun. The ray only moves
// in X and Y, so it can only hit boxes spanning worldZ, and it is lowest
// where it enters the box.
func shadows(o Occluder, x, z, h, e float32) bool {
	if z < o.MinZ || z > o.MaxZ {
		return false
	}
	if x >= o.MinX && x <= o.MaxX {
		return true
	}
	if h == 0 {
		return false
	}
	t1 := (o.MinX - x) / h
	t2 := (o.MaxX - x) / h
	if t1 > t2 {
		t1, t2 = t2, t1
	}
	if t2 < 0 {
		return false
	}
	enter := max(t1, 0)
	return e*enter <= o.Height
}
