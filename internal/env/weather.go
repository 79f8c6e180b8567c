package env

import opensimplex "github.com/ojrac/opensimplex-go"

// RainCycle drives rain intensity from slowly drifting simplex noise. Noise
// below Threshold is dry weather; above it intensity ramps linearly to 1.
// It implements soil.WeatherSource.
type RainCycle struct {
	Speed     float64
	Threshold float64

	noise     opensimplex.Noise
	time      float64
	intensity float32
}

// NewRainCycle returns a deterministic weather track for seed.
func NewRainCycle(seed int64, speed, threshold float64) *RainCycle {
	r := &RainCycle{
		Speed:     speed,
		Threshold: threshold,
		noise:     opensimplex.New(seed),
	}
	r.sample()
	return r
}

// Reset restarts the track from time zero with a new seed.
func (r *RainCycle) Reset(seed int64) {
	r.noise = opensimplex.New(seed)
	r.time = 0
	r.sample()
}

// Advance moves the weather forward by dt seconds.
func (r *RainCycle) Advance(dt float32) {
	if !(dt > 0) {
		return
	}
	r.time += float64(dt) * r.Speed
	r.sample()
}

// RainIntensity implements soil.WeatherSource.
func (r *RainCycle) RainIntensity() float32 { return r.intensity }

func (r *RainCycle) sample() {
	n := r.noise.Eval2(r.time, 0.5)
	if n <= r.Threshold || r.Threshold >= 1 {
		r.intensity = 0
		return
	}
	v := (n - r.Threshold) / (1 - r.Threshold)
	if v > 1 {
		v = 1
	}
	r.intensity = float32(v)
}
