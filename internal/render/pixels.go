package render

import (
	"image/color"
	"math"
)

// Stop is one colour anchor of a Ramp at position T in [0, 1].
type Stop struct {
	T   float64
	Col color.RGBA
}

// Ramp maps a normalised scalar onto colours by interpolating between stops.
// Stops must be sorted by T.
type Ramp []Stop

var (
	// MoistureRamp runs from cracked dry earth to saturated blue.
	MoistureRamp = Ramp{
		{0.0, color.RGBA{R: 120, G: 86, B: 52, A: 255}},
		{0.3, color.RGBA{R: 96, G: 80, B: 60, A: 255}},
		{0.6, color.RGBA{R: 48, G: 92, B: 120, A: 255}},
		{1.0, color.RGBA{R: 30, G: 110, B: 220, A: 255}},
	}
	// NitrogenRamp runs from pale sand to deep green.
	NitrogenRamp = Ramp{
		{0.0, color.RGBA{R: 200, G: 190, B: 150, A: 255}},
		{0.5, color.RGBA{R: 120, G: 160, B: 70, A: 255}},
		{1.0, color.RGBA{R: 20, G: 100, B: 30, A: 255}},
	}
)

// RampFor picks the ramp for a named layer, defaulting to grey.
func RampFor(layer string) Ramp {
	switch layer {
	case "moisture":
		return MoistureRamp
	case "nitrogen":
		return NitrogenRamp
	}
	return Ramp{
		{0, color.RGBA{A: 255}},
		{1, color.RGBA{R: 255, G: 255, B: 255, A: 255}},
	}
}

// At samples the ramp at t, clamping t into [0, 1].
func (r Ramp) At(t float64) color.RGBA {
	if len(r) == 0 {
		return color.RGBA{}
	}
	if math.IsNaN(t) {
		t = 0
	}
	t = clamp01(t)
	if t <= r[0].T {
		return r[0].Col
	}
	for i := 1; i < len(r); i++ {
		curr := r[i]
		if t <= curr.T {
			prev := r[i-1]
			span := curr.T - prev.T
			var local float64
			if span > 0 {
				local = (t - prev.T) / span
			}
			return lerpRGBA(prev.Col, curr.Col, local)
		}
	}
	return r[len(r)-1].Col
}

// FillScalarRGBA converts field values into RGBA pixels in buf, normalising
// each value by max. buf must hold 4 bytes per value.
func FillScalarRGBA(buf []byte, values []float32, max float32, ramp Ramp) {
	if len(buf) < 4*len(values) {
		return
	}
	inv := 0.0
	if max > 0 {
		inv = 1 / float64(max)
	}
	for i, v := range values {
		col := ramp.At(float64(v) * inv)
		base := i * 4
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

func lerpRGBA(a, b color.RGBA, t float64) color.RGBA {
	t = clamp01(t)
	return color.RGBA{
		R: lerpComponent(a.R, b.R, t),
		G: lerpComponent(a.G, b.G, t),
		B: lerpComponent(a.B, b.B, t),
		A: lerpComponent(a.A, b.A, t),
	}
}

func lerpComponent(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
