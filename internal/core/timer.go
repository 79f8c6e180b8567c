package core

import "time"

// FixedStep converts wall-clock frames into a steady stream of fixed-length
// simulation ticks.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	maxCatchUp  int
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{maxCatchUp: 4}
	fs.SetTPS(tps)
	return fs
}

// SetTPS changes the tick rate. It is safe to call from the main loop.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 10
	}
	f.step = time.Second / time.Duration(tps)
}

// Dt returns the fixed tick length in seconds. Pass this to the simulation,
// never the frame delta.
func (f *FixedStep) Dt() float32 { return float32(f.step.Seconds()) }

// Due feeds the current time into the accumulator and reports how many
// ticks should run this frame. Long hitches are capped so the simulation
// drops time instead of spiralling.
func (f *FixedStep) Due(now time.Time) int {
	if f.last.IsZero() {
		f.last = now
		return 0
	}
	delta := now.Sub(f.last)
	f.last = now
	if delta < 0 {
		delta = 0
	}
	f.accumulator += delta
	ticks := 0
	for f.accumulator >= f.step {
		f.accumulator -= f.step
		ticks++
		if ticks == f.maxCatchUp {
			f.accumulator = 0
			break
		}
	}
	return ticks
}

// ShouldStep reports whether at least one tick is due right now.
func (f *FixedStep) ShouldStep() bool {
	return f.Due(time.Now()) > 0
}
