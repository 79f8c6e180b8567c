package soil

import (
	"fmt"
	"math"

	"soilsim/internal/core"
)

var (
	_ core.Sim                       = (*Sim)(nil)
	_ core.FieldLayer                = (*Sim)(nil)
	_ core.ParameterControlsProvider = (*Sim)(nil)
	_ core.FloatParameterSetter      = (*Sim)(nil)
	_ core.TelemetryProvider         = (*Sim)(nil)
)

// Sim is the two-field soil model. It exclusively owns both buffers of both
// fields; collaborators read through the query methods and write through
// the Modify*, Absorb* and rain entry points.
//
// A Sim is not safe for concurrent use. Callers that share one across
// goroutines must serialize every call.
type Sim struct {
	cfg  Config
	grid core.CenteredGrid

	moisture field
	nitrogen field

	light   LightSource
	weather WeatherSource

	lastRain float32
	ticks    uint64
	version  uint64

	absorbScratch []int
}

// New validates cfg and returns a seeded simulation.
func New(cfg Config, signals Signals) (*Sim, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	grid := core.NewCenteredGrid(cfg.GridSize, float32(cfg.CellSize))
	s := &Sim{
		cfg:      cfg,
		grid:     grid,
		moisture: newField(grid.Len(), MaxMoisture),
		nitrogen: newField(grid.Len(), MaxNitrogen),
		light:    signals.Light,
		weather:  signals.Weather,
	}
	s.Reset(0)
	return s, nil
}

// MustNew is New for configurations known to be valid.
func MustNew(cfg Config, signals Signals) *Sim {
	s, err := New(cfg, signals)
	if err != nil {
		panic(fmt.Sprintf("soil.MustNew: %v", err))
	}
	return s
}

// Name returns the simulation identifier.
func (s *Sim) Name() string { return "soil" }

// Size reports the grid dimensions.
func (s *Sim) Size() core.Size { return core.Size{W: s.grid.N(), H: s.grid.N()} }

// Grid exposes the coordinate mapping used by every query.
func (s *Sim) Grid() core.CenteredGrid { return s.grid }

// Config returns a copy of the active configuration.
func (s *Sim) Config() Config { return s.cfg }

// Ticks reports how many ticks have run since the last Reset.
func (s *Sim) Ticks() uint64 { return s.ticks }

// Version increases whenever observable state changes. Renderers compare it
// against the value of their last upload to skip clean frames.
func (s *Sim) Version() uint64 { return s.version }

// LastRainIntensity is the clamped rain intensity applied by the last tick.
func (s *Sim) LastRainIntensity() float32 { return s.lastRain }

// Reset re-seeds both fields with the smooth baseline. A zero seed reuses
// the configured one.
func (s *Sim) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = s.cfg.Seed
	}
	scale := s.cfg.Params.NoiseScale
	seedBaseline(&s.moisture, s.grid, effective, scale, initMoistureMin, initMoistureMax)
	seedBaseline(&s.nitrogen, s.grid, effective^nitrogenSeedSalt, scale, initNitrogenMin, initNitrogenMax)
	s.lastRain = 0
	s.ticks = 0
	s.version++
}

// Step advances the simulation by one tick of the configured fixed length.
func (s *Sim) Step() {
	s.Tick(s.cfg.FixedDt())
}

// Tick advances one fixed step of dt seconds: rain, then diffusion, then
// evaporation. dt should be the fixed step, never a frame delta. Non-positive
// or NaN dt leaves the state untouched.
func (s *Sim) Tick(dt float32) {
	if !(dt > 0) || math.IsInf(float64(dt), 0) {
		return
	}
	s.lastRain = s.rainIntensity()
	s.applyRain(s.lastRain, dt)
	s.diffuse(dt)
	s.evaporate(dt)
	s.ticks++
	s.version++
}

func (s *Sim) rainIntensity() float32 {
	if s.weather == nil {
		return 0
	}
	r := s.weather.RainIntensity()
	if !(r > 0) {
		return 0
	}
	if r > 1 {
		return 1
	}
	return r
}

func (s *Sim) sunlit(idx int) bool {
	if s.light == nil {
		return true
	}
	cx, cz := s.grid.CellAt(idx)
	x, z := s.grid.CellCenter(cx, cz)
	return s.light.Sunlit(x, z)
}
