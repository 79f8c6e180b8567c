package world

import (
	"fmt"
	"image"

	"soilsim/internal/core"
	"soilsim/internal/env"
	"soilsim/internal/garden"
	"soilsim/internal/sims/soil"
	pkgcore "soilsim/pkg/core"
)

// Config gathers everything needed to build a World.
type Config struct {
	Soil   soil.Config
	Garden garden.Config

	DayLength     float32
	DawnPhase     float32
	RainSpeed     float64
	RainThreshold float64
	Buildings     int
}

// DefaultConfig returns a garden plot with a few buildings, a four minute
// day and occasional showers.
func DefaultConfig() Config {
	return Config{
		Soil:          soil.DefaultConfig(),
		Garden:        garden.DefaultConfig(),
		DayLength:     240,
		DawnPhase:     0.1,
		RainSpeed:     0.05,
		RainThreshold: 0.3,
		Buildings:     3,
	}
}

// World couples the soil grid with the light, weather and garden actors
// that drive it. It steps everything at the soil's fixed tick.
type World struct {
	cfg    Config
	Soil   *soil.Sim
	Garden *garden.Garden
	Light  *env.DayCycle
	Rain   *env.RainCycle

	last garden.Uptake
}

var (
	_ core.Sim                       = (*World)(nil)
	_ core.FieldLayer                = (*World)(nil)
	_ core.ParameterControlsProvider = (*World)(nil)
	_ core.FloatParameterSetter      = (*World)(nil)
	_ core.TelemetryProvider         = (*World)(nil)
)

// New builds a World, returning the soil validation error if the grid
// configuration is unusable.
func New(cfg Config) (*World, error) {
	light := env.NewDayCycle(cfg.DayLength)
	rain := env.NewRainCycle(cfg.Soil.Seed, cfg.RainSpeed, cfg.RainThreshold)
	s, err := soil.New(cfg.Soil, soil.Signals{Light: light, Weather: rain})
	if err != nil {
		return nil, fmt.Errorf("world: %w", err)
	}
	w := &World{
		cfg:   cfg,
		Soil:  s,
		Light: light,
		Rain:  rain,
	}
	half := s.Grid().HalfExtent()
	w.Garden = garden.New(cfg.Garden, half, cfg.Soil.Seed)
	w.placeBuildings(cfg.Soil.Seed, half)
	light.SetPhase(cfg.DawnPhase)
	return w, nil
}

func (w *World) placeBuildings(seed int64, half float32) {
	rng := pkgcore.NewRNG(seed ^ 0x0b1d)
	for i := 0; i < w.cfg.Buildings; i++ {
		width := rng.Float32Range(half*0.08, half*0.2)
		depth := rng.Float32Range(half*0.08, half*0.2)
		x := rng.Float32Range(-half, half-width)
		z := rng.Float32Range(-half, half-depth)
		w.Light.AddOccluder(env.Occluder{
			MinX:   x,
			MinZ:   z,
			MaxX:   x + width,
			MaxZ:   z + depth,
			Height: rng.Float32Range(2, 8),
		})
	}
}

// Config returns the configuration the world was built with.
func (w *World) Config() Config { return w.cfg }

// Name implements core.Sim.
func (w *World) Name() string { return w.Soil.Name() }

// Size implements core.Sim.
func (w *World) Size() core.Size { return w.Soil.Size() }

// Reset reseeds soil, weather and garden. Buildings stay where they are.
// A zero seed reuses the configured one.
func (w *World) Reset(seed int64) {
	if seed == 0 {
		seed = w.cfg.Soil.Seed
	}
	w.Soil.Reset(seed)
	w.Rain.Reset(seed)
	w.Garden.Reset(seed)
	w.Light.SetPhase(w.cfg.DawnPhase)
	w.last = garden.Uptake{}
}

// Step advances one fixed tick: light and weather move first, then the
// garden acts on the soil, then the soil ticks.
func (w *World) Step() {
	dt := w.Soil.Config().FixedDt()
	w.Light.Advance(dt)
	w.Rain.Advance(dt)
	w.last = w.Garden.Apply(w.Soil, dt)
	w.Soil.Tick(dt)
}

// LastUptake returns what the garden moved on the most recent Step.
func (w *World) LastUptake() garden.Uptake { return w.last }

// LayerNames implements core.FieldLayer.
func (w *World) LayerNames() []string { return w.Soil.LayerNames() }

// SnapshotLayer implements core.FieldLayer.
func (w *World) SnapshotLayer(name string, dst []float32) ([]float32, float32) {
	return w.Soil.SnapshotLayer(name, dst)
}

// Version reports the soil version so viewers can skip unchanged uploads.
func (w *World) Version() uint64 { return w.Soil.Version() }

// Parameters implements the HUD parameter provider.
func (w *World) Parameters() core.ParameterSnapshot { return w.Soil.Parameters() }

// ParameterControls implements core.ParameterControlsProvider.
func (w *World) ParameterControls() []core.ParameterControl { return w.Soil.ParameterControls() }

// SetFloatParameter implements core.FloatParameterSetter.
func (w *World) SetFloatParameter(key string, value float64) bool {
	return w.Soil.SetFloatParameter(key, value)
}

// Telemetry extends the soil readings with garden and sky state.
func (w *World) Telemetry() []core.Reading {
	out := w.Soil.Telemetry()
	day := 0.0
	if w.Light.IsDay() {
		day = 1
	}
	return append(out,
		core.Reading{Label: "Day", Value: day},
		core.Reading{Label: "Plants", Value: float64(len(w.Garden.Plants()))},
		core.Reading{Label: "Decomposers", Value: float64(len(w.Garden.Decomposers()))},
		core.Reading{Label: "Water uptake", Value: float64(w.last.Water)},
		core.Reading{Label: "Nitrogen uptake", Value: float64(w.last.Nitrogen)},
	)
}

// WaterAt queues a watering-can pour at a world position.
func (w *World) WaterAt(x, z, amount float32) { w.Garden.Water(x, z, amount) }

// PlantAt adds a plant at a world position.
func (w *World) PlantAt(x, z float32) { w.Garden.AddPlant(x, z) }

// CellToWorld maps a row-major grid index to the centre of that cell, for
// viewers translating screen clicks.
func (w *World) CellToWorld(col, row int) (float32, float32) {
	lo, _ := w.Soil.Grid().Bounds()
	return w.Soil.Grid().CellCenter(lo+col, lo+row)
}

// Footprints returns building outlines in grid column/row space, clipped to
// the field, for viewers drawing them over the soil.
func (w *World) Footprints() []image.Rectangle {
	g := w.Soil.Grid()
	lo, _ := g.Bounds()
	field := image.Rect(0, 0, g.N(), g.N())
	out := make([]image.Rectangle, 0, len(w.Light.Occluders()))
	for _, o := range w.Light.Occluders() {
		x0, z0 := g.ToCell(o.MinX, o.MinZ)
		x1, z1 := g.ToCell(o.MaxX, o.MaxZ)
		r := image.Rect(x0-lo, z0-lo, x1-lo+1, z1-lo+1).Intersect(field)
		if !r.Empty() {
			out = append(out, r)
		}
	}
	return out
}
