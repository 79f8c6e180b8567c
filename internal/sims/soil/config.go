package soil

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// Saturation ceilings for the two tracked fields.
const (
	MaxMoisture = 100
	MaxNitrogen = 100
)

// Initial baseline bounds used by Reset.
const (
	initMoistureMin = 5
	initMoistureMax = 35
	initNitrogenMin = 5
	initNitrogenMax = 30
)

var (
	// ErrInvalidGridSize reports a non-positive cells-per-axis count.
	ErrInvalidGridSize = errors.New("soil: grid size must be positive")
	// ErrInvalidCellSize reports a non-positive or non-finite cell width.
	ErrInvalidCellSize = errors.New("soil: cell size must be positive and finite")
	// ErrInvalidTickRate reports a non-positive tick rate.
	ErrInvalidTickRate = errors.New("soil: tick rate must be positive")
	// ErrInvalidParam reports a rate constant outside its allowed range.
	ErrInvalidParam = errors.New("soil: invalid parameter")
)

// Params holds the rate constants of the soil model. Rates are expressed per
// normalized frame; TickNormalization converts seconds into frames.
type Params struct {
	DiffusionRate     float64
	DiffusionRateCap  float64
	MaxTimestep       float64
	TickNormalization float64

	EvaporationRate      float64
	ShadowEvapMultiplier float64

	RainCoefficient    float64
	AbsorptionFraction float64

	NoiseScale float64
}

// Config controls the soil grid geometry and dynamics.
type Config struct {
	GridSize int
	CellSize float64
	Seed     int64
	TickRate int

	Params Params
}

// DefaultConfig returns the standard 50×50 configuration ticking at 10 Hz.
func DefaultConfig() Config {
	return Config{
		GridSize: 50,
		CellSize: 1,
		Seed:     1337,
		TickRate: 10,
		Params: Params{
			DiffusionRate:        0.05,
			DiffusionRateCap:     0.2,
			MaxTimestep:          0.05,
			TickNormalization:    60,
			EvaporationRate:      0.002,
			ShadowEvapMultiplier: 0.2,
			RainCoefficient:      2,
			AbsorptionFraction:   0.5,
			NoiseScale:           0.08,
		},
	}
}

// FixedDt returns the tick length in seconds implied by TickRate.
func (c Config) FixedDt() float32 {
	if c.TickRate <= 0 {
		return 0
	}
	return 1 / float32(c.TickRate)
}

// Validate checks construction-time invariants.
func (c Config) Validate() error {
	if c.GridSize <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidGridSize, c.GridSize)
	}
	if !(c.CellSize > 0) || math.IsInf(c.CellSize, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidCellSize, c.CellSize)
	}
	if c.TickRate <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidTickRate, c.TickRate)
	}
	for _, spec := range paramSpecs {
		v := *spec.ref(&c.Params)
		if math.IsNaN(v) || v < spec.min || v > spec.max {
			return fmt.Errorf("%w: %s=%v outside [%v, %v]", ErrInvalidParam, spec.key, v, spec.min, spec.max)
		}
	}
	return nil
}

// paramSpec ties a key to its field, range and HUD presentation.
type paramSpec struct {
	key   string
	label string
	group string
	min   float64
	max   float64
	step  float64
	ref   func(*Params) *float64
}

var paramSpecs = []paramSpec{
	{"diffusion_rate", "Diffusion rate", "Diffusion", 0, 10, 0.01, func(p *Params) *float64 { return &p.DiffusionRate }},
	{"diffusion_rate_cap", "Diffusion rate cap", "Diffusion", 0, 1, 0.01, func(p *Params) *float64 { return &p.DiffusionRateCap }},
	{"max_timestep", "Max timestep", "Diffusion", 0.001, 1, 0.01, func(p *Params) *float64 { return &p.MaxTimestep }},
	{"tick_normalization", "Tick normalization", "Diffusion", 1, 1000, 1, func(p *Params) *float64 { return &p.TickNormalization }},
	{"evaporation_rate", "Evaporation rate", "Evaporation", 0, 10, 0.001, func(p *Params) *float64 { return &p.EvaporationRate }},
	{"shadow_evap_multiplier", "Shadow evaporation", "Evaporation", 0, 1, 0.05, func(p *Params) *float64 { return &p.ShadowEvapMultiplier }},
	{"rain_coefficient", "Rain coefficient", "Rain", 0, 1000, 0.1, func(p *Params) *float64 { return &p.RainCoefficient }},
	{"absorption_fraction", "Absorption fraction", "Absorption", 0, 1, 0.05, func(p *Params) *float64 { return &p.AbsorptionFraction }},
	{"noise_scale", "Baseline noise scale", "Initial State", 0, 10, 0.01, func(p *Params) *float64 { return &p.NoiseScale }},
}

func lookupParam(key string) (paramSpec, bool) {
	for _, spec := range paramSpecs {
		if spec.key == key {
			return spec, true
		}
	}
	return paramSpec{}, false
}

// FromMap populates the config from a string map (flag-style key/value
// pairs). Unparseable or out-of-range values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["grid_size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.GridSize = parsed
		}
	}
	if v, ok := cfg["cell_size"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 && !math.IsInf(parsed, 0) {
			c.CellSize = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["tick_rate"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.TickRate = parsed
		}
	}
	for _, spec := range paramSpecs {
		v, ok := cfg[spec.key]
		if !ok {
			continue
		}
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil || math.IsNaN(parsed) || parsed < spec.min || parsed > spec.max {
			continue
		}
		*spec.ref(&c.Params) = parsed
	}
	return c
}
