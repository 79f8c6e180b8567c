package garden

import (
	"soilsim/pkg/core"
)

// Soil is the subset of the soil simulation the garden pushes against.
type Soil interface {
	AbsorbWater(worldX, worldZ, radius, maxAmount float32) float32
	AbsorbNitrogen(worldX, worldZ, radius, maxAmount float32) float32
	ModifyMoistureAt(worldX, worldZ, amount float32)
	ModifyNitrogenAt(worldX, worldZ, amount float32)
}

// Config tunes the actors living on the soil.
type Config struct {
	Plants      int
	Decomposers int

	// RootRadius is the absorption radius in world units.
	RootRadius float32
	// WaterDemand and NitrogenDemand are per-second uptake targets.
	WaterDemand    float32
	NitrogenDemand float32
	// Growth scales how fast vigor tracks how well a plant was fed.
	Growth float32

	// DecomposerRelease is nitrogen returned per second by each decomposer.
	DecomposerRelease float32
	// DecomposerLifetime is how long a decomposer works, in seconds.
	DecomposerLifetime float32
}

// DefaultConfig returns a small garden that keeps a 50×50 field busy
// without draining it.
func DefaultConfig() Config {
	return Config{
		Plants:             24,
		Decomposers:        6,
		RootRadius:         1.5,
		WaterDemand:        4,
		NitrogenDemand:     1.5,
		Growth:             0.4,
		DecomposerRelease:  2,
		DecomposerLifetime: 60,
	}
}

// Plant draws water and nitrogen from around its roots every tick.
type Plant struct {
	X, Z  float32
	Vigor float32
}

// Decomposer returns nitrogen to the soil until its lifetime runs out.
type Decomposer struct {
	X, Z      float32
	Remaining float32
}

type pour struct {
	x, z, amount float32
}

// Uptake summarises what one Apply call moved in and out of the soil.
type Uptake struct {
	Water    float32
	Nitrogen float32
	Released float32
	Watered  float32
	Died     int
}

// Garden owns the actors. Actors are applied in a fixed order, so two plants
// sharing a root zone compete and the first one wins ties.
type Garden struct {
	cfg        Config
	half       float32
	rng        *core.RNG
	plants     []Plant
	decomposer []Decomposer
	pending    []pour
	total      Uptake
}

// New scatters actors uniformly over a square of the given half extent.
func New(cfg Config, halfExtent float32, seed int64) *Garden {
	g := &Garden{cfg: cfg, half: halfExtent}
	g.Reset(seed)
	return g
}

// Reset rebuilds the actor set from seed.
func (g *Garden) Reset(seed int64) {
	g.rng = core.NewRNG(seed)
	g.plants = g.plants[:0]
	g.decomposer = g.decomposer[:0]
	g.pending = g.pending[:0]
	g.total = Uptake{}
	for i := 0; i < g.cfg.Plants; i++ {
		x, z := g.randomPoint()
		g.plants = append(g.plants, Plant{X: x, Z: z, Vigor: g.rng.Float32Range(0.4, 0.8)})
	}
	for i := 0; i < g.cfg.Decomposers; i++ {
		x, z := g.randomPoint()
		g.decomposer = append(g.decomposer, Decomposer{X: x, Z: z, Remaining: g.cfg.DecomposerLifetime})
	}
}

func (g *Garden) randomPoint() (float32, float32) {
	return g.rng.Float32Range(-g.half, g.half), g.rng.Float32Range(-g.half, g.half)
}

// Plants returns the living plants.
func (g *Garden) Plants() []Plant { return g.plants }

// Decomposers returns the active decomposers.
func (g *Garden) Decomposers() []Decomposer { return g.decomposer }

// Totals returns everything moved since the last Reset.
func (g *Garden) Totals() Uptake { return g.total }

// AddPlant places a plant at a world position.
func (g *Garden) AddPlant(x, z float32) {
	g.plants = append(g.plants, Plant{X: x, Z: z, Vigor: 0.5})
}

// Water queues a watering-can pour applied on the next Apply.
func (g *Garden) Water(x, z, amount float32) {
	if !(amount > 0) {
		return
	}
	g.pending = append(g.pending, pour{x: x, z: z, amount: amount})
}

// Apply runs one tick of actor behaviour against the soil. Call it before
// the soil's Tick so the changes take part in that tick's diffusion.
func (g *Garden) Apply(s Soil, dt float32) Uptake {
	var u Uptake
	if !(dt > 0) {
		return u
	}

	for _, p := range g.pending {
		s.ModifyMoistureAt(p.x, p.z, p.amount)
		u.Watered += p.amount
	}
	g.pending = g.pending[:0]

	kept := g.plants[:0]
	var fallen []Plant
	for _, p := range g.plants {
		wantW := g.cfg.WaterDemand * dt
		wantN := g.cfg.NitrogenDemand * dt
		gotW := s.AbsorbWater(p.X, p.Z, g.cfg.RootRadius, wantW)
		gotN := s.AbsorbNitrogen(p.X, p.Z, g.cfg.RootRadius, wantN)
		u.Water += gotW
		u.Nitrogen += gotN

		fed := (ratio(gotW, wantW) + ratio(gotN, wantN)) / 2
		p.Vigor += (fed - 0.5) * g.cfg.Growth * dt
		if p.Vigor > 1 {
			p.Vigor = 1
		}
		if p.Vigor <= 0 {
			fallen = append(fallen, p)
			continue
		}
		kept = append(kept, p)
	}
	g.plants = kept
	for _, p := range fallen {
		g.decomposer = append(g.decomposer, Decomposer{X: p.X, Z: p.Z, Remaining: g.cfg.DecomposerLifetime})
	}
	u.Died = len(fallen)

	active := g.decomposer[:0]
	for _, d := range g.decomposer {
		step := min(dt, d.Remaining)
		amount := g.cfg.DecomposerRelease * step
		if amount > 0 {
			s.ModifyNitrogenAt(d.X, d.Z, amount)
			u.Released += amount
		}
		d.Remaining -= step
		if d.Remaining > 0 {
			active = append(active, d)
		}
	}
	g.decomposer = active

	g.total.Water += u.Water
	g.total.Nitrogen += u.Nitrogen
	g.total.Released += u.Released
	g.total.Watered += u.Watered
	g.total.Died += u.Died
	return u
}

func ratio(got, want float32) float32 {
	if want <= 0 {
		return 1
	}
	r := got / want
	if r > 1 {
		return 1
	}
	return r
}
