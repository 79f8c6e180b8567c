package soil

// LightSource reports whether a ground position is currently in direct
// sunlight. Shaded or night-time cells evaporate more slowly.
type LightSource interface {
	Sunlit(worldX, worldZ float32) bool
}

// LightFunc adapts a plain function to LightSource.
type LightFunc func(worldX, worldZ float32) bool

// Sunlit implements LightSource.
func (f LightFunc) Sunlit(worldX, worldZ float32) bool { return f(worldX, worldZ) }

// WeatherSource reports the current rain intensity in [0, 1]. It is read
// once at the start of every tick.
type WeatherSource interface {
	RainIntensity() float32
}

// RainFunc adapts a plain function to WeatherSource.
type RainFunc func() float32

// RainIntensity implements WeatherSource.
func (f RainFunc) RainIntensity() float32 { return f() }

// Signals bundles the external collaborators a Sim pulls from. Nil members
// mean "always sunlit" and "never raining".
type Signals struct {
	Light   LightSource
	Weather WeatherSource
}
