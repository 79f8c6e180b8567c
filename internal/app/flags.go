package app

import (
	"flag"
	"fmt"
	"strings"

	"soilsim/internal/world"
)

// Overrides collects repeatable -set key=value flags.
type Overrides []string

func (o *Overrides) String() string { return strings.Join(*o, ",") }

// Set implements flag.Value.
func (o *Overrides) Set(value string) error {
	if !strings.Contains(value, "=") {
		return fmt.Errorf("override %q is not in key=value form", value)
	}
	*o = append(*o, value)
	return nil
}

// Apply writes every override onto cfg, stopping at the first bad one.
func (o Overrides) Apply(cfg *world.Config) error {
	for _, kv := range o {
		key, value, _ := strings.Cut(kv, "=")
		if err := world.ApplyOverride(cfg, strings.TrimSpace(key), strings.TrimSpace(value)); err != nil {
			return err
		}
	}
	return nil
}

// Config represents the command-line parameters shared by the viewers.
type Config struct {
	Scale     int
	FPS       int
	Seed      int64
	GridSize  int
	HUDWidth  int
	Overrides Overrides
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Scale: 12, FPS: 60, Seed: 1337, GridSize: 50, HUDWidth: 300}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.FPS, "fps", c.FPS, "frames per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the soil baseline, weather and garden")
	fs.IntVar(&c.GridSize, "grid", c.GridSize, "cells per axis")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "HUD panel width in pixels (0 hides it)")
	fs.Var(&c.Overrides, "set", "world or soil setting in key=value form (repeatable)")
}

// World builds the world configuration described by the flags.
func (c *Config) World() (world.Config, error) {
	cfg := world.DefaultConfig()
	cfg.Soil.Seed = c.Seed
	cfg.Soil.GridSize = c.GridSize
	if err := c.Overrides.Apply(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
