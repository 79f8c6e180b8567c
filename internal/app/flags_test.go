package app

import (
	"errors"
	"flag"
	"testing"

	"soilsim/internal/sims/soil"
)

func TestBindParsesFlagsAndOverrides(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	err := fs.Parse([]string{"-grid", "20", "-seed", "9", "-set", "plants=2", "-set", " rain_coefficient = 3 "})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	wc, err := cfg.World()
	if err != nil {
		t.Fatalf("World: %v", err)
	}
	if wc.Soil.GridSize != 20 || wc.Soil.Seed != 9 {
		t.Fatalf("flags not applied: %+v", wc.Soil)
	}
	if wc.Garden.Plants != 2 || wc.Soil.Params.RainCoefficient != 3 {
		t.Fatalf("overrides not applied: plants=%d rain=%v", wc.Garden.Plants, wc.Soil.Params.RainCoefficient)
	}
}

func TestOverridesRejectMalformedAndUnknown(t *testing.T) {
	var o Overrides
	if err := o.Set("no-equals"); err == nil {
		t.Fatal("expected error for missing '='")
	}
	if err := o.Set("difusion_rate=1"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	cfg := NewConfig()
	cfg.Overrides = o
	_, err := cfg.World()
	var unknown *soil.UnknownKeyError
	if !errors.As(err, &unknown) || unknown.Suggestion != "diffusion_rate" {
		t.Fatalf("expected suggestion, got %v", err)
	}
	if o.String() != "difusion_rate=1" {
		t.Fatalf("unexpected String %q", o.String())
	}
}
