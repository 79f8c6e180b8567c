package world

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/agnivade/levenshtein"

	"soilsim/internal/sims/soil"
)

var worldKeys = []string{
	"day_length",
	"dawn_phase",
	"rain_speed",
	"rain_threshold",
	"buildings",
	"plants",
	"decomposers",
	"root_radius",
	"water_demand",
	"nitrogen_demand",
}

// Keys lists world and soil keys accepted by ApplyOverride.
func Keys() []string {
	keys := append(soil.Keys(), worldKeys...)
	sort.Strings(keys)
	return keys
}

// ApplyOverride sets one key=value pair on cfg. Soil keys are forwarded to
// soil.ApplyOverride; unknown keys come back as *soil.UnknownKeyError with a
// suggestion drawn from both key sets.
func ApplyOverride(cfg *Config, key, value string) error {
	switch key {
	case "day_length":
		v, err := parsePositive(key, value)
		if err != nil {
			return err
		}
		cfg.DayLength = float32(v)
	case "dawn_phase":
		v, err := strconv.ParseFloat(value, 32)
		if err != nil {
			return fmt.Errorf("world: %s: %w", key, err)
		}
		cfg.DawnPhase = float32(v)
	case "rain_speed":
		v, err := parsePositive(key, value)
		if err != nil {
			return err
		}
		cfg.RainSpeed = v
	case "rain_threshold":
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("world: %s: %w", key, err)
		}
		if v < -1 || v > 1 {
			return fmt.Errorf("world: %s=%v outside [-1, 1]", key, v)
		}
		cfg.RainThreshold = v
	case "buildings":
		return parseCount(key, value, &cfg.Buildings)
	case "plants":
		return parseCount(key, value, &cfg.Garden.Plants)
	case "decomposers":
		return parseCount(key, value, &cfg.Garden.Decomposers)
	case "root_radius":
		v, err := parsePositive(key, value)
		if err != nil {
			return err
		}
		cfg.Garden.RootRadius = float32(v)
	case "water_demand":
		v, err := parsePositive(key, value)
		if err != nil {
			return err
		}
		cfg.Garden.WaterDemand = float32(v)
	case "nitrogen_demand":
		v, err := parsePositive(key, value)
		if err != nil {
			return err
		}
		cfg.Garden.NitrogenDemand = float32(v)
	default:
		err := soil.ApplyOverride(&cfg.Soil, key, value)
		var unknown *soil.UnknownKeyError
		if errors.As(err, &unknown) {
			unknown.Suggestion = suggest(key)
		}
		return err
	}
	return nil
}

func parsePositive(key, value string) (float64, error) {
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("world: %s: %w", key, err)
	}
	if !(v > 0) {
		return 0, fmt.Errorf("world: %s must be positive, got %v", key, v)
	}
	return v, nil
}

func parseCount(key, value string, dst *int) error {
	n, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("world: %s: %w", key, err)
	}
	if n < 0 {
		return fmt.Errorf("world: %s must not be negative, got %d", key, n)
	}
	*dst = n
	return nil
}

func suggest(key string) string {
	best := ""
	bestDist := len(key)/2 + 1
	for _, cand := range Keys() {
		if d := levenshtein.ComputeDistance(key, cand); d < bestDist {
			best, bestDist = cand, d
		}
	}
	return best
}
