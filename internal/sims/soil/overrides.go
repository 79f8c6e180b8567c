package soil

import (
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/agnivade/levenshtein"
)

var configKeys = []string{"grid_size", "cell_size", "seed", "tick_rate"}

// Keys lists every key accepted by FromMap and ApplyOverride.
func Keys() []string {
	keys := append([]string(nil), configKeys...)
	for _, spec := range paramSpecs {
		keys = append(keys, spec.key)
	}
	sort.Strings(keys)
	return keys
}

// UnknownKeyError reports an override key that matches no setting.
// Suggestion holds the closest valid key, if any was near enough.
type UnknownKeyError struct {
	Key        string
	Suggestion string
}

func (e *UnknownKeyError) Error() string {
	if e.Suggestion == "" {
		return fmt.Sprintf("soil: unknown key %q", e.Key)
	}
	return fmt.Sprintf("soil: unknown key %q (did you mean %q?)", e.Key, e.Suggestion)
}

// ApplyOverride sets a single key on cfg. Unlike FromMap it rejects unknown
// keys and bad values so command-line typos surface immediately.
func ApplyOverride(cfg *Config, key, value string) error {
	switch key {
	case "grid_size":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("soil: %s: %w", key, err)
		}
		if n <= 0 {
			return fmt.Errorf("%w: %d", ErrInvalidGridSize, n)
		}
		cfg.GridSize = n
		return nil
	case "cell_size":
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("soil: %s: %w", key, err)
		}
		if !(v > 0) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %v", ErrInvalidCellSize, v)
		}
		cfg.CellSize = v
		return nil
	case "seed":
		v, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmt.Errorf("soil: %s: %w", key, err)
		}
		cfg.Seed = v
		return nil
	case "tick_rate":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("soil: %s: %w", key, err)
		}
		if n <= 0 {
			return fmt.Errorf("%w: %d", ErrInvalidTickRate, n)
		}
		cfg.TickRate = n
		return nil
	}

	spec, ok := lookupParam(key)
	if !ok {
		return &UnknownKeyError{Key: key, Suggestion: suggestKey(key)}
	}
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fmt.Errorf("soil: %s: %w", key, err)
	}
	if math.IsNaN(v) || v < spec.min || v > spec.max {
		return fmt.Errorf("%w: %s=%v outside [%v, %v]", ErrInvalidParam, key, v, spec.min, spec.max)
	}
	*spec.ref(&cfg.Params) = v
	return nil
}

func suggestKey(key string) string {
	best := ""
	bestDist := suggestLimit(len(key)) + 1
	for _, cand := range Keys() {
		dist := levenshtein.ComputeDistance(key, cand)
		if dist < bestDist {
			best = cand
			bestDist = dist
		}
	}
	return best
}

func suggestLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 10:
		return 3
	default:
		return 5
	}
}
