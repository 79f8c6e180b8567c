package world

import (
	"sync"

	"soilsim/internal/garden"
	"soilsim/internal/sims/soil"
)

// Report summarises a headless run.
type Report struct {
	Steps     int
	Moisture  soil.FieldStats
	Nitrogen  soil.FieldStats
	Garden    garden.Uptake
	RainTicks int
	Plants    int
}

// Run builds a world from cfg and steps it. observe, when non-nil, is called
// after every step.
func Run(cfg Config, steps int, observe func(step int, w *World)) (Report, error) {
	w, err := New(cfg)
	if err != nil {
		return Report{}, err
	}
	rep := Report{}
	for i := 1; i <= steps; i++ {
		w.Step()
		if w.Soil.LastRainIntensity() > 0 {
			rep.RainTicks++
		}
		if observe != nil {
			observe(i, w)
		}
	}
	rep.Steps = steps
	rep.Moisture = w.Soil.Stats(soil.Moisture)
	rep.Nitrogen = w.Soil.Stats(soil.Nitrogen)
	rep.Garden = w.Garden.Totals()
	rep.Plants = len(w.Garden.Plants())
	return rep, nil
}

// Candidate is one evaluated value of a sweep.
type Candidate struct {
	Key    string
	Value  string
	Report Report
	Err    error
}

// Sweep evaluates each value of key on top of base using up to workers
// goroutines. Results come back in the order of values.
func Sweep(base Config, key string, values []string, steps, workers int) []Candidate {
	if workers <= 0 {
		workers = 1
	}
	out := make([]Candidate, len(values))
	var wg sync.WaitGroup
	sem := make(chan struct{}, workers)

	for idx, value := range values {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, v string) {
			defer wg.Done()
			defer func() { <-sem }()
			cand := Candidate{Key: key, Value: v}
			cfg := base
			if err := ApplyOverride(&cfg, key, v); err != nil {
				cand.Err = err
				out[i] = cand
				return
			}
			cand.Report, cand.Err = Run(cfg, steps, nil)
			out[i] = cand
		}(idx, value)
	}

	wg.Wait()
	return out
}
