package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"strings"

	"soilsim/internal/app"
	"soilsim/internal/sims/soil"
	"soilsim/internal/world"
)

func main() {
	steps := flag.Int("steps", 600, "ticks to simulate per run")
	every := flag.Int("every", 100, "print telemetry every N ticks (0 disables)")
	workers := flag.Int("workers", runtime.NumCPU(), "parallel sweep evaluations")
	sweep := flag.String("sweep", "", "sweep one key over values, e.g. evaporation_rate=0.001,0.002,0.004")
	verbose := flag.Bool("v", false, "log every telemetry reading")
	keys := flag.Bool("keys", false, "list accepted -set keys and exit")
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if *keys {
		for _, k := range world.Keys() {
			fmt.Println(k)
		}
		return
	}

	wc, err := cfg.World()
	if err != nil {
		log.Fatal(err)
	}

	if *sweep != "" {
		key, values, err := parseSweep(*sweep)
		if err != nil {
			log.Fatal(err)
		}
		runSweep(wc, key, values, *steps, *workers)
		return
	}

	rep, err := world.Run(wc, *steps, func(step int, w *world.World) {
		if *every <= 0 || step%*every != 0 {
			return
		}
		printStep(step, w)
		if *verbose {
			for _, r := range w.Telemetry() {
				log.Printf("tick %d %s=%.4f", step, r.Label, r.Value)
			}
		}
	})
	if err != nil {
		log.Fatal(err)
	}
	printReport(rep)
}

func parseSweep(spec string) (string, []string, error) {
	key, list, ok := strings.Cut(spec, "=")
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return "", nil, fmt.Errorf("sweep %q is not in key=v1,v2 form", spec)
	}
	var values []string
	for _, v := range strings.Split(list, ",") {
		if v = strings.TrimSpace(v); v != "" {
			values = append(values, v)
		}
	}
	if len(values) == 0 {
		return "", nil, fmt.Errorf("sweep %q lists no values", spec)
	}
	return key, values, nil
}

func runSweep(base world.Config, key string, values []string, steps, workers int) {
	results := world.Sweep(base, key, values, steps, workers)
	fmt.Printf("Sweep %s over %d values, %d ticks each\n", key, len(values), steps)
	failed := 0
	for _, c := range results {
		if c.Err != nil {
			failed++
			fmt.Printf("  %s=%-10s error: %v\n", c.Key, c.Value, c.Err)
			continue
		}
		r := c.Report
		fmt.Printf("  %s=%-10s moisture mean %6.2f  nitrogen mean %6.2f  uptake %8.2f  plants %d\n",
			c.Key, c.Value, r.Moisture.Mean, r.Nitrogen.Mean, r.Garden.Water, r.Plants)
	}
	if failed == len(results) {
		os.Exit(1)
	}
}

func printStep(step int, w *world.World) {
	m := w.Soil.Stats(soil.Moisture)
	n := w.Soil.Stats(soil.Nitrogen)
	fmt.Printf("tick %5d  moisture %7.2f [%5.2f..%5.2f]  nitrogen %7.2f [%5.2f..%5.2f]  rain %.2f  plants %d\n",
		step, m.Mean, m.Min, m.Max, n.Mean, n.Min, n.Max, w.Soil.LastRainIntensity(), len(w.Garden.Plants()))
}

func printReport(r world.Report) {
	fmt.Printf("\nAfter %d ticks (%d rainy):\n", r.Steps, r.RainTicks)
	fmt.Printf("  moisture total %.2f mean %.2f\n", r.Moisture.Total, r.Moisture.Mean)
	fmt.Printf("  nitrogen total %.2f mean %.2f\n", r.Nitrogen.Total, r.Nitrogen.Mean)
	fmt.Printf("  garden drew %.2f water and %.2f nitrogen, decomposers released %.2f, %d plants died, %d remain\n",
		r.Garden.Water, r.Garden.Nitrogen, r.Garden.Released, r.Garden.Died, r.Plants)
}
