package main

import (
	"flag"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"soilsim/internal/app"
	"soilsim/internal/core"
	"soilsim/internal/world"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	wc, err := cfg.World()
	if err != nil {
		log.Fatal(err)
	}
	w, err := world.New(wc)
	if err != nil {
		log.Fatal(err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}
	defer screen.Fini()

	v := newView(screen, w, cfg.Seed)
	run(v, core.NewFixedStep(wc.Soil.TickRate), time.Second/time.Duration(max(cfg.FPS, 1)))
}

// run redraws at the frame rate and lets clock decide how many soil ticks
// each frame owes.
func run(v *view, clock *core.FixedStep, frame time.Duration) {
	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	events := make(chan tcell.Event, 32)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	v.draw()
	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if v.apply(keyAction(ev.Key(), ev.Rune())) {
					return
				}
			case *tcell.EventResize:
				v.screen.Sync()
			}
			v.draw()
		case now := <-ticker.C:
			due := clock.Due(now)
			for i := 0; i < due; i++ {
				v.tick()
			}
			if due > 0 {
				v.draw()
			}
		}
	}
}
