//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"soilsim/internal/app"
	"soilsim/internal/world"

	"github.com/hajimehoshi/ebiten/v2"
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

	game := app.New(w, cfg.Scale, cfg.HUDWidth, cfg.Seed)
	size := w.Size()

	ebiten.SetWindowTitle("soilsim: " + w.Name())
	ebiten.SetTPS(cfg.FPS)
	ebiten.SetWindowSize(size.W*cfg.Scale+cfg.HUDWidth, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
