//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"eulerflow/internal/app"
	"eulerflow/internal/sims/fluid"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	simCfg := fluid.DefaultConfig()
	if cfg.ConfigPath != "" {
		loaded, err := fluid.LoadFile(cfg.ConfigPath)
		if err != nil {
			log.Fatalf("load config: %v", err)
		}
		simCfg = loaded
	}
	if cfg.Width > 0 {
		simCfg.Width = cfg.Width
	}
	if cfg.Height > 0 {
		simCfg.Height = cfg.Height
	}

	sim := fluid.NewWithConfig(simCfg)
	game := app.New(sim, cfg)
	size := sim.Size()

	ebiten.SetWindowTitle("eulerflow — " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
