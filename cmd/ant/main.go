//go:build ebiten

package main

import (
	"errors"
	"log"
	"os"

	"mad-ant/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg, err := app.ParseArgs("ant", "Watch a multi-color Langton's ant.", os.Args[1:], nil)
	if err != nil {
		log.Fatal(err)
	}
	antCfg, err := cfg.AntConfig()
	if err != nil {
		log.Fatal(err)
	}

	cols, rows := cfg.GridSize()
	game, err := app.New(antCfg, cols, rows, cfg.Width, cfg.Height)
	if err != nil {
		log.Fatal(err)
	}
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("mad-ant: " + antCfg.Behavior)
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
