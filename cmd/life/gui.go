//go:build ebiten

package main

import (
	"errors"
	"log"

	"torus-life/internal/app"
	"torus-life/internal/config"
	"torus-life/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
)

func runGUI(cfg *config.Config) error {
	s, err := newSession(cfg)
	if err != nil {
		return err
	}
	game := app.New(s, cfg.Rate)

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(render.ScreenWidth, render.ScreenHeight)

	// A display that cannot be opened is not recoverable.
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
	return nil
}
