//go:build sdl

package main

import (
	"log"

	"github.com/iburimskiy/fireflies/internal/config"
	"github.com/iburimskiy/fireflies/internal/game"
	"github.com/iburimskiy/fireflies/internal/host/sdlhost"
)

func init() {
	hosts["sdl"] = runSDL
}

func runSDL(s settings, logger *log.Logger) error {
	h := sdlhost.New(config.CanvasID, config.WindowTitle)

	swarm, err := game.Setup(h, config.CanvasID, options(s))
	if err != nil {
		return err
	}
	if s.verbose {
		logSwarm(logger, swarm)
	}
	if _, err := swarm.Start(h); err != nil {
		return err
	}
	return h.Run()
}
