//go:build ebiten

package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"floodcross/internal/app"
	"floodcross/internal/logging"
	"floodcross/internal/settings"
	"floodcross/internal/sims/flood"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if cfg.Settings != "" {
		f, err := settings.Load(cfg.Settings)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		cfg.ApplySettings(f, flag.CommandLine)
	}
	logger := logging.New(os.Stdout, cfg.LogLevel)

	fc := cfg.FloodConfig().WithTimeSeed()
	if err := fc.Validate(); err != nil {
		logger.Fatalln(err)
	}
	eng := flood.NewWithConfig(fc, flood.WithLogger(logger))
	game := app.New(eng, cfg, logger)

	ebiten.SetWindowTitle("floodcross: last day you can cross")
	ebiten.SetWindowSize(game.WindowSize())

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatalln(err)
	}
}
