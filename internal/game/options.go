package game

import (
	"log"

	"github.com/iburimskiy/ambient-backdrop/internal/ambient"
	"github.com/iburimskiy/ambient-backdrop/internal/config"
)

// engineOptions translates the program configuration into engine options.
func engineOptions(cfg config.Config, logger *log.Logger) ([]ambient.Option, error) {
	palette, err := ambient.ParsePalette(cfg.Palette...)
	if err != nil {
		return nil, err
	}
	opts := []ambient.Option{
		ambient.WithParticles(cfg.Particles),
		ambient.WithStreams(cfg.Streams),
		ambient.WithFade(cfg.Fade),
		ambient.WithPalette(palette),
		ambient.WithLogger(logger),
	}
	if cfg.Seed != 0 {
		opts = append(opts, ambient.WithRand(ambient.NewRand(cfg.Seed)))
	}
	return opts, nil
}
