package game

import (
	"context"
	"log"
	"time"

	"github.com/iburimskiy/ambient-backdrop/internal/ambient"
	"github.com/iburimskiy/ambient-backdrop/internal/config"
)

// RunHeadless drives the engine from a ticker against a canvas that draws
// nothing. It returns when ctx is done or cfg.Frames frames have run.
func RunHeadless(ctx context.Context, cfg config.Config, logger *log.Logger) error {
	opts, err := engineOptions(cfg, logger)
	if err != nil {
		return err
	}

	surface := ambient.NewSurface(func() (ambient.Canvas, bool) { return ambient.Discard, true })
	surface.Resize(cfg.Width, cfg.Height)
	frames := ambient.NewFrameQueue()
	engine := ambient.New(surface, frames, opts...)

	ticker := time.NewTicker(time.Second / time.Duration(cfg.TPS))
	defer ticker.Stop()

	engine.Start()
	defer engine.Stop()

	start := time.Now()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}

		frames.Flush()
		n := engine.Frames()
		if cfg.Report > 0 && n%uint64(cfg.Report) == 0 {
			logger.Printf("frame %d (%s): particles %d/%d streams %d/%d",
				n, formatDuration(time.Since(start)),
				engine.Particles().Len(), engine.Particles().Target(),
				engine.Streams().Len(), engine.Streams().Target())
		}
		if cfg.Frames > 0 && n >= uint64(cfg.Frames) {
			return nil
		}
	}
}
