package game

import (
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/iburimskiy/ambient-backdrop/internal/ambient"
	"github.com/iburimskiy/ambient-backdrop/internal/config"
)

// pulseWindow is how many recent samples feed the glow pulse.
const pulseWindow = 2048

// Game hosts the backdrop engine in an ebiten window. The engine draws into
// an offscreen buffer that survives between frames, which is what lets the
// background wash leave fading trails; Draw only copies it to the screen.
type Game struct {
	engine  *ambient.Engine
	surface *ambient.Surface
	frames  *ambient.FrameQueue
	buffer  *ebiten.Image
	canvas  *imageCanvas
	log     *log.Logger

	track *soundtrack
	pulse float64

	limit   uint64
	debug   bool
	started time.Time
	lastErr error
}

// New builds the game and starts the engine. The soundtrack, if any, is
// optional: failing to load it is logged and shown in the debug overlay.
func New(cfg config.Config, logger *log.Logger) (*Game, error) {
	opts, err := engineOptions(cfg, logger)
	if err != nil {
		return nil, err
	}

	g := &Game{
		frames:  ambient.NewFrameQueue(),
		canvas:  newImageCanvas(),
		log:     logger,
		limit:   uint64(cfg.Frames),
		debug:   cfg.Debug,
		started: time.Now(),
	}
	g.surface = ambient.NewSurface(g.acquire)
	g.surface.OnResize(g.realloc)

	if err := g.loadSoundtrack(cfg); err != nil {
		g.lastErr = err
		logger.Printf("soundtrack: %v", err)
	}

	opts = append(opts, ambient.WithGlow(g.glow))
	g.engine = ambient.New(g.surface, g.frames, opts...)
	g.engine.Start()
	return g, nil
}

func (g *Game) loadSoundtrack(cfg config.Config) error {
	path := cfg.AudioPath
	if cfg.Pick {
		picked, err := pickSoundtrack()
		if err != nil {
			return err
		}
		if picked != "" {
			path = picked
		}
	}
	if path == "" {
		return nil
	}

	track, err := openSoundtrack(path)
	if err != nil {
		return err
	}
	if err := track.play(); err != nil {
		_ = track.Close()
		return err
	}
	g.track = track
	g.log.Printf("soundtrack: playing %s", path)
	return nil
}

// acquire hands the engine the offscreen buffer, if one exists yet.
func (g *Game) acquire() (ambient.Canvas, bool) {
	if g.buffer == nil {
		return nil, false
	}
	g.canvas.dst = g.buffer
	return g.canvas, true
}

// realloc replaces the offscreen buffer after a resize. The old trails are
// lost; the entities are not touched.
func (g *Game) realloc(size ambient.Size) {
	if g.buffer != nil {
		g.buffer.Deallocate()
		g.buffer = nil
	}
	if size.Empty() {
		return
	}
	g.buffer = ebiten.NewImage(int(size.W), int(size.H))
	g.buffer.Fill(ambient.Background)
}

func (g *Game) glow() float64 {
	return 1 + g.pulse*config.PulseGain
}

func (g *Game) Update() error {
	if g.track != nil {
		g.pulse = config.SmoothingFactor*g.pulse + (1-config.SmoothingFactor)*g.track.level()
	}

	g.frames.Flush()

	if g.limit > 0 && g.engine.Frames() >= g.limit {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.buffer != nil {
		screen.DrawImage(g.buffer, nil)
	}
	if !g.debug {
		return
	}

	ps, ss := g.engine.Particles(), g.engine.Streams()
	status := fmt.Sprintf("TPS %.1f  particles %d/%d  streams %d/%d  frame %d  up %s",
		ebiten.ActualTPS(), ps.Len(), ps.Target(), ss.Len(), ss.Target(),
		g.engine.Frames(), formatDuration(time.Since(g.started)))
	if g.track != nil {
		status += fmt.Sprintf("  pulse %.2f", g.pulse)
	}
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 12, 12)
}

// Layout follows the window: the surface is whatever size the window is.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.surface.Resize(outsideWidth, outsideHeight)
	return max(outsideWidth, 1), max(outsideHeight, 1)
}

// Close stops the engine and releases the soundtrack.
func (g *Game) Close() error {
	g.engine.Stop()
	if g.buffer != nil {
		g.buffer.Deallocate()
		g.buffer = nil
	}
	if g.track == nil {
		return nil
	}
	err := g.track.Close()
	g.track = nil
	return err
}
