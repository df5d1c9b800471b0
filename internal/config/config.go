package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
)

const (
	WindowWidth  = 1024
	WindowHeight = 512
	TPS          = 60

	VisualRingSize  = 8192
	SmoothingFactor = 0.6

	// Backdrop parameters
	ParticleCount = 80
	StreamCount   = 12
	FadeAlpha     = 0.08
	PulseGain     = 1.5

	// Headless reporting
	ReportEvery = 300
)

// Palette is the default set of colours, as hex.
var Palette = []string{"#00d4ff", "#3b82f6", "#8b5cf6", "#10b981", "#06b6d4"}

// Config holds everything the program needs to start.
type Config struct {
	Width, Height int
	TPS           int

	Particles int
	Streams   int
	Fade      float64
	Palette   []string
	Seed      uint64

	AudioPath string
	Pick      bool

	Headless bool
	Frames   int
	Report   int
	Debug    bool
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Width:     WindowWidth,
		Height:    WindowHeight,
		TPS:       TPS,
		Particles: ParticleCount,
		Streams:   StreamCount,
		Fade:      FadeAlpha,
		Palette:   append([]string(nil), Palette...),
		Report:    ReportEvery,
	}
}

// Parse reads command line flags on top of Default. It returns flag.ErrHelp
// when -h is given.
func Parse(args []string, output io.Writer) (Config, error) {
	cfg := Default()
	palette := strings.Join(cfg.Palette, ",")

	fs := flag.NewFlagSet("backdrop", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.IntVar(&cfg.Width, "width", cfg.Width, "window width in pixels")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "window height in pixels")
	fs.IntVar(&cfg.TPS, "tps", cfg.TPS, "ticks per second")
	fs.IntVar(&cfg.Particles, "particles", cfg.Particles, "target particle count")
	fs.IntVar(&cfg.Streams, "streams", cfg.Streams, "target stream count")
	fs.Float64Var(&cfg.Fade, "fade", cfg.Fade, "alpha of the per-frame background wash (0,1]")
	fs.StringVar(&palette, "palette", palette, "comma separated hex colours")
	fs.Uint64Var(&cfg.Seed, "seed", 0, "random seed (0 = unseeded)")
	fs.StringVar(&cfg.AudioPath, "audio", "", "soundtrack to loop (wav, mp3, flac)")
	fs.BoolVar(&cfg.Pick, "pick", false, "choose the soundtrack with a file dialog")
	fs.BoolVar(&cfg.Headless, "headless", false, "run without a window")
	fs.IntVar(&cfg.Frames, "frames", 0, "stop after N frames (0 = run forever)")
	fs.IntVar(&cfg.Report, "report", cfg.Report, "headless: log populations every N frames (0 = never)")
	fs.BoolVar(&cfg.Debug, "debug", false, "show the debug overlay")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	cfg.Palette = splitList(palette)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

var (
	errNotPositive = errors.New("must be positive")
	errNegative    = errors.New("must not be negative")
)

// Validate reports the first invalid field.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0:
		return fmt.Errorf("-width %d: %w", c.Width, errNotPositive)
	case c.Height <= 0:
		return fmt.Errorf("-height %d: %w", c.Height, errNotPositive)
	case c.TPS <= 0:
		return fmt.Errorf("-tps %d: %w", c.TPS, errNotPositive)
	case c.Particles < 0:
		return fmt.Errorf("-particles %d: %w", c.Particles, errNegative)
	case c.Streams < 0:
		return fmt.Errorf("-streams %d: %w", c.Streams, errNegative)
	case c.Frames < 0:
		return fmt.Errorf("-frames %d: %w", c.Frames, errNegative)
	case c.Report < 0:
		return fmt.Errorf("-report %d: %w", c.Report, errNegative)
	case c.Fade <= 0 || c.Fade > 1:
		return fmt.Errorf("-fade %v: must be in (0,1]", c.Fade)
	case len(c.Palette) == 0:
		return errors.New("-palette: no colours given")
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
