// Package ambient runs the animated backdrop: a pool of fading glow particles
// and a pool of trailing data streams, ticked once per frame.
package ambient

import (
	"image/color"
	"log"
)

// Option configures an Engine.
type Option func(*Engine)

// WithParticles sets the particle population target.
func WithParticles(n int) Option { return func(e *Engine) { e.particleTarget = n } }

// WithStreams sets the stream population target.
func WithStreams(n int) Option { return func(e *Engine) { e.streamTarget = n } }

// WithPalette sets the colours new entities are drawn from. An empty
// palette keeps the default.
func WithPalette(p []color.RGBA) Option {
	return func(e *Engine) {
		if len(p) > 0 {
			e.palette = p
		}
	}
}

// WithRand replaces the default unseeded generator.
func WithRand(r Rand) Option {
	return func(e *Engine) {
		if r != nil {
			e.rng = r
		}
	}
}

// WithLogger sets where lifecycle messages go. Nil keeps log.Default().
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// WithFade sets the alpha of the background wash painted each frame.
func WithFade(alpha float64) Option { return func(e *Engine) { e.fade = alpha } }

// WithGlow installs a per-frame multiplier for halo radii. It is read once
// per tick; negative and NaN results are treated as 0.
func WithGlow(fn func() float64) Option { return func(e *Engine) { e.glow = fn } }

// Engine is the render loop. It owns both pools and is driven by a
// Scheduler, one tick per requested frame. An Engine is confined to the
// goroutine that drives its scheduler.
type Engine struct {
	surface *Surface
	sched   Scheduler
	rng     Rand
	log     *log.Logger

	particleTarget int
	streamTarget   int
	palette        []color.RGBA
	fade           float64
	glow           func() float64

	particles *ParticlePool
	streams   *StreamPool

	running bool
	pending FrameID
	frames  uint64
	drawing bool // canvas was available on the previous tick
	pathBuf []Point
}

// New builds a stopped engine drawing on surface and ticking through sched.
func New(surface *Surface, sched Scheduler, opts ...Option) *Engine {
	e := &Engine{
		surface:        surface,
		sched:          sched,
		log:            log.Default(),
		particleTarget: defaultParticles,
		streamTarget:   defaultStreams,
		palette:        DefaultPalette,
		fade:           defaultFade,
		drawing:        true,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = defaultRand()
	}
	e.particles = NewParticlePool(e.particleTarget, e.palette, e.rng)
	e.streams = NewStreamPool(e.streamTarget, e.palette, e.rng)
	return e
}

// Start schedules the first tick. Starting a running engine is a no-op.
func (e *Engine) Start() {
	if e.running {
		return
	}
	e.running = true
	e.pending = e.sched.RequestFrame(e.frame)
	e.log.Printf("ambient: started (particles=%d streams=%d)", e.particleTarget, e.streamTarget)
}

// Stop cancels the pending tick and empties both pools. No tick runs after
// Stop returns.
func (e *Engine) Stop() {
	if !e.running {
		return
	}
	e.running = false
	if e.pending != 0 {
		e.sched.CancelFrame(e.pending)
		e.pending = 0
	}
	e.particles.Reset()
	e.streams.Reset()
	e.log.Printf("ambient: stopped after %d frames", e.frames)
}

func (e *Engine) Running() bool { return e.running }

func (e *Engine) frame() {
	e.pending = 0
	if !e.running {
		return
	}
	e.Tick()
	if !e.running {
		// stopped from inside the tick; drop what the top-up refilled
		e.particles.Reset()
		e.streams.Reset()
		return
	}
	// a Start from inside the tick has already queued the next frame
	if e.pending == 0 {
		e.pending = e.sched.RequestFrame(e.frame)
	}
}

// Tick runs one frame: wash, particles, streams, then top-up. Drawing is
// skipped when the surface has no canvas or no area; the simulation still
// advances.
func (e *Engine) Tick() {
	size := e.surface.Size()
	canvas, ok := e.surface.Canvas()
	if ok && size.Empty() {
		ok = false
	}
	if ok != e.drawing {
		if ok {
			e.log.Printf("ambient: canvas available at frame %d", e.frames)
		} else {
			e.log.Printf("ambient: canvas unavailable at frame %d, skipping draw", e.frames)
		}
		e.drawing = ok
	}

	glow := 1.0
	if e.glow != nil {
		// NaN fails the comparison and is treated as 0 too
		if g := e.glow(); g > 0 {
			glow = g
		} else {
			glow = 0
		}
	}

	if ok {
		drawFade(canvas, Background, e.fade)
	}

	e.particles.Update(size)
	if ok {
		ps := e.particles.Particles()
		for i := range ps {
			drawParticle(canvas, &ps[i], glow)
		}
	}

	e.streams.Update(size)
	if ok {
		ss := e.streams.Streams()
		for i := range ss {
			e.pathBuf = drawStream(canvas, &ss[i], glow, e.pathBuf)
		}
	}

	e.particles.Fill(size)
	e.streams.Fill(size)
	e.frames++
}

// Frames returns the number of completed ticks.
func (e *Engine) Frames() uint64 { return e.frames }

// Particles exposes the particle pool for inspection.
func (e *Engine) Particles() *ParticlePool { return e.particles }

// Streams exposes the stream pool for inspection.
func (e *Engine) Streams() *StreamPool { return e.streams }
