package ambient

import (
	"math"
	"reflect"
	"testing"
)

func newTestEngine(surface *Surface, q *FrameQueue, seed uint64, opts ...Option) *Engine {
	base := []Option{
		WithRand(NewRand(seed)),
		WithLogger(quietLog),
		WithParticles(80),
		WithStreams(12),
	}
	return New(surface, q, append(base, opts...)...)
}

func TestEngineSteadyState(t *testing.T) {
	surface, _ := newTestSurface(800, 600)
	q := NewFrameQueue()
	e := newTestEngine(surface, q, 1)
	e.Start()

	for i := 0; i < 80; i++ {
		q.Flush()
		if e.Particles().Len() > 80 {
			t.Fatalf("frame %d: %d particles above target", i, e.Particles().Len())
		}
		if e.Streams().Len() != 12 {
			t.Fatalf("frame %d: %d streams, want 12", i, e.Streams().Len())
		}
	}
	if e.Particles().Len() != 80 {
		t.Errorf("particles = %d, want 80", e.Particles().Len())
	}
	if e.Frames() != 80 {
		t.Errorf("frames = %d, want 80", e.Frames())
	}
}

func TestEngineStopCancelsPendingTick(t *testing.T) {
	surface, _ := newTestSurface(200, 200)
	q := NewFrameQueue()
	e := newTestEngine(surface, q, 2)

	e.Start()
	e.Start()
	if q.Len() != 1 {
		t.Fatalf("pending frames = %d after double start, want 1", q.Len())
	}
	q.Flush()
	q.Flush()
	q.Flush()
	e.Stop()

	for i := 0; i < 10; i++ {
		q.Flush()
	}
	if e.Frames() != 3 {
		t.Errorf("frames = %d, want 3", e.Frames())
	}
	if q.Len() != 0 {
		t.Errorf("pending frames after stop = %d", q.Len())
	}
	if e.Running() {
		t.Error("engine still running")
	}
	if e.Particles().Len() != 0 || e.Streams().Len() != 0 {
		t.Errorf("pools not released: %d particles, %d streams", e.Particles().Len(), e.Streams().Len())
	}
}

func TestEngineStopFromInsideTick(t *testing.T) {
	surface, _ := newTestSurface(200, 200)
	q := NewFrameQueue()
	var e *Engine
	e = newTestEngine(surface, q, 3, WithGlow(func() float64 {
		if e.Frames() == 2 {
			e.Stop()
		}
		return 1
	}))
	e.Start()
	for i := 0; i < 6; i++ {
		q.Flush()
	}
	// the third tick finishes, nothing is scheduled after it
	if e.Frames() != 3 {
		t.Errorf("frames = %d, want 3", e.Frames())
	}
	if q.Len() != 0 {
		t.Errorf("pending frames = %d, want 0", q.Len())
	}
}

func TestEngineRestartFromInsideTick(t *testing.T) {
	surface, _ := newTestSurface(200, 200)
	q := NewFrameQueue()
	var e *Engine
	restarted := false
	e = newTestEngine(surface, q, 10, WithGlow(func() float64 {
		if e.Frames() == 1 && !restarted {
			restarted = true
			e.Stop()
			e.Start()
		}
		return 1
	}))
	e.Start()

	for i := 1; i <= 5; i++ {
		q.Flush()
		if e.Frames() != uint64(i) {
			t.Fatalf("after flush %d: frames = %d, want %d", i, e.Frames(), i)
		}
		if q.Len() != 1 {
			t.Fatalf("after flush %d: pending frames = %d, want 1", i, q.Len())
		}
	}
	if !restarted || !e.Running() {
		t.Fatalf("restart did not happen (restarted=%v running=%v)", restarted, e.Running())
	}

	e.Stop()
	q.Flush()
	if e.Frames() != 5 || q.Len() != 0 {
		t.Errorf("after stop: frames=%d pending=%d, want 5 and 0", e.Frames(), q.Len())
	}
}

func TestEngineRestart(t *testing.T) {
	surface, _ := newTestSurface(200, 200)
	q := NewFrameQueue()
	e := newTestEngine(surface, q, 4)
	e.Start()
	q.Flush()
	e.Stop()
	e.Start()
	q.Flush()
	if e.Particles().Len() != 80 || e.Streams().Len() != 12 {
		t.Errorf("restart did not refill: %d particles, %d streams", e.Particles().Len(), e.Streams().Len())
	}
}

func TestEngineDrawOrder(t *testing.T) {
	surface, rc := newTestSurface(400, 300)
	q := NewFrameQueue()
	e := newTestEngine(surface, q, 5)
	e.Tick()
	rc.reset()
	e.Tick()

	if len(rc.ops) == 0 || rc.ops[0].kind != "fill" {
		t.Fatalf("first op is not the background wash: %+v", rc.ops)
	}
	if rc.ops[0].alpha != defaultFade {
		t.Errorf("wash alpha = %v, want %v", rc.ops[0].alpha, defaultFade)
	}
	firstPath := -1
	for i, op := range rc.ops {
		if op.kind == "path" && firstPath < 0 {
			firstPath = i
		}
	}
	if firstPath < 0 {
		t.Fatal("no stream drawn")
	}
	particleOps := rc.count("rect")
	for _, op := range rc.ops[1:firstPath] {
		if op.kind == "path" {
			t.Fatal("stream drawn before particles")
		}
	}
	for _, op := range rc.ops[1:firstPath] {
		if op.kind == "circle" {
			particleOps++
		}
	}
	if particleOps != 80 {
		t.Errorf("particle draws before first stream = %d, want 80", particleOps)
	}
	if got := rc.count("path"); got != 12 {
		t.Errorf("paths = %d, want 12", got)
	}
}

func TestEngineSkipsDrawWithoutCanvas(t *testing.T) {
	rc := &recordingCanvas{}
	available := false
	surface := NewSurface(func() (Canvas, bool) { return rc, available })
	surface.Resize(300, 200)
	q := NewFrameQueue()
	e := newTestEngine(surface, q, 6)
	e.Start()

	q.Flush()
	q.Flush()
	if len(rc.ops) != 0 {
		t.Fatalf("drew %d ops without a canvas", len(rc.ops))
	}
	if e.Particles().Len() != 80 || !e.Running() {
		t.Fatalf("simulation stalled without canvas")
	}

	available = true
	q.Flush()
	if len(rc.ops) == 0 {
		t.Fatal("no drawing after canvas became available")
	}
}

func TestEngineZeroAreaSurface(t *testing.T) {
	surface, rc := newTestSurface(0, 0)
	q := NewFrameQueue()
	e := newTestEngine(surface, q, 7)
	e.Start()
	for i := 0; i < 5; i++ {
		q.Flush()
	}
	if len(rc.ops) != 0 {
		t.Errorf("drew %d ops on an empty surface", len(rc.ops))
	}
	for _, p := range e.Particles().Particles() {
		if p.X != 0 || p.Y != 0 {
			t.Fatalf("particle at (%v, %v) on empty surface", p.X, p.Y)
		}
	}
}

func TestEngineResizeIsIdempotent(t *testing.T) {
	run := func(resizes int) []Particle {
		surface, _ := newTestSurface(800, 600)
		q := NewFrameQueue()
		e := newTestEngine(surface, q, 8)
		e.Start()
		for i := 0; i < 20; i++ {
			q.Flush()
		}
		for i := 0; i < resizes; i++ {
			surface.Resize(300, 200)
		}
		for i := 0; i < 40; i++ {
			q.Flush()
		}
		return append([]Particle(nil), e.Particles().Particles()...)
	}

	once, twice := run(1), run(2)
	if !reflect.DeepEqual(once, twice) {
		t.Error("resizing twice to the same size diverged from resizing once")
	}
	for _, p := range once {
		if p.X < 0 || p.X >= 300 || p.Y < 0 || p.Y >= 200 {
			t.Fatalf("particle (%v, %v) outside resized surface", p.X, p.Y)
		}
	}
}

func TestEngineGlowScalesHalo(t *testing.T) {
	surface, rc := newTestSurface(400, 300)
	q := NewFrameQueue()
	glow := 0.0
	e := newTestEngine(surface, q, 9, WithStreams(0), WithGlow(func() float64 { return glow }))
	e.Tick()
	rc.reset()
	e.Tick()
	for _, op := range rc.ops[1:] {
		if op.glow != 0 {
			t.Fatalf("halo %v drawn with zero glow", op.glow)
		}
	}

	glow = -2
	rc.reset()
	e.Tick()
	for _, op := range rc.ops[1:] {
		if op.glow != 0 {
			t.Fatalf("negative glow produced halo %v", op.glow)
		}
	}

	glow = math.NaN()
	rc.reset()
	e.Tick()
	for _, op := range rc.ops[1:] {
		if op.glow != 0 {
			t.Fatalf("NaN glow produced halo %v", op.glow)
		}
	}

	glow = 2
	rc.reset()
	e.Tick()
	for _, op := range rc.ops[1:] {
		if op.glow <= 0 {
			t.Fatalf("no halo with glow 2")
		}
	}
}
