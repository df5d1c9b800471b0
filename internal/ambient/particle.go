package ambient

import (
	"image/color"
	"math"
)

// Kind selects the shape a particle is drawn with.
type Kind uint8

const (
	KindAmbient Kind = iota // filled circle
	KindAccent              // filled square
)

func (k Kind) String() string {
	if k == KindAccent {
		return "accent"
	}
	return "ambient"
}

// Particle tuning.
const (
	particleMaxSpeed = 0.25 // per axis, units/tick
	particleMinSize  = 0.5
	particleMaxSize  = 2.5
	particleMinLife  = 200
	particleMaxLife  = 500
	accentChance     = 0.3
	centerPull       = 0.002
	ambientBaseAlpha = 0.6
	accentBaseAlpha  = 0.9
	defaultParticles = 80
)

// Particle is a short-lived glow point drifting around the surface center.
type Particle struct {
	X, Y     float64
	VX, VY   float64
	Size     float64
	Color    color.RGBA
	Opacity  float64
	Kind     Kind
	Age      int
	Lifespan int
}

// SpawnParticle places a fresh particle uniformly inside size.
// A zero-area surface collapses the position to the origin.
func SpawnParticle(r Rand, size Size, palette []color.RGBA) Particle {
	p := Particle{
		X:        math.Max(0, size.W) * r.Float64(),
		Y:        math.Max(0, size.H) * r.Float64(),
		VX:       between(r, -particleMaxSpeed, particleMaxSpeed),
		VY:       between(r, -particleMaxSpeed, particleMaxSpeed),
		Size:     between(r, particleMinSize, particleMaxSize),
		Color:    pick(r, palette),
		Kind:     KindAmbient,
		Lifespan: intBetween(r, particleMinLife, particleMaxLife),
	}
	if r.Float64() < accentChance {
		p.Kind = KindAccent
	}
	p.Opacity = p.baseAlpha()
	return p
}

func (p *Particle) baseAlpha() float64 {
	if p.Kind == KindAccent {
		return accentBaseAlpha
	}
	return ambientBaseAlpha
}

// Alive reports whether the particle still has ticks left.
func (p *Particle) Alive() bool { return p.Age < p.Lifespan }

// Update advances the particle by one tick and reports whether it is still
// alive. Opacity falls linearly with age and reaches 0 at the lifespan.
func (p *Particle) Update(size Size) bool {
	p.X += p.VX
	p.Y += p.VY

	c := size.Center()
	dx, dy := c.X-p.X, c.Y-p.Y
	if d := math.Hypot(dx, dy); d > 0 {
		p.VX += dx / d * centerPull
		p.VY += dy / d * centerPull
	}

	p.X = wrap(p.X, size.W)
	p.Y = wrap(p.Y, size.H)

	p.Age++
	if p.Lifespan <= 0 {
		p.Opacity = 0
		return false
	}
	p.Opacity = math.Max(0, (1-float64(p.Age)/float64(p.Lifespan))*p.baseAlpha())
	return p.Alive()
}
