package ambient

import "image/color"

// ParticlePool keeps a self-replenishing population of particles.
type ParticlePool struct {
	target    int
	palette   []color.RGBA
	rng       Rand
	particles []Particle
}

// NewParticlePool returns an empty pool that tops up to target.
func NewParticlePool(target int, palette []color.RGBA, rng Rand) *ParticlePool {
	if target < 0 {
		target = 0
	}
	return &ParticlePool{
		target:    target,
		palette:   palette,
		rng:       rng,
		particles: make([]Particle, 0, target),
	}
}

// Update advances every particle and drops the ones whose lifespan ran out.
func (pp *ParticlePool) Update(size Size) {
	n := 0
	for i := range pp.particles {
		if pp.particles[i].Update(size) {
			pp.particles[n] = pp.particles[i]
			n++
		}
	}
	pp.particles = pp.particles[:n]
}

// Fill spawns particles until the population reaches the target and returns
// how many were created.
func (pp *ParticlePool) Fill(size Size) int {
	created := 0
	for len(pp.particles) < pp.target {
		pp.particles = append(pp.particles, SpawnParticle(pp.rng, size, pp.palette))
		created++
	}
	return created
}

// Tick is Update followed by Fill.
func (pp *ParticlePool) Tick(size Size) {
	pp.Update(size)
	pp.Fill(size)
}

// Add inserts p as is, bypassing the spawn rules. The target still bounds
// subsequent fills.
func (pp *ParticlePool) Add(p Particle) {
	pp.particles = append(pp.particles, p)
}

// Particles exposes the live particles. The slice is only valid until the
// next Update, Fill or Reset.
func (pp *ParticlePool) Particles() []Particle { return pp.particles }

// Len returns the number of live particles.
func (pp *ParticlePool) Len() int { return len(pp.particles) }

// Target returns the population the pool tops up to.
func (pp *ParticlePool) Target() int { return pp.target }

// Reset drops all particles and releases the backing array.
func (pp *ParticlePool) Reset() { pp.particles = nil }
