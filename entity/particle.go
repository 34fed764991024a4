package entity

import (
	"github.com/lixenwraith/void-swarm/parameter"
	"github.com/lixenwraith/void-swarm/vmath"
)

// Particle is a pooled cosmetic spark with no gameplay effect
type Particle struct {
	X, Y   float64
	VX, VY float64
	Color  uint32
	Life   float64
	Decay  float64
}

// NewParticle is the pool factory
func NewParticle() *Particle {
	return &Particle{}
}

// Reset clears a recycled particle
func (p *Particle) Reset() {
	*p = Particle{}
}

// Emit launches the particle in a random direction
func (p *Particle) Emit(x, y float64, color uint32, rng *vmath.FastRand) {
	dx, dy := vmath.RandomDirection(rng)
	speed := rng.Float64() * parameter.ParticleMaxSpeed
	*p = Particle{
		X:     x,
		Y:     y,
		VX:    dx * speed,
		VY:    dy * speed,
		Color: color,
		Life:  1,
		Decay: parameter.ParticleDecay,
	}
}

// Update advances the particle; returns false once faded
func (p *Particle) Update(delta float64) bool {
	p.X += p.VX * delta
	p.Y += p.VY * delta
	p.Life -= p.Decay * delta
	return p.Life > 0
}
