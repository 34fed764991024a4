package system

import (
	"github.com/lixenwraith/void-swarm/engine"
	"github.com/lixenwraith/void-swarm/entity"
	"github.com/lixenwraith/void-swarm/vmath"
)

// ParticleManager owns pooled cosmetic particles
type ParticleManager struct {
	pool   *engine.ObjectPool[*entity.Particle]
	active []*entity.Particle
	rng    *vmath.FastRand
}

// NewParticleManager creates an empty manager
func NewParticleManager(rng *vmath.FastRand) *ParticleManager {
	return &ParticleManager{
		pool:   engine.NewObjectPool(entity.NewParticle, (*entity.Particle).Reset),
		active: make([]*entity.Particle, 0, 256),
		rng:    rng,
	}
}

// Spawn emits count particles at a point
func (m *ParticleManager) Spawn(x, y float64, count int, color uint32) {
	for i := 0; i < count; i++ {
		p := m.pool.Acquire()
		p.Emit(x, y, color, m.rng)
		m.active = append(m.active, p)
	}
}

// Update advances particles and releases faded ones
func (m *ParticleManager) Update(delta float64) {
	kept := m.active[:0]
	for _, p := range m.active {
		if p.Update(delta) {
			kept = append(kept, p)
			continue
		}
		m.pool.Release(p)
	}
	clearTail(m.active, len(kept))
	m.active = kept
}

// Active returns live particles; the slice is owned by the manager
func (m *ParticleManager) Active() []*entity.Particle {
	return m.active
}

// Clear releases every particle
func (m *ParticleManager) Clear() {
	for _, p := range m.active {
		m.pool.Release(p)
	}
	clearTail(m.active, 0)
	m.active = m.active[:0]
}
