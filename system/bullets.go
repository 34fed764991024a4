package system

import (
	"github.com/lixenwraith/void-swarm/engine"
	"github.com/lixenwraith/void-swarm/entity"
)

// BulletManager owns pooled projectiles
type BulletManager struct {
	pool   *engine.ObjectPool[*entity.Bullet]
	active []*entity.Bullet
}

// NewBulletManager creates an empty manager
func NewBulletManager() *BulletManager {
	return &BulletManager{
		pool:   engine.NewObjectPool(entity.NewBullet, (*entity.Bullet).Reset),
		active: make([]*entity.Bullet, 0, 128),
	}
}

// Spawn acquires and fires a bullet
func (m *BulletManager) Spawn(x, y, vx, vy, damage float64, pierce int, size float64, crit bool) {
	b := m.pool.Acquire()
	b.Fire(x, y, vx, vy, damage, pierce, size, crit)
	m.active = append(m.active, b)
}

// Update moves every bullet and releases the dead ones
func (m *BulletManager) Update(w *entity.World, delta float64) {
	kept := m.active[:0]
	for _, b := range m.active {
		b.Update(w, delta)
		if b.Dead {
			m.pool.Release(b)
			continue
		}
		kept = append(kept, b)
	}
	clearTail(m.active, len(kept))
	m.active = kept
}

// Active returns live bullets; the slice is owned by the manager
func (m *BulletManager) Active() []*entity.Bullet {
	return m.active
}

// Clear releases every bullet
func (m *BulletManager) Clear() {
	for _, b := range m.active {
		m.pool.Release(b)
	}
	clearTail(m.active, 0)
	m.active = m.active[:0]
}

// clearTail nils pointers past n so released objects are only reachable from the pool
func clearTail[T any](s []*T, n int) {
	clear(s[n:])
}
