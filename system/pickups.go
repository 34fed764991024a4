package system

import (
	"github.com/lixenwraith/void-swarm/engine"
	"github.com/lixenwraith/void-swarm/entity"
	"github.com/lixenwraith/void-swarm/event"
)

// PickupManager owns pooled gems and powerup drops
type PickupManager struct {
	pool   *engine.ObjectPool[*entity.Pickup]
	active []*entity.Pickup
}

// NewPickupManager creates an empty manager
func NewPickupManager() *PickupManager {
	return &PickupManager{
		pool:   engine.NewObjectPool(entity.NewPickup, (*entity.Pickup).Reset),
		active: make([]*entity.Pickup, 0, 128),
	}
}

// SpawnXP drops an experience gem; tier is the gem multiplier (1, 2 or 4)
func (m *PickupManager) SpawnXP(x, y float64, value, tier int) {
	p := m.pool.Acquire()
	p.InitXP(x, y, value, tier)
	m.active = append(m.active, p)
}

// SpawnPowerup drops a powerup
func (m *PickupManager) SpawnPowerup(x, y float64, kind entity.PowerupKind) {
	p := m.pool.Acquire()
	p.InitPowerup(x, y, kind)
	m.active = append(m.active, p)
}

// MagnetizeAll locks every xp gem onto the player
func (m *PickupManager) MagnetizeAll() {
	for _, p := range m.active {
		if p.Kind == entity.PickupXP {
			p.Magnetized = true
		}
	}
}

// Update homes pickups and applies collected ones
func (m *PickupManager) Update(w *entity.World, powerups *PowerupSystem, delta float64) {
	pl := w.Player
	kept := m.active[:0]
	for _, p := range m.active {
		if pl.Dead || !p.Update(pl, delta) {
			kept = append(kept, p)
			continue
		}
		switch p.Kind {
		case entity.PickupXP:
			w.Events.Emit(event.EventPickupCollected, event.PickupCollectedPayload{Value: p.Value})
			w.Events.Sound(event.CueCollect, 0.1, 0)
			pl.GainXP(p.Value, w.Events)
		case entity.PickupPowerup:
			w.Events.Emit(event.EventPickupCollected, event.PickupCollectedPayload{Powerup: p.Powerup.String()})
			powerups.Activate(pl, p.Powerup, w.Events)
			if p.Powerup == entity.PowerupMagnet {
				m.MagnetizeAll()
			}
		}
		m.pool.Release(p)
	}
	clearTail(m.active, len(kept))
	m.active = kept
}

// Active returns live pickups; the slice is owned by the manager
func (m *PickupManager) Active() []*entity.Pickup {
	return m.active
}

// Clear releases every pickup
func (m *PickupManager) Clear() {
	for _, p := range m.active {
		m.pool.Release(p)
	}
	clearTail(m.active, 0)
	m.active = m.active[:0]
}
