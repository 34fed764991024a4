package system

import (
	"github.com/lixenwraith/void-swarm/arena"
	"github.com/lixenwraith/void-swarm/entity"
	"github.com/lixenwraith/void-swarm/event"
	"github.com/lixenwraith/void-swarm/parameter"
)

// HazardSystem applies zone effects to the player
type HazardSystem struct{}

// Update resets the slow multiplier then applies every overlapping zone
// Slow zones affect the next tick's movement
func (s *HazardSystem) Update(w *entity.World, delta float64) {
	p := w.Player
	p.SlowMultiplier = 1
	if p.Dead || w.Map == nil {
		return
	}

	for i := range w.Map.Hazards {
		hz := &w.Map.Hazards[i]
		if !hz.OverlapsCircle(p.X, p.Y, p.Radius) {
			continue
		}
		switch hz.Kind {
		case arena.HazardDamage:
			p.TakeHazardDamage(hz.DamagePerSecond/parameter.TicksPerSecond*delta, w.Events)
		case arena.HazardSlow:
			if hz.SlowMultiplier < p.SlowMultiplier {
				p.SlowMultiplier = hz.SlowMultiplier
			}
		case arena.HazardTeleport:
			if p.TeleportCooldown <= 0 {
				s.teleport(w)
			}
		}
	}
}

// teleport moves the player to a random free point
func (s *HazardSystem) teleport(w *entity.World) {
	p := w.Player
	for i := 0; i < parameter.TeleportAttempts; i++ {
		x := w.RNG.Range(p.Radius, w.Map.Width-p.Radius)
		y := w.RNG.Range(p.Radius, w.Map.Height-p.Radius)
		if !w.Map.IsFree(x, y, p.Radius) {
			continue
		}
		w.Events.Emit(event.EventTeleported, event.TeleportPayload{FromX: p.X, FromY: p.Y, ToX: x, ToY: y})
		w.Events.Particles(p.X, p.Y, 10, parameter.ColorPlayer)
		p.X, p.Y = x, y
		p.TeleportInvuln = parameter.TeleportInvulnTicks
		p.TeleportCooldown = parameter.TeleportCooldownTicks
		return
	}
	// No free point found; retry after the cooldown
	p.TeleportCooldown = parameter.TeleportCooldownTicks
}

// ZoneAt returns the first hazard overlapping a circle, nil if none
func ZoneAt(m *arena.Map, x, y, radius float64) *arena.Hazard {
	for i := range m.Hazards {
		if m.Hazards[i].OverlapsCircle(x, y, radius) {
			return &m.Hazards[i]
		}
	}
	return nil
}
