package system

import (
	"math"

	"github.com/lixenwraith/void-swarm/entity"
	"github.com/lixenwraith/void-swarm/parameter"
)

// RepulsionField pushes nearby enemies every tick and burns them on a regen-derived interval
type RepulsionField struct{}

// Reset is a no-op; the field keeps no accumulators
func (r *RepulsionField) Reset() {}

// RepulsionRange returns the field radius
func RepulsionRange(p *entity.Player) float64 {
	level := math.Min(float64(p.RepulsionLevel), parameter.RepulsionRangeLevelCap)
	return parameter.RepulsionBaseRange + level*parameter.RepulsionRangePerLevel + p.BulletSize*parameter.RepulsionRangePerSize
}

// RepulsionTickRate returns the damage interval in ticks
func RepulsionTickRate(regen float64) uint64 {
	rate := int(math.Floor(parameter.RepulsionBaseTickRate / (1 + regen*parameter.RepulsionRegenScale)))
	return uint64(max(parameter.RepulsionMinTickRate, rate))
}

// RepulsionDamage returns the per-tick burn damage
func RepulsionDamage(p *entity.Player) float64 {
	hpBonus := math.Floor(p.MaxHP * parameter.RepulsionHPBonus)
	base := p.Damage * (parameter.RepulsionDamageBase + float64(p.RepulsionLevel)*parameter.RepulsionDamagePerLevel)
	return math.Max(1, math.Floor(base+hpBonus))
}

// Update applies continuous push and periodic damage to enemies in range
func (r *RepulsionField) Update(ctx *WeaponContext, delta float64) {
	w := ctx.World
	p := w.Player
	if p.RepulsionLevel <= 0 {
		return
	}

	radius := RepulsionRange(p)
	force := parameter.RepulsionForce * (parameter.RepulsionForceBase + float64(p.RepulsionLevel)*parameter.RepulsionForcePerLevel) * delta
	burn := w.Frame%RepulsionTickRate(p.Regen) == 0
	dmg := RepulsionDamage(p)

	for _, h := range w.Nearby(p.X, p.Y, radius+parameter.EnemyTank.Radius) {
		e, ok := w.Enemies.Get(h)
		if !ok || !e.Alive() {
			continue
		}
		dx, dy := e.X-p.X, e.Y-p.Y
		reach := radius + e.Radius
		distSq := dx*dx + dy*dy
		if distSq >= reach*reach {
			continue
		}
		if dist := math.Sqrt(distSq); dist > 0 {
			e.Knock(dx/dist*force, dy/dist*force)
		}
		if burn {
			e.TakeHit(dmg)
			if w.RNG.Float64() < parameter.RepulsionParticleChance {
				w.Events.Particles(e.X, e.Y, 1, parameter.ColorRepulsion)
			}
		}
	}
}
