package system

import (
	"math"

	"github.com/lixenwraith/void-swarm/entity"
	"github.com/lixenwraith/void-swarm/parameter"
)

// IonOrbs orbit the player, damaging enemies they touch every other tick
type IonOrbs struct {
	Angle float64
}

// Reset clears the orbit phase
func (o *IonOrbs) Reset() {
	o.Angle = 0
}

// OrbCount returns the number of orbs for the player's stats
func OrbCount(p *entity.Player) int {
	if p.IonOrbsLevel <= 0 {
		return 0
	}
	return 1 + p.IonOrbsLevel + (p.ProjectileCount - 1)
}

// OrbSize returns the orb radius
func OrbSize(p *entity.Player) float64 {
	return parameter.OrbBaseSize + p.BulletSize*parameter.OrbSizePerBullet
}

// OrbitRadius returns the orbit distance from the player centre
func OrbitRadius(p *entity.Player) float64 {
	return p.Radius + parameter.OrbOrbitPadding + OrbSize(p)*parameter.OrbOrbitSizeScale
}

// Position returns the world position of orb i
func (o *IonOrbs) Position(p *entity.Player, i int) (float64, float64) {
	count := OrbCount(p)
	if count == 0 {
		return p.X, p.Y
	}
	a := o.Angle + float64(i)*(2*math.Pi/float64(count))
	r := OrbitRadius(p)
	return p.X + math.Cos(a)*r, p.Y + math.Sin(a)*r
}

// Update advances the orbit and applies contact damage and knockback on even frames
func (o *IonOrbs) Update(ctx *WeaponContext, delta float64) {
	w := ctx.World
	p := w.Player
	count := OrbCount(p)
	if count == 0 {
		return
	}

	o.Angle += parameter.OrbAngularSpeed * (p.Speed / p.BaseSpeed) * delta

	if w.Frame%parameter.OrbDamageInterval != 0 {
		return
	}

	size := OrbSize(p)
	level := float64(p.IonOrbsLevel)
	dmg := math.Max(1, math.Floor(p.Damage*(parameter.OrbDamageBase+level*parameter.OrbDamagePerLevel)))
	knock := (parameter.OrbKnockbackBase + level*parameter.OrbKnockbackPerLevel) * delta

	for i := 0; i < count; i++ {
		ox, oy := o.Position(p, i)
		for _, h := range w.Nearby(ox, oy, size) {
			e, ok := w.Enemies.Get(h)
			if !ok || !e.Alive() {
				continue
			}
			dx, dy := e.X-ox, e.Y-oy
			reach := size + e.Radius
			distSq := dx*dx + dy*dy
			if distSq >= reach*reach {
				continue
			}
			if dist := math.Sqrt(distSq); dist > 0 {
				e.Knock(dx/dist*knock, dy/dist*knock)
			}
			e.TakeHit(dmg)
			if w.RNG.Float64() < parameter.OrbParticleChance {
				w.Events.Particles(e.X, e.Y, 1, parameter.ColorOrb)
			}
		}
	}
}
