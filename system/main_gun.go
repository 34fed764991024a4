package system

import (
	"math"

	"github.com/lixenwraith/void-swarm/entity"
	"github.com/lixenwraith/void-swarm/event"
	"github.com/lixenwraith/void-swarm/parameter"
	"github.com/lixenwraith/void-swarm/vmath"
)

// MainGun fires fan volleys at the nearest visible enemy
type MainGun struct {
	Cooldown float64
}

// Reset clears the cooldown
func (g *MainGun) Reset() {
	g.Cooldown = 0
}

// Update counts down the cooldown and fires when ready and a target exists
func (g *MainGun) Update(ctx *WeaponContext, delta float64) {
	if g.Cooldown > 0 {
		g.Cooldown -= delta
		return
	}
	target := NearestTarget(ctx.World, ctx.Camera)
	if target == nil {
		return
	}
	g.shoot(ctx, target)
	g.Cooldown = ctx.World.Player.AttackSpeed
}

// NearestTarget returns the closest living on-screen enemy within acquisition range
func NearestTarget(w *entity.World, cam *Camera) *entity.Enemy {
	p := w.Player
	var nearest *entity.Enemy
	best := parameter.GunAcquireRange
	for _, h := range w.Nearby(p.X, p.Y, parameter.GunAcquireRange) {
		e, ok := w.Enemies.Get(h)
		if !ok || !e.Alive() {
			continue
		}
		if cam != nil && !cam.IsCircleVisible(e.X, e.Y, e.Radius) {
			continue
		}
		if d := vmath.Distance(p.X, p.Y, e.X, e.Y); d < best {
			best = d
			nearest = e
		}
	}
	return nearest
}

// FanOffset returns the spread multiplier for projectile i: 0, 1, -1, 2, -2, ...
func FanOffset(i int) float64 {
	if i == 0 {
		return 0
	}
	off := math.Ceil(float64(i) / 2)
	if i%2 == 0 {
		off = -off
	}
	return off
}

func (g *MainGun) shoot(ctx *WeaponContext, target *entity.Enemy) {
	w := ctx.World
	p := w.Player
	angle := vmath.Angle(p.X, p.Y, target.X, target.Y)

	for i := 0; i < p.ProjectileCount; i++ {
		a := angle + FanOffset(i)*parameter.GunSpreadStep
		vx, vy := vmath.FromAngle(a, p.BulletSpeed)

		crit := w.RNG.Float64() < p.CritChance
		damage := p.Damage
		if crit {
			damage = math.Floor(p.Damage * p.CritMultiplier)
		}
		ctx.Bullets.Spawn(p.X, p.Y, vx, vy, damage, p.Pierce, p.BulletSize, crit)
	}
	w.Events.Sound(event.CueShoot, 0.15, 0.1)
}
