package entity

import (
	"slices"

	"github.com/lixenwraith/void-swarm/engine"
	"github.com/lixenwraith/void-swarm/event"
	"github.com/lixenwraith/void-swarm/parameter"
)

// Bullet is a pooled projectile
type Bullet struct {
	X, Y    float64
	VX, VY  float64
	Damage  float64
	Pierce  int
	Radius  float64
	Life    float64
	Crit    bool
	HitList []engine.Handle
	Dead    bool
}

// NewBullet is the pool factory
func NewBullet() *Bullet {
	return &Bullet{HitList: make([]engine.Handle, 0, 4)}
}

// Reset clears a recycled bullet, keeping hit-list capacity
func (b *Bullet) Reset() {
	hits := b.HitList[:0]
	*b = Bullet{HitList: hits}
}

// Fire initializes the bullet for flight
func (b *Bullet) Fire(x, y, vx, vy, damage float64, pierce int, size float64, crit bool) {
	b.X, b.Y = x, y
	b.VX, b.VY = vx, vy
	b.Damage = damage
	b.Pierce = pierce
	b.Radius = size
	b.Life = parameter.BulletLifeTicks
	b.Crit = crit
	b.HitList = b.HitList[:0]
	b.Dead = false
}

// Update moves the bullet and resolves enemy and wall hits
func (b *Bullet) Update(w *World, delta float64) {
	if b.Dead {
		return
	}
	b.X += b.VX * delta
	b.Y += b.VY * delta
	b.Life -= delta

	if w.Map != nil {
		if !w.Map.InBounds(b.X, b.Y) {
			b.Dead = true
			return
		}
		if idx := w.Map.WallAt(b.X, b.Y); idx >= 0 {
			wall := &w.Map.Walls[idx]
			if w.Map.DamageWall(idx, b.Damage) {
				w.Events.Emit(event.EventWallDestroyed, event.WallDestroyedPayload{
					Index: idx,
					X:     wall.X + wall.W/2,
					Y:     wall.Y + wall.H/2,
				})
			}
			b.Dead = true
			return
		}
	}

	color := uint32(parameter.ColorBulletHit)
	if b.Crit {
		color = parameter.ColorCritHit
	}

	for _, h := range w.Nearby(b.X, b.Y, b.Radius) {
		if slices.Contains(b.HitList, h) {
			continue
		}
		e, ok := w.Enemies.Get(h)
		if !ok || !e.Alive() {
			continue
		}
		rs := b.Radius + e.Radius
		dx, dy := b.X-e.X, b.Y-e.Y
		if dx*dx+dy*dy >= rs*rs {
			continue
		}

		e.TakeHit(b.Damage)
		e.Knock(b.VX*parameter.BulletKnockback, b.VY*parameter.BulletKnockback)
		b.HitList = append(b.HitList, h)
		b.Pierce--
		w.Events.Particles(b.X, b.Y, parameter.BulletHitParticles, color)

		if b.Pierce <= 0 {
			b.Dead = true
			return
		}
	}

	if b.Life <= 0 {
		b.Dead = true
	}
}
