package entity

import (
	"math"

	"github.com/lixenwraith/void-swarm/engine"
	"github.com/lixenwraith/void-swarm/parameter"
	"github.com/lixenwraith/void-swarm/vmath"
)

// EnemyKind is the closed set of enemy variants
type EnemyKind uint8

const (
	EnemyBasic EnemyKind = iota
	EnemySwarm
	EnemyTank
	EnemyKindCount
)

// String returns the variant key
func (k EnemyKind) String() string {
	switch k {
	case EnemyBasic:
		return "basic"
	case EnemySwarm:
		return "swarm"
	case EnemyTank:
		return "tank"
	}
	return "unknown"
}

// Stats returns the variant's base values
func (k EnemyKind) Stats() parameter.EnemyStats {
	switch k {
	case EnemySwarm:
		return parameter.EnemySwarm
	case EnemyTank:
		return parameter.EnemyTank
	}
	return parameter.EnemyBasic
}

// Enemy is a hostile actor stored in the enemy arena
type Enemy struct {
	Handle engine.Handle
	Kind   EnemyKind

	X, Y     float64
	Radius   float64
	Speed    float64
	Rotation float64

	HP     float64
	MaxHP  float64
	XP     int
	Damage float64
	Mass   float64
	Color  uint32

	PushX, PushY float64

	KilledByShield bool
}

// Spawn initializes a freshly allocated enemy with pre-scaled stats
func (e *Enemy) Spawn(h engine.Handle, kind EnemyKind, x, y, speed, hp float64, xp int, damage float64) {
	st := kind.Stats()
	*e = Enemy{
		Handle: h,
		Kind:   kind,
		X:      x,
		Y:      y,
		Radius: st.Radius,
		Speed:  speed,
		HP:     hp,
		MaxHP:  hp,
		XP:     xp,
		Damage: damage,
		Mass:   st.Mass,
		Color:  st.Color,
	}
}

// Alive reports whether the enemy still has hp
func (e *Enemy) Alive() bool {
	return e.HP > 0
}

// TakeHit subtracts damage
func (e *Enemy) TakeHit(amount float64) {
	e.HP -= amount
}

// Knock adds knockback velocity scaled by mass
func (e *Enemy) Knock(fx, fy float64) {
	mass := e.Mass
	if mass <= 0 {
		mass = 1
	}
	e.PushX += fx / mass
	e.PushY += fy / mass
}

// Update moves the enemy toward the player, resolves walls and neighbors, then checks player contact
func (e *Enemy) Update(w *World, delta float64) {
	p := w.Player
	angle := vmath.Angle(e.X, e.Y, p.X, p.Y)
	cos, sin := math.Cos(angle), math.Sin(angle)
	e.Rotation = angle

	e.X += (cos*e.Speed + e.PushX) * delta
	e.Y += (sin*e.Speed + e.PushY) * delta

	if w.Map != nil {
		e.X, e.Y = w.Map.ResolveWalls(e.X, e.Y, e.Radius)
	}

	decay := math.Pow(parameter.EnemyPushDecay, delta)
	e.PushX *= decay
	e.PushY *= decay

	e.separate(w, delta)

	// Contact
	reach := p.Radius
	shield := p.HasShield()
	if shield {
		reach = p.Radius * parameter.ShieldRadiusScale
	}
	if p.Dead || vmath.Distance(e.X, e.Y, p.X, p.Y) >= reach+e.Radius {
		return
	}
	if shield {
		e.HP = 0
		e.KilledByShield = true
	} else {
		p.TakeDamage(e.Damage, w.Events)
	}
	e.PushX = -cos * parameter.EnemyContactRecoil
	e.PushY = -sin * parameter.EnemyContactRecoil
}

// separate pushes overlapping neighbors apart, both sides moving
func (e *Enemy) separate(w *World, delta float64) {
	for _, h := range w.Nearby(e.X, e.Y, e.Radius*parameter.EnemySeparationQueryScale) {
		if h == e.Handle {
			continue
		}
		other, ok := w.Enemies.Get(h)
		if !ok || !other.Alive() {
			continue
		}

		dx := e.X - other.X
		dy := e.Y - other.Y
		radSum := e.Radius + other.Radius
		distSq := dx*dx + dy*dy
		if distSq >= radSum*radSum {
			continue
		}

		dist := math.Sqrt(distSq)
		if dist < parameter.EnemyCoincidentEpsilon {
			kx, ky := vmath.RandomDirection(w.RNG)
			e.X += kx * parameter.EnemyCoincidentKick
			e.Y += ky * parameter.EnemyCoincidentKick
			continue
		}

		force := (radSum - dist) / radSum
		fx := minPush(dx / dist * force * parameter.EnemySeparationStrength * delta)
		fy := minPush(dy / dist * force * parameter.EnemySeparationStrength * delta)
		e.X += fx
		e.Y += fy
		other.X -= fx
		other.Y -= fy
	}
}

// minPush raises a component below the floor to the floor, keeping its sign (positive for zero)
func minPush(v float64) float64 {
	if math.Abs(v) >= parameter.EnemySeparationMinPush {
		return v
	}
	if v < 0 {
		return -parameter.EnemySeparationMinPush
	}
	return parameter.EnemySeparationMinPush
}
