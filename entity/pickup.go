package entity

import (
	"math"

	"github.com/lixenwraith/void-swarm/parameter"
	"github.com/lixenwraith/void-swarm/vmath"
)

// PickupKind distinguishes experience gems from powerup drops
type PickupKind uint8

const (
	PickupXP PickupKind = iota
	PickupPowerup
)

// Pickup is a collectible dropped by dead enemies
type Pickup struct {
	Kind       PickupKind
	X, Y       float64
	Radius     float64
	Value      int
	Tier       int
	Powerup    PowerupKind
	Magnetized bool
	Dead       bool
}

// NewPickup is the pool factory
func NewPickup() *Pickup {
	return &Pickup{}
}

// Reset clears a recycled pickup
func (p *Pickup) Reset() {
	*p = Pickup{}
}

// InitXP sets up an experience gem; tier follows the gem multiplier
func (p *Pickup) InitXP(x, y float64, value, tier int) {
	*p = Pickup{Kind: PickupXP, X: x, Y: y, Radius: parameter.PickupRadius, Value: value, Tier: tier}
}

// InitPowerup sets up a powerup drop
func (p *Pickup) InitPowerup(x, y float64, kind PowerupKind) {
	*p = Pickup{Kind: PickupPowerup, X: x, Y: y, Radius: parameter.PickupRadius * 2, Powerup: kind, Tier: 1}
}

// Update homes toward the player once magnetized; returns true when collected
// Collection uses the distance measured before this tick's movement
func (p *Pickup) Update(pl *Player, delta float64) bool {
	if p.Dead {
		return false
	}
	dist := vmath.Distance(p.X, p.Y, pl.X, pl.Y)
	if dist < pl.PickupRange {
		p.Magnetized = true
	}
	if !p.Magnetized {
		return false
	}

	angle := vmath.Angle(p.X, p.Y, pl.X, pl.Y)
	p.X += math.Cos(angle) * parameter.PickupHomingSpeed * delta
	p.Y += math.Sin(angle) * parameter.PickupHomingSpeed * delta

	if dist < pl.Radius+parameter.PickupCollectPadding {
		p.Dead = true
		return true
	}
	return false
}
