package entity

import (
	"math"

	"github.com/lixenwraith/void-swarm/arena"
	"github.com/lixenwraith/void-swarm/event"
	"github.com/lixenwraith/void-swarm/parameter"
)

// Modifiers are additive percentage deltas feeding RecalculateStats
type Modifiers struct {
	Damage      float64
	AttackSpeed float64
}

// Player is the controlled entity
// Damage, AttackSpeed and PickupRange are derived; mutate Modifiers or Powerups and call RecalculateStats
type Player struct {
	X, Y   float64
	Radius float64

	BaseSpeed float64
	Speed     float64

	HP    float64
	MaxHP float64

	Level    int
	XP       int
	XPToNext int

	Modifiers Modifiers

	// Derived
	Damage      float64
	AttackSpeed float64
	PickupRange float64

	BasePickupRange float64
	ProjectileCount int
	Pierce          int
	BulletSpeed     float64
	BulletSize      float64
	Regen           float64
	CritChance      float64
	CritMultiplier  float64
	RepulsionLevel  int
	IonOrbsLevel    int

	// Remaining ticks per powerup and the duration granted at activation
	Powerups           [PowerupCount]float64
	ActiveMaxDurations [PowerupCount]float64

	// Hazard state
	SlowMultiplier   float64
	TeleportCooldown float64
	TeleportInvuln   float64

	Dead bool
}

// NewPlayer creates a player at the given position with mode-adjusted hp
func NewPlayer(x, y float64, mode parameter.Mode) *Player {
	p := &Player{}
	p.Reset(x, y, mode)
	return p
}

// Reset restores base stats for a new run
func (p *Player) Reset(x, y float64, mode parameter.Mode) {
	*p = Player{
		X:               x,
		Y:               y,
		Radius:          parameter.PlayerRadius,
		BaseSpeed:       parameter.PlayerBaseSpeed,
		Speed:           parameter.PlayerBaseSpeed,
		MaxHP:           parameter.PlayerBaseHP + mode.Settings().PlayerHPBonus,
		Level:           1,
		XPToNext:        parameter.PlayerXPToNext,
		BasePickupRange: parameter.PlayerPickupRange,
		ProjectileCount: parameter.PlayerProjectiles,
		Pierce:          parameter.PlayerPierce,
		BulletSpeed:     parameter.PlayerBulletSpeed,
		BulletSize:      parameter.PlayerBulletSize,
		Regen:           parameter.PlayerRegen,
		CritChance:      parameter.PlayerCritChance,
		CritMultiplier:  parameter.PlayerCritMultiplier,
		SlowMultiplier:  1,
	}
	p.HP = p.MaxHP
	p.RecalculateStats()
}

// StatMultiplier returns the active powerup multiplier applied to damage
func (p *Player) StatMultiplier() float64 {
	if p.HasPowerup(PowerupDoubleStats) {
		return parameter.PowerupStatMultiplier
	}
	return 1
}

// RecalculateStats derives damage, attack delay and pickup range from base stats, modifiers and powerups
func (p *Player) RecalculateStats() {
	mult := p.StatMultiplier()

	p.Damage = math.Floor((parameter.PlayerBaseDamage + float64(p.Level-1)) * (1 + p.Modifiers.Damage) * mult)

	delay := parameter.PlayerAttackDelay / (1 + p.Modifiers.AttackSpeed)
	if mult > 1 {
		delay /= 2
	}
	p.AttackSpeed = math.Max(parameter.MinAttackDelay, delay)

	p.PickupRange = p.BasePickupRange
	if p.HasPowerup(PowerupMagnet) {
		p.PickupRange *= parameter.MagnetRangeMultiplier
	}
}

// HasPowerup reports whether a powerup has remaining duration
func (p *Player) HasPowerup(k PowerupKind) bool {
	return k < PowerupCount && p.Powerups[k] > 0
}

// HasShield reports whether the invulnerability kill-aura is active
func (p *Player) HasShield() bool {
	return p.HasPowerup(PowerupInvulnerability)
}

// IsInvulnerable reports whether incoming damage is ignored
func (p *Player) IsInvulnerable() bool {
	return p.HasShield() || p.TeleportInvuln > 0
}

// ActivatePowerup starts or refreshes a powerup for the given number of ticks
func (p *Player) ActivatePowerup(k PowerupKind, ticks float64) {
	if k >= PowerupCount || ticks <= 0 {
		return
	}
	p.Powerups[k] = ticks
	p.ActiveMaxDurations[k] = ticks
	p.RecalculateStats()
}

// TickPowerups counts down active powerups, emitting an expiry event for each that ends
func (p *Player) TickPowerups(delta float64, em *event.Emitter) {
	expired := false
	for k := PowerupKind(0); k < PowerupCount; k++ {
		if p.Powerups[k] <= 0 {
			continue
		}
		p.Powerups[k] -= delta
		if p.Powerups[k] <= 0 {
			p.Powerups[k] = 0
			p.ActiveMaxDurations[k] = 0
			expired = true
			em.Emit(event.EventPowerupExpired, event.PowerupPayload{Kind: k.String()})
		}
	}
	if expired {
		p.RecalculateStats()
	}
}

// Update applies regen, hazard timers and movement for one tick
func (p *Player) Update(in Input, frame uint64, delta float64, m *arena.Map) {
	if p.Dead {
		return
	}

	if p.Regen > 0 && frame%parameter.RegenIntervalTicks == 0 && p.HP < p.MaxHP {
		p.HP = math.Min(p.MaxHP, p.HP+p.Regen)
	}

	if p.TeleportCooldown > 0 {
		p.TeleportCooldown = math.Max(0, p.TeleportCooldown-delta)
	}
	if p.TeleportInvuln > 0 {
		p.TeleportInvuln = math.Max(0, p.TeleportInvuln-delta)
	}

	mx, my := in.Direction()
	if mx == 0 && my == 0 {
		return
	}
	step := p.Speed * p.SlowMultiplier * delta
	p.X += mx * step
	p.Y += my * step
	if m != nil {
		p.X, p.Y = m.ResolveWalls(p.X, p.Y, p.Radius)
		p.X, p.Y = m.ClampCircle(p.X, p.Y, p.Radius)
	}
}

// GainXP adds experience and processes every level crossed
func (p *Player) GainXP(amount int, em *event.Emitter) {
	if amount <= 0 || p.Dead {
		return
	}
	p.XP += amount
	for p.XP >= p.XPToNext {
		p.levelUp()
		em.Emit(event.EventLevelUp, event.LevelUpPayload{Level: p.Level})
	}
}

func (p *Player) levelUp() {
	p.XP -= p.XPToNext
	p.Level++
	p.XPToNext = int(math.Floor(float64(p.XPToNext) * parameter.XPGrowth))
	p.HP = math.Min(p.HP+p.MaxHP*parameter.LevelUpHealFraction, p.MaxHP)
	p.RecalculateStats()
}

// TakeDamage applies damage unless invulnerable; returns true on the killing blow
func (p *Player) TakeDamage(amount float64, em *event.Emitter) bool {
	return p.damage(amount, em, true)
}

// TakeHazardDamage applies zone damage-over-time without hit feedback
func (p *Player) TakeHazardDamage(amount float64, em *event.Emitter) bool {
	return p.damage(amount, em, false)
}

func (p *Player) damage(amount float64, em *event.Emitter, feedback bool) bool {
	if p.Dead || amount <= 0 || p.IsInvulnerable() {
		return false
	}
	p.HP = math.Max(0, p.HP-amount)
	if feedback {
		em.Sound(event.CueDamage, 0.3, 0)
		em.Particles(p.X, p.Y, parameter.DamageParticleCount, parameter.ColorDanger)
		em.Emit(event.EventPlayerDamaged, event.PlayerDamagedPayload{Amount: amount, HP: p.HP, MaxHP: p.MaxHP})
	}

	if p.HP <= 0 {
		p.Dead = true
		em.Emit(event.EventGameOver, event.GameOverPayload{Level: p.Level})
		return true
	}
	return false
}

// Heal restores hp up to max
func (p *Player) Heal(amount float64) {
	if p.Dead || amount <= 0 {
		return
	}
	p.HP = math.Min(p.MaxHP, p.HP+amount)
}
