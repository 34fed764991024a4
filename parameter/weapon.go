package parameter

// Primary Gun
const (
	// GunAcquireRange is the maximum targeting distance
	GunAcquireRange = 650.0
	// GunSpreadStep is the angular offset between fan projectiles in radians
	GunSpreadStep = 0.15
)

// Bullets
const (
	// BulletLifeTicks is the lifetime of a projectile
	BulletLifeTicks = 100
	// BulletKnockback scales bullet velocity into enemy push
	BulletKnockback = 0.1
	// BulletHitParticles is emitted per enemy hit
	BulletHitParticles = 2

	ColorBullet    = 0xffffff
	ColorBulletHit = 0xffffff
	ColorCritHit   = 0xffd700
)

// Ion Orbs
const (
	// OrbAngularSpeed is the base radians per tick at base player speed
	OrbAngularSpeed = 0.10
	// OrbBaseSize plus bullet size scaling gives the orb radius
	OrbBaseSize      = 12.0
	OrbSizePerBullet = 1.5
	// OrbOrbitPadding is added to player radius for the orbit distance
	OrbOrbitPadding   = 100.0
	// OrbOrbitSizeScale multiplies orb size into the orbit distance
	OrbOrbitSizeScale = 3.0

	OrbDamageBase     = 0.07
	OrbDamagePerLevel = 0.05

	OrbKnockbackBase     = 0.25
	OrbKnockbackPerLevel = 0.02

	// OrbDamageInterval throttles damage to every Nth tick
	OrbDamageInterval = 2
	// OrbParticleChance is the per-hit cosmetic particle probability
	OrbParticleChance = 0.25

	ColorOrb = 0x00ccff
)

// Repulsion Field
const (
	RepulsionBaseRange     = 90.0
	RepulsionRangePerLevel = 20.0
	// RepulsionRangeLevelCap limits level-driven radius growth
	RepulsionRangeLevelCap = 8
	RepulsionRangePerSize  = 4.0

	RepulsionForce         = 0.42
	RepulsionForceBase     = 0.5
	RepulsionForcePerLevel = 0.05

	// RepulsionHPBonus is the maxHp share added to each damage tick
	RepulsionHPBonus = 0.05

	RepulsionDamageBase     = 0.40
	RepulsionDamagePerLevel = 0.10

	// Tick rate = max(RepulsionMinTickRate, floor(RepulsionBaseTickRate / (1 + regen*RepulsionRegenScale)))
	RepulsionBaseTickRate = 15.0
	RepulsionMinTickRate  = 5
	RepulsionRegenScale   = 0.05

	RepulsionParticleChance = 0.30

	ColorRepulsion = 0xff5500
)
