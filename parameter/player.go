package parameter

// Player Base Stats
const (
	PlayerRadius         = 12.0
	PlayerBaseSpeed      = 4.0
	PlayerBaseHP         = 300.0
	PlayerXPToNext       = 20
	PlayerAttackDelay    = 25.0 // ticks between primary shots
	PlayerBaseDamage     = 25.0
	PlayerProjectiles    = 1
	PlayerPierce         = 1
	PlayerBulletSpeed    = 12.0
	PlayerBulletSize     = 5.0
	PlayerPickupRange    = 220.0
	PlayerRegen          = 1.0
	PlayerCritChance     = 0.0
	PlayerCritMultiplier = 1.5
)

// Player Progression
const (
	// XPGrowth multiplies xpToNext on each level-up (floored)
	XPGrowth = 1.15

	// LevelUpHealFraction is the share of maxHp restored on level-up
	LevelUpHealFraction = 0.3

	// RegenIntervalTicks is the tick period between regen applications
	RegenIntervalTicks = 60

	// MinAttackDelay caps maximum fire rate regardless of stacking
	MinAttackDelay = 4.0
)

// Player Damage Feedback
const (
	// DamageParticleCount is emitted on every damage instance
	DamageParticleCount = 5

	// ColorDanger is the particle color for player damage
	ColorDanger = 0xff3355
	// ColorPlayer is the player body color
	ColorPlayer = 0x00ffcc
)
