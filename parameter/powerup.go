package parameter

// Powerup Effects
const (
	// PowerupStatMultiplier is applied by double_stats to damage; attack delay halves
	PowerupStatMultiplier = 3.0

	// MagnetRangeMultiplier scales pickup range while magnet is active
	MagnetRangeMultiplier = 5.0
)

// Powerup Durations (ticks)
const (
	DurationDoubleStats     = 600
	DurationInvulnerability = 480
	DurationMagnet          = 300

	// DurationPerLevel is added per meta-progression level above 1
	DurationPerLevel = 60

	// MaxPowerupLevel caps meta-progression for every powerup
	MaxPowerupLevel = 10
)

// Meta-progression
const (
	// KillsPerPoint converts lifetime kills into upgrade points
	KillsPerPoint = 100

	// DropRatePerLevel is the drop multiplier gain per drop_rate level
	DropRatePerLevel = 0.10
)

// Pickups
const (
	// PickupHomingSpeed is the magnetized pickup speed
	PickupHomingSpeed = 14.0
	// PickupCollectPadding is added to player radius for collection
	PickupCollectPadding = 10.0
	// PickupRadius is the collision radius used for rendering
	PickupRadius = 5.0

	ColorXP      = 0x00ff88
	ColorPowerup = 0xffee00
)

// Particles
const (
	ParticleMaxSpeed = 3.0
	ParticleDecay    = 0.08
)
