package parameter

// EnemyStats holds per-type base values before difficulty scaling
type EnemyStats struct {
	Radius      float64
	Speed       float64
	SpeedJitter float64 // uniform random bonus added to Speed
	HP          float64
	XP          int
	Damage      float64
	Mass        float64
	Color       uint32
}

// Enemy Base Stats
var (
	EnemyBasic = EnemyStats{Radius: 12, Speed: 1.77, SpeedJitter: 0.5, HP: 35, XP: 5, Damage: 10, Mass: 1.2, Color: 0xff0055}
	EnemySwarm = EnemyStats{Radius: 8, Speed: 2.0, SpeedJitter: 1.0, HP: 15, XP: 2, Damage: 5, Mass: 0.8, Color: 0xffaa00}
	EnemyTank  = EnemyStats{Radius: 24, Speed: 1.02, SpeedJitter: 0, HP: 90, XP: 15, Damage: 25, Mass: 4.0, Color: 0x9d00ff}
)

// Enemy Movement & Collision
const (
	// EnemySpawnBuffer is the distance outside the world edge where enemies appear
	EnemySpawnBuffer = 50.0

	// EnemyPushDecay is the per-tick knockback retention (raised to delta)
	EnemyPushDecay = 0.8

	// EnemySeparationQueryScale multiplies radius for the neighbor query
	EnemySeparationQueryScale = 5.0

	// EnemySeparationStrength scales overlap resolution force
	EnemySeparationStrength = 1.5

	// EnemySeparationMinPush is the per-axis push floor for overlapping pairs
	EnemySeparationMinPush = 0.5

	// EnemyCoincidentEpsilon is the distance below which a random kick is applied
	EnemyCoincidentEpsilon = 0.01

	// EnemyCoincidentKick is the random kick distance for coincident enemies
	EnemyCoincidentKick = 2.0

	// EnemyContactRecoil is the knockback applied to an enemy after touching the player
	EnemyContactRecoil = 15.0

	// ShieldRadiusScale multiplies player radius while invulnerability is active
	ShieldRadiusScale = 4.5
)
