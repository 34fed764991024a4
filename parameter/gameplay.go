package parameter

// Score & Drops
const (
	// RerollPointsPerKill is the reroll currency gained per kill
	RerollPointsPerKill = 1

	// GemHighLevel enables the 4x/2x gem table
	GemHighLevel = 15
	// GemMidLevel enables the 2x gem table
	GemMidLevel = 8

	GemHighQuadChance   = 0.15
	GemHighDoubleChance = 0.15
	GemMidDoubleChance  = 0.10

	// PowerupDropBase is the base per-kill drop probability
	PowerupDropBase = 0.005
	// PowerupDropDecay controls drop-rate falloff by session kills
	PowerupDropDecay = 750.0
)

// Upgrades
const (
	// EvolutionInterval triggers evolution on every multiple of this count
	EvolutionInterval = 5

	// UpgradeChoices is the number of options offered per level-up
	UpgradeChoices = 3

	// FreeRerolls per run
	FreeRerolls = 3
	// RerollCostStep scales the paid reroll cost: step * (paid + 1)
	RerollCostStep = 75
)

// Hazards
const (
	// TeleportInvulnTicks is the grace period after a teleport
	TeleportInvulnTicks = 60
	// TeleportCooldownTicks prevents immediate re-teleport
	TeleportCooldownTicks = 120
	// TeleportAttempts bounds the search for a free landing point
	TeleportAttempts = 32
)

// Camera
const (
	// CameraSmoothing is the lerp factor toward the target each tick
	CameraSmoothing = 0.1
	// DefaultViewportWidth is used when no frontend reports a size
	DefaultViewportWidth = 1280.0
	// DefaultViewportHeight is used when no frontend reports a size
	DefaultViewportHeight = 720.0
)
