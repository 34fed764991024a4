package parameter

// Difficulty Curve
const (
	// DifficultyStepSeconds is the game time between difficulty increments
	DifficultyStepSeconds = 25
	// DifficultyStepSize is the increment applied every step
	DifficultyStepSize = 0.5

	// HPDifficultyScale weights difficulty above 1 in enemy HP
	HPDifficultyScale = 0.7
	// HPPlayerLevelScale weights player level in enemy HP
	HPPlayerLevelScale = 0.1
	// XPDifficultyScale weights difficulty in enemy XP value
	XPDifficultyScale = 0.35
	// DamageDifficultyScale weights difficulty in enemy contact damage
	DamageDifficultyScale = 0.15
)

// Spawn Scheduling
const (
	// SpawnBaseChance is the per-tick Bernoulli spawn probability before scaling
	SpawnBaseChance = 0.02
	// SpawnMaxChance caps the per-tick spawn probability
	SpawnMaxChance = 0.55

	// SpawnRampStart is the early-game ramp floor at t=0
	SpawnRampStart = 0.40
	// SpawnRampSeconds is the time to reach full spawn rate
	SpawnRampSeconds = 180.0

	// PopulationBase is the soft cap at t=0
	PopulationBase = 120.0
	// PopulationPerSecond grows the soft cap over time
	PopulationPerSecond = 0.8

	// SwarmUnlockSeconds enables swarm enemies once game time exceeds it
	SwarmUnlockSeconds = 5
	// TankUnlockSeconds enables tank enemies once game time exceeds it
	TankUnlockSeconds = 120

	// SpawnRetries is the maximum number of re-rolls for a crowded spawn point
	SpawnRetries = 3
	// SpawnCrowdRadius is the neighbor query radius for anti-clustering
	SpawnCrowdRadius = 100.0
	// SpawnCrowdLimit is the neighbor count that triggers a re-roll
	SpawnCrowdLimit = 3
)
