package event

// EnemyDiedPayload describes a removed enemy
type EnemyDiedPayload struct {
	X, Y           float64
	Kind           uint8 // entity.EnemyKind
	XP             int
	KilledByShield bool
}

// PlayerDamagedPayload carries the applied damage and resulting hp
type PlayerDamagedPayload struct {
	Amount float64
	HP     float64
	MaxHP  float64
}

// WallDestroyedPayload identifies the removed wall by index into the map wall list
type WallDestroyedPayload struct {
	Index int
	X, Y  float64
}

// LevelUpPayload carries the new player level
type LevelUpPayload struct {
	Level int
}

// UpgradeAppliedPayload reports the resolved upgrade
type UpgradeAppliedPayload struct {
	ID      string
	Count   int
	Evolved bool
}

// PickupCollectedPayload reports an absorbed pickup
type PickupCollectedPayload struct {
	Powerup string // empty for XP gems
	Value   int
}

// PowerupPayload reports a buff transition
type PowerupPayload struct {
	Kind     string
	Duration int // ticks granted, 0 on expiry
}

// TeleportPayload reports a teleport destination
type TeleportPayload struct {
	FromX, FromY float64
	ToX, ToY     float64
}

// GameOverPayload summarizes the finished run
type GameOverPayload struct {
	Kills   int
	Level   int
	Seconds int
}

// ParticlesPayload requests count particles at a point
type ParticlesPayload struct {
	X, Y  float64
	Count int
	Color uint32
}

// SoundPayload is a cue request with playback hints
type SoundPayload struct {
	Cue           Cue
	Volume        float64 // 0-1 scale applied on top of channel volume
	PitchVariance float64 // max relative pitch deviation, 0 = none
}
