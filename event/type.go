package event

// EventType represents the type of simulation event
type EventType int

const (
	// EventNone is the zero value and never emitted
	EventNone EventType = iota

	// === Combat ===

	// EventEnemyDied signals an enemy reached hp <= 0 and left the arena
	// Trigger: EnemyManager sweep | Consumer: Engine (score, drops, audio) | Payload: EnemyDiedPayload
	EventEnemyDied

	// EventPlayerDamaged signals contact or hazard damage applied to the player
	// Trigger: Player.TakeDamage | Consumer: Frontends (flash), Engine (audio) | Payload: PlayerDamagedPayload
	EventPlayerDamaged

	// EventWallDestroyed signals a destructible wall reached hp <= 0
	// Trigger: bullet sweep | Consumer: Engine (particles, audio) | Payload: WallDestroyedPayload
	EventWallDestroyed

	// === Progression ===

	// EventLevelUp signals one level gained; multiple level-ups emit multiple events
	// Trigger: Player.GainXP | Consumer: Engine (upgrade menu) | Payload: LevelUpPayload
	EventLevelUp

	// EventUpgradeApplied signals a chosen upgrade was resolved
	// Trigger: Engine.SelectUpgrade | Consumer: Frontends, audio | Payload: UpgradeAppliedPayload
	EventUpgradeApplied

	// EventPickupCollected signals the player absorbed an XP gem or powerup
	// Trigger: pickup sweep | Consumer: Engine (audio) | Payload: PickupCollectedPayload
	EventPickupCollected

	// EventPowerupActivated signals a timed buff started or refreshed
	// Trigger: Player.ActivatePowerup | Consumer: Frontends | Payload: PowerupPayload
	EventPowerupActivated

	// EventPowerupExpired signals a timed buff ran out
	// Trigger: PowerupSystem | Consumer: Frontends | Payload: PowerupPayload
	EventPowerupExpired

	// EventTeleported signals a teleport hazard relocated the player
	// Trigger: HazardSystem | Consumer: Frontends (camera snap) | Payload: TeleportPayload
	EventTeleported

	// === Lifecycle ===

	// EventGameOver signals player hp reached zero, emitted once per run
	// Trigger: Player.TakeDamage | Consumer: Engine (progression, audio) | Payload: GameOverPayload
	EventGameOver

	// === Presentation ===

	// EventParticlesRequested asks for cosmetic particles
	// Trigger: combat, damage | Consumer: Engine particle pool | Payload: ParticlesPayload
	EventParticlesRequested

	// EventSoundRequest asks for a fire-and-forget audio cue
	// Trigger: any system | Consumer: AudioSink | Payload: SoundPayload
	EventSoundRequest

	eventTypeCount
)
