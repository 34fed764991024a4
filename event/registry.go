package event

var typeNames = [eventTypeCount]string{
	EventNone:               "None",
	EventEnemyDied:          "EnemyDied",
	EventPlayerDamaged:      "PlayerDamaged",
	EventWallDestroyed:      "WallDestroyed",
	EventLevelUp:            "LevelUp",
	EventUpgradeApplied:     "UpgradeApplied",
	EventPickupCollected:    "PickupCollected",
	EventPowerupActivated:   "PowerupActivated",
	EventPowerupExpired:     "PowerupExpired",
	EventTeleported:         "Teleported",
	EventGameOver:           "GameOver",
	EventParticlesRequested: "ParticlesRequested",
	EventSoundRequest:       "SoundRequest",
}

// String returns the event name for logging
func (t EventType) String() string {
	if t >= 0 && t < eventTypeCount {
		return typeNames[t]
	}
	return "Unknown"
}

// Cosmetic reports whether losing the event only affects presentation
func (t EventType) Cosmetic() bool {
	return t == EventParticlesRequested || t == EventSoundRequest
}

// GetEventType returns the EventType for a given name
func GetEventType(name string) (EventType, bool) {
	for i, n := range typeNames {
		if n == name {
			return EventType(i), true
		}
	}
	return EventNone, false
}
