package event

// Cue is the closed vocabulary of audio cue names
type Cue uint8

const (
	CueShoot Cue = iota
	CueExplosion
	CueCollect
	CueDamage
	CueGameOver
	CueLevelUp
	CueUpgradeSelect
	CueUpgradeReroll
	CueEvolution
	CuePowerup
	CueMenuOpen
	CueBackground
	CueCount
)

var cueNames = [CueCount]string{
	CueShoot:         "shoot",
	CueExplosion:     "explosion",
	CueCollect:       "collect",
	CueDamage:        "damage",
	CueGameOver:      "game_over",
	CueLevelUp:       "level_up",
	CueUpgradeSelect: "upgrade_select",
	CueUpgradeReroll: "upgrade_reroll",
	CueEvolution:     "evolution",
	CuePowerup:       "powerup",
	CueMenuOpen:      "menu_open",
	CueBackground:    "background",
}

// String returns the cue key
func (c Cue) String() string {
	if c < CueCount {
		return cueNames[c]
	}
	return "unknown"
}

// ParseCue resolves a cue key
func ParseCue(name string) (Cue, bool) {
	for i, n := range cueNames {
		if n == name {
			return Cue(i), true
		}
	}
	return 0, false
}
