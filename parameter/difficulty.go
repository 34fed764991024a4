package parameter

import (
	"errors"
	"fmt"
	"strings"
)

// Mode is a difficulty preset selected before a run
type Mode uint8

const (
	ModeEasy Mode = iota
	ModeMedium
	ModeHard
)

// ErrUnknownMode is returned for unrecognized mode names
var ErrUnknownMode = errors.New("unknown difficulty mode")

// ModeSettings holds per-mode multipliers
type ModeSettings struct {
	HPMult        float64
	DamageMult    float64
	SpawnMult     float64
	PlayerHPBonus float64
}

var modeSettings = [...]ModeSettings{
	ModeEasy:   {HPMult: 0.7, DamageMult: 0.5, SpawnMult: 0.8, PlayerHPBonus: 100},
	ModeMedium: {HPMult: 1.0, DamageMult: 1.0, SpawnMult: 1.0, PlayerHPBonus: 0},
	ModeHard:   {HPMult: 1.4, DamageMult: 1.5, SpawnMult: 1.3, PlayerHPBonus: -50},
}

// Settings returns the multiplier table entry, medium for out-of-range values
func (m Mode) Settings() ModeSettings {
	if int(m) < len(modeSettings) {
		return modeSettings[m]
	}
	return modeSettings[ModeMedium]
}

// String returns the mode key
func (m Mode) String() string {
	switch m {
	case ModeEasy:
		return "easy"
	case ModeMedium:
		return "medium"
	case ModeHard:
		return "hard"
	}
	return "unknown"
}

// ParseMode resolves a mode name; "normal" is an alias for medium
func ParseMode(name string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "easy":
		return ModeEasy, nil
	case "medium", "normal", "":
		return ModeMedium, nil
	case "hard":
		return ModeHard, nil
	}
	return ModeMedium, fmt.Errorf("%w: %q", ErrUnknownMode, name)
}
