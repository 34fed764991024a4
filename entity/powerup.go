package entity

import (
	"errors"
	"fmt"
)

// PowerupKind identifies a timed buff
type PowerupKind uint8

const (
	PowerupDoubleStats PowerupKind = iota
	PowerupInvulnerability
	PowerupMagnet
	PowerupCount
)

// ErrUnknownPowerup is returned for unrecognized powerup names
var ErrUnknownPowerup = errors.New("unknown powerup")

var powerupNames = [PowerupCount]string{
	PowerupDoubleStats:     "double_stats",
	PowerupInvulnerability: "invulnerability",
	PowerupMagnet:          "magnet",
}

// String returns the powerup key
func (k PowerupKind) String() string {
	if k < PowerupCount {
		return powerupNames[k]
	}
	return "unknown"
}

// ParsePowerup resolves a powerup key
func ParsePowerup(name string) (PowerupKind, error) {
	for i, n := range powerupNames {
		if n == name {
			return PowerupKind(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPowerup, name)
}
