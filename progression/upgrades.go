package progression

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/void-swarm/entity"
)

// Upgrade is a persistent meta-progression track
type Upgrade string

const (
	UpgradeDoubleStats     Upgrade = "double_stats"
	UpgradeInvulnerability Upgrade = "invulnerability"
	UpgradeMagnet          Upgrade = "magnet"
	UpgradeDropRate        Upgrade = "drop_rate"
)

// Upgrades lists every track in display order
var Upgrades = []Upgrade{UpgradeDoubleStats, UpgradeInvulnerability, UpgradeMagnet, UpgradeDropRate}

// Sentinel errors
var (
	ErrUnknownUpgrade     = errors.New("unknown meta upgrade")
	ErrInsufficientPoints = errors.New("insufficient upgrade points")
	ErrPowerupMaxed       = errors.New("meta upgrade at max level")
	ErrClosed             = errors.New("progression store closed")
)

// ParseUpgrade resolves a track name
func ParseUpgrade(name string) (Upgrade, error) {
	for _, u := range Upgrades {
		if string(u) == name {
			return u, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownUpgrade, name)
}

// ForPowerup maps an in-run powerup to its duration track
func ForPowerup(kind entity.PowerupKind) (Upgrade, bool) {
	switch kind {
	case entity.PowerupDoubleStats:
		return UpgradeDoubleStats, true
	case entity.PowerupInvulnerability:
		return UpgradeInvulnerability, true
	case entity.PowerupMagnet:
		return UpgradeMagnet, true
	}
	return "", false
}
