package system

import (
	"github.com/lixenwraith/void-swarm/entity"
	"github.com/lixenwraith/void-swarm/parameter"
	"github.com/lixenwraith/void-swarm/vmath"
)

// ScoreManager counts kills and rolls gem values and powerup drops
type ScoreManager struct {
	Kills int
	rng   *vmath.FastRand
}

// NewScoreManager creates a manager drawing from rng
func NewScoreManager(rng *vmath.FastRand) *ScoreManager {
	return &ScoreManager{rng: rng}
}

// AddKill increments the session kill count and returns it
func (s *ScoreManager) AddKill() int {
	s.Kills++
	return s.Kills
}

// GemMultiplier rolls the xp gem multiplier for a player level
func (s *ScoreManager) GemMultiplier(playerLevel int) int {
	switch {
	case playerLevel >= parameter.GemHighLevel:
		r := s.rng.Float64()
		if r < parameter.GemHighQuadChance {
			return 4
		}
		if r < parameter.GemHighQuadChance+parameter.GemHighDoubleChance {
			return 2
		}
	case playerLevel >= parameter.GemMidLevel:
		if s.rng.Float64() < parameter.GemMidDoubleChance {
			return 2
		}
	}
	return 1
}

// DropChance returns the powerup drop probability, decaying with session kills
func DropChance(kills int, dropMult float64) float64 {
	return parameter.PowerupDropBase * (parameter.PowerupDropDecay / (parameter.PowerupDropDecay + float64(kills))) * dropMult
}

// ShouldDropPowerup rolls a powerup drop
func (s *ScoreManager) ShouldDropPowerup(kills int, dropMult float64) bool {
	return s.rng.Float64() < DropChance(kills, dropMult)
}

// PowerupType rolls the dropped powerup: half magnet, a quarter each of the others
func (s *ScoreManager) PowerupType() entity.PowerupKind {
	if s.rng.Float64() > 0.5 {
		return entity.PowerupMagnet
	}
	if s.rng.Float64() > 0.5 {
		return entity.PowerupDoubleStats
	}
	return entity.PowerupInvulnerability
}
