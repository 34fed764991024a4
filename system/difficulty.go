package system

import (
	"math"

	"github.com/lixenwraith/void-swarm/parameter"
)

// DifficultyAt returns the step-curve difficulty for elapsed game seconds
func DifficultyAt(gameTime float64) float64 {
	if gameTime < 0 {
		gameTime = 0
	}
	return 1 + math.Floor(gameTime/parameter.DifficultyStepSeconds)*parameter.DifficultyStepSize
}

// DifficultyManager tracks the escalation scalar and derives enemy scaling
type DifficultyManager struct {
	Mode       parameter.Mode
	Difficulty float64
}

// NewDifficultyManager starts at difficulty 1
func NewDifficultyManager(mode parameter.Mode) *DifficultyManager {
	return &DifficultyManager{Mode: mode, Difficulty: 1}
}

// Update recomputes difficulty from game time
func (d *DifficultyManager) Update(gameTime float64) {
	d.Difficulty = DifficultyAt(gameTime)
}

// Settings returns the mode multiplier table entry
func (d *DifficultyManager) Settings() parameter.ModeSettings {
	return d.Mode.Settings()
}

// HP returns scaled enemy hp
func (d *DifficultyManager) HP(baseHP float64, playerLevel int) float64 {
	levelMult := 1 + float64(playerLevel)*parameter.HPPlayerLevelScale
	diffScale := 1 + math.Max(0, d.Difficulty-1)*parameter.HPDifficultyScale
	return baseHP * diffScale * d.Settings().HPMult * levelMult
}

// XP returns scaled enemy xp value
func (d *DifficultyManager) XP(baseXP int) int {
	return int(math.Floor(float64(baseXP) * (1 + d.Difficulty*parameter.XPDifficultyScale)))
}

// Damage returns scaled enemy contact damage
func (d *DifficultyManager) Damage(baseDamage float64) float64 {
	return baseDamage * d.Settings().DamageMult * (1 + d.Difficulty*parameter.DamageDifficultyScale)
}
