package game

import (
	"fmt"
	"sort"

	"github.com/lixenwraith/void-swarm/entity"
	"github.com/lixenwraith/void-swarm/upgrade"
)

// Dev override limits
const (
	maxDevLevel    = 100
	maxDevGameTime = 3600
)

// ApplyDevOverride jumps the current run to a configured state
// Levels are gained through the normal level-up path without opening the menu; upgrades go
// through the resolver in id order; powerups are activated as if collected
func (e *Engine) ApplyDevOverride(d DevOverride) error {
	if d.Level < 0 || d.Level > maxDevLevel {
		return fmt.Errorf("%w: level %d outside [0,%d]", ErrInvalidOverride, d.Level, maxDevLevel)
	}
	if d.GameTime < 0 || d.GameTime > maxDevGameTime {
		return fmt.Errorf("%w: game time %d outside [0,%d]", ErrInvalidOverride, d.GameTime, maxDevGameTime)
	}
	if e.state == StateGameOver {
		return ErrRunOver
	}

	p := e.world.Player

	if d.GameTime > 0 {
		e.clock.SetGameTime(d.GameTime)
		e.difficulty.Update(float64(d.GameTime))
	}

	for p.Level < d.Level {
		p.GainXP(p.XPToNext-p.XP, e.emitter)
	}
	// Full health after the jump
	p.HP = p.MaxHP

	ids := make([]upgrade.ID, 0, len(d.Upgrades))
	for id := range d.Upgrades {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for _, id := range ids {
		for n := 0; n < d.Upgrades[id]; n++ {
			if _, err := e.progress.Apply(p, id); err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidOverride, err)
			}
		}
	}

	for _, k := range d.Powerups {
		if k >= entity.PowerupCount {
			return fmt.Errorf("%w: powerup %d", ErrInvalidOverride, k)
		}
		e.powerups.Activate(p, k, e.emitter)
	}

	// Level-ups from the jump never open the menu
	e.queue.Drain(nil)
	e.effects.Drain(nil)
	e.pending = 0
	e.log.Info("dev override applied", "level", p.Level, "game_time", d.GameTime, "upgrades", len(ids), "powerups", len(d.Powerups))
	return nil
}
