package game

import (
	"fmt"

	"github.com/lixenwraith/void-swarm/event"
	"github.com/lixenwraith/void-swarm/parameter"
	"github.com/lixenwraith/void-swarm/upgrade"
)

// openMenu pauses the run on a pending level-up and rolls the choices
// With every upgrade maxed the pending level-ups are discarded
func (e *Engine) openMenu() {
	e.offered = e.progress.RollOptions(e.rng, parameter.UpgradeChoices)
	if len(e.offered) == 0 {
		e.pending = 0
		return
	}
	e.state = StateLevelUp
	e.play(event.CueLevelUp, 0.4, 0)
	e.play(event.CueMenuOpen, 0.3, 0)
}

// Offered returns the upgrades currently on offer, empty outside the level-up menu
func (e *Engine) Offered() []*upgrade.Descriptor {
	return e.offered
}

// Progress returns the per-run upgrade counts
func (e *Engine) Progress() *upgrade.Progress {
	return e.progress
}

// Rerolls returns the reroll economy state
func (e *Engine) Rerolls() upgrade.Rerolls {
	return e.rerolls
}

// SelectUpgrade applies an offered upgrade and resumes, or re-opens the menu for the next pending level
func (e *Engine) SelectUpgrade(id upgrade.ID) (upgrade.Result, error) {
	if e.state != StateLevelUp {
		return upgrade.Result{}, ErrNoUpgradePending
	}
	if !e.isOffered(id) {
		return upgrade.Result{}, fmt.Errorf("%w: %s", ErrNotOffered, id)
	}

	res, err := e.progress.Apply(e.world.Player, id)
	if err != nil {
		return upgrade.Result{}, err
	}

	if res.Evolved {
		e.play(event.CueEvolution, 0.5, 0)
	} else {
		e.play(event.CueUpgradeSelect, 0.4, 0)
	}
	e.events = append(e.events, event.GameEvent{
		Type:    event.EventUpgradeApplied,
		Tick:    e.clock.Frames(),
		Payload: event.UpgradeAppliedPayload{ID: string(res.ID), Count: res.Count, Evolved: res.Evolved},
	})
	e.log.Debug("upgrade applied", "id", res.ID, "count", res.Count, "evolved", res.Evolved)

	e.offered = nil
	e.pending--
	e.state = StateRunning
	if e.pending > 0 {
		e.openMenu()
	}
	return res, nil
}

// SelectIndex selects the i-th offered upgrade
func (e *Engine) SelectIndex(i int) (upgrade.Result, error) {
	if e.state != StateLevelUp {
		return upgrade.Result{}, ErrNoUpgradePending
	}
	if i < 0 || i >= len(e.offered) {
		return upgrade.Result{}, fmt.Errorf("%w: index %d", ErrNotOffered, i)
	}
	return e.SelectUpgrade(e.offered[i].ID)
}

// Reroll replaces the offered upgrades, spending a free reroll or points
func (e *Engine) Reroll() error {
	if e.state != StateLevelUp {
		return ErrNoUpgradePending
	}
	if err := e.rerolls.Spend(); err != nil {
		return err
	}
	e.offered = e.progress.RollOptions(e.rng, parameter.UpgradeChoices)
	e.play(event.CueUpgradeReroll, 0.4, 0)
	return nil
}

func (e *Engine) isOffered(id upgrade.ID) bool {
	for _, d := range e.offered {
		if d.ID == id {
			return true
		}
	}
	return false
}

// Pause freezes a running run; returns false in any other state
func (e *Engine) Pause() bool {
	if e.state != StateRunning {
		return false
	}
	e.state = StatePaused
	return true
}

// Resume continues a manually paused run
func (e *Engine) Resume() bool {
	if e.state != StatePaused {
		return false
	}
	e.state = StateRunning
	return true
}

// TogglePause flips between running and paused
func (e *Engine) TogglePause() {
	if !e.Pause() {
		e.Resume()
	}
}
