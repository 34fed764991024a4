package game

import (
	"fmt"
	"math"
	"strings"

	"github.com/lixenwraith/void-swarm/core"
	"github.com/lixenwraith/void-swarm/parameter"
)

// StatusLine formats the one-line HUD shared by frontends
func (s *Snapshot) StatusLine() string {
	p := s.Player
	var b strings.Builder
	fmt.Fprintf(&b, " HP %d/%d  LV %d  XP %d/%d  %02d:%02d  KILLS %d  x%.2f",
		int(math.Ceil(p.HP)), int(p.MaxHP), p.Level, p.XP, p.XPToNext,
		s.GameTime/60, s.GameTime%60, s.Kills, s.Difficulty)
	for _, pw := range s.Powerups {
		fmt.Fprintf(&b, "  [%s %ds]", pw.Kind, int(math.Ceil(pw.Remaining/parameter.TicksPerSecond)))
	}
	return b.String()
}

// Overlay returns the panel for the current state, nil while running
func (s *Snapshot) Overlay() *core.OverlayContent {
	switch s.State {
	case StateLevelUp.String():
		return s.MenuOverlay()
	case StatePaused.String():
		return s.PauseOverlay()
	case StateGameOver.String():
		return s.GameOverOverlay()
	}
	return nil
}

// MenuOverlay lists the offered upgrades and reroll state
func (s *Snapshot) MenuOverlay() *core.OverlayContent {
	c := &core.OverlayContent{Title: fmt.Sprintf("LEVEL %d  -  CHOOSE AN UPGRADE", s.Player.Level)}
	for i, o := range s.Options {
		card := core.OverlayCard{
			Key:    fmt.Sprintf("%d", i+1),
			Title:  fmt.Sprintf("%s (lv %d)", o.Name, o.Level),
			Accent: o.Evolves,
			Entries: []core.CardEntry{
				{Value: o.Desc},
				{Key: "next", Value: o.Stat},
			},
		}
		if o.Current != "" {
			card.Entries = append(card.Entries, core.CardEntry{Key: "now", Value: o.Current})
		}
		c.Items = append(c.Items, card)
	}

	switch {
	case s.FreeRerolls > 0:
		c.Footer = fmt.Sprintf("[r] reroll (%d free)", s.FreeRerolls)
	case s.RerollAllowed:
		c.Footer = fmt.Sprintf("[r] reroll (%d/%d pts)", s.RerollCost, s.RerollPoints)
	default:
		c.Footer = fmt.Sprintf("reroll needs %d pts (have %d)", s.RerollCost, s.RerollPoints)
	}
	return c
}

// PauseOverlay shows the run build while paused
func (s *Snapshot) PauseOverlay() *core.OverlayContent {
	return &core.OverlayContent{
		Title:  "PAUSED",
		Footer: "[p] resume   [m] mute   [q] quit",
		Items: []core.OverlayItem{
			core.OverlayCard{Title: s.MapName, Entries: []core.CardEntry{
				{Key: "mode", Value: s.Mode},
				{Key: "damage", Value: fmt.Sprintf("%.0f", s.Player.Damage)},
				{Key: "projectiles", Value: fmt.Sprintf("%d", s.Player.Projectile)},
			}},
		},
	}
}

// GameOverOverlay shows the final score
func (s *Snapshot) GameOverOverlay() *core.OverlayContent {
	return &core.OverlayContent{
		Title:  "SYSTEM FAILURE",
		Footer: "[n] new run   [q] quit",
		Items: []core.OverlayItem{
			core.OverlayText{Text: fmt.Sprintf("Survived %02d:%02d on %s", s.GameTime/60, s.GameTime%60, s.MapName)},
			core.OverlayText{Text: fmt.Sprintf("Kills %d   Level %d", s.Kills, s.Player.Level)},
		},
	}
}
