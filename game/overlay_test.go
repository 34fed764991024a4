package game

import (
	"strings"
	"testing"
)

func overlaySnapshot() *Snapshot {
	return &Snapshot{
		State:      "running",
		Mode:       "easy",
		MapName:    "Open Field",
		GameTime:   75,
		Kills:      12,
		Difficulty: 1.25,
		Player:     PlayerView{HP: 79.2, MaxHP: 100, Level: 3, XP: 4, XPToNext: 20, Damage: 10, Projectile: 1},
	}
}

// TestStatusLine verifies the HUD fields and powerup seconds
func TestStatusLine(t *testing.T) {
	s := overlaySnapshot()
	s.Powerups = []PowerupView{{Kind: "magnet", Remaining: 119, Max: 300}}
	line := s.StatusLine()

	for _, want := range []string{"HP 80/100", "LV 3", "XP 4/20", "01:15", "KILLS 12", "x1.25", "[magnet 2s]"} {
		if !strings.Contains(line, want) {
			t.Errorf("Expected %q in %q", want, line)
		}
	}
}

// TestOverlayByState verifies each phase maps to its panel
func TestOverlayByState(t *testing.T) {
	s := overlaySnapshot()
	if s.Overlay() != nil {
		t.Error("Expected no overlay while running")
	}

	cases := map[string]string{"level_up": "LEVEL 3", "paused": "PAUSED", "game_over": "SYSTEM FAILURE"}
	for state, title := range cases {
		s.State = state
		c := s.Overlay()
		if c == nil || !strings.HasPrefix(c.Title, title) {
			t.Errorf("State %s: expected title %q, got %+v", state, title, c)
		}
	}
}

// TestMenuOverlayRerollFooter verifies the footer reflects the reroll economy
func TestMenuOverlayRerollFooter(t *testing.T) {
	s := overlaySnapshot()
	s.RerollCost, s.RerollPoints = 2, 5
	s.RerollAllowed = true
	if got := s.MenuOverlay().Footer; got != "[r] reroll (2/5 pts)" {
		t.Errorf("Expected paid reroll footer, got %q", got)
	}

	s.RerollAllowed = false
	s.RerollPoints = 1
	if got := s.MenuOverlay().Footer; got != "reroll needs 2 pts (have 1)" {
		t.Errorf("Expected blocked reroll footer, got %q", got)
	}

	s.FreeRerolls = 1
	if got := s.MenuOverlay().Footer; got != "[r] reroll (1 free)" {
		t.Errorf("Expected free reroll footer, got %q", got)
	}
}

// TestMenuOverlayCards verifies options become hotkeyed cards
func TestMenuOverlayCards(t *testing.T) {
	s := overlaySnapshot()
	s.Options = []OptionView{
		{ID: "damage", Name: "Damage Up", Desc: "Hit harder", Stat: "+25% Damage", Level: 1},
		{ID: "multishot", Name: "Multishot", Desc: "More bullets", Stat: "+1 Projectile", Level: 5, Evolves: true, Current: "+4 Projectiles"},
	}
	cards := s.MenuOverlay().Cards()
	if len(cards) != 2 {
		t.Fatalf("Expected 2 cards, got %d", len(cards))
	}
	if cards[0].Key != "1" || cards[1].Key != "2" {
		t.Errorf("Expected hotkeys 1 and 2, got %q %q", cards[0].Key, cards[1].Key)
	}
	if !cards[1].Accent || len(cards[1].Entries) != 3 {
		t.Errorf("Expected accented evolving card with current value, got %+v", cards[1])
	}
}

// TestGameOverOverlay verifies the final score text
func TestGameOverOverlay(t *testing.T) {
	s := overlaySnapshot()
	joined := strings.Join(s.GameOverOverlay().Lines(), "\n")
	if !strings.Contains(joined, "Survived 01:15 on Open Field") || !strings.Contains(joined, "Kills 12   Level 3") {
		t.Errorf("Expected summary, got %q", joined)
	}
}
