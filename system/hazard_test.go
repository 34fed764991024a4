package system

import (
	"math"
	"testing"

	"github.com/lixenwraith/void-swarm/arena"
	"github.com/lixenwraith/void-swarm/event"
	"github.com/lixenwraith/void-swarm/vmath"
)

func zone(kind arena.HazardKind, x, y, w, h float64) arena.Hazard {
	return arena.Hazard{Rect: vmath.Rect{X: x, Y: y, W: w, H: h}, Kind: kind}
}

// TestHazardSlow verifies the multiplier applies while overlapped and resets after
func TestHazardSlow(t *testing.T) {
	w, _ := newWorld(500, 500)
	hz := zone(arena.HazardSlow, 400, 400, 200, 200)
	hz.SlowMultiplier = 0.5
	w.Map.Hazards = []arena.Hazard{hz}

	s := &HazardSystem{}
	s.Update(w, 1)
	if w.Player.SlowMultiplier != 0.5 {
		t.Errorf("Expected slow 0.5, got %v", w.Player.SlowMultiplier)
	}

	w.Player.X = 900
	s.Update(w, 1)
	if w.Player.SlowMultiplier != 1 {
		t.Errorf("Expected slow reset, got %v", w.Player.SlowMultiplier)
	}
}

// TestHazardDamage verifies per-second damage spread over ticks without hit feedback
func TestHazardDamage(t *testing.T) {
	w, q := newWorld(500, 500)
	hz := zone(arena.HazardDamage, 400, 400, 200, 200)
	hz.DamagePerSecond = 60
	w.Map.Hazards = []arena.Hazard{hz}

	s := &HazardSystem{}
	hp := w.Player.HP
	for i := 0; i < 60; i++ {
		s.Update(w, 1)
	}
	if math.Abs(w.Player.HP-(hp-60)) > 1e-6 {
		t.Errorf("Expected hp %v after one second, got %v", hp-60, w.Player.HP)
	}
	if n := q.Len(); n != 0 {
		t.Errorf("Expected no feedback events, got %d", n)
	}
}

// TestHazardTeleport verifies relocation, grace period and cooldown
func TestHazardTeleport(t *testing.T) {
	w, q := newWorld(100, 100)
	w.Map.Hazards = []arena.Hazard{zone(arena.HazardTeleport, 0, 0, 200, 200)}

	s := &HazardSystem{}
	s.Update(w, 1)
	p := w.Player
	if p.X == 100 && p.Y == 100 {
		t.Fatal("Expected player teleported")
	}
	if !w.Map.IsFree(p.X, p.Y, p.Radius) {
		t.Errorf("Expected free landing point, got (%v,%v)", p.X, p.Y)
	}
	if p.TeleportInvuln != 60 || p.TeleportCooldown != 120 {
		t.Errorf("Expected invuln 60 and cooldown 120, got %v and %v", p.TeleportInvuln, p.TeleportCooldown)
	}
	if !p.IsInvulnerable() {
		t.Error("Expected grace period invulnerability")
	}
	if countType(q.Drain(nil), event.EventTeleported) != 1 {
		t.Error("Expected one teleport event")
	}

	// Walking back in during cooldown does nothing
	p.X, p.Y = 100, 100
	s.Update(w, 1)
	if p.X != 100 || p.Y != 100 {
		t.Error("Expected no teleport during cooldown")
	}
}

// TestHazardIgnoresDeadPlayer verifies zones stop applying after death
func TestHazardIgnoresDeadPlayer(t *testing.T) {
	w, _ := newWorld(500, 500)
	hz := zone(arena.HazardDamage, 400, 400, 200, 200)
	hz.DamagePerSecond = 600
	w.Map.Hazards = []arena.Hazard{hz}
	w.Player.Dead = true
	hp := w.Player.HP

	(&HazardSystem{}).Update(w, 1)
	if w.Player.HP != hp {
		t.Error("Expected no damage to a dead player")
	}
}

// TestZoneAt verifies hazard lookup
func TestZoneAt(t *testing.T) {
	m := arena.TheVoid()
	if hz := ZoneAt(m, 950, 950, 12); hz == nil || hz.Kind != arena.HazardDamage {
		t.Errorf("Expected damage zone, got %v", hz)
	}
	if ZoneAt(m, 1500, 100, 12) != nil {
		t.Error("Expected no zone")
	}
}
