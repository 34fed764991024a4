package system

import (
	"testing"

	"github.com/lixenwraith/void-swarm/entity"
	"github.com/lixenwraith/void-swarm/event"
	"github.com/lixenwraith/void-swarm/parameter"
)

type fixedDurations map[entity.PowerupKind]float64

func (f fixedDurations) PowerupDuration(kind entity.PowerupKind) float64 {
	return f[kind]
}

// TestPowerupDurations verifies base and per-level durations
func TestPowerupDurations(t *testing.T) {
	if d := BaseDuration(entity.PowerupDoubleStats); d != 600 {
		t.Errorf("Expected 600, got %v", d)
	}
	if d := BaseDuration(entity.PowerupInvulnerability); d != 480 {
		t.Errorf("Expected 480, got %v", d)
	}
	if d := DurationForLevel(entity.PowerupMagnet, 3); d != 420 {
		t.Errorf("Expected 420, got %v", d)
	}
	if d := DurationForLevel(entity.PowerupMagnet, 0); d != 300 {
		t.Errorf("Expected level floor 1, got %v", d)
	}
}

// TestPowerupActivateAndExpire verifies the buff lifecycle through the system
func TestPowerupActivateAndExpire(t *testing.T) {
	q := event.NewEventQueue()
	em := &event.Emitter{Queue: q}
	p := entity.NewPlayer(0, 0, parameter.ModeMedium)
	s := &PowerupSystem{Durations: fixedDurations{entity.PowerupMagnet: 10}}

	s.Activate(p, entity.PowerupMagnet, em)
	if !p.HasPowerup(entity.PowerupMagnet) || p.PickupRange != parameter.PlayerPickupRange*parameter.MagnetRangeMultiplier {
		t.Fatalf("Expected magnet active with range boost, got range %v", p.PickupRange)
	}
	events := q.Drain(nil)
	if countType(events, event.EventPowerupActivated) != 1 || countType(events, event.EventSoundRequest) != 1 {
		t.Errorf("Expected activation event and cue, got %v", events)
	}
	if pl := events[0].Payload.(event.PowerupPayload); pl.Duration != 10 || pl.Kind != "magnet" {
		t.Errorf("Unexpected payload %#v", pl)
	}

	// Source without an entry falls back to the base duration
	s.Activate(p, entity.PowerupDoubleStats, em)
	if p.Powerups[entity.PowerupDoubleStats] != 600 {
		t.Errorf("Expected default 600, got %v", p.Powerups[entity.PowerupDoubleStats])
	}

	for i := 0; i < 10; i++ {
		s.Update(p, 1, em)
	}
	if p.HasPowerup(entity.PowerupMagnet) {
		t.Error("Expected magnet expired")
	}
	if p.PickupRange != parameter.PlayerPickupRange {
		t.Errorf("Expected range restored, got %v", p.PickupRange)
	}
	if !p.HasPowerup(entity.PowerupDoubleStats) {
		t.Error("Expected double stats still active")
	}
}
