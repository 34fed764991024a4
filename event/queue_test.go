package event

import (
	"sync"
	"testing"

	"github.com/lixenwraith/void-swarm/parameter"
)

// TestEventQueueBasic tests basic push and drain operations
func TestEventQueueBasic(t *testing.T) {
	q := NewEventQueue()
	em := &Emitter{Queue: q, Tick: 7}

	em.Emit(EventLevelUp, LevelUpPayload{Level: 2})
	em.Sound(CueLevelUp, 0.5, 0)

	if q.Len() != 2 {
		t.Errorf("Expected 2 pending, got %d", q.Len())
	}

	events := q.Drain(nil)
	if len(events) != 2 {
		t.Fatalf("Expected 2 events, got %d", len(events))
	}
	if events[0].Type != EventLevelUp || events[0].Tick != 7 {
		t.Errorf("Expected LevelUp at tick 7, got %v at %d", events[0].Type, events[0].Tick)
	}
	if p, ok := events[1].Payload.(SoundPayload); !ok || p.Cue != CueLevelUp {
		t.Errorf("Expected level_up sound payload, got %#v", events[1].Payload)
	}
	if len(q.Drain(nil)) != 0 {
		t.Error("Expected empty queue after drain")
	}
}

// TestEventQueueOverflow verifies oldest events are dropped when full
func TestEventQueueOverflow(t *testing.T) {
	q := NewEventQueue()
	total := parameter.EventQueueSize + 10
	for i := 0; i < total; i++ {
		q.Push(GameEvent{Type: EventEnemyDied, Tick: uint64(i)})
	}

	events := q.Drain(nil)
	if len(events) != parameter.EventQueueSize {
		t.Fatalf("Expected %d events, got %d", parameter.EventQueueSize, len(events))
	}
	if events[0].Tick != 10 {
		t.Errorf("Expected oldest surviving tick 10, got %d", events[0].Tick)
	}
	if q.Dropped() != 10 {
		t.Errorf("Expected 10 dropped, got %d", q.Dropped())
	}
}

// TestEventQueueConcurrentProducers verifies no events are lost below capacity
func TestEventQueueConcurrentProducers(t *testing.T) {
	q := NewEventQueue()
	var wg sync.WaitGroup
	for p := 0; p < 4; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				q.Push(GameEvent{Type: EventParticlesRequested})
			}
		}()
	}
	wg.Wait()

	if got := len(q.Drain(nil)); got != 400 {
		t.Errorf("Expected 400 events, got %d", got)
	}
}

// TestCueNames verifies the cue vocabulary round-trips through its names
func TestCueNames(t *testing.T) {
	for c := Cue(0); c < CueCount; c++ {
		parsed, ok := ParseCue(c.String())
		if !ok || parsed != c {
			t.Errorf("Expected %v to parse back, got %v", c, parsed)
		}
	}
	if _, ok := ParseCue("fanfare"); ok {
		t.Error("Expected unknown cue to fail")
	}
	if EventGameOver.String() != "GameOver" {
		t.Errorf("Expected GameOver name, got %s", EventGameOver.String())
	}
}

// TestEmitterNilSafe verifies a nil emitter drops events silently
func TestEmitterNilSafe(t *testing.T) {
	var em *Emitter
	em.Particles(0, 0, 3, 0xffffff)
	em.Sound(CueShoot, 1, 0)
}

// TestEmitterRoutesCosmetic verifies particle and sound requests use the effects queue
func TestEmitterRoutesCosmetic(t *testing.T) {
	q, fx := NewEventQueue(), NewEventQueue()
	em := &Emitter{Queue: q, Effects: fx}

	em.Emit(EventEnemyDied, EnemyDiedPayload{})
	em.Sound(CueExplosion, 0.2, 0)
	em.Particles(1, 1, 4, 0xffffff)

	if q.Len() != 1 || fx.Len() != 2 {
		t.Errorf("Expected 1 gameplay and 2 cosmetic, got %d and %d", q.Len(), fx.Len())
	}
	if !EventSoundRequest.Cosmetic() || EventGameOver.Cosmetic() {
		t.Error("Cosmetic classification mismatch")
	}
}
