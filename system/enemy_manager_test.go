package system

import (
	"testing"

	"github.com/lixenwraith/void-swarm/entity"
	"github.com/lixenwraith/void-swarm/event"
	"github.com/lixenwraith/void-swarm/parameter"
)

// TestSpawnPoolBasicOnlyEarly verifies only basic enemies appear before swarm unlock
func TestSpawnPoolBasicOnlyEarly(t *testing.T) {
	w, _ := newWorld(500, 500)
	m := NewEnemyManager(w, NewDifficultyManager(parameter.ModeMedium))
	m.gameTime = 4

	for i := 0; i < 5000; i++ {
		m.spawnLogic(1)
	}
	if m.Count() == 0 {
		t.Fatal("Expected some spawns")
	}
	for _, h := range m.Live() {
		e, _ := w.Enemies.Get(h)
		if e.Kind != entity.EnemyBasic {
			t.Fatalf("Expected basic only before %ds, got %v", parameter.SwarmUnlockSeconds, e.Kind)
		}
	}
}

// TestSpawnPoolGrows verifies every kind is reachable late and the cap holds
func TestSpawnPoolGrows(t *testing.T) {
	w, _ := newWorld(500, 500)
	m := NewEnemyManager(w, NewDifficultyManager(parameter.ModeMedium))
	m.gameTime = 200

	for i := 0; i < 40000; i++ {
		m.spawnLogic(1)
	}
	seen := map[entity.EnemyKind]bool{}
	for _, h := range m.Live() {
		e, _ := w.Enemies.Get(h)
		seen[e.Kind] = true
	}
	for k := entity.EnemyKind(0); k < entity.EnemyKindCount; k++ {
		if !seen[k] {
			t.Errorf("Expected %v in late pool", k)
		}
	}
	if float64(m.Count()) > PopulationCap(200) {
		t.Errorf("Expected population at most %v, got %d", PopulationCap(200), m.Count())
	}
}

// TestSpawnedEnemiesAreOffscreen verifies spawn points lie outside the world edge
func TestSpawnedEnemiesAreOffscreen(t *testing.T) {
	w, _ := newWorld(500, 500)
	m := NewEnemyManager(w, NewDifficultyManager(parameter.ModeMedium))
	for i := 0; i < 50; i++ {
		x, y := m.edgePoint()
		if w.Map.InBounds(x, y) {
			t.Fatalf("Expected edge point outside world, got (%v,%v)", x, y)
		}
	}
}

// TestEnemySweepEmitsDeath verifies dead enemies are released with one event each
func TestEnemySweepEmitsDeath(t *testing.T) {
	w, q := newWorld(500, 500)
	m := NewEnemyManager(w, NewDifficultyManager(parameter.ModeMedium))
	m.SpawnDisabled = true

	h1 := m.SpawnAt(entity.EnemyBasic, 100, 100, 1)
	m.SpawnAt(entity.EnemyBasic, 900, 900, 1)
	e1, _ := w.Enemies.Get(h1)
	e1.TakeHit(1e6)

	m.Sweep()
	if m.Count() != 1 {
		t.Errorf("Expected 1 live enemy, got %d", m.Count())
	}
	if w.Enemies.Valid(h1) {
		t.Error("Expected dead handle to be released")
	}
	if w.Hash.Len() != 1 {
		t.Errorf("Expected hash rebuilt with 1 entry, got %d", w.Hash.Len())
	}

	events := q.Drain(nil)
	if countType(events, event.EventEnemyDied) != 1 {
		t.Fatalf("Expected 1 EnemyDied, got %d", countType(events, event.EventEnemyDied))
	}
	p := events[0].Payload.(event.EnemyDiedPayload)
	if p.X != 100 || p.Y != 100 || p.XP == 0 {
		t.Errorf("Unexpected death payload %#v", p)
	}

	m.Update(1, 10, 1)
	if got := countType(q.Drain(nil), event.EventEnemyDied); got != 0 {
		t.Errorf("Expected no duplicate deaths, got %d", got)
	}
}

// TestEnemyManagerClear verifies a reset drops every enemy silently
func TestEnemyManagerClear(t *testing.T) {
	w, q := newWorld(500, 500)
	m := NewEnemyManager(w, NewDifficultyManager(parameter.ModeMedium))
	m.SpawnAt(entity.EnemyTank, 10, 10, 1)
	m.SpawnAt(entity.EnemySwarm, 20, 20, 1)

	m.Clear()
	if m.Count() != 0 || w.Enemies.Len() != 0 || w.Hash.Len() != 0 {
		t.Errorf("Expected empty state, got count=%d arena=%d hash=%d", m.Count(), w.Enemies.Len(), w.Hash.Len())
	}
	if q.Len() != 0 {
		t.Errorf("Expected no events from clear, got %d", q.Len())
	}
}
