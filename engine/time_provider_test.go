package engine

import (
	"testing"
	"time"
)

// TestMonotonicTimeProvider verifies real time advances
func TestMonotonicTimeProvider(t *testing.T) {
	provider := NewMonotonicTimeProvider()

	t1 := provider.Now()
	time.Sleep(10 * time.Millisecond)
	t2 := provider.Now()

	if !t2.After(t1) {
		t.Errorf("Expected t2 to be after t1, but got t1=%v, t2=%v", t1, t2)
	}
	if diff := t2.Sub(t1); diff < 10*time.Millisecond {
		t.Errorf("Expected at least 10ms difference, got %v", diff)
	}
}

// TestPausableClockExcludesPauses verifies elapsed time ignores paused spans
func TestPausableClockExcludesPauses(t *testing.T) {
	mock := NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	clock := NewPausableClockWith(mock)

	mock.Advance(2 * time.Second)
	clock.Pause()
	mock.Advance(5 * time.Second)

	if got := clock.Elapsed(); got != 2*time.Second {
		t.Errorf("Expected 2s elapsed during pause, got %v", got)
	}
	if got := clock.TotalPauseDuration(); got != 5*time.Second {
		t.Errorf("Expected 5s ongoing pause, got %v", got)
	}

	clock.Resume()
	mock.Advance(1 * time.Second)

	if got := clock.Elapsed(); got != 3*time.Second {
		t.Errorf("Expected 3s elapsed after resume, got %v", got)
	}
	if got := clock.RealMs(); got != 8000 {
		t.Errorf("Expected 8000 real ms, got %v", got)
	}
}

// TestPausableClockIdempotent verifies repeated pause/resume calls are harmless
func TestPausableClockIdempotent(t *testing.T) {
	mock := NewMockTimeProvider(time.Unix(0, 0))
	clock := NewPausableClockWith(mock)

	clock.Pause()
	mock.Advance(time.Second)
	clock.Pause()
	mock.Advance(time.Second)
	clock.Resume()
	clock.Resume()

	if clock.IsPaused() || clock.TotalPauseDuration() != 2*time.Second {
		t.Errorf("Expected 2s total pause, got %v", clock.TotalPauseDuration())
	}
}
