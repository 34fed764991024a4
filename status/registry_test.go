package status

import (
	"sync"
	"testing"
)

// TestKeyedReturnsCachedPointer verifies one metric per key
func TestKeyedReturnsCachedPointer(t *testing.T) {
	r := NewRegistry()
	a := r.Counters.Get(KeyKills)
	b := r.Counters.Get(KeyKills)
	if a != b {
		t.Error("Expected the same pointer for the same key")
	}
	a.Add(3)
	if b.Load() != 3 {
		t.Errorf("Expected 3, got %d", b.Load())
	}
	if !r.Counters.Has(KeyKills) || r.Counters.Has(KeyLevel) {
		t.Error("Expected Has to reflect requested keys only")
	}
}

// TestGaugeConcurrentAdd verifies CAS accumulation
func TestGaugeConcurrentAdd(t *testing.T) {
	var g Gauge
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				g.Add(0.5)
			}
		}()
	}
	wg.Wait()
	if g.Get() != 400 {
		t.Errorf("Expected 400, got %v", g.Get())
	}
}

// TestLabelTruncates verifies the length bound
func TestLabelTruncates(t *testing.T) {
	var l Label
	if l.Load() != "" {
		t.Error("Expected empty zero value")
	}
	l.Store("abcdefghijklmnopqrstuvwxyz0123")
	if got := l.Load(); len(got) != MaxLabelLen {
		t.Errorf("Expected %d bytes, got %q", MaxLabelLen, got)
	}
}

// TestRegistryDump verifies text rendering across types
func TestRegistryDump(t *testing.T) {
	r := NewRegistry()
	r.Counters.Get(KeyEnemies).Store(12)
	r.Gauges.Get(KeyDifficulty).Set(1.5)
	r.Flags.Get(KeyShield).Store(true)
	r.Labels.Get(KeyState).Store("running")

	d := r.Dump()
	want := map[string]string{
		KeyEnemies:    "12",
		KeyDifficulty: "1.50",
		KeyShield:     "true",
		KeyState:      "running",
	}
	for k, v := range want {
		if d[k] != v {
			t.Errorf("Expected %s=%s, got %q", k, v, d[k])
		}
	}
	if r.Len() != 4 {
		t.Errorf("Expected 4 metrics, got %d", r.Len())
	}
}
