package core

import (
	"bytes"
	"strings"
	"sync"
	"testing"
)

type fakeTerminal struct{ finis int }

func (f *fakeTerminal) Fini() { f.finis++ }

// withCrashCapture swaps the crash output and exit for the duration of a test
func withCrashCapture(t *testing.T) (*bytes.Buffer, chan int) {
	t.Helper()
	var buf bytes.Buffer
	codes := make(chan int, 1)

	crashMu.Lock()
	prevOut, prevExit := crashOut, crashExit
	crashOut = &buf
	crashExit = func(code int) { codes <- code }
	crashMu.Unlock()

	t.Cleanup(func() {
		crashMu.Lock()
		crashOut, crashExit = prevOut, prevExit
		crashTerminal = nil
		crashMu.Unlock()
	})
	return &buf, codes
}

// TestHandleCrashRestoresTerminal verifies the screen is finalized before the report
func TestHandleCrashRestoresTerminal(t *testing.T) {
	buf, codes := withCrashCapture(t)
	term := &fakeTerminal{}
	RegisterTerminal(term)

	HandleCrash("boom")

	if term.finis != 1 {
		t.Errorf("Expected 1 Fini call, got %d", term.finis)
	}
	if code := <-codes; code != 1 {
		t.Errorf("Expected exit code 1, got %d", code)
	}
	if !strings.Contains(buf.String(), "CRASH DETECTED: boom") || !strings.Contains(buf.String(), "Stack Trace") {
		t.Errorf("Expected crash report, got %q", buf.String())
	}
}

// TestHandleCrashNil verifies nil recover values are ignored
func TestHandleCrashNil(t *testing.T) {
	buf, codes := withCrashCapture(t)
	HandleCrash(nil)
	select {
	case <-codes:
		t.Error("Expected no exit")
	default:
	}
	if buf.Len() != 0 {
		t.Errorf("Expected no output, got %q", buf.String())
	}
}

// TestGoRecoversPanics verifies the launcher routes panics to the crash handler
func TestGoRecoversPanics(t *testing.T) {
	_, codes := withCrashCapture(t)
	var wg sync.WaitGroup
	wg.Add(1)
	Go(func() {
		defer wg.Done()
		panic("worker failed")
	})
	wg.Wait()
	if code := <-codes; code != 1 {
		t.Errorf("Expected exit code 1, got %d", code)
	}
}

// TestOverlayLines verifies cards flatten with hotkeys and entries
func TestOverlayLines(t *testing.T) {
	c := &OverlayContent{
		Title:  "LEVEL UP",
		Footer: "[r] reroll",
		Items: []OverlayItem{
			OverlayCard{Key: "1", Title: "DAMAGE", Entries: []CardEntry{{Key: "next", Value: "+25% Damage"}}},
			OverlayText{Text: "choose one"},
		},
	}
	lines := c.Lines()
	want := []string{"LEVEL UP", "", "[1] DAMAGE", "    next: +25% Damage", "", "choose one", "[r] reroll"}
	if len(lines) != len(want) {
		t.Fatalf("Expected %d lines, got %d: %q", len(want), len(lines), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("Line %d: expected %q, got %q", i, want[i], lines[i])
		}
	}
	if len(c.Cards()) != 1 {
		t.Errorf("Expected 1 card, got %d", len(c.Cards()))
	}
}
