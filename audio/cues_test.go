package audio

import (
	"math"
	"testing"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/void-swarm/event"
)

// TestEveryCueRenders verifies each cue synthesizes a bounded, audible buffer
func TestEveryCueRenders(t *testing.T) {
	rate := beep.SampleRate(44100)
	for c := event.Cue(0); c < event.CueCount; c++ {
		_, d := CueStreamer(c, rate)
		buf := renderCue(c, rate)
		if len(buf) == 0 {
			t.Errorf("Expected samples for %s", c)
			continue
		}
		if len(buf) > rate.N(d) {
			t.Errorf("Expected at most %d samples for %s, got %d", rate.N(d), c, len(buf))
		}

		peak := 0.0
		for _, s := range buf {
			peak = math.Max(peak, math.Abs(s))
		}
		if peak == 0 || peak > 1.0001 {
			t.Errorf("Expected peak in (0, 1] for %s, got %f", c, peak)
		}
	}
}

// TestUnknownCue verifies out-of-range cues render nothing
func TestUnknownCue(t *testing.T) {
	if buf := renderCue(event.CueCount, beep.SampleRate(44100)); buf != nil {
		t.Errorf("Expected nil buffer, got %d samples", len(buf))
	}
	if buf := newSoundCache(44100).get(event.CueCount); buf != nil {
		t.Errorf("Expected nil cached buffer, got %d samples", len(buf))
	}
}

// TestSoundCacheReuse verifies cached buffers are rendered once
func TestSoundCacheReuse(t *testing.T) {
	c := newSoundCache(22050)
	a := c.get(event.CueLevelUp)
	b := c.get(event.CueLevelUp)
	if len(a) == 0 || &a[0] != &b[0] {
		t.Error("Expected the same cached buffer")
	}
}
