package audio

import (
	"encoding/binary"
	"testing"
)

// TestVoiceRender verifies one-shots finish and loops wrap
func TestVoiceRender(t *testing.T) {
	v := voice{buffer: floatBuffer{1, 1, 1, 1, 1}, step: 1, volume: 0.5}
	buf := make([]float64, 8)
	if v.render(buf) {
		t.Error("Expected one-shot to finish")
	}
	if buf[0] != 0.5 || buf[3] != 0.5 || buf[4] != 0 {
		t.Errorf("Expected 4 mixed samples at 0.5, got %v", buf)
	}

	loop := voice{buffer: floatBuffer{1, 1, 1}, step: 1, volume: 1, loop: true}
	buf = make([]float64, 8)
	if !loop.render(buf) {
		t.Error("Expected loop to continue")
	}
	for i, s := range buf {
		if s != 1 {
			t.Errorf("Expected looped sample 1 at %d, got %f", i, s)
		}
	}
}

// TestVoicePitchStep verifies a faster step consumes the buffer sooner
func TestVoicePitchStep(t *testing.T) {
	buf := make(floatBuffer, 101)
	slow := voice{buffer: buf, step: 1, volume: 1}
	fast := voice{buffer: buf, step: 2, volume: 1}

	out := make([]float64, 60)
	if !slow.render(out) {
		t.Error("Expected unit step to have samples left")
	}
	if fast.render(out) {
		t.Error("Expected double step to finish")
	}
}

// TestFloatToBytes verifies clipping and stereo duplication
func TestFloatToBytes(t *testing.T) {
	in := []float64{0, 5, -5}
	out := make([]byte, len(in)*4)
	floatToBytes(in, out)

	sample := func(i int) int16 { return int16(binary.LittleEndian.Uint16(out[i*4:])) }
	right := func(i int) int16 { return int16(binary.LittleEndian.Uint16(out[i*4+2:])) }

	if sample(0) != 0 {
		t.Errorf("Expected silence, got %d", sample(0))
	}
	if sample(1) <= 0 || sample(1) > 32767 {
		t.Errorf("Expected limited positive peak, got %d", sample(1))
	}
	if sample(2) >= 0 {
		t.Errorf("Expected negative peak, got %d", sample(2))
	}
	for i := range in {
		if sample(i) != right(i) {
			t.Errorf("Expected identical channels at %d", i)
		}
	}
}
