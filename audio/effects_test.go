package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// TestOscillatorWaves verifies every wave shape stays within [-1, 1]
func TestOscillatorWaves(t *testing.T) {
	rate := beep.SampleRate(44100)
	tests := []struct {
		name string
		wave WaveType
		freq float64
	}{
		{"sine", WaveSine, 440},
		{"square", WaveSquare, 880},
		{"saw", WaveSaw, 110},
		{"noise", WaveNoise, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			osc := NewOscillator(tt.freq, 50*time.Millisecond, tt.wave, rate)
			samples := make([][2]float64, 100)
			n, ok := osc.Stream(samples)
			if !ok || n != 100 {
				t.Fatalf("Expected 100 samples ok, got %d %v", n, ok)
			}
			distinct := false
			for i := 0; i < n; i++ {
				if samples[i][0] < -1 || samples[i][0] > 1 {
					t.Errorf("Sample %d out of range: %f", i, samples[i][0])
				}
				if samples[i][0] != samples[i][1] {
					t.Errorf("Expected mono output at %d", i)
				}
				if i > 0 && samples[i][0] != samples[0][0] {
					distinct = true
				}
			}
			if !distinct {
				t.Error("Expected varying samples")
			}
		})
	}
}

// TestOscillatorDuration verifies oscillator stops at its duration
func TestOscillatorDuration(t *testing.T) {
	rate := beep.SampleRate(44100)
	duration := 10 * time.Millisecond
	expected := rate.N(duration)

	osc := NewOscillator(440.0, duration, WaveSine, rate)
	samples := make([][2]float64, expected*2)
	if n, _ := osc.Stream(samples); n != expected {
		t.Errorf("Expected %d samples, got %d", expected, n)
	}
	if n, ok := osc.Stream(samples[:10]); ok || n != 0 {
		t.Errorf("Expected exhausted oscillator, got %d %v", n, ok)
	}
}

// TestEnvelopeShape verifies attack ramps up and release fades out
func TestEnvelopeShape(t *testing.T) {
	rate := beep.SampleRate(44100)
	duration := 100 * time.Millisecond
	attack := 50 * time.Millisecond
	release := 20 * time.Millisecond

	osc := NewOscillator(100.0, duration, WaveSquare, rate)
	env := NewEnvelope(osc, duration, attack, release, rate)

	samples := make([][2]float64, rate.N(duration))
	n, _ := env.Stream(samples)
	if n != len(samples) {
		t.Fatalf("Expected %d samples, got %d", len(samples), n)
	}

	attackEnd := rate.N(attack) - 1
	if math.Abs(samples[0][0]) >= math.Abs(samples[attackEnd][0]) {
		t.Errorf("Expected attack ramp, first=%f last=%f", samples[0][0], samples[attackEnd][0])
	}
	if math.Abs(samples[n-1][0]) > 0.01 {
		t.Errorf("Expected release to fade to silence, got %f", samples[n-1][0])
	}
	if env.Err() != nil {
		t.Errorf("Expected no error, got %v", env.Err())
	}
}

// TestNewVolumeZero verifies zero volume yields silent samples
func TestNewVolumeZero(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(440.0, 50*time.Millisecond, WaveSine, rate)
	vol := newVolume(osc, 0.0)

	samples := make([][2]float64, 100)
	n, ok := vol.Stream(samples)
	if !ok || n == 0 {
		t.Fatal("Expected volume effect to stream")
	}
	for i := 0; i < n; i++ {
		if samples[i][0] != 0 {
			t.Fatalf("Expected silence at %d, got %f", i, samples[i][0])
		}
	}
}
