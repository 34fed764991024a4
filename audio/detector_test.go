package audio

import (
	"errors"
	"os/exec"
	"slices"
	"testing"
)

func fakeLookPath(available ...string) func(string) (string, error) {
	return func(tool string) (string, error) {
		if slices.Contains(available, tool) {
			return "/usr/bin/" + tool, nil
		}
		return "", exec.ErrNotFound
	}
}

func noDevice(string) bool { return false }

// TestDetectPrefersPulse verifies candidate order when several players exist
func TestDetectPrefersPulse(t *testing.T) {
	cfg, err := detectWith(48000, fakeLookPath("aplay", "pacat", "ffplay"), noDevice)
	if err != nil {
		t.Fatalf("detectWith failed: %v", err)
	}
	if cfg.Type != BackendPulse || cfg.Path != "/usr/bin/pacat" {
		t.Errorf("Expected pacat, got %v at %s", cfg.Type, cfg.Path)
	}
	if !slices.Contains(cfg.Args, "--rate=48000") || !slices.Contains(cfg.Args, "--channels=2") {
		t.Errorf("Expected rate and channel args, got %v", cfg.Args)
	}
}

// TestDetectFallsBack verifies later candidates are used when earlier ones are missing
func TestDetectFallsBack(t *testing.T) {
	cfg, err := detectWith(44100, fakeLookPath("play"), noDevice)
	if err != nil {
		t.Fatalf("detectWith failed: %v", err)
	}
	if cfg.Type != BackendSoX || cfg.Name != "sox" {
		t.Errorf("Expected sox, got %v/%s", cfg.Type, cfg.Name)
	}
	i := slices.Index(cfg.Args, "-r")
	if i < 0 || cfg.Args[i+1] != "44100" {
		t.Errorf("Expected -r 44100, got %v", cfg.Args)
	}
}

// TestDetectOSSAndNone verifies the device fallback and the no-device error
func TestDetectOSSAndNone(t *testing.T) {
	cfg, err := detectWith(44100, fakeLookPath(), func(p string) bool { return p == ossDevice })
	if err != nil || cfg.Type != BackendOSS || cfg.Args != nil {
		t.Errorf("Expected OSS backend, got %+v %v", cfg, err)
	}

	if _, err := detectWith(44100, fakeLookPath(), noDevice); !errors.Is(err, ErrNoAudioDevice) {
		t.Errorf("Expected ErrNoAudioDevice, got %v", err)
	}
}
