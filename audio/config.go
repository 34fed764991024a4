package audio

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/lixenwraith/void-swarm/event"
	"github.com/lixenwraith/void-swarm/parameter"
)

// Environment variables read by ApplyEnv
const (
	EnvAudioEnabled = "VOID_SWARM_AUDIO_ENABLED"
	EnvMasterVolume = "VOID_SWARM_MASTER_VOLUME"
	EnvCueVolumes   = "VOID_SWARM_SFX_VOLUMES"
	EnvSampleRate   = "VOID_SWARM_SAMPLE_RATE"
)

// AudioConfig holds output and per-cue volume settings
type AudioConfig struct {
	Enabled      bool
	MasterVolume float64
	CueVolumes   map[event.Cue]float64
	SampleRate   int
}

var defaultCueVolumes = [event.CueCount]float64{
	event.CueShoot:         0.35,
	event.CueExplosion:     0.7,
	event.CueCollect:       0.5,
	event.CueDamage:        0.8,
	event.CueGameOver:      1.0,
	event.CueLevelUp:       0.9,
	event.CueUpgradeSelect: 0.7,
	event.CueUpgradeReroll: 0.6,
	event.CueEvolution:     1.0,
	event.CuePowerup:       0.8,
	event.CueMenuOpen:      0.6,
	event.CueBackground:    0.25,
}

// DefaultAudioConfig returns enabled output at the default master volume
func DefaultAudioConfig() *AudioConfig {
	cfg := &AudioConfig{
		Enabled:      true,
		MasterVolume: parameter.AudioMasterVolume,
		CueVolumes:   make(map[event.Cue]float64, event.CueCount),
		SampleRate:   parameter.AudioSampleRate,
	}
	for c, v := range defaultCueVolumes {
		cfg.CueVolumes[event.Cue(c)] = v
	}
	return cfg
}

// LoadAudioConfig loads audio configuration from environment variables
func LoadAudioConfig() *AudioConfig {
	cfg := DefaultAudioConfig()
	cfg.ApplyEnv()
	return cfg
}

// ApplyEnv overrides fields from VOID_SWARM_* variables; malformed values are ignored
func (c *AudioConfig) ApplyEnv() {
	if enabled := os.Getenv(EnvAudioEnabled); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			c.Enabled = val
		}
	}

	// 0-100 converted to 0.0-1.0
	if volume := os.Getenv(EnvMasterVolume); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			c.SetMasterVolume(float64(val) / 100.0)
		}
	}

	if cueVols := os.Getenv(EnvCueVolumes); cueVols != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(cueVols), &volumes); err == nil {
			c.SetCueVolumes(volumes)
		}
	}

	if sampleRate := os.Getenv(EnvSampleRate); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			c.SampleRate = val
		}
	}
}

// SetMasterVolume stores a clamped master volume
func (c *AudioConfig) SetMasterVolume(v float64) {
	c.MasterVolume = clampUnit(v)
}

// SetCueVolumes merges volumes keyed by cue name, skipping unknown names
func (c *AudioConfig) SetCueVolumes(volumes map[string]float64) {
	if c.CueVolumes == nil {
		c.CueVolumes = make(map[event.Cue]float64, len(volumes))
	}
	for name, v := range volumes {
		if cue, ok := event.ParseCue(name); ok {
			c.CueVolumes[cue] = clampUnit(v)
		}
	}
}

// CueVolume returns the configured cue volume, 1 when unset
func (c *AudioConfig) CueVolume(cue event.Cue) float64 {
	if v, ok := c.CueVolumes[cue]; ok {
		return v
	}
	return 1
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
