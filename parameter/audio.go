package parameter

import "time"

// Audio Output
const (
	// AudioSampleRate is the default output sample rate
	AudioSampleRate    = 44100
	AudioChannels      = 2
	AudioBitDepth      = 16
	AudioBytesPerFrame = AudioChannels * (AudioBitDepth / 8)

	// AudioBufferDuration is the mixer tick and pipe write granularity
	AudioBufferDuration = 50 * time.Millisecond

	// AudioMasterVolume is the default master volume (0-1)
	AudioMasterVolume = 0.6

	// AudioPlayQueueSize bounds pending play requests; overflow is dropped
	AudioPlayQueueSize = 32

	// AudioMaxVoices caps simultaneously mixed one-shot cues
	AudioMaxVoices = 24
)

// Cue Durations
const (
	ShootCueDuration     = 40 * time.Millisecond
	ExplosionCueDuration = 180 * time.Millisecond
	CollectCueDuration   = 60 * time.Millisecond
	DamageCueDuration    = 120 * time.Millisecond
	GameOverCueDuration  = 900 * time.Millisecond
	LevelUpCueDuration   = 300 * time.Millisecond
	SelectCueDuration    = 90 * time.Millisecond
	RerollCueDuration    = 120 * time.Millisecond
	EvolutionCueDuration = 500 * time.Millisecond
	PowerupCueDuration   = 250 * time.Millisecond
	MenuCueDuration      = 80 * time.Millisecond

	CueAttack  = 5 * time.Millisecond
	CueRelease = 30 * time.Millisecond

	// BackgroundNoteDuration is the length of each background drone note
	BackgroundNoteDuration = 400 * time.Millisecond
)

// Cue Throttling
const (
	// CueMinInterval suppresses identical cues fired in rapid succession
	CueMinInterval = 30 * time.Millisecond
)
