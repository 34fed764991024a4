package audio

import (
	"io"
	"log/slog"
	"math/rand"
	"os"
	"os/exec"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/void-swarm/core"
	"github.com/lixenwraith/void-swarm/event"
	"github.com/lixenwraith/void-swarm/parameter"
)

// AudioEngine plays game cues through a piped system audio tool
// With no usable device it runs silent: Play becomes a no-op and the game is unaffected
type AudioEngine struct {
	config *AudioConfig
	cache  *soundCache
	mixer  *Mixer
	logger *slog.Logger

	backend *BackendConfig
	cmd     *exec.Cmd
	stdin   io.WriteCloser
	ossFile *os.File

	running    atomic.Bool
	muted      atomic.Bool
	silentMode atomic.Bool

	lastPlayed [event.CueCount]atomic.Int64

	mu  sync.RWMutex // Protects config and rng
	rng *rand.Rand
	wg  sync.WaitGroup
}

// NewAudioEngine creates an audio engine; a nil config uses defaults and a nil logger slog.Default
func NewAudioEngine(cfg *AudioConfig, logger *slog.Logger) *AudioEngine {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = parameter.AudioSampleRate
	}
	if logger == nil {
		logger = slog.Default()
	}

	ae := &AudioEngine{
		config: cfg,
		cache:  newSoundCache(cfg.SampleRate),
		logger: logger,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	ae.muted.Store(!cfg.Enabled)
	ae.cache.preload()
	return ae
}

// Start launches the backend and mixer; a missing device enters silent mode and returns ErrNoAudioDevice
func (ae *AudioEngine) Start() error {
	if ae.running.Load() {
		return ErrAlreadyRunning
	}

	backend, err := DetectBackend(ae.config.SampleRate)
	if err != nil {
		ae.enterSilent("no backend", err)
		return err
	}
	return ae.StartWith(backend)
}

// StartWith launches the given backend; failures fall back to silent mode
func (ae *AudioEngine) StartWith(backend *BackendConfig) error {
	if !ae.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	ae.backend = backend

	var writer io.Writer
	if backend.Type == BackendOSS {
		f, err := os.OpenFile(backend.Path, os.O_WRONLY, 0)
		if err != nil {
			ae.enterSilent("open device", err)
			return nil
		}
		ae.ossFile = f
		writer = f
	} else {
		cmd := exec.Command(backend.Path, backend.Args...)
		stdin, err := cmd.StdinPipe()
		if err != nil {
			ae.enterSilent("stdin pipe", err)
			return nil
		}
		if err := cmd.Start(); err != nil {
			stdin.Close()
			ae.enterSilent("spawn backend", err)
			return nil
		}
		ae.cmd = cmd
		ae.stdin = stdin
		writer = stdin

		ae.wg.Add(1)
		core.Go(ae.monitorProcess)
	}

	ae.startMixer(writer)
	ae.logger.Info("audio started", "backend", backend.Name, "rate", ae.config.SampleRate)
	return nil
}

// StartWriter mixes into an arbitrary writer instead of a system backend
func (ae *AudioEngine) StartWriter(w io.Writer) error {
	if !ae.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	ae.startMixer(w)
	return nil
}

func (ae *AudioEngine) startMixer(w io.Writer) {
	ae.mixer = NewMixer(w, ae.config.SampleRate, ae.cache)
	ae.mixer.Start()

	m := ae.mixer
	ae.wg.Add(1)
	core.Go(func() { ae.monitorMixer(m) })
}

func (ae *AudioEngine) enterSilent(stage string, err error) {
	ae.silentMode.Store(true)
	ae.running.Store(true)
	ae.logger.Warn("audio disabled", "stage", stage, "error", err)
}

// monitorProcess watches for subprocess exit
func (ae *AudioEngine) monitorProcess() {
	defer ae.wg.Done()

	if err := ae.cmd.Wait(); err != nil && ae.running.Load() && !ae.silentMode.Load() {
		ae.enterSilent("backend exited", err)
	}
}

// monitorMixer watches for pipe errors
func (ae *AudioEngine) monitorMixer(m *Mixer) {
	defer ae.wg.Done()

	select {
	case err := <-m.Errors():
		ae.enterSilent("mixer", err)
	case <-m.stopChan:
	}
}

// Stop terminates the engine
func (ae *AudioEngine) Stop() {
	if !ae.running.CompareAndSwap(true, false) {
		return
	}

	if ae.mixer != nil {
		ae.mixer.Stop()
	}
	if ae.stdin != nil {
		ae.stdin.Close()
	}
	if ae.ossFile != nil {
		ae.ossFile.Close()
	}
	if ae.cmd != nil && ae.cmd.Process != nil {
		ae.cmd.Process.Kill()
	}

	ae.wg.Wait()
}

// Play queues a cue; volume and pitchVariance are the emitter's hints
// Identical cues within CueMinInterval are coalesced
func (ae *AudioEngine) Play(cue event.Cue, volume, pitchVariance float64) {
	if !ae.IsEnabled() || ae.mixer == nil || cue >= event.CueCount {
		return
	}

	now := time.Now().UnixNano()
	last := ae.lastPlayed[cue].Load()
	if cue != event.CueBackground && now-last < int64(parameter.CueMinInterval) {
		return
	}
	if !ae.lastPlayed[cue].CompareAndSwap(last, now) {
		return
	}

	ae.mu.RLock()
	vol := clampUnit(volume) * ae.config.CueVolume(cue) * ae.config.MasterVolume
	ae.mu.RUnlock()
	if vol <= 0 {
		return
	}

	ae.mixer.Play(cue, vol, ae.pitchStep(pitchVariance))
}

// pitchStep returns a playback ratio in [1-variance, 1+variance]
func (ae *AudioEngine) pitchStep(variance float64) float64 {
	if variance <= 0 {
		return 1
	}
	if variance > 0.5 {
		variance = 0.5
	}
	ae.mu.Lock()
	r := ae.rng.Float64()
	ae.mu.Unlock()
	return 1 + (r*2-1)*variance
}

// StopBackground silences the looping background track
func (ae *AudioEngine) StopBackground() {
	if ae.mixer != nil {
		ae.mixer.stopBackground()
	}
}

// ToggleMute toggles mute state, returns true if now enabled
func (ae *AudioEngine) ToggleMute() bool {
	newMute := !ae.muted.Load()
	ae.muted.Store(newMute)
	if newMute {
		ae.StopBackground()
	}
	return !newMute
}

// IsMuted returns current mute state
func (ae *AudioEngine) IsMuted() bool {
	return ae.muted.Load()
}

// IsEnabled returns true if running and unmuted
func (ae *AudioEngine) IsEnabled() bool {
	return ae.running.Load() && !ae.muted.Load() && !ae.silentMode.Load()
}

// IsRunning returns true if engine is running (even in silent mode)
func (ae *AudioEngine) IsRunning() bool {
	return ae.running.Load()
}

// IsSilent reports whether output fell back to silence
func (ae *AudioEngine) IsSilent() bool {
	return ae.silentMode.Load()
}

// Backend returns the active backend, nil when silent or writer-backed
func (ae *AudioEngine) Backend() *BackendConfig {
	return ae.backend
}

// SetVolume updates master volume (0.0-1.0)
func (ae *AudioEngine) SetVolume(vol float64) {
	ae.mu.Lock()
	ae.config.SetMasterVolume(vol)
	ae.mu.Unlock()
}

// Volume returns the master volume
func (ae *AudioEngine) Volume() float64 {
	ae.mu.RLock()
	defer ae.mu.RUnlock()
	return ae.config.MasterVolume
}

// GetStats returns played and dropped counts
func (ae *AudioEngine) GetStats() (played, dropped uint64) {
	if ae.mixer != nil {
		return ae.mixer.GetStats()
	}
	return 0, 0
}
