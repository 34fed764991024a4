package audio

import (
	"encoding/binary"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/void-swarm/core"
	"github.com/lixenwraith/void-swarm/event"
	"github.com/lixenwraith/void-swarm/parameter"
)

// voice tracks a playing cue; pos advances by step for pitch shifting
type voice struct {
	buffer floatBuffer
	pos    float64
	step   float64
	volume float64
	loop   bool
}

type playRequest struct {
	cue    event.Cue
	volume float64
	step   float64
}

// Mixer sums active voices and writes s16le stereo frames to the output
type Mixer struct {
	output io.Writer
	cache  *soundCache

	playQueue chan playRequest
	stopChan  chan struct{}
	stopped   atomic.Bool

	frameSamples int
	tick         time.Duration

	// Accessed only by mix goroutine
	active     []voice
	background *voice

	statsMu sync.Mutex
	played  uint64
	dropped uint64

	errChan chan error
}

// NewMixer creates a mixer writing sampleRate frames to out
func NewMixer(out io.Writer, sampleRate int, cache *soundCache) *Mixer {
	return &Mixer{
		output:       out,
		cache:        cache,
		playQueue:    make(chan playRequest, parameter.AudioPlayQueueSize),
		stopChan:     make(chan struct{}),
		frameSamples: int(int64(sampleRate) * int64(parameter.AudioBufferDuration) / int64(time.Second)),
		tick:         parameter.AudioBufferDuration,
		active:       make([]voice, 0, parameter.AudioMaxVoices),
		errChan:      make(chan error, 1),
	}
}

// Start begins the mixing loop
func (m *Mixer) Start() {
	core.Go(m.loop)
}

// Stop signals the mixer to halt
func (m *Mixer) Stop() {
	if m.stopped.CompareAndSwap(false, true) {
		close(m.stopChan)
	}
}

// Play queues a cue at the final volume and playback rate ratio
func (m *Mixer) Play(cue event.Cue, volume, step float64) {
	if m.stopped.Load() {
		return
	}
	select {
	case m.playQueue <- playRequest{cue: cue, volume: volume, step: step}:
	default:
		m.statsMu.Lock()
		m.dropped++
		m.statsMu.Unlock()
	}
}

// Errors returns channel for pipe errors
func (m *Mixer) Errors() <-chan error {
	return m.errChan
}

func (m *Mixer) loop() {
	ticker := time.NewTicker(m.tick)
	defer ticker.Stop()

	mixBuf := make([]float64, m.frameSamples)
	outBytes := make([]byte, m.frameSamples*parameter.AudioBytesPerFrame)

	for {
		select {
		case <-m.stopChan:
			return

		case req := <-m.playQueue:
			m.start(req)
			m.drainQueue(4)

		case <-ticker.C:
			for i := range mixBuf {
				mixBuf[i] = 0
			}
			m.mix(mixBuf)
			floatToBytes(mixBuf, outBytes)

			if _, err := m.output.Write(outBytes); err != nil {
				select {
				case m.errChan <- fmt.Errorf("%w: %v", ErrPipeClosed, err):
				default:
				}
				return
			}
		}
	}
}

// drainQueue processes up to n additional queued requests
func (m *Mixer) drainQueue(n int) {
	for i := 0; i < n; i++ {
		select {
		case req := <-m.playQueue:
			m.start(req)
		default:
			return
		}
	}
}

// start turns a request into a voice; background replaces the current loop
func (m *Mixer) start(req playRequest) {
	buf := m.cache.get(req.cue)
	if len(buf) < 2 {
		return
	}
	v := voice{buffer: buf, step: req.step, volume: req.volume}
	if v.step <= 0 {
		v.step = 1
	}

	m.statsMu.Lock()
	defer m.statsMu.Unlock()

	if req.cue == event.CueBackground {
		v.loop = true
		m.background = &v
		m.played++
		return
	}
	if len(m.active) >= parameter.AudioMaxVoices {
		m.dropped++
		return
	}
	m.active = append(m.active, v)
	m.played++
}

// stopBackground clears the looping track
func (m *Mixer) stopBackground() {
	m.statsMu.Lock()
	m.background = nil
	m.statsMu.Unlock()
}

// mix sums all voices into buf, dropping finished one-shots
func (m *Mixer) mix(buf []float64) {
	m.statsMu.Lock()
	bg := m.background
	m.statsMu.Unlock()
	if bg != nil {
		bg.render(buf)
	}

	remaining := m.active[:0]
	for i := range m.active {
		v := &m.active[i]
		if v.render(buf) {
			remaining = append(remaining, *v)
		}
	}
	m.active = remaining
}

// render adds the voice into buf with linear interpolation; false when exhausted
func (v *voice) render(buf []float64) bool {
	n := float64(len(v.buffer))
	for j := range buf {
		if v.pos >= n-1 {
			if !v.loop {
				return false
			}
			v.pos = 0
		}
		i := int(v.pos)
		frac := v.pos - float64(i)
		s := v.buffer[i]*(1-frac) + v.buffer[i+1]*frac
		buf[j] += s * v.volume
		v.pos += v.step
	}
	return v.loop || v.pos < n-1
}

// floatToBytes converts float64 mono to interleaved stereo int16 LE bytes
// Applies soft limiting before hard clip
func floatToBytes(in []float64, out []byte) {
	for i, v := range in {
		if v > 0.8 {
			v = 0.8 + 0.2*(1.0-1.0/(1.0+(v-0.8)*5.0))
		} else if v < -0.8 {
			v = -0.8 - 0.2*(1.0-1.0/(1.0+(-v-0.8)*5.0))
		}

		if v > 1.0 {
			v = 1.0
		} else if v < -1.0 {
			v = -1.0
		}

		i16 := int16(v * 32767)
		idx := i * 4
		binary.LittleEndian.PutUint16(out[idx:], uint16(i16))
		binary.LittleEndian.PutUint16(out[idx+2:], uint16(i16))
	}
}

// GetStats returns played and dropped counts
func (m *Mixer) GetStats() (played, dropped uint64) {
	m.statsMu.Lock()
	defer m.statsMu.Unlock()
	return m.played, m.dropped
}
