package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType selects an oscillator shape
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// waveform maps a phase in [0,1) to a sample in [-1,1]
type waveform func(phase float64, noise *uint64) float64

var waveforms = [...]waveform{
	WaveSine: func(p float64, _ *uint64) float64 { return math.Sin(2 * math.Pi * p) },
	WaveSquare: func(p float64, _ *uint64) float64 {
		if p < 0.5 {
			return 1
		}
		return -1
	},
	WaveSaw: func(p float64, _ *uint64) float64 { return 2*p - 1 },
	WaveNoise: func(_ float64, s *uint64) float64 {
		*s ^= *s << 13
		*s ^= *s >> 7
		*s ^= *s << 17
		return float64(*s>>11)/(1<<52) - 1
	},
}

// oscillator is a fixed-length mono tone duplicated to both channels
type oscillator struct {
	shape     waveform
	phase     float64
	step      float64
	remaining int
	noise     uint64
}

// NewOscillator creates a streamer of the given wave lasting duration
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	shape := waveforms[WaveSine]
	if wave >= 0 && int(wave) < len(waveforms) {
		shape = waveforms[wave]
	}
	return &oscillator{
		shape:     shape,
		step:      freq / float64(rate),
		remaining: rate.N(duration),
		noise:     0x9e3779b97f4a7c15 ^ uint64(math.Float64bits(freq)),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (int, bool) {
	if o.remaining <= 0 {
		return 0, false
	}
	n := min(len(samples), o.remaining)
	for i := 0; i < n; i++ {
		v := o.shape(o.phase, &o.noise)
		samples[i] = [2]float64{v, v}
		o.phase += o.step
		o.phase -= math.Floor(o.phase)
	}
	o.remaining -= n
	return n, true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release to a fixed-length stream
type envelope struct {
	src     beep.Streamer
	pos     int
	total   int
	attack  int
	release int
}

// NewEnvelope ramps s up over attack and down over the final release of duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := min(rate.N(attack), total)
	rel := min(rate.N(release), total-att)
	return &envelope{src: s, total: total, attack: att, release: rel}
}

// gain returns the envelope level at sample position p
func (e *envelope) gain(p int) float64 {
	switch {
	case p < e.attack:
		return float64(p) / float64(e.attack)
	case e.release > 0 && p >= e.total-e.release:
		return float64(e.total-p) / float64(e.release)
	}
	return 1
}

func (e *envelope) Stream(samples [][2]float64) (int, bool) {
	if e.pos >= e.total {
		return 0, false
	}
	if left := e.total - e.pos; len(samples) > left {
		samples = samples[:left]
	}
	n, ok := e.src.Stream(samples)
	for i := 0; i < n; i++ {
		g := e.gain(e.pos)
		samples[i][0] *= g
		samples[i][1] *= g
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.src.Err() }

// newVolume scales s linearly; zero or negative volume silences it
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
