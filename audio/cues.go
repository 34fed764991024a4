package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/void-swarm/event"
	"github.com/lixenwraith/void-swarm/parameter"
)

// floatBuffer is mono float64 samples at unity gain
type floatBuffer []float64

// note is one step of a cue recipe
type note struct {
	freq float64
	wave WaveType
	dur  time.Duration
}

// tone returns an enveloped oscillator
func tone(n note, rate beep.SampleRate) beep.Streamer {
	release := parameter.CueRelease
	if release > n.dur/2 {
		release = n.dur / 2
	}
	osc := NewOscillator(n.freq, n.dur, n.wave, rate)
	return NewEnvelope(osc, n.dur, parameter.CueAttack, release, rate)
}

// sequence plays notes back to back
func sequence(rate beep.SampleRate, notes ...note) beep.Streamer {
	parts := make([]beep.Streamer, len(notes))
	for i, n := range notes {
		parts[i] = tone(n, rate)
	}
	return beep.Seq(parts...)
}

func split(d time.Duration, parts int) time.Duration {
	return d / time.Duration(parts)
}

// CueStreamer builds the unity-gain synthesis graph for a cue and its length
func CueStreamer(cue event.Cue, rate beep.SampleRate) (beep.Streamer, time.Duration) {
	switch cue {
	case event.CueShoot:
		d := parameter.ShootCueDuration
		return tone(note{880, WaveSquare, d}, rate), d

	case event.CueExplosion:
		d := parameter.ExplosionCueDuration
		noise := NewOscillator(0, d, WaveNoise, rate)
		rumble := tone(note{70, WaveSaw, d}, rate)
		return beep.Mix(
			newVolume(NewEnvelope(noise, d, parameter.CueAttack, d*2/3, rate), 0.7),
			newVolume(rumble, 0.3),
		), d

	case event.CueCollect:
		d := parameter.CollectCueDuration
		return tone(note{1320, WaveSine, d}, rate), d

	case event.CueDamage:
		d := parameter.DamageCueDuration
		return tone(note{110, WaveSaw, d}, rate), d

	case event.CueGameOver:
		d := parameter.GameOverCueDuration
		step := split(d, 3)
		return sequence(rate,
			note{392, WaveSaw, step},
			note{330, WaveSaw, step},
			note{262, WaveSaw, step},
		), step * 3

	case event.CueLevelUp:
		d := parameter.LevelUpCueDuration
		step := split(d, 3)
		return sequence(rate,
			note{523.25, WaveSine, step},
			note{659.25, WaveSine, step},
			note{783.99, WaveSine, step},
		), step * 3

	case event.CueUpgradeSelect:
		d := parameter.SelectCueDuration
		step := split(d, 2)
		return sequence(rate,
			note{660, WaveSquare, step},
			note{990, WaveSquare, step},
		), step * 2

	case event.CueUpgradeReroll:
		d := parameter.RerollCueDuration
		step := split(d, 2)
		return sequence(rate,
			note{0, WaveNoise, step},
			note{440, WaveSine, step},
		), step * 2

	case event.CueEvolution:
		d := parameter.EvolutionCueDuration
		step := split(d, 5)
		arp := []note{
			{523.25, WaveSine, step},
			{659.25, WaveSine, step},
			{783.99, WaveSine, step},
			{1046.5, WaveSine, step},
			{1318.51, WaveSine, step},
		}
		over := make([]note, len(arp))
		for i, n := range arp {
			over[i] = note{n.freq * 2, WaveSine, n.dur}
		}
		return beep.Mix(
			newVolume(sequence(rate, arp...), 0.7),
			newVolume(sequence(rate, over...), 0.3),
		), step * 5

	case event.CuePowerup:
		d := parameter.PowerupCueDuration
		step := split(d, 4)
		return sequence(rate,
			note{440, WaveSine, step},
			note{554.37, WaveSine, step},
			note{659.25, WaveSine, step},
			note{880, WaveSine, step},
		), step * 4

	case event.CueMenuOpen:
		d := parameter.MenuCueDuration
		return tone(note{587.33, WaveSine, d}, rate), d

	case event.CueBackground:
		step := parameter.BackgroundNoteDuration
		return sequence(rate,
			note{55, WaveSaw, step},
			note{65.41, WaveSaw, step},
			note{49, WaveSaw, step},
			note{58.27, WaveSaw, step},
		), step * 4
	}
	return nil, 0
}

// renderCue synthesizes a cue into a mono buffer at the given rate
func renderCue(cue event.Cue, rate beep.SampleRate) floatBuffer {
	s, d := CueStreamer(cue, rate)
	if s == nil {
		return nil
	}
	return render(s, rate.N(d))
}

// render drains up to limit frames of a streamer, keeping the left channel
func render(s beep.Streamer, limit int) floatBuffer {
	buf := make(floatBuffer, 0, limit)
	var chunk [512][2]float64
	for len(buf) < limit {
		want := limit - len(buf)
		if want > len(chunk) {
			want = len(chunk)
		}
		n, ok := s.Stream(chunk[:want])
		for i := 0; i < n; i++ {
			buf = append(buf, chunk[i][0])
		}
		if !ok || n == 0 {
			break
		}
	}
	return buf
}
