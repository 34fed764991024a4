package audio

import (
	"sync"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/void-swarm/event"
)

// soundCache stores rendered unity-gain cue buffers
type soundCache struct {
	rate  beep.SampleRate
	mu    sync.RWMutex
	store [event.CueCount]floatBuffer
	ready [event.CueCount]bool
}

func newSoundCache(sampleRate int) *soundCache {
	return &soundCache{rate: beep.SampleRate(sampleRate)}
}

// get returns the cached buffer or renders it on demand
func (c *soundCache) get(cue event.Cue) floatBuffer {
	if cue >= event.CueCount {
		return nil
	}

	c.mu.RLock()
	if c.ready[cue] {
		buf := c.store[cue]
		c.mu.RUnlock()
		return buf
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.ready[cue] {
		return c.store[cue]
	}

	buf := renderCue(cue, c.rate)
	c.store[cue] = buf
	c.ready[cue] = true
	return buf
}

// preload renders the per-tick cues ahead of the first shot
func (c *soundCache) preload() {
	c.get(event.CueShoot)
	c.get(event.CueCollect)
	c.get(event.CueExplosion)
}
