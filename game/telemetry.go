package game

import (
	"sync/atomic"

	"github.com/lixenwraith/void-swarm/status"
)

// telemetry caches registry pointers; a nil registry disables publishing
type telemetry struct {
	on bool

	ticks, perFrame, dropCount      *atomic.Int64
	enemies, bullets, pickups, dust *atomic.Int64
	kills, level, seconds           *atomic.Int64
	difficulty                      *status.Gauge
	shield                          *atomic.Bool
	state                           *status.Label
}

func newTelemetry(r *status.Registry) telemetry {
	if r == nil {
		return telemetry{}
	}
	return telemetry{
		on:         true,
		ticks:      r.Counters.Get(status.KeyTicks),
		perFrame:   r.Counters.Get(status.KeyTicksPerFrame),
		dropCount:  r.Counters.Get(status.KeyDroppedEvents),
		enemies:    r.Counters.Get(status.KeyEnemies),
		bullets:    r.Counters.Get(status.KeyBullets),
		pickups:    r.Counters.Get(status.KeyPickups),
		dust:       r.Counters.Get(status.KeyParticles),
		kills:      r.Counters.Get(status.KeyKills),
		level:      r.Counters.Get(status.KeyLevel),
		seconds:    r.Counters.Get(status.KeyGameTime),
		difficulty: r.Gauges.Get(status.KeyDifficulty),
		shield:     r.Flags.Get(status.KeyShield),
		state:      r.Labels.Get(status.KeyState),
	}
}

func (t *telemetry) publishFrame(ticks int) {
	if t.on {
		t.perFrame.Store(int64(ticks))
	}
}

// publishTick mirrors world counts after a tick
func (t *telemetry) publishTick(e *Engine) {
	if !t.on {
		return
	}
	t.ticks.Store(int64(e.clock.Frames()))
	t.enemies.Store(int64(e.enemies.Count()))
	t.bullets.Store(int64(len(e.bullets.Active())))
	t.pickups.Store(int64(len(e.pickups.Active())))
	t.dust.Store(int64(len(e.particles.Active())))
	t.kills.Store(int64(e.score.Kills))
	t.level.Store(int64(e.world.Player.Level))
	t.seconds.Store(int64(e.clock.GameTime()))
	t.difficulty.Set(e.difficulty.Difficulty)
	t.shield.Store(e.world.Player.HasShield())
	t.state.Store(e.state.String())
}

func (t *telemetry) droppedEvents(n uint64) {
	if t.on {
		t.dropCount.Store(int64(n))
	}
}
