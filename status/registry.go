// Package status is a lock-free telemetry registry the engine publishes run metrics into and
// frontends read for HUD and debug overlays
package status

import (
	"strconv"
	"sync/atomic"
)

// Well-known keys published by the game engine
const (
	KeyTicks         = "engine.ticks"
	KeyTicksPerFrame = "engine.ticks_per_frame"
	KeyDroppedEvents = "engine.dropped_events"
	KeyState         = "engine.state"
	KeyEnemies       = "world.enemies"
	KeyBullets       = "world.bullets"
	KeyPickups       = "world.pickups"
	KeyParticles     = "world.particles"
	KeyKills         = "run.kills"
	KeyLevel         = "run.level"
	KeyGameTime      = "run.seconds"
	KeyDifficulty    = "run.difficulty"
	KeyShield        = "player.shield"
)

// Registry groups metrics by value type
type Registry struct {
	Counters *Keyed[atomic.Int64]
	Gauges   *Keyed[Gauge]
	Flags    *Keyed[atomic.Bool]
	Labels   *Keyed[Label]
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		Counters: NewKeyed[atomic.Int64](),
		Gauges:   NewKeyed[Gauge](),
		Flags:    NewKeyed[atomic.Bool](),
		Labels:   NewKeyed[Label](),
	}
}

// Len returns the metric count across all types
func (r *Registry) Len() int {
	return r.Counters.Len() + r.Gauges.Len() + r.Flags.Len() + r.Labels.Len()
}

// Dump renders every metric as text keyed by name
func (r *Registry) Dump() map[string]string {
	out := make(map[string]string, r.Len())
	r.Counters.Each(func(k string, v *atomic.Int64) {
		out[k] = strconv.FormatInt(v.Load(), 10)
	})
	r.Gauges.Each(func(k string, v *Gauge) {
		out[k] = strconv.FormatFloat(v.Get(), 'f', 2, 64)
	})
	r.Flags.Each(func(k string, v *atomic.Bool) {
		out[k] = strconv.FormatBool(v.Load())
	})
	r.Labels.Each(func(k string, v *Label) {
		out[k] = v.Load()
	})
	return out
}
