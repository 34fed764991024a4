package entity

import (
	"github.com/lixenwraith/void-swarm/arena"
	"github.com/lixenwraith/void-swarm/engine"
	"github.com/lixenwraith/void-swarm/event"
	"github.com/lixenwraith/void-swarm/vmath"
)

// World is the shared per-tick context entity updates read and mutate
// The enemy hash is rebuilt by the enemy manager; positions may lag by one update within a tick
type World struct {
	Player  *Player
	Map     *arena.Map
	Enemies *engine.Arena[Enemy]
	Hash    *engine.SpatialHash[engine.Handle]
	RNG     *vmath.FastRand
	Events  *event.Emitter
	Frame   uint64

	scratch []engine.Handle
}

// Nearby returns candidate enemy handles near a point
// The returned slice is reused by the next call
func (w *World) Nearby(x, y, radius float64) []engine.Handle {
	w.scratch = w.Hash.QueryInto(w.scratch[:0], x, y, radius)
	return w.scratch
}

// RebuildHash clears the enemy hash and re-adds every live enemy
func (w *World) RebuildHash(live []engine.Handle) {
	w.Hash.Clear()
	for _, h := range live {
		if e, ok := w.Enemies.Get(h); ok && e.HP > 0 {
			w.Hash.Add(h, e.X, e.Y, e.Radius)
		}
	}
}
