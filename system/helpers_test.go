package system

import (
	"github.com/lixenwraith/void-swarm/arena"
	"github.com/lixenwraith/void-swarm/engine"
	"github.com/lixenwraith/void-swarm/entity"
	"github.com/lixenwraith/void-swarm/event"
	"github.com/lixenwraith/void-swarm/parameter"
	"github.com/lixenwraith/void-swarm/vmath"
)

func newWorld(px, py float64) (*entity.World, *event.EventQueue) {
	q := event.NewEventQueue()
	w := &entity.World{
		Player:  entity.NewPlayer(px, py, parameter.ModeMedium),
		Map:     &arena.Map{Width: 1000, Height: 1000},
		Enemies: engine.NewArena[entity.Enemy](nil),
		Hash:    engine.NewSpatialHash[engine.Handle](parameter.SpatialCellSize),
		RNG:     vmath.NewFastRand(7),
		Events:  &event.Emitter{Queue: q},
	}
	return w, q
}

func countType(events []event.GameEvent, t event.EventType) int {
	n := 0
	for _, ev := range events {
		if ev.Type == t {
			n++
		}
	}
	return n
}
