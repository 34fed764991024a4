package system

import (
	"github.com/lixenwraith/void-swarm/entity"
	"github.com/lixenwraith/void-swarm/event"
	"github.com/lixenwraith/void-swarm/parameter"
)

// DurationSource supplies meta-progression powerup durations in ticks
type DurationSource interface {
	PowerupDuration(kind entity.PowerupKind) float64
}

// BaseDuration returns the level-1 duration of a powerup
func BaseDuration(kind entity.PowerupKind) float64 {
	switch kind {
	case entity.PowerupDoubleStats:
		return parameter.DurationDoubleStats
	case entity.PowerupInvulnerability:
		return parameter.DurationInvulnerability
	case entity.PowerupMagnet:
		return parameter.DurationMagnet
	}
	return 0
}

// DurationForLevel returns the duration granted at a meta-progression level
func DurationForLevel(kind entity.PowerupKind, level int) float64 {
	if level < 1 {
		level = 1
	}
	return BaseDuration(kind) + float64(level-1)*parameter.DurationPerLevel
}

// PowerupSystem activates and counts down timed buffs
type PowerupSystem struct {
	Durations DurationSource
}

// Duration returns the ticks granted for a powerup, defaulting to the base duration
func (s *PowerupSystem) Duration(kind entity.PowerupKind) float64 {
	if s.Durations != nil {
		if d := s.Durations.PowerupDuration(kind); d > 0 {
			return d
		}
	}
	return BaseDuration(kind)
}

// Activate starts or refreshes a powerup on the player
func (s *PowerupSystem) Activate(p *entity.Player, kind entity.PowerupKind, em *event.Emitter) {
	d := s.Duration(kind)
	if d <= 0 {
		return
	}
	p.ActivatePowerup(kind, d)
	em.Emit(event.EventPowerupActivated, event.PowerupPayload{Kind: kind.String(), Duration: int(d)})
	em.Sound(event.CuePowerup, 0.4, 0)
}

// Update counts down active powerups
func (s *PowerupSystem) Update(p *entity.Player, delta float64, em *event.Emitter) {
	p.TickPowerups(delta, em)
}
