package game

import (
	"github.com/lixenwraith/void-swarm/core"
	"github.com/lixenwraith/void-swarm/entity"
	"github.com/lixenwraith/void-swarm/event"
	"github.com/lixenwraith/void-swarm/parameter"
)

// Kill feedback
const (
	deathParticles     = 8
	wallDebrisParts    = 20
	colorWallDebris    = 0x888899
	explosionVolume    = 0.2
	explosionPitchVary = 0.2
)

// dispatch drains the tick's events and routes them to the score, menu, particle and audio consumers
// Gameplay events are handled before cosmetic ones; follow-up events are drained in the same pass
func (e *Engine) dispatch() {
	e.events = e.events[:0]
	for i := 0; ; i++ {
		if i == len(e.events) {
			before := len(e.events)
			e.events = e.queue.Drain(e.events)
			if len(e.events) == before {
				e.events = e.effects.Drain(e.events)
			}
			if len(e.events) == before {
				break
			}
		}
		e.handle(&e.events[i])
	}
	if n := e.queue.Dropped() + e.effects.Dropped(); n > 0 {
		e.tel.droppedEvents(n)
	}
}

func (e *Engine) handle(ev *event.GameEvent) {
	switch ev.Type {
	case event.EventEnemyDied:
		e.onEnemyDied(ev.Payload.(event.EnemyDiedPayload))

	case event.EventLevelUp:
		pl := ev.Payload.(event.LevelUpPayload)
		e.log.Debug("level up", "level", pl.Level)
		e.pending++
		if e.state == StateRunning {
			e.openMenu()
		}

	case event.EventGameOver:
		pl := ev.Payload.(event.GameOverPayload)
		pl.Kills = e.score.Kills
		pl.Seconds = e.clock.GameTime()
		ev.Payload = pl
		e.endRun(pl)

	case event.EventParticlesRequested:
		pl := ev.Payload.(event.ParticlesPayload)
		e.particles.Spawn(pl.X, pl.Y, pl.Count, pl.Color)

	case event.EventSoundRequest:
		pl := ev.Payload.(event.SoundPayload)
		e.play(pl.Cue, pl.Volume, pl.PitchVariance)

	case event.EventWallDestroyed:
		pl := ev.Payload.(event.WallDestroyedPayload)
		e.particles.Spawn(pl.X, pl.Y, wallDebrisParts, colorWallDebris)
		e.play(event.CueExplosion, 0.4, explosionPitchVary)
		e.log.Debug("wall destroyed", "index", pl.Index)

	case event.EventPowerupActivated, event.EventPowerupExpired:
		pl := ev.Payload.(event.PowerupPayload)
		e.log.Debug(ev.Type.String(), "kind", pl.Kind, "duration", pl.Duration)

	case event.EventTeleported:
		pl := ev.Payload.(event.TeleportPayload)
		e.particles.Spawn(pl.ToX, pl.ToY, 10, parameter.ColorPlayer)
	}
}

// onEnemyDied credits the kill, drops the xp gem and rolls a powerup drop
func (e *Engine) onEnemyDied(pl event.EnemyDiedPayload) {
	kills := e.score.AddKill()
	e.rerolls.AddPoints(parameter.RerollPointsPerKill)

	mult := e.score.GemMultiplier(e.world.Player.Level)
	e.pickups.SpawnXP(pl.X, pl.Y, pl.XP*mult, mult)

	dropMult := 1.0
	if e.opts.Progression != nil {
		dropMult = e.opts.Progression.DropRateMultiplier()
	}
	if e.score.ShouldDropPowerup(kills, dropMult) {
		kind := e.score.PowerupType()
		e.pickups.SpawnPowerup(pl.X, pl.Y, kind)
		e.log.Debug("powerup dropped", "kind", kind.String(), "kills", kills)
	}

	color := entity.EnemyKind(pl.Kind).Stats().Color
	e.particles.Spawn(pl.X, pl.Y, deathParticles, color)
	e.play(event.CueExplosion, explosionVolume, explosionPitchVary)
}

// endRun freezes the run and reports it to progression exactly once, in the background
func (e *Engine) endRun(pl event.GameOverPayload) {
	if e.state == StateGameOver {
		return
	}
	e.state = StateGameOver
	e.offered = nil
	e.pending = 0
	e.result = &RunResult{
		Mode:    e.opts.Mode,
		MapID:   e.world.Map.ID,
		Kills:   pl.Kills,
		Level:   pl.Level,
		Seconds: pl.Seconds,
	}
	e.play(event.CueGameOver, 0.3, 0)
	e.log.Info("game over", "kills", pl.Kills, "level", pl.Level, "seconds", pl.Seconds)

	if e.opts.Progression != nil && !e.recorded {
		e.recorded = true
		e.recordRun(e.opts.Progression, *e.result)
	}
}

// recordRun persists off the tick; Wait joins it
func (e *Engine) recordRun(tracker ProgressionTracker, run RunResult) {
	e.persist.Add(1)
	core.Go(func() {
		defer e.persist.Done()
		if err := tracker.RecordRun(run); err != nil {
			e.log.Error("record run failed", "error", err)
		}
	})
}

// play forwards a cue to the audio sink
func (e *Engine) play(cue event.Cue, volume, pitchVariance float64) {
	if e.opts.Audio != nil {
		e.opts.Audio.Play(cue, volume, pitchVariance)
	}
}
