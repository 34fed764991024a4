// Package game runs one survivor-arena session: the fixed-step loop, the per-tick system order,
// event dispatch to audio and progression sinks, the level-up menu and render snapshots.
package game

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/lixenwraith/void-swarm/arena"
	"github.com/lixenwraith/void-swarm/engine"
	"github.com/lixenwraith/void-swarm/entity"
	"github.com/lixenwraith/void-swarm/event"
	"github.com/lixenwraith/void-swarm/parameter"
	"github.com/lixenwraith/void-swarm/system"
	"github.com/lixenwraith/void-swarm/upgrade"
	"github.com/lixenwraith/void-swarm/vmath"
)

// State is the run phase
type State uint8

const (
	StateRunning State = iota
	StatePaused
	StateLevelUp
	StateGameOver
)

// String returns the phase name
func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateLevelUp:
		return "level_up"
	case StateGameOver:
		return "game_over"
	}
	return "unknown"
}

// Engine owns every simulation object of a run
// Not safe for concurrent use; frontends drive it from a single loop
type Engine struct {
	opts Options
	log  *slog.Logger

	rng     *vmath.FastRand
	queue   *event.EventQueue
	effects *event.EventQueue
	emitter *event.Emitter
	world   *entity.World
	clock   *engine.TimeManager

	difficulty *system.DifficultyManager
	score      *system.ScoreManager
	enemies    *system.EnemyManager
	weapons    *system.WeaponManager
	bullets    *system.BulletManager
	pickups    *system.PickupManager
	particles  *system.ParticleManager
	camera     *system.Camera
	hazards    system.HazardSystem
	powerups   system.PowerupSystem
	weaponCtx  system.WeaponContext

	progress *upgrade.Progress
	rerolls  upgrade.Rerolls
	offered  []*upgrade.Descriptor
	pending  int

	input    entity.Input
	state    State
	result   *RunResult
	recorded bool
	persist  sync.WaitGroup

	events []event.GameEvent
	tel    telemetry
}

// New creates an engine and starts a run
func New(opts Options) (*Engine, error) {
	opts.normalize()

	base := opts.Map
	if base == nil {
		base = arena.ForMode(opts.Mode)
	}
	if err := base.Validate(); err != nil {
		return nil, fmt.Errorf("map %s: %w", base.ID, err)
	}
	opts.Map = base

	e := &Engine{
		opts:    opts,
		log:     opts.Logger,
		queue:   event.NewEventQueue(),
		effects: event.NewEventQueue(),
		events:  make([]event.GameEvent, 0, 256),
	}
	e.emitter = &event.Emitter{Queue: e.queue, Effects: e.effects}
	e.tel = newTelemetry(opts.Telemetry)

	e.reset()

	if opts.Dev != nil {
		if err := e.ApplyDevOverride(*opts.Dev); err != nil {
			return nil, err
		}
	}
	return e, nil
}

// Reset discards the current run and starts a fresh one with the same options
func (e *Engine) Reset() {
	e.reset()
	if e.opts.Dev != nil {
		if err := e.ApplyDevOverride(*e.opts.Dev); err != nil {
			e.log.Warn("dev override rejected on reset", "error", err)
		}
	}
}

func (e *Engine) reset() {
	m := e.opts.Map.Clone()
	e.rng = vmath.NewFastRand(e.opts.Seed)
	e.queue.Drain(nil)
	e.effects.Drain(nil)

	e.world = &entity.World{
		Player:  entity.NewPlayer(m.Width/2, m.Height/2, e.opts.Mode),
		Map:     m,
		Enemies: engine.NewArena[entity.Enemy](nil),
		Hash:    engine.NewSpatialHash[engine.Handle](parameter.SpatialCellSize),
		RNG:     e.rng,
		Events:  e.emitter,
	}

	e.difficulty = system.NewDifficultyManager(e.opts.Mode)
	e.score = system.NewScoreManager(e.rng)
	e.enemies = system.NewEnemyManager(e.world, e.difficulty)
	e.enemies.SpawnDisabled = e.opts.DisableSpawning
	e.weapons = system.NewWeaponManager()
	e.bullets = system.NewBulletManager()
	e.pickups = system.NewPickupManager()
	e.particles = system.NewParticleManager(e.rng)
	e.camera = system.NewCamera(e.opts.ViewportWidth, e.opts.ViewportHeight)
	e.camera.Snap(e.world.Player.X, e.world.Player.Y, m.Width, m.Height)
	e.powerups = system.PowerupSystem{}
	if e.opts.Progression != nil {
		e.powerups.Durations = e.opts.Progression
	}
	e.weaponCtx = system.WeaponContext{World: e.world, Camera: e.camera, Bullets: e.bullets}

	e.progress = upgrade.NewProgress()
	e.rerolls = upgrade.NewRerolls()
	e.offered = nil
	e.pending = 0

	e.input = entity.Input{}
	e.state = StateRunning
	e.result = nil
	e.recorded = false
	e.events = e.events[:0]
	e.clock = engine.NewTimeManager(e)

	e.log.Info("run started",
		"mode", e.opts.Mode.String(),
		"map", m.ID,
		"seed", e.opts.Seed,
	)
	e.play(event.CueBackground, 0.3, 0)
}

// IsPaused reports whether simulation time is frozen; the clock's pause source
func (e *Engine) IsPaused() bool {
	return e.state != StateRunning
}

// SetInput records the input polled for subsequent ticks
func (e *Engine) SetInput(in entity.Input) {
	e.input = in
}

// Resize updates the camera viewport
func (e *Engine) Resize(width, height float64) {
	if width > 0 && height > 0 {
		e.camera.Resize(width, height)
	}
}

// Frame advances the fixed-step clock to nowMs and runs every pending tick
// Returns the number of ticks simulated
func (e *Engine) Frame(nowMs float64) int {
	e.clock.Update(nowMs)
	ticks := 0
	for e.clock.ShouldUpdateFixed() && ticks < parameter.MaxTicksPerFrame {
		e.clock.ConsumeFixedStep()
		e.Tick()
		ticks++
	}
	e.tel.publishFrame(ticks)
	return ticks
}

// Tick runs one fixed simulation step in the documented order, then dispatches its events
// A no-op unless the run is in the running state
func (e *Engine) Tick() {
	if e.state != StateRunning {
		return
	}
	const delta = 1.0

	w := e.world
	p := w.Player
	frame := e.clock.Frames()
	w.Frame = frame
	e.emitter.Tick = frame
	gameTime := float64(e.clock.GameTime())

	e.difficulty.Update(gameTime)
	e.enemies.Update(delta, gameTime, p.Level)

	p.Update(e.input, frame, delta, w.Map)
	e.weapons.Update(&e.weaponCtx, delta)

	e.camera.Follow(p.X, p.Y, w.Map.Width, w.Map.Height)
	e.hazards.Update(w, delta)
	e.powerups.Update(p, delta, e.emitter)

	e.bullets.Update(w, delta)
	e.pickups.Update(w, &e.powerups, delta)
	e.particles.Update(delta)

	e.clock.IncrementFrame()
	e.dispatch()
	e.tel.publishTick(e)
}

// State returns the run phase
func (e *Engine) State() State {
	return e.state
}

// Player exposes the live player for frontends and tests
func (e *Engine) Player() *entity.Player {
	return e.world.Player
}

// Map returns the run-local map
func (e *Engine) Map() *arena.Map {
	return e.world.Map
}

// Kills returns session kills
func (e *Engine) Kills() int {
	return e.score.Kills
}

// GameTime returns elapsed simulated seconds
func (e *Engine) GameTime() int {
	return e.clock.GameTime()
}

// Frames returns simulated ticks
func (e *Engine) Frames() uint64 {
	return e.clock.Frames()
}

// Difficulty returns the current escalation scalar
func (e *Engine) Difficulty() float64 {
	return e.difficulty.Difficulty
}

// Wait blocks until finished runs have been handed to the progression tracker
func (e *Engine) Wait() {
	e.persist.Wait()
}

// Result returns the run summary once the run is over, nil before
func (e *Engine) Result() *RunResult {
	return e.result
}

// Events returns the events dispatched by the last tick; the slice is reused
func (e *Engine) Events() []event.GameEvent {
	return e.events
}

// EnemyCount returns the live enemy population
func (e *Engine) EnemyCount() int {
	return e.enemies.Count()
}

// SpawnEnemy places an enemy directly, bypassing the scheduler
func (e *Engine) SpawnEnemy(kind entity.EnemyKind, x, y float64) engine.Handle {
	return e.enemies.SpawnAt(kind, x, y, e.world.Player.Level)
}
