package terminal

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/void-swarm/core"
	"github.com/lixenwraith/void-swarm/engine"
	"github.com/lixenwraith/void-swarm/game"
	"github.com/lixenwraith/void-swarm/parameter"
)

// Muter is the audio control surface the frontend toggles
type Muter interface {
	ToggleMute() bool
	IsMuted() bool
}

// App drives an engine from a tcell screen
type App struct {
	screen   tcell.Screen
	engine   *game.Engine
	controls *Controls
	renderer *Renderer
	audio    Muter
	log      *slog.Logger

	clock *engine.PausableClock
	snap  game.Snapshot
}

// NewApp binds an engine to an initialized screen; audio may be nil
func NewApp(screen tcell.Screen, eng *game.Engine, audio Muter, logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.Default()
	}
	a := &App{
		screen:   screen,
		engine:   eng,
		controls: NewControls(),
		renderer: NewRenderer(screen),
		audio:    audio,
		log:      logger,
		clock:    engine.NewPausableClock(),
	}
	if audio != nil {
		a.renderer.SetMuted(audio.IsMuted())
	}
	a.resize()
	return a
}

// Run polls input and renders until quit or ctx is done
func (a *App) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	defer close(quit)

	core.Go(func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	})

	ticker := time.NewTicker(parameter.FrameUpdateInterval)
	defer ticker.Stop()
	defer func() {
		a.log.Info("session ended",
			"played", a.clock.Elapsed().Round(time.Second),
			"paused", a.clock.TotalPauseDuration().Round(time.Second),
		)
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev := <-events:
			if a.handleEvent(ev) {
				return nil
			}

		case now := <-ticker.C:
			a.frame(now)
		}
	}
}

// frame advances the simulation to now and draws it
func (a *App) frame(now time.Time) {
	a.engine.SetInput(a.controls.Input(now))
	a.engine.Frame(a.clock.RealMs())
	a.syncClock()
	a.snap = a.engine.Snapshot(&a.snap)
	a.renderer.Draw(&a.snap)
	a.screen.Show()
}

// handleEvent returns true when the app should exit
func (a *App) handleEvent(ev tcell.Event) bool {
	switch e := ev.(type) {
	case *tcell.EventResize:
		a.screen.Sync()
		a.resize()
	case *tcell.EventKey:
		return a.apply(a.controls.HandleKey(e.Key(), e.Rune(), e.When()))
	}
	return false
}

// apply executes a decoded action; returns true on quit
func (a *App) apply(act Action) bool {
	switch act {
	case ActionQuit:
		return true

	case ActionPause:
		a.controls.Release()
		a.engine.TogglePause()

	case ActionPick1, ActionPick2, ActionPick3:
		if a.engine.State() != game.StateLevelUp {
			return false
		}
		if res, err := a.engine.SelectIndex(act.PickIndex()); err != nil {
			a.log.Debug("upgrade pick rejected", "slot", act.PickIndex(), "error", err)
		} else {
			a.log.Debug("upgrade picked", "id", res.ID, "evolved", res.Evolved)
		}

	case ActionReroll:
		if err := a.engine.Reroll(); err != nil && !errors.Is(err, game.ErrNoUpgradePending) {
			a.log.Debug("reroll rejected", "error", err)
		}

	case ActionMute:
		if a.audio != nil {
			a.renderer.SetMuted(a.audio.ToggleMute())
		}

	case ActionRestart:
		if a.engine.State() == game.StateGameOver {
			a.controls.Release()
			a.engine.Reset()
			a.resize()
		}
	}
	return false
}

// syncClock pauses the session clock whenever the engine is not running
func (a *App) syncClock() {
	if a.engine.IsPaused() {
		a.clock.Pause()
	} else {
		a.clock.Resume()
	}
}

// resize maps the terminal grid to the world viewport
func (a *App) resize() {
	a.renderer.Resize()
	a.engine.Resize(a.renderer.Viewport())
}
