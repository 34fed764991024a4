package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/lixenwraith/void-swarm/audio"
	"github.com/lixenwraith/void-swarm/config"
	"github.com/lixenwraith/void-swarm/entity"
	"github.com/lixenwraith/void-swarm/game"
	"github.com/lixenwraith/void-swarm/parameter"
	"github.com/lixenwraith/void-swarm/progression"
)

const (
	windowWidth  = 1280
	windowHeight = 720
)

var (
	modeFlag   = flag.String("mode", "", "Difficulty: easy, medium, hard (overrides config)")
	configFlag = flag.String("config", "", "Config file path")
	dbFlag     = flag.String("db", "", "Progression database path (overrides config)")
	muteFlag   = flag.Bool("mute", false, "Start with audio muted")
)

// App adapts the engine to ebiten's Update/Draw/Layout loop
type App struct {
	engine *game.Engine
	audio  *audio.AudioEngine
	log    *slog.Logger

	snap   game.Snapshot
	start  time.Time
	width  int
	height int
}

func (a *App) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		a.engine.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		a.audio.ToggleMute()
	}

	switch a.engine.State() {
	case game.StateLevelUp:
		for i, k := range []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3} {
			if inpututil.IsKeyJustPressed(k) {
				if _, err := a.engine.SelectIndex(i); err != nil {
					a.log.Debug("upgrade pick rejected", "slot", i, "error", err)
				}
			}
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyR) {
			if err := a.engine.Reroll(); err != nil {
				a.log.Debug("reroll rejected", "error", err)
			}
		}
	case game.StateGameOver:
		if inpututil.IsKeyJustPressed(ebiten.KeyN) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			a.engine.Reset()
			a.engine.Resize(float64(a.width), float64(a.height))
		}
	}

	a.engine.SetInput(pollInput())
	a.engine.Frame(float64(time.Since(a.start).Milliseconds()))
	a.snap = a.engine.Snapshot(&a.snap)
	return nil
}

func (a *App) Draw(screen *ebiten.Image) {
	drawFrame(screen, &a.snap, a.audio.IsMuted())
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != a.width || outsideHeight != a.height {
		a.width, a.height = outsideWidth, outsideHeight
		a.engine.Resize(float64(outsideWidth), float64(outsideHeight))
	}
	return outsideWidth, outsideHeight
}

// pollInput reads held movement keys into a normalized input
func pollInput() entity.Input {
	var in entity.Input
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		in.MoveY--
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		in.MoveY++
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		in.MoveX--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		in.MoveX++
	}
	return in
}

func main() {
	flag.Parse()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	cfg.ApplyEnv()
	if *modeFlag != "" {
		cfg.Game.Mode = *modeFlag
	}
	if *dbFlag != "" {
		cfg.Storage.Database = *dbFlag
	}

	store, err := progression.Open(context.Background(), cfg.Storage.Database, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open progression database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	opts, err := cfg.GameOptions()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid game settings: %v\n", err)
		os.Exit(1)
	}

	audioEngine := audio.NewAudioEngine(cfg.AudioSettings(), logger)
	if err := audioEngine.Start(); err != nil {
		logger.Warn("audio unavailable, continuing silent", "error", err)
	}
	defer audioEngine.Stop()
	if *muteFlag {
		audioEngine.ToggleMute()
	}

	opts.Logger = logger
	opts.Audio = audioEngine
	opts.Progression = store
	opts.ViewportWidth, opts.ViewportHeight = windowWidth, windowHeight
	if opts.Seed == 0 {
		opts.Seed = uint64(time.Now().UnixNano())
	}

	eng, err := game.New(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start run: %v\n", err)
		os.Exit(1)
	}

	app := &App{engine: eng, audio: audioEngine, log: logger, start: time.Now()}
	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowTitle("Void Swarm")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(parameter.TicksPerSecond)

	if err := ebiten.RunGame(app); err != nil {
		logger.Error("game loop stopped", "error", err)
		os.Exit(1)
	}
	eng.Wait()
}
