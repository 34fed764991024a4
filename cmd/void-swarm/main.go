package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"maps"
	"os"
	"os/signal"
	"path/filepath"
	"slices"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/void-swarm/audio"
	"github.com/lixenwraith/void-swarm/config"
	"github.com/lixenwraith/void-swarm/core"
	"github.com/lixenwraith/void-swarm/game"
	"github.com/lixenwraith/void-swarm/parameter"
	"github.com/lixenwraith/void-swarm/progression"
	"github.com/lixenwraith/void-swarm/snapshot"
	"github.com/lixenwraith/void-swarm/status"
	"github.com/lixenwraith/void-swarm/terminal"
)

const (
	logDir      = "logs"
	logFileName = "void-swarm.log"
	maxLogSize  = 10 * 1024 * 1024
)

var (
	modeFlag     = flag.String("mode", "", "Difficulty: easy, medium, hard (overrides config)")
	seedFlag     = flag.Uint64("seed", 0, "Run seed (overrides config)")
	configFlag   = flag.String("config", "", "Config file path (default "+config.DefaultPath+" when present)")
	dbFlag       = flag.String("db", "", "Progression database path (overrides config)")
	debugFlag    = flag.Bool("debug", false, "Write debug logs to "+filepath.Join(logDir, logFileName))
	muteFlag     = flag.Bool("mute", false, "Start with audio muted")
	headlessFlag = flag.Int("headless", 0, "Simulate N ticks without a terminal and print a summary")
	dumpFlag     = flag.String("dump", "", "Write the final headless frame to this file")
	buyFlag      = flag.String("buy", "", "Spend lifetime points on a permanent upgrade and exit")
	statsFlag    = flag.Bool("stats", false, "Print lifetime progression and recent runs and exit")
)

// setupLogging routes slog and log output to a rotated file in debug mode, discarding otherwise
func setupLogging(debug bool) *os.File {
	if !debug {
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir, fmt.Sprintf("void-swarm-%s.log", time.Now().Format("20060102-150405")))
		_ = os.Rename(logPath, rotated)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return f
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}
	logger := slog.Default()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	cfg.ApplyEnv()
	if *modeFlag != "" {
		cfg.Game.Mode = *modeFlag
	}
	if *seedFlag != 0 {
		cfg.Game.Seed = *seedFlag
	}
	if *dbFlag != "" {
		cfg.Storage.Database = *dbFlag
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := progression.Open(ctx, cfg.Storage.Database, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open progression database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case *statsFlag:
		if err := printStats(ctx, store); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to read progression: %v\n", err)
			os.Exit(1)
		}
		return
	case *buyFlag != "":
		if err := buy(ctx, store, *buyFlag); err != nil {
			fmt.Fprintf(os.Stderr, "Purchase failed: %v\n", err)
			os.Exit(1)
		}
		return
	}

	opts, err := cfg.GameOptions()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid game settings: %v\n", err)
		os.Exit(1)
	}
	opts.Logger = logger
	opts.Progression = store
	opts.Telemetry = status.NewRegistry()

	if *headlessFlag > 0 {
		opts.Seed = max(opts.Seed, 1)
		if err := runHeadless(opts, *headlessFlag, *dumpFlag); err != nil {
			fmt.Fprintf(os.Stderr, "Headless run failed: %v\n", err)
			os.Exit(1)
		}
		return
	}

	audioEngine := audio.NewAudioEngine(cfg.AudioSettings(), logger)
	if err := audioEngine.Start(); err != nil {
		logger.Warn("audio unavailable, continuing silent", "error", err)
	}
	defer audioEngine.Stop()
	if *muteFlag {
		audioEngine.ToggleMute()
	}
	opts.Audio = audioEngine

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create terminal: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	core.RegisterTerminal(screen)
	defer screen.Fini()
	screen.HideCursor()

	cols, rows := screen.Size()
	opts.ViewportWidth = float64(cols) * parameter.CellWorldWidth
	opts.ViewportHeight = float64(max(rows-parameter.TopMargin, 1)) * parameter.CellWorldHeight
	if opts.Seed == 0 {
		opts.Seed = uint64(time.Now().UnixNano())
	}

	eng, err := game.New(opts)
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Failed to start run: %v\n", err)
		os.Exit(1)
	}

	app := terminal.NewApp(screen, eng, audioEngine, logger)
	if err := app.Run(ctx); err != nil && ctx.Err() == nil {
		logger.Error("frontend stopped", "error", err)
	}
	eng.Wait()
}

// runHeadless simulates ticks with no input, taking the first option at each level-up
func runHeadless(opts game.Options, ticks int, dump string) error {
	eng, err := game.New(opts)
	if err != nil {
		return err
	}
	defer eng.Wait()

loop:
	for i := 0; i < ticks; i++ {
		switch eng.State() {
		case game.StateGameOver:
			break loop
		case game.StateLevelUp:
			if _, err := eng.SelectIndex(0); err != nil {
				return fmt.Errorf("auto-select at tick %d: %w", eng.Frames(), err)
			}
		}
		eng.Tick()
	}

	frame := eng.Snapshot(nil)
	sum := snapshot.Summarize(&frame)
	fmt.Printf("mode=%s map=%q state=%s ticks=%d time=%ds kills=%d level=%d hp=%.0f difficulty=%.2f enemies=%d\n",
		sum.Mode, sum.Map, sum.State, sum.Ticks, sum.Seconds, sum.Kills, sum.Level, sum.HP, sum.Difficulty, sum.Enemies)

	if dump != "" {
		if err := snapshot.WriteFile(dump, snapshot.NewArchive(frame)); err != nil {
			return err
		}
		fmt.Printf("frame written to %s\n", dump)
	}

	if opts.Telemetry != nil {
		metrics := opts.Telemetry.Dump()
		for _, k := range slices.Sorted(maps.Keys(metrics)) {
			slog.Debug("telemetry", "key", k, "value", metrics[k])
		}
	}
	return nil
}

func printStats(ctx context.Context, store *progression.Store) error {
	st := store.State()
	fmt.Printf("lifetime kills: %d  points: %d available, %d spent\n", st.LifetimeKills, st.AvailablePoints(), st.SpentPoints)
	for _, u := range progression.Upgrades {
		fmt.Printf("  %-16s level %2d  next cost %d\n", u, st.Level(u), store.UpgradeCost(u))
	}

	runs, err := store.RecentRuns(ctx, 10)
	if err != nil {
		return err
	}
	if len(runs) > 0 {
		fmt.Println("recent runs:")
	}
	for _, r := range runs {
		fmt.Printf("  %s  %-6s %-12s kills %4d  level %2d  %02d:%02d\n",
			r.EndedAt.Format(time.DateTime), r.Mode, r.MapID, r.Kills, r.Level, r.Seconds/60, r.Seconds%60)
	}
	return nil
}

func buy(ctx context.Context, store *progression.Store, name string) error {
	u, err := progression.ParseUpgrade(name)
	if err != nil {
		return err
	}
	level, err := store.BuyUpgrade(ctx, u)
	if err != nil {
		return err
	}
	fmt.Printf("%s is now level %d (%d points left)\n", u, level, store.State().AvailablePoints())
	return nil
}
