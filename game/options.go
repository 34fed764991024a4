package game

import (
	"errors"
	"log/slog"

	"github.com/lixenwraith/void-swarm/arena"
	"github.com/lixenwraith/void-swarm/entity"
	"github.com/lixenwraith/void-swarm/event"
	"github.com/lixenwraith/void-swarm/parameter"
	"github.com/lixenwraith/void-swarm/status"
	"github.com/lixenwraith/void-swarm/upgrade"
)

// Sentinel errors
var (
	ErrNoUpgradePending = errors.New("no upgrade selection pending")
	ErrNotOffered       = errors.New("upgrade not among offered options")
	ErrRunOver          = errors.New("run is over")
	ErrInvalidOverride  = errors.New("invalid dev override")
)

// AudioSink plays fire-and-forget cues; implementations must not block
type AudioSink interface {
	Play(cue event.Cue, volume, pitchVariance float64)
}

// ProgressionTracker is the lifetime meta-progression the engine reads and reports to
type ProgressionTracker interface {
	// DropRateMultiplier is consulted once per kill when rolling powerup drops
	DropRateMultiplier() float64
	// PowerupDuration returns ticks granted per powerup, 0 for the base duration
	PowerupDuration(kind entity.PowerupKind) float64
	// RecordRun reports a finished run; called once per run from a background goroutine
	RecordRun(run RunResult) error
}

// RunResult summarizes a finished run
type RunResult struct {
	Mode    parameter.Mode
	MapID   string
	Kills   int
	Level   int
	Seconds int
}

// DevOverride configures the initial state of a run for testing
// Applied through the same paths as normal play: level-ups, upgrade resolution and powerup activation
type DevOverride struct {
	Level    int
	GameTime int
	Upgrades map[upgrade.ID]int
	Powerups []entity.PowerupKind
}

// Options configures an Engine
type Options struct {
	Mode parameter.Mode
	Seed uint64

	// Map overrides the mode's built-in map; the engine works on a clone
	Map *arena.Map

	ViewportWidth  float64
	ViewportHeight float64

	// DisableSpawning stops the enemy scheduler, for tests and sandboxes
	DisableSpawning bool

	Dev *DevOverride

	Logger      *slog.Logger
	Audio       AudioSink
	Progression ProgressionTracker
	Telemetry   *status.Registry
}

func (o *Options) normalize() {
	if o.Seed == 0 {
		o.Seed = 1
	}
	if o.ViewportWidth <= 0 {
		o.ViewportWidth = parameter.DefaultViewportWidth
	}
	if o.ViewportHeight <= 0 {
		o.ViewportHeight = parameter.DefaultViewportHeight
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
}
