// Package config loads the optional TOML game configuration and VOID_SWARM_* overrides
package config

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/void-swarm/arena"
	"github.com/lixenwraith/void-swarm/audio"
	"github.com/lixenwraith/void-swarm/entity"
	"github.com/lixenwraith/void-swarm/game"
	"github.com/lixenwraith/void-swarm/parameter"
	"github.com/lixenwraith/void-swarm/upgrade"
)

// DefaultPath is read when no path is given and the file exists
const DefaultPath = "void-swarm.toml"

// DefaultDatabase is the progression database used when none is configured
const DefaultDatabase = "void-swarm.db"

// Environment variables read by ApplyEnv
const (
	EnvMode     = "VOID_SWARM_MODE"
	EnvSeed     = "VOID_SWARM_SEED"
	EnvMapFile  = "VOID_SWARM_MAP"
	EnvDatabase = "VOID_SWARM_DB"
)

// ErrUnknownKey is returned for keys the schema does not define
var ErrUnknownKey = errors.New("unknown config key")

// Config is the full file layout
type Config struct {
	Game    GameConfig    `toml:"game"`
	Audio   AudioConfig   `toml:"audio"`
	Storage StorageConfig `toml:"storage"`
	Dev     *DevConfig    `toml:"dev"`
}

// GameConfig selects the run
type GameConfig struct {
	Mode    string `toml:"mode"`
	Seed    uint64 `toml:"seed"`
	MapFile string `toml:"map_file"`
}

// AudioConfig mirrors audio.AudioConfig; unset fields keep audio defaults
type AudioConfig struct {
	Enabled      *bool              `toml:"enabled"`
	MasterVolume *int               `toml:"master_volume"` // 0-100
	Volumes      map[string]float64 `toml:"volumes"`
	SampleRate   int                `toml:"sample_rate"`
}

// StorageConfig locates the progression database
type StorageConfig struct {
	Database string `toml:"database"`
}

// DevConfig seeds a run for testing
type DevConfig struct {
	Level    int            `toml:"level"`
	GameTime int            `toml:"game_time"`
	Upgrades map[string]int `toml:"upgrades"`
	Powerups []string       `toml:"powerups"`
}

// Default returns a medium-mode config with the default database
func Default() *Config {
	return &Config{
		Game:    GameConfig{Mode: parameter.ModeMedium.String()},
		Storage: StorageConfig{Database: DefaultDatabase},
	}
}

// Load reads path over the defaults; an empty path reads DefaultPath when present
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		if _, err := os.Stat(DefaultPath); err != nil {
			return cfg, nil
		}
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := cfg.Parse(string(data)); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML over the receiver, rejecting undefined keys
func (c *Config) Parse(src string) error {
	md, err := toml.Decode(src, c)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("%w: %s", ErrUnknownKey, strings.Join(keys, ", "))
	}
	return nil
}

// ApplyEnv overrides game and storage fields from VOID_SWARM_* variables
func (c *Config) ApplyEnv() {
	if v := os.Getenv(EnvMode); v != "" {
		c.Game.Mode = v
	}
	if v := os.Getenv(EnvSeed); v != "" {
		if seed, err := strconv.ParseUint(v, 10, 64); err == nil {
			c.Game.Seed = seed
		}
	}
	if v := os.Getenv(EnvMapFile); v != "" {
		c.Game.MapFile = v
	}
	if v := os.Getenv(EnvDatabase); v != "" {
		c.Storage.Database = v
	}
}

// AudioSettings merges the [audio] section and audio env variables over audio defaults
func (c *Config) AudioSettings() *audio.AudioConfig {
	a := audio.DefaultAudioConfig()
	if c.Audio.Enabled != nil {
		a.Enabled = *c.Audio.Enabled
	}
	if c.Audio.MasterVolume != nil {
		a.SetMasterVolume(float64(*c.Audio.MasterVolume) / 100.0)
	}
	if len(c.Audio.Volumes) > 0 {
		a.SetCueVolumes(c.Audio.Volumes)
	}
	if c.Audio.SampleRate > 0 {
		a.SampleRate = c.Audio.SampleRate
	}
	a.ApplyEnv()
	return a
}

// Mode resolves the configured difficulty
func (c *Config) Mode() (parameter.Mode, error) {
	return parameter.ParseMode(c.Game.Mode)
}

// DevOverride converts the [dev] section, nil when absent
func (c *Config) DevOverride() (*game.DevOverride, error) {
	if c.Dev == nil {
		return nil, nil
	}
	d := &game.DevOverride{Level: c.Dev.Level, GameTime: c.Dev.GameTime}

	if len(c.Dev.Upgrades) > 0 {
		names := make([]string, 0, len(c.Dev.Upgrades))
		for name := range c.Dev.Upgrades {
			names = append(names, name)
		}
		sort.Strings(names)

		d.Upgrades = make(map[upgrade.ID]int, len(names))
		for _, name := range names {
			id := upgrade.ID(name)
			if _, ok := upgrade.Get(id); !ok {
				return nil, fmt.Errorf("dev: %w: %q", upgrade.ErrUnknownUpgrade, name)
			}
			d.Upgrades[id] = c.Dev.Upgrades[name]
		}
	}

	for _, name := range c.Dev.Powerups {
		kind, err := entity.ParsePowerup(name)
		if err != nil {
			return nil, fmt.Errorf("dev: %w", err)
		}
		d.Powerups = append(d.Powerups, kind)
	}
	return d, nil
}

// GameOptions resolves mode, map and dev override into engine options
// Sinks, logger and telemetry are left for the caller
func (c *Config) GameOptions() (game.Options, error) {
	var opts game.Options

	mode, err := c.Mode()
	if err != nil {
		return opts, err
	}
	opts.Mode = mode
	opts.Seed = c.Game.Seed

	if c.Game.MapFile != "" {
		m, err := arena.LoadMapFile(c.Game.MapFile)
		if err != nil {
			return opts, err
		}
		opts.Map = m
	}

	dev, err := c.DevOverride()
	if err != nil {
		return opts, err
	}
	opts.Dev = dev
	return opts, nil
}
