// Package progression persists lifetime meta-progression in SQLite
// Reads used by the simulation are served from an in-memory copy refreshed on every write
package progression

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/lixenwraith/void-swarm/entity"
	"github.com/lixenwraith/void-swarm/game"
	"github.com/lixenwraith/void-swarm/parameter"
	"github.com/lixenwraith/void-swarm/system"
)

// Run is one recorded run
type Run struct {
	ID      string
	Mode    string
	MapID   string
	Kills   int
	Level   int
	Seconds int
	EndedAt time.Time
}

// State is a point-in-time copy of the meta-progression
type State struct {
	LifetimeKills int
	SpentPoints   int
	Levels        map[Upgrade]int
}

// AvailablePoints returns floor(lifetimeKills/100) minus spent points
func (s State) AvailablePoints() int {
	p := s.LifetimeKills/parameter.KillsPerPoint - s.SpentPoints
	if p < 0 {
		return 0
	}
	return p
}

// Level returns a track level, 1 when unset
func (s State) Level(u Upgrade) int {
	if l, ok := s.Levels[u]; ok && l >= 1 {
		return l
	}
	return 1
}

// Store is the SQLite-backed tracker consumed by the engine
type Store struct {
	conn   *sql.DB
	logger *slog.Logger

	mu    sync.RWMutex
	state State
}

// Open opens (or creates) the progression database at path
func Open(ctx context.Context, path string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	// One writer; the cache serves readers
	conn.SetMaxOpenConns(1)

	for _, pragma := range []string{"PRAGMA journal_mode=WAL", "PRAGMA busy_timeout=5000"} {
		if _, err := conn.ExecContext(ctx, pragma); err != nil {
			conn.Close()
			return nil, fmt.Errorf("%s: %w", pragma, err)
		}
	}

	s := &Store{conn: conn, logger: logger}
	if err := s.migrate(ctx); err != nil {
		conn.Close()
		return nil, err
	}
	if err := s.reload(ctx); err != nil {
		conn.Close()
		return nil, err
	}
	logger.Info("progression loaded", "path", path, "kills", s.state.LifetimeKills, "points", s.state.AvailablePoints())
	return s, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.conn.Close()
}

func (s *Store) migrate(ctx context.Context) error {
	schema := `
	CREATE TABLE IF NOT EXISTS meta (
		key TEXT PRIMARY KEY,
		value INTEGER NOT NULL DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS powerup_levels (
		name TEXT PRIMARY KEY,
		level INTEGER NOT NULL DEFAULT 1
	);

	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		mode TEXT NOT NULL,
		map_id TEXT NOT NULL DEFAULT '',
		kills INTEGER NOT NULL DEFAULT 0,
		level INTEGER NOT NULL DEFAULT 1,
		seconds INTEGER NOT NULL DEFAULT 0,
		ended_at DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_runs_ended ON runs(ended_at);
	`
	if _, err := s.conn.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

// reload refreshes the in-memory copy from the database
func (s *Store) reload(ctx context.Context) error {
	st := State{Levels: make(map[Upgrade]int, len(Upgrades))}

	rows, err := s.conn.QueryContext(ctx, `SELECT key, value FROM meta`)
	if err != nil {
		return fmt.Errorf("load meta: %w", err)
	}
	for rows.Next() {
		var key string
		var value int
		if err := rows.Scan(&key, &value); err != nil {
			rows.Close()
			return fmt.Errorf("scan meta: %w", err)
		}
		switch key {
		case "lifetime_kills":
			st.LifetimeKills = value
		case "spent_points":
			st.SpentPoints = value
		}
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("load meta: %w", err)
	}

	rows, err = s.conn.QueryContext(ctx, `SELECT name, level FROM powerup_levels`)
	if err != nil {
		return fmt.Errorf("load levels: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var name string
		var level int
		if err := rows.Scan(&name, &level); err != nil {
			return fmt.Errorf("scan levels: %w", err)
		}
		if u, err := ParseUpgrade(name); err == nil {
			st.Levels[u] = min(max(level, 1), parameter.MaxPowerupLevel)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("load levels: %w", err)
	}

	s.mu.Lock()
	s.state = st
	s.mu.Unlock()
	return nil
}

// State returns a copy of the current meta-progression
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	levels := make(map[Upgrade]int, len(s.state.Levels))
	for k, v := range s.state.Levels {
		levels[k] = v
	}
	st := s.state
	st.Levels = levels
	return st
}

// DropRateMultiplier returns 1 + (level-1) * 0.1 for the drop_rate track
func (s *Store) DropRateMultiplier() float64 {
	s.mu.RLock()
	level := s.state.Level(UpgradeDropRate)
	s.mu.RUnlock()
	return 1 + float64(level-1)*parameter.DropRatePerLevel
}

// PowerupDuration returns the ticks granted for a powerup at its meta level
func (s *Store) PowerupDuration(kind entity.PowerupKind) float64 {
	u, ok := ForPowerup(kind)
	if !ok {
		return 0
	}
	s.mu.RLock()
	level := s.state.Level(u)
	s.mu.RUnlock()
	return system.DurationForLevel(kind, level)
}

// UpgradeCost returns the point cost of the next level, the current level
func (s *Store) UpgradeCost(u Upgrade) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Level(u)
}

// BuyUpgrade spends points to raise a track by one level
func (s *Store) BuyUpgrade(ctx context.Context, u Upgrade) (int, error) {
	if _, err := ParseUpgrade(string(u)); err != nil {
		return 0, err
	}

	st := s.State()
	level := st.Level(u)
	if level >= parameter.MaxPowerupLevel {
		return level, fmt.Errorf("%w: %s", ErrPowerupMaxed, u)
	}
	cost := level
	if st.AvailablePoints() < cost {
		return level, fmt.Errorf("%w: %s needs %d, have %d", ErrInsufficientPoints, u, cost, st.AvailablePoints())
	}

	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		return level, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO meta(key, value) VALUES('spent_points', ?)
		 ON CONFLICT(key) DO UPDATE SET value = value + excluded.value`, cost); err != nil {
		return level, fmt.Errorf("spend points: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO powerup_levels(name, level) VALUES(?, ?)
		 ON CONFLICT(name) DO UPDATE SET level = excluded.level`, string(u), level+1); err != nil {
		return level, fmt.Errorf("raise level: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return level, fmt.Errorf("commit: %w", err)
	}
	if err := s.reload(ctx); err != nil {
		return level + 1, err
	}
	s.logger.Info("meta upgrade bought", "upgrade", string(u), "level", level+1, "cost", cost)
	return level + 1, nil
}

// RecordRun stores a finished run and adds its kills to the lifetime total
func (s *Store) RecordRun(run game.RunResult) error {
	_, err := s.RecordRunContext(context.Background(), run)
	return err
}

// RecordRunContext is RecordRun returning the generated run id
func (s *Store) RecordRunContext(ctx context.Context, run game.RunResult) (string, error) {
	id := uuid.NewString()

	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO runs(id, mode, map_id, kills, level, seconds, ended_at) VALUES(?, ?, ?, ?, ?, ?, ?)`,
		id, run.Mode.String(), run.MapID, run.Kills, run.Level, run.Seconds, time.Now().UTC()); err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO meta(key, value) VALUES('lifetime_kills', ?)
		 ON CONFLICT(key) DO UPDATE SET value = value + excluded.value`, run.Kills); err != nil {
		return "", fmt.Errorf("add kills: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit: %w", err)
	}
	if err := s.reload(ctx); err != nil {
		return id, err
	}
	s.logger.Info("run recorded", "id", id, "mode", run.Mode.String(), "kills", run.Kills, "level", run.Level, "seconds", run.Seconds)
	return id, nil
}

// RecentRuns returns up to limit runs, newest first
func (s *Store) RecentRuns(ctx context.Context, limit int) ([]Run, error) {
	rows, err := s.conn.QueryContext(ctx,
		`SELECT id, mode, map_id, kills, level, seconds, ended_at FROM runs ORDER BY rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.ID, &r.Mode, &r.MapID, &r.Kills, &r.Level, &r.Seconds, &r.EndedAt); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

var _ game.ProgressionTracker = (*Store)(nil)
