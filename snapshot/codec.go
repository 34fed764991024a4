// Package snapshot encodes render snapshots and run summaries with msgpack
package snapshot

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/lixenwraith/void-swarm/game"
)

// FormatVersion is bumped on incompatible archive changes
const FormatVersion = 1

// Sentinel errors
var (
	ErrEmptyPath   = errors.New("snapshot path is empty")
	ErrBadVersion  = errors.New("unsupported snapshot version")
	ErrEmptyBuffer = errors.New("empty snapshot buffer")
)

// Summary is the compact run report printed by headless runs
type Summary struct {
	Mode       string  `msgpack:"mode"`
	Map        string  `msgpack:"map"`
	State      string  `msgpack:"state"`
	Ticks      uint64  `msgpack:"ticks"`
	Seconds    int     `msgpack:"sec"`
	Kills      int     `msgpack:"kills"`
	Level      int     `msgpack:"lvl"`
	HP         float64 `msgpack:"hp"`
	Difficulty float64 `msgpack:"diff"`
	Enemies    int     `msgpack:"enemies"`
}

// Archive is the on-disk dump: a summary plus the final frame
type Archive struct {
	Version int           `msgpack:"v"`
	Summary Summary       `msgpack:"summary"`
	Frame   game.Snapshot `msgpack:"frame"`
}

// Summarize derives the run report from a frame
func Summarize(s *game.Snapshot) Summary {
	return Summary{
		Mode:       s.Mode,
		Map:        s.MapName,
		State:      s.State,
		Ticks:      s.Tick,
		Seconds:    s.GameTime,
		Kills:      s.Kills,
		Level:      s.Player.Level,
		HP:         s.Player.HP,
		Difficulty: s.Difficulty,
		Enemies:    len(s.Enemies),
	}
}

// NewArchive wraps a frame with its summary
func NewArchive(s game.Snapshot) Archive {
	return Archive{Version: FormatVersion, Summary: Summarize(&s), Frame: s}
}

// Encode serializes a frame
func Encode(s *game.Snapshot) ([]byte, error) {
	b, err := msgpack.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return b, nil
}

// Decode parses a frame produced by Encode
func Decode(b []byte) (game.Snapshot, error) {
	var s game.Snapshot
	if len(b) == 0 {
		return s, ErrEmptyBuffer
	}
	if err := msgpack.Unmarshal(b, &s); err != nil {
		return s, fmt.Errorf("decode snapshot: %w", err)
	}
	return s, nil
}

// WriteFile stores an archive atomically (temp file then rename)
func WriteFile(path string, a Archive) error {
	if path == "" {
		return ErrEmptyPath
	}
	if a.Version == 0 {
		a.Version = FormatVersion
	}

	blob, err := msgpack.Marshal(&a)
	if err != nil {
		return fmt.Errorf("marshal archive: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("ensure archive dir: %w", err)
		}
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, blob, 0o644); err != nil {
		return fmt.Errorf("write archive temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename archive temp file: %w", err)
	}
	return nil
}

// ReadFile loads an archive written by WriteFile
func ReadFile(path string) (Archive, error) {
	var a Archive
	if path == "" {
		return a, ErrEmptyPath
	}
	blob, err := os.ReadFile(path)
	if err != nil {
		return a, fmt.Errorf("read archive: %w", err)
	}
	if err := msgpack.Unmarshal(blob, &a); err != nil {
		return a, fmt.Errorf("unmarshal archive: %w", err)
	}
	if a.Version != FormatVersion {
		return a, fmt.Errorf("%w: %d", ErrBadVersion, a.Version)
	}
	return a, nil
}
