package arena

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/lixenwraith/void-swarm/parameter"
)

// TestBuiltinMapsValid verifies every built-in map passes validation
func TestBuiltinMapsValid(t *testing.T) {
	for _, m := range []*Map{Sandbox(), Production(), TheVoid()} {
		if err := m.Validate(); err != nil {
			t.Errorf("Expected %s valid, got %v", m.Name, err)
		}
	}
}

// TestForMode verifies mode to map selection
func TestForMode(t *testing.T) {
	cases := []struct {
		mode parameter.Mode
		name string
		size float64
	}{
		{parameter.ModeEasy, "SANDBOX", 2500},
		{parameter.ModeMedium, "PRODUCTION", 4000},
		{parameter.ModeHard, "THE_VOID", 3000},
	}
	for _, tc := range cases {
		m := ForMode(tc.mode)
		if m.Name != tc.name || m.Width != tc.size {
			t.Errorf("Mode %v: expected %s %v, got %s %v", tc.mode, tc.name, tc.size, m.Name, m.Width)
		}
	}
}

// TestResolveWallsPushesOut verifies a circle overlapping a wall edge is pushed clear
func TestResolveWallsPushesOut(t *testing.T) {
	m := Sandbox()
	// Left pillar spans x 1000..1080; circle centre 5 units left of its edge
	x, y := m.ResolveWalls(995, 1200, 12)
	if x != 988 || y != 1200 {
		t.Errorf("Expected (988,1200), got (%v,%v)", x, y)
	}

	// Free space is untouched
	x, y = m.ResolveWalls(1250, 1250, 12)
	if x != 1250 || y != 1250 {
		t.Errorf("Expected unchanged position, got (%v,%v)", x, y)
	}
}

// TestDestructibleWall verifies hp depletion removes the wall from collision
func TestDestructibleWall(t *testing.T) {
	m := Production()
	idx := m.WallAt(1250, 850)
	if idx < 0 || !m.Walls[idx].Destructible {
		t.Fatalf("Expected destructible server at (1250,850), got index %d", idx)
	}

	if m.DamageWall(idx, 599) {
		t.Error("Expected wall to survive 599 damage")
	}
	if !m.DamageWall(idx, 1) {
		t.Error("Expected wall to break at 600 damage")
	}
	if m.WallAt(1250, 850) != -1 {
		t.Error("Expected destroyed wall to stop blocking")
	}
	if m.DamageWall(idx, 10) {
		t.Error("Expected destroyed wall to ignore further damage")
	}

	// Indestructible walls never break
	glass := m.WallAt(1600, 1510)
	if glass < 0 || m.DamageWall(glass, 1e9) {
		t.Error("Expected glass to be indestructible")
	}
}

// TestCloneIsolatesWalls verifies run-local wall state does not leak into the source map
func TestCloneIsolatesWalls(t *testing.T) {
	src := Production()
	run := src.Clone()
	idx := run.WallAt(1250, 850)
	run.DamageWall(idx, 1000)

	if src.Walls[idx].Destroyed {
		t.Error("Expected source map unaffected by clone damage")
	}
}

// TestIsFree verifies hazard and wall exclusion
func TestIsFree(t *testing.T) {
	m := TheVoid()
	if m.IsFree(950, 950, 10) {
		t.Error("Expected damage hazard to be occupied")
	}
	if m.IsFree(575, 575, 10) {
		t.Error("Expected wall to be occupied")
	}
	if m.IsFree(5, 1500, 10) {
		t.Error("Expected border to be occupied")
	}
	if !m.IsFree(1500, 1000, 10) {
		t.Error("Expected open floor to be free")
	}
}

// TestParseMap verifies TOML map decoding
func TestParseMap(t *testing.T) {
	src := `
id = "arena_test"
width = 1000
height = 800

[[walls]]
x = 100
y = 100
w = 50
h = 50
destructible = true
hp = 200

[[hazards]]
x = 400
y = 400
w = 100
h = 100
kind = "slow"
slow_multiplier = 0.5
`
	m, err := ParseMap(src)
	if err != nil {
		t.Fatalf("Expected parse success, got %v", err)
	}
	if m.Name != "arena_test" || m.Width != 1000 || m.Height != 800 {
		t.Errorf("Expected arena_test 1000x800, got %s %vx%v", m.Name, m.Width, m.Height)
	}
	if len(m.Walls) != 1 || m.Walls[0].Kind != "wall" || m.Walls[0].MaxHP != 200 {
		t.Errorf("Expected one 200hp wall, got %+v", m.Walls)
	}
	if len(m.Hazards) != 1 || m.Hazards[0].Kind != HazardSlow {
		t.Errorf("Expected one slow hazard, got %+v", m.Hazards)
	}
}

// TestParseMapErrors verifies invalid descriptors are rejected
func TestParseMapErrors(t *testing.T) {
	if _, err := ParseMap(`width = 0
height = 100`); !errors.Is(err, ErrInvalidMap) {
		t.Errorf("Expected ErrInvalidMap for zero width, got %v", err)
	}

	bad := `width = 100
height = 100
[[hazards]]
x = 1
y = 1
w = 5
h = 5
kind = "lava"`
	if _, err := ParseMap(bad); !errors.Is(err, ErrUnknownHazard) {
		t.Errorf("Expected ErrUnknownHazard, got %v", err)
	}

	if _, err := ParseMap("width = ["); !errors.Is(err, ErrInvalidMap) {
		t.Errorf("Expected ErrInvalidMap for malformed toml, got %v", err)
	}
}

// TestLoadMapFile verifies reading a map from disk
func TestLoadMapFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "map.toml")
	if err := os.WriteFile(path, []byte("width = 500\nheight = 500\n"), 0644); err != nil {
		t.Fatal(err)
	}
	m, err := LoadMapFile(path)
	if err != nil {
		t.Fatalf("Expected load success, got %v", err)
	}
	if m.ID != "custom" {
		t.Errorf("Expected default id custom, got %s", m.ID)
	}

	if _, err := LoadMapFile(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("Expected error for missing file")
	}
}
