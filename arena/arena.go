package arena

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/void-swarm/vmath"
)

// HazardKind selects the hazard effect
type HazardKind uint8

const (
	HazardDamage HazardKind = iota
	HazardSlow
	HazardTeleport
)

// Sentinel errors
var (
	ErrInvalidMap    = errors.New("invalid map")
	ErrUnknownHazard = errors.New("unknown hazard kind")
)

// String returns the hazard key
func (k HazardKind) String() string {
	switch k {
	case HazardDamage:
		return "damage"
	case HazardSlow:
		return "slow"
	case HazardTeleport:
		return "teleport"
	}
	return "unknown"
}

// ParseHazardKind resolves a hazard key
func ParseHazardKind(name string) (HazardKind, error) {
	switch name {
	case "damage":
		return HazardDamage, nil
	case "slow":
		return HazardSlow, nil
	case "teleport":
		return HazardTeleport, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownHazard, name)
}

// Wall is a rectangular obstacle; destructible walls take bullet damage
type Wall struct {
	vmath.Rect
	Kind         string
	Destructible bool
	HP           float64
	MaxHP        float64
	Destroyed    bool
}

// Hazard is a rectangular zone affecting the player while overlapped
type Hazard struct {
	vmath.Rect
	Kind            HazardKind
	DamagePerSecond float64
	SlowMultiplier  float64
}

// Map is the static world descriptor consumed by a run
type Map struct {
	ID      string
	Name    string
	Width   float64
	Height  float64
	Walls   []Wall
	Hazards []Hazard
}

// Clone returns a run-local copy; wall hp is mutated during play
func (m *Map) Clone() *Map {
	c := *m
	c.Walls = append([]Wall(nil), m.Walls...)
	c.Hazards = append([]Hazard(nil), m.Hazards...)
	return &c
}

// Validate checks dimensions and zone parameters
func (m *Map) Validate() error {
	if m.Width <= 0 || m.Height <= 0 {
		return fmt.Errorf("%w: %s has non-positive size %vx%v", ErrInvalidMap, m.ID, m.Width, m.Height)
	}
	for i, w := range m.Walls {
		if w.W <= 0 || w.H <= 0 {
			return fmt.Errorf("%w: %s wall %d has empty extent", ErrInvalidMap, m.ID, i)
		}
		if w.Destructible && w.MaxHP <= 0 {
			return fmt.Errorf("%w: %s wall %d is destructible without hp", ErrInvalidMap, m.ID, i)
		}
	}
	for i, h := range m.Hazards {
		if h.W <= 0 || h.H <= 0 {
			return fmt.Errorf("%w: %s hazard %d has empty extent", ErrInvalidMap, m.ID, i)
		}
		if h.Kind == HazardSlow && (h.SlowMultiplier <= 0 || h.SlowMultiplier > 1) {
			return fmt.Errorf("%w: %s hazard %d slow multiplier %v outside (0,1]", ErrInvalidMap, m.ID, i, h.SlowMultiplier)
		}
	}
	return nil
}

// ResolveWalls pushes a circle out of every intact wall it overlaps
func (m *Map) ResolveWalls(x, y, radius float64) (float64, float64) {
	for i := range m.Walls {
		w := &m.Walls[i]
		if w.Destroyed {
			continue
		}
		if nx, ny, depth, hit := vmath.CircleRectPenetration(x, y, radius, w.Rect); hit {
			x += nx * depth
			y += ny * depth
		}
	}
	return x, y
}

// WallAt returns the index of the intact wall containing the point, -1 if none
func (m *Map) WallAt(px, py float64) int {
	for i := range m.Walls {
		if !m.Walls[i].Destroyed && m.Walls[i].Contains(px, py) {
			return i
		}
	}
	return -1
}

// DamageWall applies damage to a destructible wall, returning true when it breaks
func (m *Map) DamageWall(i int, amount float64) bool {
	if i < 0 || i >= len(m.Walls) {
		return false
	}
	w := &m.Walls[i]
	if !w.Destructible || w.Destroyed {
		return false
	}
	w.HP -= amount
	if w.HP <= 0 {
		w.HP = 0
		w.Destroyed = true
		return true
	}
	return false
}

// InBounds reports whether a point lies inside the world
func (m *Map) InBounds(x, y float64) bool {
	return x >= 0 && x <= m.Width && y >= 0 && y <= m.Height
}

// ClampCircle keeps a circle fully inside the world
func (m *Map) ClampCircle(x, y, radius float64) (float64, float64) {
	return vmath.Clamp(x, radius, m.Width-radius), vmath.Clamp(y, radius, m.Height-radius)
}

// IsFree reports whether a circle overlaps neither walls nor hazards
func (m *Map) IsFree(x, y, radius float64) bool {
	if x < radius || y < radius || x > m.Width-radius || y > m.Height-radius {
		return false
	}
	for i := range m.Walls {
		if !m.Walls[i].Destroyed && m.Walls[i].OverlapsCircle(x, y, radius) {
			return false
		}
	}
	for i := range m.Hazards {
		if m.Hazards[i].OverlapsCircle(x, y, radius) {
			return false
		}
	}
	return true
}
