package arena

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/void-swarm/vmath"
)

// mapFile mirrors the on-disk TOML layout of a custom map
type mapFile struct {
	ID      string       `toml:"id"`
	Name    string       `toml:"name"`
	Width   float64      `toml:"width"`
	Height  float64      `toml:"height"`
	Walls   []wallFile   `toml:"walls"`
	Hazards []hazardFile `toml:"hazards"`
}

type wallFile struct {
	X            float64 `toml:"x"`
	Y            float64 `toml:"y"`
	W            float64 `toml:"w"`
	H            float64 `toml:"h"`
	Kind         string  `toml:"kind"`
	Destructible bool    `toml:"destructible"`
	HP           float64 `toml:"hp"`
}

type hazardFile struct {
	X               float64 `toml:"x"`
	Y               float64 `toml:"y"`
	W               float64 `toml:"w"`
	H               float64 `toml:"h"`
	Kind            string  `toml:"kind"`
	DamagePerSecond float64 `toml:"damage_per_second"`
	SlowMultiplier  float64 `toml:"slow_multiplier"`
}

// LoadMapFile reads and validates a TOML map descriptor
func LoadMapFile(path string) (*Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read map %s: %w", path, err)
	}
	return ParseMap(string(data))
}

// ParseMap decodes a TOML map descriptor
func ParseMap(src string) (*Map, error) {
	var f mapFile
	if _, err := toml.Decode(src, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMap, err)
	}

	m := &Map{ID: f.ID, Name: f.Name, Width: f.Width, Height: f.Height}
	if m.ID == "" {
		m.ID = "custom"
	}
	if m.Name == "" {
		m.Name = m.ID
	}

	for _, w := range f.Walls {
		kind := w.Kind
		if kind == "" {
			kind = "wall"
		}
		m.Walls = append(m.Walls, Wall{
			Rect:         vmath.Rect{X: w.X, Y: w.Y, W: w.W, H: w.H},
			Kind:         kind,
			Destructible: w.Destructible,
			HP:           w.HP,
			MaxHP:        w.HP,
		})
	}

	for i, h := range f.Hazards {
		kind, err := ParseHazardKind(h.Kind)
		if err != nil {
			return nil, fmt.Errorf("hazard %d: %w", i, err)
		}
		m.Hazards = append(m.Hazards, Hazard{
			Rect:            vmath.Rect{X: h.X, Y: h.Y, W: h.W, H: h.H},
			Kind:            kind,
			DamagePerSecond: h.DamagePerSecond,
			SlowMultiplier:  h.SlowMultiplier,
		})
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}
