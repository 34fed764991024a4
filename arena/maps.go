package arena

import (
	"github.com/lixenwraith/void-swarm/parameter"
	"github.com/lixenwraith/void-swarm/vmath"
)

func wall(x, y, w, h float64, kind string) Wall {
	return Wall{Rect: vmath.Rect{X: x, Y: y, W: w, H: h}, Kind: kind}
}

func breakable(x, y, w, h float64, kind string, hp float64) Wall {
	return Wall{Rect: vmath.Rect{X: x, Y: y, W: w, H: h}, Kind: kind, Destructible: true, HP: hp, MaxHP: hp}
}

// Sandbox is the open warehouse map used in easy mode
func Sandbox() *Map {
	return &Map{
		ID:     "sandbox",
		Name:   "SANDBOX",
		Width:  2500,
		Height: 2500,
		Walls: []Wall{
			// Corner crate clusters
			wall(300, 300, 100, 200, "crate"),
			wall(400, 350, 100, 100, "crate"),
			wall(2100, 300, 100, 200, "crate"),
			wall(2000, 350, 100, 100, "crate"),
			wall(300, 2000, 100, 200, "crate"),
			wall(400, 2050, 100, 100, "crate"),
			wall(2100, 2000, 100, 200, "crate"),
			wall(2000, 2050, 100, 100, "crate"),
			// Centre pillars
			wall(1000, 1000, 80, 500, "wall"),
			wall(1420, 1000, 80, 500, "wall"),
			// Scattered cover
			wall(800, 600, 80, 80, "crate"),
			wall(1700, 600, 80, 80, "crate"),
			wall(800, 1800, 80, 80, "crate"),
			wall(1700, 1800, 80, 80, "crate"),
		},
	}
}

// Production is the datacenter map used in medium mode
func Production() *Map {
	return &Map{
		ID:     "production",
		Name:   "PRODUCTION",
		Width:  4000,
		Height: 4000,
		Walls: []Wall{
			// Server aisles
			wall(600, 400, 60, 800, "server"),
			wall(600, 1400, 60, 800, "server"),
			wall(3340, 400, 60, 800, "server"),
			wall(3340, 1400, 60, 800, "server"),
			// Central hub glass
			wall(1500, 1500, 1000, 40, "glass"),
			wall(1500, 2460, 1000, 40, "glass"),
			// Data banks
			breakable(1200, 800, 100, 100, "server", 600),
			breakable(2700, 800, 100, 100, "server", 600),
			breakable(1200, 3200, 100, 100, "server", 600),
			breakable(2700, 3200, 100, 100, "server", 600),
			// Perimeter blocks
			wall(0, 0, 400, 400, "wall"),
			wall(3600, 0, 400, 400, "wall"),
		},
		Hazards: []Hazard{
			{Rect: vmath.Rect{X: 800, Y: 800, W: 200, H: 200}, Kind: HazardSlow, SlowMultiplier: 0.5},
			{Rect: vmath.Rect{X: 3000, Y: 800, W: 200, H: 200}, Kind: HazardSlow, SlowMultiplier: 0.5},
			{Rect: vmath.Rect{X: 1900, Y: 1900, W: 200, H: 200}, Kind: HazardSlow, SlowMultiplier: 0.5},
			{Rect: vmath.Rect{X: 1950, Y: 400, W: 100, H: 100}, Kind: HazardDamage, DamagePerSecond: 10},
		},
	}
}

// TheVoid is the hard-mode map
func TheVoid() *Map {
	return &Map{
		ID:     "kernel_panic",
		Name:   "THE_VOID",
		Width:  3000,
		Height: 3000,
		Walls: []Wall{
			wall(500, 500, 150, 150, "wall"),
			wall(2500, 500, 150, 150, "wall"),
			wall(500, 2500, 150, 150, "wall"),
			wall(2500, 2500, 150, 150, "wall"),
			// Central monoliths
			wall(1300, 1300, 400, 50, "wall"),
			wall(1300, 1650, 400, 50, "wall"),
			// Outer barriers
			wall(200, 1000, 50, 1000, "wall"),
			wall(2750, 1000, 50, 1000, "wall"),
		},
		Hazards: []Hazard{
			{Rect: vmath.Rect{X: 800, Y: 800, W: 300, H: 300}, Kind: HazardDamage, DamagePerSecond: 15},
			{Rect: vmath.Rect{X: 1900, Y: 1900, W: 300, H: 300}, Kind: HazardDamage, DamagePerSecond: 15},
			{Rect: vmath.Rect{X: 300, Y: 300, W: 100, H: 100}, Kind: HazardTeleport},
			{Rect: vmath.Rect{X: 2600, Y: 2600, W: 100, H: 100}, Kind: HazardTeleport},
		},
	}
}

// ForMode returns a fresh copy of the built-in map for a difficulty mode
func ForMode(mode parameter.Mode) *Map {
	switch mode {
	case parameter.ModeEasy:
		return Sandbox()
	case parameter.ModeHard:
		return TheVoid()
	}
	return Production()
}

