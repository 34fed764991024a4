package main

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/lixenwraith/void-swarm/game"
	"github.com/lixenwraith/void-swarm/parameter"
)

const lineHeight = 16

var (
	colorBackground = color.RGBA{0x0a, 0x0a, 0x12, 0xff}
	colorGrid       = color.RGBA{0x16, 0x16, 0x24, 0xff}
	colorPanel      = color.RGBA{0x14, 0x14, 0x2a, 0xe0}
	colorHPBack     = color.RGBA{0x33, 0x11, 0x11, 0xff}
	hazardColors    = map[string]color.RGBA{
		"damage":   {0x66, 0x22, 0x22, 0x80},
		"slow":     {0x22, 0x33, 0x66, 0x80},
		"teleport": {0x66, 0x33, 0x66, 0x80},
	}
)

// rgb converts a packed 0xRRGGBB value
func rgb(c uint32) color.RGBA {
	return color.RGBA{uint8(c >> 16), uint8(c >> 8), uint8(c), 0xff}
}

// drawFrame renders a snapshot in world-to-screen pixels offset by the camera
func drawFrame(screen *ebiten.Image, s *game.Snapshot, muted bool) {
	screen.Fill(colorBackground)
	ox, oy := float32(-s.Camera.X), float32(-s.Camera.Y)

	drawGrid(screen, s)

	for _, h := range s.Hazards {
		vector.DrawFilledRect(screen, float32(h.X)+ox, float32(h.Y)+oy, float32(h.W), float32(h.H), hazardColors[h.Kind], false)
	}
	for _, w := range s.Walls {
		c := colornames.Slategray
		if w.Kind == "crate" {
			c = colornames.Sienna
		}
		vector.DrawFilledRect(screen, float32(w.X)+ox, float32(w.Y)+oy, float32(w.W), float32(w.H), c, false)
		if w.Destructible && w.HPRatio < 1 {
			vector.StrokeRect(screen, float32(w.X)+ox, float32(w.Y)+oy, float32(w.W), float32(w.H), 2, colornames.Darkred, false)
		}
	}
	for _, p := range s.Particles {
		c := rgb(p.Color)
		c.A = uint8(math.Max(0, math.Min(1, p.Life)) * 255)
		vector.DrawFilledRect(screen, float32(p.X)+ox-1, float32(p.Y)+oy-1, 3, 3, c, false)
	}
	for _, pk := range s.Pickups {
		c := rgb(parameter.ColorXP)
		if pk.Powerup != "" {
			c = rgb(parameter.ColorPowerup)
		}
		vector.DrawFilledCircle(screen, float32(pk.X)+ox, float32(pk.Y)+oy, float32(pk.Radius), c, true)
	}
	for _, e := range s.Enemies {
		x, y, r := float32(e.X)+ox, float32(e.Y)+oy, float32(e.Radius)
		vector.DrawFilledCircle(screen, x, y, r, rgb(e.Color), true)
		dx, dy := float32(math.Cos(e.Rotation))*r, float32(math.Sin(e.Rotation))*r
		vector.StrokeLine(screen, x, y, x+dx, y+dy, 2, colornames.Black, true)
		if e.HPRatio < 1 {
			vector.DrawFilledRect(screen, x-r, y-r-6, 2*r, 3, colorHPBack, false)
			vector.DrawFilledRect(screen, x-r, y-r-6, 2*r*float32(e.HPRatio), 3, colornames.Limegreen, false)
		}
	}
	for _, b := range s.Bullets {
		c := rgb(parameter.ColorBullet)
		if b.Crit {
			c = rgb(parameter.ColorCritHit)
		}
		vector.DrawFilledCircle(screen, float32(b.X)+ox, float32(b.Y)+oy, float32(b.Radius), c, true)
	}
	for _, o := range s.Orbs {
		vector.DrawFilledCircle(screen, float32(o.X)+ox, float32(o.Y)+oy, float32(o.Radius), rgb(parameter.ColorOrb), true)
	}

	drawPlayer(screen, s, ox, oy)

	hud := s.StatusLine()
	if !muted {
		hud += "  " + parameter.AudioStr
	}
	ebitenutil.DebugPrintAt(screen, hud, 4, 2)

	if c := s.Overlay(); c != nil {
		drawPanel(screen, c.Lines())
	}
}

func drawGrid(screen *ebiten.Image, s *game.Snapshot) {
	const step = 100.0
	w, h := float32(s.Camera.Width), float32(s.Camera.Height)
	for x := math.Ceil(s.Camera.X/step) * step; x < s.Camera.X+s.Camera.Width; x += step {
		sx := float32(x - s.Camera.X)
		vector.StrokeLine(screen, sx, 0, sx, h, 1, colorGrid, false)
	}
	for y := math.Ceil(s.Camera.Y/step) * step; y < s.Camera.Y+s.Camera.Height; y += step {
		sy := float32(y - s.Camera.Y)
		vector.StrokeLine(screen, 0, sy, w, sy, 1, colorGrid, false)
	}
}

func drawPlayer(screen *ebiten.Image, s *game.Snapshot, ox, oy float32) {
	p := s.Player
	x, y := float32(p.X)+ox, float32(p.Y)+oy

	if p.Repulsion > 0 {
		c := rgb(parameter.ColorRepulsion)
		c.A = 0x40
		vector.StrokeCircle(screen, x, y, float32(p.Repulsion), 2, c, true)
	}
	if p.Shield {
		vector.StrokeCircle(screen, x, y, float32(p.ShieldR), 3, colornames.Cyan, true)
	}

	c := rgb(parameter.ColorPlayer)
	if p.Slowed {
		c = colornames.Steelblue
	}
	vector.DrawFilledCircle(screen, x, y, float32(p.Radius), c, true)
}

// drawPanel draws centered overlay text on a translucent box
func drawPanel(screen *ebiten.Image, lines []string) {
	widest := 0
	for _, l := range lines {
		widest = max(widest, len(l))
	}
	b := screen.Bounds()
	w := float32(widest*6 + 32)
	h := float32(len(lines)*lineHeight + 24)
	x := (float32(b.Dx()) - w) / 2
	y := (float32(b.Dy()) - h) / 2

	vector.DrawFilledRect(screen, x, y, w, h, colorPanel, false)
	vector.StrokeRect(screen, x, y, w, h, 1, colornames.Gold, false)
	for i, l := range lines {
		ebitenutil.DebugPrintAt(screen, l, int(x)+16, int(y)+12+i*lineHeight)
	}
}
