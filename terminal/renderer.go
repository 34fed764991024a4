package terminal

import (
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/void-swarm/core"
	"github.com/lixenwraith/void-swarm/entity"
	"github.com/lixenwraith/void-swarm/game"
	"github.com/lixenwraith/void-swarm/parameter"
)

// Canvas is the drawing surface; tcell.Screen satisfies it
type Canvas interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (int, int)
}

var (
	styleBase     = tcell.StyleDefault.Background(tcell.NewHexColor(0x0a0a12)).Foreground(tcell.NewHexColor(0xc0c0d0))
	styleHUD      = tcell.StyleDefault.Background(tcell.NewHexColor(0x1c1c2a)).Foreground(tcell.NewHexColor(0xe0e0f0))
	styleHUDWarn  = styleHUD.Foreground(tcell.NewHexColor(parameter.ColorDanger))
	styleOverlay  = tcell.StyleDefault.Background(tcell.NewHexColor(0x14142a)).Foreground(tcell.NewHexColor(0xffffff))
	styleAccent   = styleOverlay.Foreground(tcell.NewHexColor(0xffcc00)).Bold(true)
	stylePlayer   = styleBase.Foreground(tcell.NewHexColor(0xffffff)).Bold(true)
	styleShielded = styleBase.Foreground(tcell.NewHexColor(0x00e5ff)).Bold(true)
	styleOrb      = styleBase.Foreground(tcell.NewHexColor(0x66ccff))
	styleBullet   = styleBase.Foreground(tcell.NewHexColor(0xffff66))
	styleCrit     = styleBase.Foreground(tcell.NewHexColor(0xffaa00)).Bold(true)
	styleWall     = styleBase.Foreground(tcell.NewHexColor(0x555566))
	styleCrate    = styleBase.Foreground(tcell.NewHexColor(0x8a6a3a))
)

var hazardStyles = map[string]tcell.Style{
	"damage":   styleBase.Foreground(tcell.NewHexColor(0x662222)),
	"slow":     styleBase.Foreground(tcell.NewHexColor(0x223366)),
	"teleport": styleBase.Foreground(tcell.NewHexColor(0x663366)),
}

var enemyGlyphs = [...]rune{
	entity.EnemyBasic: 'o',
	entity.EnemySwarm: '•',
	entity.EnemyTank:  'O',
}

var tierColors = map[int]int32{1: 0x00ff88, 2: 0x00ccff, 4: 0xff66ff}

// Renderer draws snapshots onto a canvas
// The arena view starts below the HUD line; one column spans CellWorldWidth world units
type Renderer struct {
	canvas Canvas
	width  int
	height int
	muted  bool
}

// NewRenderer creates a renderer for a canvas
func NewRenderer(c Canvas) *Renderer {
	r := &Renderer{canvas: c}
	r.width, r.height = c.Size()
	return r
}

// Resize refreshes the cached canvas size
func (r *Renderer) Resize() {
	r.width, r.height = r.canvas.Size()
}

// SetMuted toggles the HUD audio indicator
func (r *Renderer) SetMuted(m bool) {
	r.muted = m
}

// Viewport returns the world-unit viewport matching the arena area
func (r *Renderer) Viewport() (float64, float64) {
	rows := r.height - parameter.TopMargin
	if rows < 1 {
		rows = 1
	}
	return float64(r.width) * parameter.CellWorldWidth, float64(rows) * parameter.CellWorldHeight
}

// Draw renders a full frame
func (r *Renderer) Draw(s *game.Snapshot) {
	r.fill(0, 0, r.width, r.height, ' ', styleBase)

	for _, h := range s.Hazards {
		r.rect(s, h.X, h.Y, h.W, h.H, '░', hazardStyles[h.Kind])
	}
	for _, w := range s.Walls {
		glyph, st := '█', styleWall
		if w.Kind == "crate" {
			st = styleCrate
		}
		if w.Destructible && w.HPRatio < 0.5 {
			glyph = '▓'
		}
		r.rect(s, w.X, w.Y, w.W, w.H, glyph, st)
	}
	for _, p := range s.Particles {
		if p.Life > 0.3 {
			r.plot(s, p.X, p.Y, '·', styleBase.Foreground(tcell.NewHexColor(int32(p.Color))))
		}
	}
	for _, pk := range s.Pickups {
		if pk.Powerup != "" {
			r.plot(s, pk.X, pk.Y, '★', styleBase.Foreground(tcell.NewHexColor(parameter.ColorPowerup)).Bold(true))
			continue
		}
		c, ok := tierColors[pk.Tier]
		if !ok {
			c = parameter.ColorXP
		}
		r.plot(s, pk.X, pk.Y, '◆', styleBase.Foreground(tcell.NewHexColor(c)))
	}
	for _, e := range s.Enemies {
		glyph := 'o'
		if int(e.Kind) < len(enemyGlyphs) {
			glyph = enemyGlyphs[e.Kind]
		}
		r.plot(s, e.X, e.Y, glyph, styleBase.Foreground(tcell.NewHexColor(int32(e.Color))))
	}
	for _, b := range s.Bullets {
		if b.Crit {
			r.plot(s, b.X, b.Y, '*', styleCrit)
		} else {
			r.plot(s, b.X, b.Y, '∙', styleBullet)
		}
	}
	for _, o := range s.Orbs {
		r.plot(s, o.X, o.Y, '◎', styleOrb)
	}

	pl := s.Player
	if pl.Shield {
		r.ring(s, pl.X, pl.Y, pl.ShieldR, styleShielded)
		r.plot(s, pl.X, pl.Y, '@', styleShielded)
	} else {
		r.plot(s, pl.X, pl.Y, '@', stylePlayer)
	}

	r.drawHUD(s)

	if c := s.Overlay(); c != nil {
		r.drawOverlay(c)
	}
}

// cell maps a world point into canvas coordinates
func (r *Renderer) cell(s *game.Snapshot, x, y float64) (int, int, bool) {
	cx := int(math.Floor((x - s.Camera.X) / parameter.CellWorldWidth))
	cy := int(math.Floor((y-s.Camera.Y)/parameter.CellWorldHeight)) + parameter.TopMargin
	if cx < 0 || cx >= r.width || cy < parameter.TopMargin || cy >= r.height {
		return 0, 0, false
	}
	return cx, cy, true
}

func (r *Renderer) plot(s *game.Snapshot, x, y float64, glyph rune, st tcell.Style) {
	if cx, cy, ok := r.cell(s, x, y); ok {
		r.canvas.SetContent(cx, cy, glyph, nil, st)
	}
}

func (r *Renderer) rect(s *game.Snapshot, x, y, w, h float64, glyph rune, st tcell.Style) {
	x0 := int(math.Floor((x - s.Camera.X) / parameter.CellWorldWidth))
	y0 := int(math.Floor((y-s.Camera.Y)/parameter.CellWorldHeight)) + parameter.TopMargin
	x1 := int(math.Ceil((x + w - s.Camera.X) / parameter.CellWorldWidth))
	y1 := int(math.Ceil((y+h-s.Camera.Y)/parameter.CellWorldHeight)) + parameter.TopMargin
	r.fill(max(x0, 0), max(y0, parameter.TopMargin), min(x1, r.width), min(y1, r.height), glyph, st)
}

func (r *Renderer) ring(s *game.Snapshot, x, y, radius float64, st tcell.Style) {
	const steps = 24
	for i := 0; i < steps; i++ {
		a := float64(i) / steps * 2 * math.Pi
		r.plot(s, x+math.Cos(a)*radius, y+math.Sin(a)*radius, '·', st)
	}
}

// fill paints [x0,x1) x [y0,y1)
func (r *Renderer) fill(x0, y0, x1, y1 int, glyph rune, st tcell.Style) {
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			r.canvas.SetContent(x, y, glyph, nil, st)
		}
	}
}

func (r *Renderer) text(x, y int, str string, st tcell.Style) int {
	for _, ch := range str {
		if x >= r.width {
			break
		}
		if x >= 0 && y >= 0 && y < r.height {
			r.canvas.SetContent(x, y, ch, nil, st)
		}
		x++
	}
	return x
}

func (r *Renderer) drawHUD(s *game.Snapshot) {
	r.fill(0, 0, r.width, parameter.TopMargin, ' ', styleHUD)
	st := styleHUD
	if s.Player.MaxHP > 0 && s.Player.HP/s.Player.MaxHP < 0.25 {
		st = styleHUDWarn
	}
	r.text(0, 0, s.StatusLine(), st)

	indicator := parameter.AudioStr
	if r.muted {
		indicator = parameter.MutedStr
	}
	r.text(r.width-len([]rune(indicator)), 0, indicator, styleHUD)
}

func (r *Renderer) drawOverlay(c *core.OverlayContent) {
	lines := c.Lines()
	w := int(float64(r.width) * parameter.OverlayWidthPercent)
	for _, l := range lines {
		w = max(w, len([]rune(l))+2*parameter.OverlayPaddingX)
	}
	w = min(w, r.width)
	h := min(len(lines)+2*parameter.OverlayPaddingY, r.height)
	x0 := (r.width - w) / 2
	y0 := (r.height - h) / 2

	r.fill(x0, y0, x0+w, y0+h, ' ', styleOverlay)
	for i, l := range lines {
		y := y0 + parameter.OverlayPaddingY + i
		if y >= y0+h {
			break
		}
		st := styleOverlay
		if i == 0 || strings.HasPrefix(l, "[") {
			st = styleAccent
		}
		r.text(x0+parameter.OverlayPaddingX, y, l, st)
	}
}
