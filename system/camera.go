package system

import (
	"math"

	"github.com/lixenwraith/void-swarm/parameter"
)

// Camera follows the player in world space with smoothing
type Camera struct {
	X, Y          float64
	Width, Height float64
	Smoothing     float64
}

// NewCamera creates a camera for a viewport size
func NewCamera(width, height float64) *Camera {
	return &Camera{Width: width, Height: height, Smoothing: parameter.CameraSmoothing}
}

// Resize updates the viewport size
func (c *Camera) Resize(width, height float64) {
	c.Width, c.Height = width, height
}

// Follow eases toward centering the target, clamped to the world
func (c *Camera) Follow(tx, ty, worldW, worldH float64) {
	c.X += (tx - c.Width/2 - c.X) * c.Smoothing
	c.Y += (ty - c.Height/2 - c.Y) * c.Smoothing
	c.X = math.Max(0, math.Min(worldW-c.Width, c.X))
	c.Y = math.Max(0, math.Min(worldH-c.Height, c.Y))
}

// Snap centers the target immediately
func (c *Camera) Snap(tx, ty, worldW, worldH float64) {
	s := c.Smoothing
	c.Smoothing = 1
	c.Follow(tx, ty, worldW, worldH)
	c.Smoothing = s
}

// IsVisible reports whether a world rectangle intersects the viewport
func (c *Camera) IsVisible(x, y, w, h float64) bool {
	return !(x+w < c.X || x > c.X+c.Width || y+h < c.Y || y > c.Y+c.Height)
}

// IsCircleVisible reports whether a circle intersects the viewport
func (c *Camera) IsCircleVisible(cx, cy, radius float64) bool {
	return c.IsVisible(cx-radius, cy-radius, radius*2, radius*2)
}
