package entity

import "github.com/lixenwraith/void-swarm/vmath"

// Input is the per-tick control state polled from a frontend
// Fire is carried for frontends but unused; the primary gun fires automatically
type Input struct {
	MoveX, MoveY float64
	Fire         bool
	Pause        bool
	Select       bool
}

// Direction returns the movement vector clamped to unit length
func (in Input) Direction() (float64, float64) {
	x := vmath.Clamp(in.MoveX, -1, 1)
	y := vmath.Clamp(in.MoveY, -1, 1)
	if mag := vmath.Magnitude(x, y); mag > 1 {
		return x / mag, y / mag
	}
	return x, y
}
