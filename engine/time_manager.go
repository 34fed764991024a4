package engine

import "github.com/lixenwraith/void-swarm/parameter"

// PauseSource reports externally owned pause state
type PauseSource interface {
	IsPaused() bool
}

// TimeManager is a fixed-timestep accumulator clock
// Real frame deltas are clamped to parameter.MaxFrameDeltaMs before accumulation
// Callers drain it with ShouldUpdateFixed / ConsumeFixedStep and count ticks with IncrementFrame
type TimeManager struct {
	pause PauseSource

	lastMs      float64
	started     bool
	accumulator float64

	frames   uint64
	gameTime int // whole seconds of simulated time
}

// NewTimeManager creates a clock gated by the given pause source (nil = never paused)
func NewTimeManager(pause PauseSource) *TimeManager {
	return &TimeManager{pause: pause}
}

// Reset clears accumulated time and counters, anchoring the next delta at nowMs
func (tm *TimeManager) Reset(nowMs float64) {
	tm.lastMs = nowMs
	tm.started = true
	tm.accumulator = 0
	tm.frames = 0
	tm.gameTime = 0
}

// Update accumulates the clamped wall-clock delta and returns it
// The first call only anchors the clock. While paused the anchor moves without accumulating
func (tm *TimeManager) Update(nowMs float64) float64 {
	if !tm.started {
		tm.lastMs = nowMs
		tm.started = true
		return 0
	}

	delta := nowMs - tm.lastMs
	tm.lastMs = nowMs
	if delta < 0 {
		delta = 0
	}
	if delta > parameter.MaxFrameDeltaMs {
		delta = parameter.MaxFrameDeltaMs
	}

	if tm.IsPaused() {
		return 0
	}
	tm.accumulator += delta
	return delta
}

// ShouldUpdateFixed reports whether a whole fixed step is pending
func (tm *TimeManager) ShouldUpdateFixed() bool {
	return tm.accumulator >= parameter.FrameTimeMs && !tm.IsPaused()
}

// ConsumeFixedStep removes one fixed step from the accumulator
func (tm *TimeManager) ConsumeFixedStep() {
	tm.accumulator -= parameter.FrameTimeMs
}

// IncrementFrame advances the tick counter and the one-second game clock every 60 ticks
func (tm *TimeManager) IncrementFrame() {
	tm.frames++
	if tm.frames%parameter.TicksPerSecond == 0 {
		tm.gameTime++
	}
}

// SetGameTime jumps the simulated clock to whole seconds
func (tm *TimeManager) SetGameTime(seconds int) {
	if seconds < 0 {
		seconds = 0
	}
	tm.gameTime = seconds
	tm.frames = uint64(seconds) * parameter.TicksPerSecond
}

// IsPaused queries the external pause source
func (tm *TimeManager) IsPaused() bool {
	return tm.pause != nil && tm.pause.IsPaused()
}

// Frames returns the number of simulation ticks performed
func (tm *TimeManager) Frames() uint64 {
	return tm.frames
}

// GameTime returns elapsed simulated seconds
func (tm *TimeManager) GameTime() int {
	return tm.gameTime
}

// Accumulator returns pending unsimulated milliseconds
func (tm *TimeManager) Accumulator() float64 {
	return tm.accumulator
}

// Alpha returns the fraction of a step pending, for render interpolation
func (tm *TimeManager) Alpha() float64 {
	return tm.accumulator / parameter.FrameTimeMs
}
