package parameter

import "time"

// Game Loop & Engine Timing
const (
	// TicksPerSecond is the fixed simulation rate
	TicksPerSecond = 60

	// FrameTimeMs is the fixed simulation step in milliseconds (1000/60)
	FrameTimeMs = 1000.0 / TicksPerSecond

	// MaxFrameDeltaMs clamps one real frame's contribution to the accumulator
	MaxFrameDeltaMs = 100.0

	// FrameUpdateInterval is the frontend frame interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxTicksPerFrame bounds catch-up work inside a single real frame
	// 100ms clamp / 16.67ms step = 6 ticks
	MaxTicksPerFrame = 6
)

// Event Queue Limits
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 2048

	// EventBufferMask is the bitmask for fast modulo operations (2048 - 1)
	EventBufferMask = 2047
)

// Spatial Hash
const (
	// SpatialCellSize is the hash cell edge in world units, ~2-3x typical enemy radius
	SpatialCellSize = 32.0
)
