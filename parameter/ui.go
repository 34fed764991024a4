package parameter

import "time"

// Terminal Layout
const (
	// TopMargin reserves the HUD line above the arena
	TopMargin = 1

	// CellWorldWidth is the world width covered by one terminal column
	CellWorldWidth = 10.0

	// CellWorldHeight is the world height covered by one terminal row (cells are ~2:1)
	CellWorldHeight = 20.0
)

// Terminal Input
const (
	// KeyHoldInitial keeps a direction held until the terminal starts auto-repeat
	KeyHoldInitial = 450 * time.Millisecond

	// KeyHoldRepeat keeps a direction held between auto-repeat events
	KeyHoldRepeat = 120 * time.Millisecond
)

// Overlay Configuration
const (
	// OverlayWidthPercent is the percentage of screen width the overlay covers
	OverlayWidthPercent = 0.6

	// OverlayPaddingX is the horizontal padding inside the overlay
	OverlayPaddingX = 2

	// OverlayPaddingY is the vertical padding inside the overlay
	OverlayPaddingY = 1
)

// UI Symbols
const (
	AudioStr = "♫ "
	MutedStr = "  "
)
