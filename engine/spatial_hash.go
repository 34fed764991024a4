package engine

import "math"

type cellKey struct {
	X, Y int32
}

// SpatialHash is a uniform-grid index for proximity queries
// Items are inserted into every cell their bounding box overlaps
// Query results are candidates only: callers perform exact distance checks
// Rebuilt every tick: Clear then Add
type SpatialHash[T comparable] struct {
	cellSize float64
	invCell  float64
	cells    map[cellKey][]T
	count    int

	// Dedup scratch for QueryInto, reused across calls
	seen map[T]struct{}
}

// NewSpatialHash creates a hash with the given cell edge length
func NewSpatialHash[T comparable](cellSize float64) *SpatialHash[T] {
	if cellSize <= 0 {
		cellSize = 1
	}
	return &SpatialHash[T]{
		cellSize: cellSize,
		invCell:  1 / cellSize,
		cells:    make(map[cellKey][]T),
		seen:     make(map[T]struct{}),
	}
}

// CellSize returns the cell edge length
func (h *SpatialHash[T]) CellSize() float64 {
	return h.cellSize
}

func (h *SpatialHash[T]) cellRange(x, y, radius float64) (minX, minY, maxX, maxY int32) {
	minX = int32(math.Floor((x - radius) * h.invCell))
	minY = int32(math.Floor((y - radius) * h.invCell))
	maxX = int32(math.Floor((x + radius) * h.invCell))
	maxY = int32(math.Floor((y + radius) * h.invCell))
	return
}

// Add inserts an item into every cell overlapped by its bounding box
func (h *SpatialHash[T]) Add(item T, x, y, radius float64) {
	minX, minY, maxX, maxY := h.cellRange(x, y, radius)
	for cy := minY; cy <= maxY; cy++ {
		for cx := minX; cx <= maxX; cx++ {
			k := cellKey{cx, cy}
			h.cells[k] = append(h.cells[k], item)
		}
	}
	h.count++
}

// Query returns the deduplicated set of items in cells overlapped by the query box
// It allocates per call; tick code uses QueryInto or CountNear
func (h *SpatialHash[T]) Query(x, y, radius float64) map[T]struct{} {
	result := make(map[T]struct{})
	minX, minY, maxX, maxY := h.cellRange(x, y, radius)
	for cy := minY; cy <= maxY; cy++ {
		for cx := minX; cx <= maxX; cx++ {
			for _, item := range h.cells[cellKey{cx, cy}] {
				result[item] = struct{}{}
			}
		}
	}
	return result
}

// QueryInto appends deduplicated candidates to buf and returns it
// Order follows cell scan order, not insertion order
func (h *SpatialHash[T]) QueryInto(buf []T, x, y, radius float64) []T {
	clear(h.seen)
	minX, minY, maxX, maxY := h.cellRange(x, y, radius)
	for cy := minY; cy <= maxY; cy++ {
		for cx := minX; cx <= maxX; cx++ {
			for _, item := range h.cells[cellKey{cx, cy}] {
				if _, dup := h.seen[item]; dup {
					continue
				}
				h.seen[item] = struct{}{}
				buf = append(buf, item)
			}
		}
	}
	return buf
}

// CountNear returns the number of distinct candidates near a point
func (h *SpatialHash[T]) CountNear(x, y, radius float64) int {
	clear(h.seen)
	minX, minY, maxX, maxY := h.cellRange(x, y, radius)
	for cy := minY; cy <= maxY; cy++ {
		for cx := minX; cx <= maxX; cx++ {
			for _, item := range h.cells[cellKey{cx, cy}] {
				h.seen[item] = struct{}{}
			}
		}
	}
	return len(h.seen)
}

// Clear empties every cell, keeping bucket capacity for the next rebuild
func (h *SpatialHash[T]) Clear() {
	for k, bucket := range h.cells {
		if len(bucket) == 0 {
			// Drop buckets left untouched by the previous rebuild
			delete(h.cells, k)
			continue
		}
		h.cells[k] = bucket[:0]
	}
	h.count = 0
}

// Len returns the number of Add calls since the last Clear
func (h *SpatialHash[T]) Len() int {
	return h.count
}
