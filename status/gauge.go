package status

import (
	"math"
	"sync/atomic"
)

// Gauge is an atomically updated float64 reading
// Zero value reads 0
type Gauge struct {
	bits atomic.Uint64
}

// Set stores a reading
func (g *Gauge) Set(val float64) {
	g.bits.Store(math.Float64bits(val))
}

// Get loads the reading
func (g *Gauge) Get() float64 {
	return math.Float64frombits(g.bits.Load())
}

// Add adjusts the reading by delta and returns the result
func (g *Gauge) Add(delta float64) float64 {
	for {
		old := g.bits.Load()
		next := math.Float64frombits(old) + delta
		if g.bits.CompareAndSwap(old, math.Float64bits(next)) {
			return next
		}
	}
}

// MaxLabelLen bounds label length for HUD rendering
const MaxLabelLen = 24

// Label is an atomically swapped short string
type Label struct {
	ptr atomic.Pointer[string]
}

// Store sets the label, truncated to MaxLabelLen bytes
func (l *Label) Store(val string) {
	if len(val) > MaxLabelLen {
		val = val[:MaxLabelLen]
	}
	l.ptr.Store(&val)
}

// Load returns the label, empty when unset
func (l *Label) Load() string {
	if p := l.ptr.Load(); p != nil {
		return *p
	}
	return ""
}
