package engine

// Handle references an arena slot; the generation detects stale references
type Handle struct {
	Index uint32
	Gen   uint32
}

// NilHandle never resolves
var NilHandle = Handle{Index: ^uint32(0)}

type arenaSlot[T any] struct {
	value T
	gen   uint32
	live  bool
}

// Arena is a generational slot allocator
// Release bumps the slot generation so outstanding handles stop resolving
// Slots are individually allocated; *T stays valid until the slot is released
type Arena[T any] struct {
	slots []*arenaSlot[T]
	free  []uint32
	reset func(*T)
	live  int
}

// NewArena creates an arena; reset is applied to a slot's value on every Alloc
func NewArena[T any](reset func(*T)) *Arena[T] {
	return &Arena[T]{reset: reset}
}

// Alloc claims a slot, reusing released ones first
func (a *Arena[T]) Alloc() (Handle, *T) {
	var idx uint32
	if n := len(a.free); n > 0 {
		idx = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		idx = uint32(len(a.slots))
		a.slots = append(a.slots, &arenaSlot[T]{})
	}

	slot := a.slots[idx]
	slot.live = true
	if a.reset != nil {
		a.reset(&slot.value)
	}
	a.live++
	return Handle{Index: idx, Gen: slot.gen}, &slot.value
}

// Get resolves a handle, false if released or reused
func (a *Arena[T]) Get(h Handle) (*T, bool) {
	if int(h.Index) >= len(a.slots) {
		return nil, false
	}
	slot := a.slots[h.Index]
	if !slot.live || slot.gen != h.Gen {
		return nil, false
	}
	return &slot.value, true
}

// Valid reports whether the handle still resolves
func (a *Arena[T]) Valid(h Handle) bool {
	_, ok := a.Get(h)
	return ok
}

// Release frees the slot and invalidates the handle, false on stale handle
func (a *Arena[T]) Release(h Handle) bool {
	if !a.Valid(h) {
		return false
	}
	slot := a.slots[h.Index]
	slot.live = false
	slot.gen++
	a.free = append(a.free, h.Index)
	a.live--
	return true
}

// Len returns the number of live slots
func (a *Arena[T]) Len() int {
	return a.live
}

// Cap returns the number of slots ever allocated
func (a *Arena[T]) Cap() int {
	return len(a.slots)
}
