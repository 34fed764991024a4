package engine

import "testing"

// TestArenaStaleHandle verifies released handles stop resolving even after slot reuse
func TestArenaStaleHandle(t *testing.T) {
	arena := NewArena(func(v *int) { *v = 0 })

	h1, v1 := arena.Alloc()
	*v1 = 7

	if !arena.Release(h1) {
		t.Fatal("Expected release of live handle to succeed")
	}
	if arena.Valid(h1) {
		t.Error("Expected released handle to be invalid")
	}

	h2, v2 := arena.Alloc()
	if h2.Index != h1.Index {
		t.Errorf("Expected slot reuse at index %d, got %d", h1.Index, h2.Index)
	}
	if h2.Gen == h1.Gen {
		t.Error("Expected generation to change on reuse")
	}
	if *v2 != 0 {
		t.Errorf("Expected reset value 0, got %d", *v2)
	}
	if _, ok := arena.Get(h1); ok {
		t.Error("Expected stale handle not to alias reused slot")
	}
	if arena.Release(h1) {
		t.Error("Expected double release via stale handle to fail")
	}
}

// TestArenaCounts verifies live and capacity accounting
func TestArenaCounts(t *testing.T) {
	arena := NewArena[int](nil)

	var handles []Handle
	for i := 0; i < 5; i++ {
		h, _ := arena.Alloc()
		handles = append(handles, h)
	}
	arena.Release(handles[1])
	arena.Release(handles[3])

	if arena.Len() != 3 {
		t.Errorf("Expected 3 live, got %d", arena.Len())
	}
	if arena.Cap() != 5 {
		t.Errorf("Expected capacity 5, got %d", arena.Cap())
	}
	if arena.Valid(NilHandle) {
		t.Error("Expected NilHandle to be invalid")
	}
}
