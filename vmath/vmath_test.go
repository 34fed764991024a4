package vmath

import (
	"math"
	"testing"
)

// TestClampAndSign verifies scalar helpers
func TestClampAndSign(t *testing.T) {
	if Clamp(5, 0, 3) != 3 || Clamp(-1, 0, 3) != 0 || Clamp(2, 0, 3) != 2 {
		t.Error("Clamp returned out-of-range value")
	}
	if Sign(-0.5) != -1 || Sign(0) != 0 || Sign(2) != 1 {
		t.Error("Sign returned wrong value")
	}
}

// TestNormalizeZero verifies zero vectors normalize to zero
func TestNormalizeZero(t *testing.T) {
	x, y := Normalize2D(0, 0)
	if x != 0 || y != 0 {
		t.Errorf("Expected (0,0), got (%v,%v)", x, y)
	}
	x, y = Normalize2D(3, 4)
	if math.Abs(x-0.6) > 1e-9 || math.Abs(y-0.8) > 1e-9 {
		t.Errorf("Expected (0.6,0.8), got (%v,%v)", x, y)
	}
}

// TestFastRandDeterministic verifies seeded generators repeat and stay in range
func TestFastRandDeterministic(t *testing.T) {
	a := NewFastRand(42)
	b := NewFastRand(42)
	for i := 0; i < 1000; i++ {
		fa, fb := a.Float64(), b.Float64()
		if fa != fb {
			t.Fatalf("Expected identical sequences, diverged at %d", i)
		}
		if fa < 0 || fa >= 1 {
			t.Fatalf("Expected [0,1), got %v", fa)
		}
	}
	if NewFastRand(0).Next() == 0 {
		t.Error("Expected zero seed to be remapped")
	}
	if a.Intn(0) != 0 {
		t.Error("Expected Intn(0) to return 0")
	}
}

// TestCircleRectPenetration verifies push-out normals and depths
func TestCircleRectPenetration(t *testing.T) {
	r := Rect{X: 0, Y: 0, W: 100, H: 100}

	nx, ny, depth, hit := CircleRectPenetration(105, 50, 10, r)
	if !hit || nx != 1 || ny != 0 || depth != 5 {
		t.Errorf("Expected +X push of 5, got (%v,%v) %v hit=%v", nx, ny, depth, hit)
	}

	if _, _, _, hit = CircleRectPenetration(120, 50, 10, r); hit {
		t.Error("Expected no hit when clear of the rect")
	}

	// Centre inside: exit through the nearest face
	cases := []struct {
		cx, cy, nx, ny, depth float64
	}{
		{30, 50, -1, 0, 40},
		{85, 50, 1, 0, 25},
		{50, 4, 0, -1, 14},
		{40, 90, 0, 1, 20},
	}
	for _, tc := range cases {
		nx, ny, depth, hit = CircleRectPenetration(tc.cx, tc.cy, 10, r)
		if !hit || nx != tc.nx || ny != tc.ny || depth != tc.depth {
			t.Errorf("Centre (%v,%v): expected (%v,%v) %v, got (%v,%v) %v hit=%v",
				tc.cx, tc.cy, tc.nx, tc.ny, tc.depth, nx, ny, depth, hit)
		}
	}
}

// TestRectOverlap verifies point and circle containment
func TestRectOverlap(t *testing.T) {
	r := Rect{X: 10, Y: 10, W: 20, H: 20}
	if !r.Contains(10, 30) || r.Contains(31, 15) {
		t.Error("Contains mismatch")
	}
	if !r.OverlapsCircle(35, 20, 6) || r.OverlapsCircle(40, 20, 6) {
		t.Error("OverlapsCircle mismatch")
	}
	if !CirclesOverlap(0, 0, 5, 9, 0, 5) || CirclesOverlap(0, 0, 5, 10, 0, 5) {
		t.Error("CirclesOverlap mismatch")
	}
}
