package vmath

import (
	"math"
	"testing"
)

func TestNormalizeZeroSafe(t *testing.T) {
	if got := V(0, 0).Normalize(); !got.IsZero() {
		t.Errorf("Expected zero vector, got %v", got)
	}
	got := V(3, 4).Normalize()
	if math.Abs(got.X-0.6) > 1e-12 || math.Abs(got.Y-0.8) > 1e-12 {
		t.Errorf("Expected (0.6,0.8), got %v", got)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, lo, hi, want float64
	}{
		{5, 0, 1, 1},
		{-5, 0, 1, 0},
		{0.5, 0, 1, 0.5},
		{2, 3, 1, 3}, // inverted range resolves to lo
	}
	for _, tt := range tests {
		if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.want {
			t.Errorf("Clamp(%v,%v,%v): expected %v, got %v", tt.v, tt.lo, tt.hi, tt.want, got)
		}
	}
}

func TestCentroid(t *testing.T) {
	if got := Centroid(nil); !got.IsZero() {
		t.Errorf("Expected zero centroid for empty input, got %v", got)
	}
	got := Centroid([]Vec2{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}})
	if got != V(5, 5) {
		t.Errorf("Expected (5,5), got %v", got)
	}
}

func TestFastRandDeterministic(t *testing.T) {
	a := NewFastRand(7)
	b := NewFastRand(7)
	for i := 0; i < 100; i++ {
		if a.Next() != b.Next() {
			t.Fatalf("Expected identical sequences for identical seeds, diverged at %d", i)
		}
	}

	r := NewFastRand(0)
	for i := 0; i < 1000; i++ {
		if n := r.Intn(5); n < 0 || n >= 5 {
			t.Fatalf("Intn out of range: %d", n)
		}
		if f := r.Float64(); f < 0 || f >= 1 {
			t.Fatalf("Float64 out of range: %f", f)
		}
	}
	if r.Intn(0) != 0 {
		t.Error("Expected Intn(0) to return 0")
	}
}
