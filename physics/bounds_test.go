package physics

import (
	"testing"

	"github.com/lixenwraith/skullblast/vmath"
)

func TestCrossedEdges(t *testing.T) {
	area := Area{Width: 400, Height: 700}

	tests := []struct {
		name     string
		pos, vel vmath.Vec2
		wantH    bool
		wantV    bool
	}{
		{"inside", vmath.V(200, 300), vmath.V(-100, -100), false, false},
		{"left outward", vmath.V(-1, 300), vmath.V(-50, 0), true, false},
		{"left returning", vmath.V(-1, 300), vmath.V(50, 0), false, false},
		{"right outward", vmath.V(401, 300), vmath.V(10, 5), true, false},
		{"top outward", vmath.V(100, -0.5), vmath.V(0, -10), false, true},
		{"bottom outward", vmath.V(100, 701), vmath.V(0, 10), false, true},
		{"corner", vmath.V(-2, -2), vmath.V(-1, -1), true, true},
		{"on edge", vmath.V(0, 0), vmath.V(-1, -1), false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, v := area.CrossedEdges(tt.pos, tt.vel)
			if h != tt.wantH || v != tt.wantV {
				t.Errorf("Expected (%v,%v), got (%v,%v)", tt.wantH, tt.wantV, h, v)
			}
		})
	}
}

func TestCircleOutside(t *testing.T) {
	area := Area{Width: 100, Height: 100}

	if area.CircleOutside(Circle{vmath.V(-10, 50), 16}) {
		t.Error("Expected partially visible circle to count as inside")
	}
	if !area.CircleOutside(Circle{vmath.V(-17, 50), 16}) {
		t.Error("Expected circle past the left edge to be outside")
	}
	if !area.CircleOutside(Circle{vmath.V(50, 120), 16}) {
		t.Error("Expected circle past the bottom edge to be outside")
	}
}

func TestClampInto(t *testing.T) {
	area := Area{Width: 100, Height: 50}
	if got := area.ClampInto(vmath.V(-5, 70)); got != vmath.V(0, 50) {
		t.Errorf("Expected (0,50), got %v", got)
	}
	if got := area.ClampInto(vmath.V(30, 20)); got != vmath.V(30, 20) {
		t.Errorf("Expected point inside to be unchanged, got %v", got)
	}
}

func TestReflectAxes(t *testing.T) {
	v := vmath.V(3, -4)
	if got := ReflectAxes(v, true, false); got != vmath.V(-3, -4) {
		t.Errorf("Expected (-3,-4), got %v", got)
	}
	if got := ReflectAxes(v, false, true); got != vmath.V(3, 4) {
		t.Errorf("Expected (3,4), got %v", got)
	}
	if got := ReflectAxes(v, false, false); got != v {
		t.Errorf("Expected unchanged %v, got %v", v, got)
	}
}
