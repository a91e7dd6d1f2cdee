package physics

import (
	"math"

	"github.com/lixenwraith/skullblast/vmath"
)

// PathNode is a waypoint tagged with its normalized parameter
// T is assigned by even index spacing, not by arclength, so segments of different
// length are traversed at different visual speeds
type PathNode struct {
	Position vmath.Vec2
	T        float64
}

// Path is an immutable polyline with parametric lookup
type Path struct {
	nodes []PathNode
	// single holds the lone point of a one-point path, nodes stays empty in that case
	single *vmath.Vec2
}

// NewPath builds a path from waypoints, copying the input
func NewPath(points []vmath.Vec2) Path {
	switch len(points) {
	case 0:
		return Path{}
	case 1:
		p := points[0]
		return Path{single: &p}
	}

	last := float64(len(points) - 1)
	nodes := make([]PathNode, len(points))
	for i, p := range points {
		nodes[i] = PathNode{Position: p, T: float64(i) / last}
	}
	return Path{nodes: nodes}
}

// PositionAt returns the point at parameter t, clamped to [0, 1]; NaN maps to the start
// Degenerate paths return their single point or the zero point
func (p Path) PositionAt(t float64) vmath.Vec2 {
	if len(p.nodes) < 2 {
		if p.single != nil {
			return *p.single
		}
		return vmath.Vec2{}
	}

	if math.IsNaN(t) {
		t = 0
	}
	clamped := vmath.Clamp(t, 0, 1)
	scaled := clamped * float64(len(p.nodes)-1)
	i := int(math.Floor(scaled))
	frac := scaled - float64(i)

	if i >= len(p.nodes)-1 {
		return p.nodes[len(p.nodes)-1].Position
	}

	return p.nodes[i].Position.Lerp(p.nodes[i+1].Position, frac)
}

// Nodes returns a copy of the tagged waypoints
func (p Path) Nodes() []PathNode {
	out := make([]PathNode, len(p.nodes))
	copy(out, p.nodes)
	return out
}

// Points returns a copy of the waypoint positions
func (p Path) Points() []vmath.Vec2 {
	if len(p.nodes) == 0 {
		if p.single != nil {
			return []vmath.Vec2{*p.single}
		}
		return nil
	}
	out := make([]vmath.Vec2, len(p.nodes))
	for i, n := range p.nodes {
		out[i] = n.Position
	}
	return out
}

// Len returns the true polyline length
func (p Path) Len() float64 {
	var total float64
	for i := 1; i < len(p.nodes); i++ {
		total += vmath.Distance(p.nodes[i-1].Position, p.nodes[i].Position)
	}
	return total
}

// IsDegenerate reports whether the path has fewer than two points
func (p Path) IsDegenerate() bool {
	return len(p.nodes) < 2
}
