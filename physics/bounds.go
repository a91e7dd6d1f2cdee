package physics

import (
	"github.com/lixenwraith/skullblast/vmath"
)

// Area is the axis-aligned play rectangle [0, Width] x [0, Height]
type Area struct {
	Width  float64
	Height float64
}

// Contains reports whether point lies inside the area, edges inclusive
func (a Area) Contains(p vmath.Vec2) bool {
	return p.X >= 0 && p.X <= a.Width && p.Y >= 0 && p.Y <= a.Height
}

// CircleOutside reports whether a circle lies entirely outside the area
func (a Area) CircleOutside(c Circle) bool {
	return c.Center.X+c.Radius < 0 || c.Center.X-c.Radius > a.Width ||
		c.Center.Y+c.Radius < 0 || c.Center.Y-c.Radius > a.Height
}

// CrossedEdges reports which axes a moving point has crossed outward
// horizontal: left/right edge crossed with velocity pointing away from the area
// vertical: top/bottom edge crossed with velocity pointing away from the area
// Points already moving back inside are not reported, so one crossing yields one bounce
func (a Area) CrossedEdges(pos, vel vmath.Vec2) (horizontal, vertical bool) {
	horizontal = (pos.X < 0 && vel.X < 0) || (pos.X > a.Width && vel.X > 0)
	vertical = (pos.Y < 0 && vel.Y < 0) || (pos.Y > a.Height && vel.Y > 0)
	return horizontal, vertical
}

// ClampInto returns point pulled back onto the nearest edge on each crossed axis
func (a Area) ClampInto(p vmath.Vec2) vmath.Vec2 {
	return vmath.Vec2{
		X: vmath.Clamp(p.X, 0, a.Width),
		Y: vmath.Clamp(p.Y, 0, a.Height),
	}
}
