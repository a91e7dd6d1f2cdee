package physics

import (
	"github.com/lixenwraith/skullblast/vmath"
)

// Circle is the collision shape shared by targets and projectiles
type Circle struct {
	Center vmath.Vec2
	Radius float64
}

// CirclesOverlap reports whether two circles touch or overlap
// Closed interval: centers exactly Radius sum apart count as a collision
func CirclesOverlap(a, b Circle) bool {
	return vmath.Distance(a.Center, b.Center) <= a.Radius+b.Radius
}

// ContactPoint returns the midpoint between two centers, used as the impact point for effects
func ContactPoint(a, b Circle) vmath.Vec2 {
	return a.Center.Lerp(b.Center, 0.5)
}
