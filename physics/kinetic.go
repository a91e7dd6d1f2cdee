package physics

import (
	"github.com/lixenwraith/skullblast/vmath"
)

// Integrate performs linear integration without drag: p = p + v*dt
func Integrate(pos, vel vmath.Vec2, dt float64) vmath.Vec2 {
	return vmath.Vec2{X: pos.X + vel.X*dt, Y: pos.Y + vel.Y*dt}
}

// Damp scales both velocity axes by factor, modelling energy loss
func Damp(vel vmath.Vec2, factor float64) vmath.Vec2 {
	return vel.Scale(factor)
}

// ReflectAxes negates the requested velocity axes
func ReflectAxes(vel vmath.Vec2, horizontal, vertical bool) vmath.Vec2 {
	if horizontal {
		vel = vmath.ReflectAxisX(vel)
	}
	if vertical {
		vel = vmath.ReflectAxisY(vel)
	}
	return vel
}
