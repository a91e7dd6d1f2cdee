package vmath

import "math"

// Vec2 is a 2D point or vector in play-area units (pixels)
type Vec2 struct {
	X float64 `msgpack:"x" toml:"x"`
	Y float64 `msgpack:"y" toml:"y"`
}

// V is shorthand for Vec2{x, y}
func V(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

// Add returns v + o
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{X: v.X + o.X, Y: v.Y + o.Y} }

// Sub returns v - o
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{X: v.X - o.X, Y: v.Y - o.Y} }

// Scale multiplies both axes by s
func (v Vec2) Scale(s float64) Vec2 { return Vec2{X: v.X * s, Y: v.Y * s} }

// Dot returns x1*x2 + y1*y2
func (v Vec2) Dot(o Vec2) float64 { return v.X*o.X + v.Y*o.Y }

// Magnitude returns Euclidean length
func (v Vec2) Magnitude() float64 { return math.Hypot(v.X, v.Y) }

// MagnitudeSq returns squared length without sqrt
func (v Vec2) MagnitudeSq() float64 { return v.X*v.X + v.Y*v.Y }

// IsZero reports whether both axes are exactly zero
func (v Vec2) IsZero() bool { return v.X == 0 && v.Y == 0 }

// Normalize returns unit vector, zero-safe
// Vectors shorter than Epsilon normalize to zero
func (v Vec2) Normalize() Vec2 {
	mag := v.Magnitude()
	if mag <= Epsilon {
		return Vec2{}
	}
	return Vec2{X: v.X / mag, Y: v.Y / mag}
}

// Lerp interpolates from v to o by t without clamping t
func (v Vec2) Lerp(o Vec2, t float64) Vec2 {
	return Vec2{X: v.X + (o.X-v.X)*t, Y: v.Y + (o.Y-v.Y)*t}
}

// Distance returns Euclidean distance between two points
func Distance(a, b Vec2) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// FromAngle returns unit vector for angle in radians (0 = +X, positive = +Y)
func FromAngle(radians float64) Vec2 {
	return Vec2{X: math.Cos(radians), Y: math.Sin(radians)}
}

// ReflectAxisX returns velocity reflected off a vertical wall (left/right edge)
func ReflectAxisX(v Vec2) Vec2 { return Vec2{X: -v.X, Y: v.Y} }

// ReflectAxisY returns velocity reflected off a horizontal wall (top/bottom edge)
func ReflectAxisY(v Vec2) Vec2 { return Vec2{X: v.X, Y: -v.Y} }

// Centroid returns the arithmetic mean of points, zero for empty input
func Centroid(points []Vec2) Vec2 {
	if len(points) == 0 {
		return Vec2{}
	}
	var sum Vec2
	for _, p := range points {
		sum = sum.Add(p)
	}
	return sum.Scale(1 / float64(len(points)))
}
