package geom

import "math"

// Vec2 is a 2D vector in world units. Screen convention: y grows downwards.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for Vec2{x, y}.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Scale multiplies both components by s
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Mul multiplies component-wise
func (v Vec2) Mul(o Vec2) Vec2 {
	return Vec2{v.X * o.X, v.Y * o.Y}
}

// Len returns the Euclidean length
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// IsZero reports whether both components are exactly zero
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Rotate rotates v by deg degrees. With y pointing down, positive angles turn
// clockwise on screen.
func (v Vec2) Rotate(deg float64) Vec2 {
	rad := deg * math.Pi / 180
	sin, cos := math.Sincos(rad)
	return Vec2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// Heading returns the angle of v from the positive x axis in degrees.
// The zero vector has heading 0.
func (v Vec2) Heading() float64 {
	if v.IsZero() {
		return 0
	}
	return math.Atan2(v.Y, v.X) * 180 / math.Pi
}

// AngleTo returns the angle in degrees needed to rotate v onto o, so that
// v.Rotate(v.AngleTo(o)) points along o. Zero vectors count as heading 0.
func (v Vec2) AngleTo(o Vec2) float64 {
	return o.Heading() - v.Heading()
}
