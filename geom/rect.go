package geom

import "math"

// Rect is an axis-aligned rectangle. X, Y is the top-left corner.
type Rect struct {
	X, Y, W, H float64
}

// R is shorthand for Rect{x, y, w, h}.
func R(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// RectAt returns a w×h rectangle centered on c
func RectAt(c Vec2, w, h float64) Rect {
	return Rect{X: c.X - w/2, Y: c.Y - h/2, W: w, H: h}
}

func (r Rect) Left() float64   { return r.X }
func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Top() float64    { return r.Y }
func (r Rect) Bottom() float64 { return r.Y + r.H }

func (r Rect) CenterX() float64 { return r.X + r.W/2 }
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

// Center returns the midpoint of the rectangle
func (r Rect) Center() Vec2 {
	return Vec2{r.CenterX(), r.CenterY()}
}

// WithCenter returns r moved so that its center is c
func (r Rect) WithCenter(c Vec2) Rect {
	r.X = c.X - r.W/2
	r.Y = c.Y - r.H/2
	return r
}

// WithCenterX returns r moved horizontally so that its center x is cx
func (r Rect) WithCenterX(cx float64) Rect {
	r.X = cx - r.W/2
	return r
}

// WithCenterY returns r moved vertically so that its center y is cy
func (r Rect) WithCenterY(cy float64) Rect {
	r.Y = cy - r.H/2
	return r
}

// Translate returns r offset by d
func (r Rect) Translate(d Vec2) Rect {
	r.X += d.X
	r.Y += d.Y
	return r
}

// Intersects reports whether the interiors of r and o overlap. Rectangles
// that only share an edge do not intersect, and empty rectangles never do.
func (r Rect) Intersects(o Rect) bool {
	if r.W <= 0 || r.H <= 0 || o.W <= 0 || o.H <= 0 {
		return false
	}
	return r.Left() < o.Right() && o.Left() < r.Right() &&
		r.Top() < o.Bottom() && o.Top() < r.Bottom()
}

// Contains reports whether o lies entirely inside r
func (r Rect) Contains(o Rect) bool {
	return o.Left() >= r.Left() && o.Right() <= r.Right() &&
		o.Top() >= r.Top() && o.Bottom() <= r.Bottom()
}

// RotatedBounds returns the axis-aligned bounding box of r rotated by deg
// degrees about its center. The result shares r's center.
func (r Rect) RotatedBounds(deg float64) Rect {
	sin, cos := math.Sincos(deg * math.Pi / 180)
	sin, cos = math.Abs(sin), math.Abs(cos)
	w := r.W*cos + r.H*sin
	h := r.W*sin + r.H*cos
	return RectAt(r.Center(), w, h)
}
