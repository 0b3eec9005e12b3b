package sim

import (
	"math"

	"tilechase/geom"
)

// Axis selects which component a collision pass corrects
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

func (a Axis) String() string {
	if a == AxisX {
		return "x"
	}
	return "y"
}

// Resolve corrects one axis of a moving hit box against static obstacles.
//
// hit must already be placed on the axis under test. The first intersecting
// obstacle in slice order wins; it is not necessarily the nearest. On contact
// the returned center snaps flush against the obstacle face opposite the
// direction of travel and the returned velocity is zero. A contact with zero
// velocity on the axis leaves the center untouched. collided reports whether
// any obstacle intersected.
func Resolve(hit geom.Rect, vel geom.Vec2, obstacles []geom.Rect, axis Axis) (center, v float64, collided bool) {
	hit, v, collided = resolveRect(hit, vel, obstacles, axis)
	if axis == AxisX {
		return hit.CenterX(), v, collided
	}
	return hit.CenterY(), v, collided
}

// resolveRect is Resolve working on the box itself. A snapped box touches
// the obstacle face but never overlaps it, even by rounding error.
func resolveRect(hit geom.Rect, vel geom.Vec2, obstacles []geom.Rect, axis Axis) (geom.Rect, float64, bool) {
	v := vel.X
	if axis == AxisY {
		v = vel.Y
	}

	idx := firstHit(hit, obstacles)
	if idx < 0 {
		return hit, v, false
	}
	o := obstacles[idx]

	switch axis {
	case AxisX:
		if v > 0 {
			hit.X = flushBefore(o.Left(), hit.W)
		} else if v < 0 {
			hit.X = o.Right()
		}
	case AxisY:
		if v > 0 {
			hit.Y = flushBefore(o.Top(), hit.H)
		} else if v < 0 {
			hit.Y = o.Bottom()
		}
	}
	return hit, 0, true
}

// flushBefore returns the largest start such that start+size <= edge.
func flushBefore(edge, size float64) float64 {
	start := edge - size
	for start+size > edge {
		start = math.Nextafter(start, math.Inf(-1))
	}
	return start
}

func firstHit(hit geom.Rect, obstacles []geom.Rect) int {
	for i, o := range obstacles {
		if hit.Intersects(o) {
			return i
		}
	}
	return -1
}

// Body is the movable part shared by the player and mobs: a position, a
// velocity and a fixed-size hit box centered on the position.
type Body struct {
	Pos geom.Vec2
	Vel geom.Vec2
	Hit geom.Rect
}

func newBody(pos geom.Vec2, hitBox geom.Vec2) Body {
	return Body{
		Pos: pos,
		Hit: geom.RectAt(pos, hitBox.X, hitBox.Y),
	}
}

// move applies delta and settles collisions one axis at a time. The x pass
// runs with the hit box still at last tick's y, so a diagonal move into a
// wall never borrows a correction from the other axis. The box is moved by
// delta rather than re-centered on Pos so a box resting flush against a wall
// stays exactly flush; Pos is read back from it afterwards.
func (b *Body) move(delta geom.Vec2, obstacles []geom.Rect) {
	b.Hit.X += delta.X
	b.resolveAxis(obstacles, AxisX)

	b.Hit.Y += delta.Y
	b.resolveAxis(obstacles, AxisY)

	b.Pos = b.Hit.Center()
}

func (b *Body) resolveAxis(obstacles []geom.Rect, axis Axis) {
	hit, v, collided := resolveRect(b.Hit, b.Vel, obstacles, axis)
	if !collided {
		return
	}
	b.Hit = hit
	if axis == AxisX {
		b.Vel.X = v
	} else {
		b.Vel.Y = v
	}
}
