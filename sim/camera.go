package sim

import (
	"math"

	"tilechase/geom"
)

// Camera keeps a screen-sized window over the map centered on a target,
// without scrolling past the map edges. It holds no motion state; the offset
// is recomputed from the target every update.
type Camera struct {
	Width, Height       float64 // Viewport size
	MapWidth, MapHeight float64 // World size

	offset geom.Vec2
}

// NewCamera creates a camera for a viewport over a map
func NewCamera(width, height, mapWidth, mapHeight float64) *Camera {
	return &Camera{
		Width:     width,
		Height:    height,
		MapWidth:  mapWidth,
		MapHeight: mapHeight,
	}
}

// Update recenters on target and returns the new offset
func (c *Camera) Update(target geom.Rect) geom.Vec2 {
	c.offset = geom.Vec2{
		X: clampOffset(-target.CenterX()+c.Width/2, c.MapWidth, c.Width),
		Y: clampOffset(-target.CenterY()+c.Height/2, c.MapHeight, c.Height),
	}
	return c.offset
}

// clampOffset keeps [-off, -off+view] inside [0, world]. A world smaller than
// the view pins the offset to 0.
func clampOffset(off, world, view float64) float64 {
	if world <= view {
		return 0
	}
	off = math.Min(0, off)
	return math.Max(-(world - view), off)
}

// Offset returns the translation from world to screen coordinates
func (c *Camera) Offset() geom.Vec2 { return c.offset }

// Apply translates a world rectangle into screen space
func (c *Camera) Apply(r geom.Rect) geom.Rect {
	return r.Translate(c.offset)
}

// ApplyPoint translates a world position into screen space
func (c *Camera) ApplyPoint(p geom.Vec2) geom.Vec2 {
	return p.Add(c.offset)
}

// View returns the visible part of the world
func (c *Camera) View() geom.Rect {
	return geom.R(-c.offset.X, -c.offset.Y, c.Width, c.Height)
}
