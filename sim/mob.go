package sim

import "tilechase/geom"

var heading = geom.V(1, 0)

// Mob is a pursuit agent. It accelerates toward its target with a fixed
// forward drive and a drag term of -velocity, so its speed settles at
// MobSpeed and it damps out around a stationary target.
type Mob struct {
	Body
	Acc geom.Vec2

	// Facing is the sprite rotation in degrees, counter-clockwise on screen
	Facing float64

	// Render is the bounding box of the rotated sprite, for drawing only
	Render geom.Rect

	cfg    *Config
	sprite geom.Rect
	dead   bool
}

// NewMob creates a mob at rest centered on pos
func NewMob(cfg *Config, pos geom.Vec2) *Mob {
	m := &Mob{
		Body:   newBody(pos, cfg.MobHitBox),
		cfg:    cfg,
		sprite: geom.RectAt(pos, cfg.MobSprite.X, cfg.MobSprite.Y),
	}
	m.Render = m.sprite
	return m
}

// Dead reports whether the mob has been killed
func (m *Mob) Dead() bool { return m.dead }

// Update steers toward target for dt seconds. A mob standing exactly on its
// target keeps its previous facing, so the drive keeps its last direction
// instead of snapping to +x (heading 0).
func (m *Mob) Update(target geom.Vec2, dt float64, obstacles []geom.Rect) {
	if m.cfg.MobMaxStep > 0 && dt > m.cfg.MobMaxStep {
		dt = m.cfg.MobMaxStep
	}

	if toTarget := target.Sub(m.Pos); !toTarget.IsZero() {
		m.Facing = toTarget.AngleTo(heading)
	}

	m.Acc = geom.V(m.cfg.MobSpeed, 0).Rotate(-m.Facing)
	m.Acc = m.Acc.Add(m.Vel.Scale(-1))

	m.Vel = m.Vel.Add(m.Acc.Scale(dt))
	delta := m.Vel.Scale(dt).Add(m.Acc.Scale(0.5 * dt * dt))

	m.move(delta, obstacles)

	m.Render = m.sprite.RotatedBounds(m.Facing).WithCenter(m.Hit.Center())
}
