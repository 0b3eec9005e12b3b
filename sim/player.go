package sim

import (
	"math/rand"

	"tilechase/geom"
)

// Intent is what the input layer asks the player to do this tick
type Intent struct {
	Up, Down, Left, Right bool

	// Fire requests a shot; the cooldown decides whether one happens
	Fire bool

	// Aim is the pointer position relative to the screen center. The zero
	// vector means "no aim" and keeps the current facing.
	Aim geom.Vec2
}

// Player is the controllable entity
type Player struct {
	Body

	// Facing is the sprite rotation in degrees, counter-clockwise on screen
	Facing float64

	// Render is the bounding box of the rotated sprite, for drawing only
	Render geom.Rect

	cfg      *Config
	sprite   geom.Rect
	lastShot float64
	hasFired bool
}

// NewPlayer creates a player centered on pos
func NewPlayer(cfg *Config, pos geom.Vec2) *Player {
	p := &Player{
		Body:   newBody(pos, cfg.PlayerHitBox),
		cfg:    cfg,
		sprite: geom.RectAt(pos, cfg.PlayerSprite.X, cfg.PlayerSprite.Y),
	}
	p.Render = p.sprite
	return p
}

// LastShot returns the clock time of the most recent shot and whether the
// player has fired at all
func (p *Player) LastShot() (float64, bool) {
	return p.lastShot, p.hasFired
}

// CanFire reports whether a shot at time now would clear the cooldown
func (p *Player) CanFire(now float64) bool {
	return !p.hasFired || now-p.lastShot > p.cfg.FireCooldown
}

// Update advances the player by dt seconds at clock time now. It returns the
// projectile fired this tick, or nil.
func (p *Player) Update(in Intent, now, dt float64, obstacles []geom.Rect, rng *rand.Rand) *Projectile {
	if !in.Aim.IsZero() {
		p.Facing = -in.Aim.Heading()
	}
	aim := -p.Facing

	p.Vel = p.intentVelocity(in)

	var shot *Projectile
	if in.Fire && p.CanFire(now) {
		p.lastShot = now
		p.hasFired = true

		dir := geom.V(1, 0).Rotate(aim)
		muzzle := p.Pos.Add(p.cfg.MuzzleOffset.Rotate(aim))
		shot = NewProjectile(p.cfg, muzzle, dir, now, rng)

		// Recoil replaces whatever the intent asked for this tick
		p.Vel = geom.V(-p.cfg.Knockback, 0).Rotate(aim)
	}

	p.move(p.Vel.Scale(dt), obstacles)

	p.Render = p.sprite.RotatedBounds(p.Facing).WithCenter(p.Hit.Center())
	return shot
}

// intentVelocity derives velocity from scratch each tick. Opposing keys
// resolve to right and down, matching a key poll that checks them last.
func (p *Player) intentVelocity(in Intent) geom.Vec2 {
	var v geom.Vec2
	speed := p.cfg.PlayerSpeed

	if in.Left {
		v.X = -speed
	}
	if in.Right {
		v.X = speed
	}
	if in.Up {
		v.Y = -speed
	}
	if in.Down {
		v.Y = speed
	}

	if v.X != 0 && v.Y != 0 {
		v = v.Scale(p.cfg.DiagonalFactor)
	}
	return v
}
