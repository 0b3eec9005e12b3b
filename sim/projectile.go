package sim

import (
	"math/rand"

	"tilechase/geom"
)

// Projectile flies in a straight line until its travel time runs out. It does
// not react to obstacles.
type Projectile struct {
	Pos geom.Vec2
	Vel geom.Vec2

	// Render is the drawn box, centered on Pos
	Render geom.Rect

	spawnTime float64
	travel    float64
	expired   bool
	removed   bool
}

// NewProjectile spawns a projectile at pos heading along dir (a unit vector),
// with a random spread drawn once from the configured cone. A nil rng fires
// dead straight.
func NewProjectile(cfg *Config, pos, dir geom.Vec2, now float64, rng *rand.Rand) *Projectile {
	spread := 0.0
	if cfg.ProjectileSpread > 0 && rng != nil {
		spread = (rng.Float64()*2 - 1) * cfg.ProjectileSpread
	}
	return &Projectile{
		Pos:       pos,
		Vel:       dir.Rotate(spread).Scale(cfg.ProjectileSpeed),
		Render:    geom.RectAt(pos, cfg.ProjectileSprite.X, cfg.ProjectileSprite.Y),
		spawnTime: now,
		travel:    cfg.ProjectileTravel,
	}
}

// SpawnTime returns the clock time the projectile was created
func (p *Projectile) SpawnTime() float64 { return p.spawnTime }

// Age returns how long the projectile has existed at time now
func (p *Projectile) Age(now float64) float64 { return now - p.spawnTime }

// Expired reports whether the travel time has run out
func (p *Projectile) Expired() bool { return p.expired }

// Update moves the projectile and reports whether it has expired. An expired
// projectile is frozen; further calls only report true.
func (p *Projectile) Update(now, dt float64) bool {
	if p.expired {
		return true
	}

	p.Pos = p.Pos.Add(p.Vel.Scale(dt))
	p.Render = p.Render.WithCenter(p.Pos)

	if now-p.spawnTime > p.travel {
		p.expired = true
	}
	return p.expired
}
