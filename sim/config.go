package sim

import (
	"fmt"

	"tilechase/geom"
)

// Config holds every tunable used by the simulation. Build it once and pass
// it by pointer; nothing reads it from package state.
type Config struct {
	// ScreenWidth is the viewport width in pixels
	ScreenWidth int

	// ScreenHeight is the viewport height in pixels
	ScreenHeight int

	// TileSize is the world size of one map cell
	TileSize float64

	// MaxFrameDelta caps the frame delta the driver hands to Step, in seconds
	MaxFrameDelta float64

	// Seed for the projectile spread RNG
	Seed int64

	// PlayerSpeed is the axis speed in pixels per second
	PlayerSpeed float64

	// DiagonalFactor scales velocity when moving on both axes at once
	DiagonalFactor float64

	// PlayerHitBox is the collision box size (W, H)
	PlayerHitBox geom.Vec2

	// PlayerSprite is the unrotated sprite size (W, H)
	PlayerSprite geom.Vec2

	// FireCooldown is the minimum time between shots in seconds
	FireCooldown float64

	// MuzzleOffset is where projectiles spawn relative to the player, facing +x
	MuzzleOffset geom.Vec2

	// Knockback is the recoil speed applied to the player on each shot
	Knockback float64

	// ProjectileSpeed in pixels per second
	ProjectileSpeed float64

	// ProjectileTravel is the lifetime of a projectile in seconds
	ProjectileTravel float64

	// ProjectileSpread is the half-angle of the firing cone in degrees
	ProjectileSpread float64

	// ProjectileSprite is the projectile size (W, H)
	ProjectileSprite geom.Vec2

	// MobSpeed is the forward drive of a pursuit agent. With the -velocity
	// drag term it is also the terminal speed.
	MobSpeed float64

	// MobHitBox is the collision box size (W, H)
	MobHitBox geom.Vec2

	// MobSprite is the unrotated sprite size (W, H)
	MobSprite geom.Vec2

	// MobMaxStep clamps dt for mob integration. Zero disables the clamp.
	MobMaxStep float64
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{
		ScreenWidth:      1024,
		ScreenHeight:     768,
		TileSize:         64,
		MaxFrameDelta:    0.1,
		Seed:             1,
		PlayerSpeed:      300,
		DiagonalFactor:   0.85,
		PlayerHitBox:     geom.V(35, 35),
		PlayerSprite:     geom.V(49, 43),
		FireCooldown:     0.15,
		MuzzleOffset:     geom.V(30, 10),
		Knockback:        200,
		ProjectileSpeed:  500,
		ProjectileTravel: 1.0,
		ProjectileSpread: 5,
		ProjectileSprite: geom.V(10, 10),
		MobSpeed:         150,
		MobHitBox:        geom.V(30, 30),
		MobSprite:        geom.V(43, 43),
		MobMaxStep:       0,
	}
}

// Validate checks the configuration before any entity is built
func (c *Config) Validate() error {
	if c.ScreenWidth <= 0 || c.ScreenHeight <= 0 {
		return fmt.Errorf("invalid screen size: %dx%d", c.ScreenWidth, c.ScreenHeight)
	}
	if c.TileSize <= 0 {
		return fmt.Errorf("invalid tile size: %v", c.TileSize)
	}
	if c.MaxFrameDelta <= 0 {
		return fmt.Errorf("invalid max frame delta: %v", c.MaxFrameDelta)
	}
	if c.PlayerSpeed <= 0 || c.ProjectileSpeed <= 0 || c.MobSpeed <= 0 {
		return fmt.Errorf("speeds must be positive (player %v, projectile %v, mob %v)",
			c.PlayerSpeed, c.ProjectileSpeed, c.MobSpeed)
	}
	if c.DiagonalFactor <= 0 || c.DiagonalFactor > 1 {
		return fmt.Errorf("invalid diagonal factor: %v", c.DiagonalFactor)
	}
	if c.FireCooldown < 0 || c.Knockback < 0 || c.ProjectileSpread < 0 || c.MobMaxStep < 0 {
		return fmt.Errorf("cooldown, knockback, spread and mob step clamp must not be negative")
	}
	if c.ProjectileTravel <= 0 {
		return fmt.Errorf("invalid projectile travel time: %v", c.ProjectileTravel)
	}
	for name, box := range map[string]geom.Vec2{
		"player hit box":    c.PlayerHitBox,
		"player sprite":     c.PlayerSprite,
		"mob hit box":       c.MobHitBox,
		"mob sprite":        c.MobSprite,
		"projectile sprite": c.ProjectileSprite,
	} {
		if box.X <= 0 || box.Y <= 0 {
			return fmt.Errorf("invalid %s: %vx%v", name, box.X, box.Y)
		}
	}
	return nil
}

// Viewport returns the screen size as floats
func (c *Config) Viewport() (float64, float64) {
	return float64(c.ScreenWidth), float64(c.ScreenHeight)
}
