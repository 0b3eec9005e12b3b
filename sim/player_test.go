package sim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tilechase/geom"
)

func testConfig() *Config {
	cfg := DefaultConfig()
	return &cfg
}

func TestPlayerIntentVelocity(t *testing.T) {
	cfg := testConfig()
	d := cfg.PlayerSpeed * cfg.DiagonalFactor

	tests := []struct {
		name string
		in   Intent
		want geom.Vec2
	}{
		{"idle", Intent{}, geom.Vec2{}},
		{"up", Intent{Up: true}, geom.V(0, -300)},
		{"down", Intent{Down: true}, geom.V(0, 300)},
		{"left", Intent{Left: true}, geom.V(-300, 0)},
		{"right", Intent{Right: true}, geom.V(300, 0)},
		{"up right", Intent{Up: true, Right: true}, geom.V(d, -d)},
		{"down left", Intent{Down: true, Left: true}, geom.V(-d, d)},
		{"left and right", Intent{Left: true, Right: true}, geom.V(300, 0)},
		{"up and down", Intent{Up: true, Down: true}, geom.V(0, 300)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPlayer(cfg, geom.V(500, 500))
			shot := p.Update(tt.in, 0, 0, nil, nil)
			assert.Nil(t, shot)
			assert.Equal(t, tt.want, p.Vel)
		})
	}
}

func TestPlayerVelocityNotAccumulated(t *testing.T) {
	cfg := testConfig()
	p := NewPlayer(cfg, geom.V(500, 500))

	p.Update(Intent{Right: true}, 0.1, 0.1, nil, nil)
	p.Update(Intent{Right: true}, 0.2, 0.1, nil, nil)
	assert.Equal(t, geom.V(300, 0), p.Vel)

	p.Update(Intent{}, 0.3, 0.1, nil, nil)
	assert.Equal(t, geom.Vec2{}, p.Vel)
	assert.InDelta(t, 560, p.Pos.X, 1e-9)
}

func TestPlayerDiagonalSlower(t *testing.T) {
	cfg := testConfig()
	p := NewPlayer(cfg, geom.V(500, 500))
	p.Update(Intent{Down: true, Right: true}, 0, 0, nil, nil)
	assert.Less(t, p.Vel.Len(), cfg.PlayerSpeed*math.Sqrt2)
}

func TestPlayerFireCooldown(t *testing.T) {
	cfg := testConfig()
	cfg.FireCooldown = 0.15
	p := NewPlayer(cfg, geom.V(500, 500))
	fire := Intent{Fire: true, Aim: geom.V(1, 0)}

	assert.True(t, p.CanFire(0))
	require.NotNil(t, p.Update(fire, 0, 0, nil, nil), "first shot is never on cooldown")
	assert.Nil(t, p.Update(fire, 0.1, 0, nil, nil))
	assert.Nil(t, p.Update(fire, 0.15, 0, nil, nil), "cooldown is exclusive")
	assert.NotNil(t, p.Update(fire, 0.25, 0, nil, nil))

	last, fired := p.LastShot()
	assert.True(t, fired)
	assert.Equal(t, 0.25, last)
}

func TestPlayerShotAndRecoil(t *testing.T) {
	cfg := testConfig()
	const eps = 1e-9

	t.Run("aim right", func(t *testing.T) {
		p := NewPlayer(cfg, geom.V(200, 200))
		shot := p.Update(Intent{Fire: true, Aim: geom.V(50, 0)}, 0, 0.1, nil, nil)
		require.NotNil(t, shot)

		assert.InDelta(t, 230, shot.Pos.X, eps)
		assert.InDelta(t, 210, shot.Pos.Y, eps)
		assert.InDelta(t, cfg.ProjectileSpeed, shot.Vel.X, eps)
		assert.InDelta(t, 0, shot.Vel.Y, eps)

		assert.InDelta(t, -cfg.Knockback, p.Vel.X, eps)
		assert.InDelta(t, 0, p.Vel.Y, eps)
		assert.InDelta(t, 180, p.Pos.X, eps)
	})

	t.Run("aim down", func(t *testing.T) {
		p := NewPlayer(cfg, geom.V(200, 200))
		shot := p.Update(Intent{Right: true, Fire: true, Aim: geom.V(0, 20)}, 0, 0, nil, nil)
		require.NotNil(t, shot)

		assert.InDelta(t, 190, shot.Pos.X, eps)
		assert.InDelta(t, 230, shot.Pos.Y, eps)
		assert.InDelta(t, 0, shot.Vel.X, eps)
		assert.InDelta(t, cfg.ProjectileSpeed, shot.Vel.Y, eps)

		// Recoil overrides the movement intent
		assert.InDelta(t, 0, p.Vel.X, eps)
		assert.InDelta(t, -cfg.Knockback, p.Vel.Y, eps)
	})
}

func TestPlayerFacing(t *testing.T) {
	cfg := testConfig()
	p := NewPlayer(cfg, geom.V(200, 200))

	p.Update(Intent{Aim: geom.V(0, -10)}, 0, 0, nil, nil)
	assert.InDelta(t, 90, p.Facing, 1e-9, "pointer above turns the sprite counter-clockwise")

	p.Update(Intent{Aim: geom.V(-10, 0)}, 0, 0, nil, nil)
	assert.InDelta(t, 180, math.Abs(p.Facing), 1e-9)

	p.Update(Intent{Aim: geom.V(3, 3), Left: true}, 0, 0, nil, nil)
	assert.InDelta(t, -45, p.Facing, 1e-9, "facing ignores velocity")

	p.Update(Intent{}, 0, 0, nil, nil)
	assert.InDelta(t, -45, p.Facing, 1e-9, "no aim keeps facing")
}

func TestPlayerRenderDecoupledFromHit(t *testing.T) {
	cfg := testConfig()
	p := NewPlayer(cfg, geom.V(200, 200))

	p.Update(Intent{Aim: geom.V(1, 1), Right: true}, 0.1, 0.1, nil, nil)

	assert.Equal(t, cfg.PlayerHitBox.X, p.Hit.W)
	assert.Equal(t, cfg.PlayerHitBox.Y, p.Hit.H)
	assert.Greater(t, p.Render.W, cfg.PlayerSprite.X, "rotated sprite box grows")
	assert.InDelta(t, p.Pos.X, p.Hit.CenterX(), 1e-9)
	assert.InDelta(t, p.Pos.Y, p.Hit.CenterY(), 1e-9)
	assert.InDelta(t, p.Pos.X, p.Render.CenterX(), 1e-9)
	assert.InDelta(t, p.Pos.Y, p.Render.CenterY(), 1e-9)
}

func TestPlayerBlockedByWall(t *testing.T) {
	cfg := testConfig()
	walls := []geom.Rect{geom.R(256, 0, 64, 512)}
	p := NewPlayer(cfg, geom.V(200, 200))

	for i := 0; i < 60; i++ {
		p.Update(Intent{Right: true, Down: true}, float64(i)/60, 1.0/60, walls, nil)
		assert.False(t, p.Hit.Intersects(walls[0]))
	}
	assert.InDelta(t, 256-cfg.PlayerHitBox.X/2, p.Pos.X, 1e-9)
	assert.Greater(t, p.Pos.Y, 200.0, "still sliding along the wall")
}

func TestPlayerSlidesAlongWallWithOddHitBox(t *testing.T) {
	cfg := testConfig()
	cfg.PlayerHitBox = geom.V(20.1, 20.1)
	wall := geom.R(640, 0, 64, 4096)
	walls := []geom.Rect{wall}
	p := NewPlayer(cfg, geom.V(540, 200))

	now := 0.0
	for i := 0; i < 40; i++ {
		p.Update(Intent{Right: true}, now, 1.0/60, walls, nil)
		now += 1.0 / 60
	}
	require.InDelta(t, 640-10.05, p.Pos.X, 1e-9)

	p.Update(Intent{Down: true}, now, 1.0/60, walls, nil)
	assert.InDelta(t, 205.0, p.Pos.Y, 1e-9, "moves down instead of jumping over the wall")
	assert.LessOrEqual(t, p.Hit.Right(), wall.Left())
}
