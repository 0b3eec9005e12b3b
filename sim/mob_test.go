package sim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tilechase/geom"
)

func TestMobConvergesOnStationaryTarget(t *testing.T) {
	const dt = 1.0 / 60
	cfg := testConfig()
	target := geom.V(400, 100)
	m := NewMob(cfg, geom.V(100, 100))

	// Approach: distance shrinks every tick
	prev := target.Sub(m.Pos).Len()
	ticks := 0
	for prev > 5 {
		m.Update(target, dt, nil)
		d := target.Sub(m.Pos).Len()
		require.Less(t, d, prev, "tick %d", ticks)
		prev = d
		ticks++
		require.Less(t, ticks, 10000, "never arrived")
	}
	assert.LessOrEqual(t, m.Vel.Len(), cfg.MobSpeed, "drag bounds speed")

	// Settling: overshoot stays bounded and dies down
	var tail float64
	for i := 0; i < 30*60; i++ {
		m.Update(target, dt, nil)
		d := target.Sub(m.Pos).Len()
		require.False(t, math.IsNaN(d))
		require.Less(t, d, 75.0, "tick %d diverged", i)
		if i >= 29*60 {
			tail = math.Max(tail, d)
		}
	}
	assert.Less(t, tail, 20.0)
}

func TestMobFacingAtTarget(t *testing.T) {
	cfg := testConfig()
	m := NewMob(cfg, geom.V(64, 64))

	m.Update(m.Pos, 1.0/60, nil)
	assert.False(t, math.IsNaN(m.Facing))
	assert.False(t, math.IsNaN(m.Pos.X) || math.IsNaN(m.Pos.Y))

	m.Facing = 37
	m.Update(m.Pos, 1.0/60, nil)
	assert.Equal(t, 37.0, m.Facing, "zero offset keeps the previous facing")
}

func TestMobSteering(t *testing.T) {
	cfg := testConfig()
	m := NewMob(cfg, geom.V(100, 100))

	m.Update(geom.V(100, 300), 0.01, nil)

	assert.InDelta(t, -90, m.Facing, 1e-9)
	assert.InDelta(t, 0, m.Acc.X, 1e-9)
	assert.InDelta(t, cfg.MobSpeed, m.Acc.Y, 1e-9, "at rest the drag term is zero")

	// v = a·dt, p += v·dt + ½·a·dt²
	assert.InDelta(t, 1.5, m.Vel.Y, 1e-9)
	assert.InDelta(t, 100+1.5*0.01+0.5*150*0.0001, m.Pos.Y, 1e-9)

	m.Update(geom.V(100, 300), 0.01, nil)
	assert.InDelta(t, cfg.MobSpeed-1.5, m.Acc.Y, 1e-9, "drag opposes velocity")
}

func TestMobStopsAtWall(t *testing.T) {
	const dt = 1.0 / 60
	cfg := testConfig()
	wall := geom.R(192, 0, 64, 512)
	m := NewMob(cfg, geom.V(100, 200))

	for i := 0; i < 600; i++ {
		m.Update(geom.V(400, 200), dt, []geom.Rect{wall})
		require.False(t, m.Hit.Intersects(wall), "tick %d", i)
		assert.InDelta(t, m.Pos.X, m.Hit.CenterX(), 1e-9)
		assert.InDelta(t, m.Pos.Y, m.Hit.CenterY(), 1e-9)
	}
	assert.InDelta(t, 192-cfg.MobHitBox.X/2, m.Pos.X, 1e-9)
}

func TestMobStepClamp(t *testing.T) {
	cfg := testConfig()
	cfg.MobMaxStep = 0.05

	a := NewMob(cfg, geom.V(0, 0))
	b := NewMob(cfg, geom.V(0, 0))
	a.Update(geom.V(500, 500), 2, nil)
	b.Update(geom.V(500, 500), 0.05, nil)
	assert.Equal(t, b.Pos, a.Pos)
	assert.Equal(t, b.Vel, a.Vel)

	cfg.MobMaxStep = 0
	c := NewMob(cfg, geom.V(0, 0))
	c.Update(geom.V(500, 500), 2, nil)
	assert.Greater(t, c.Pos.Len(), a.Pos.Len(), "zero disables the clamp")
}
