package sim

import (
	"errors"
	"fmt"
	"math/rand"

	"tilechase/geom"
	"tilechase/tilemap"
)

// ErrNoPlayerSpawn is returned when a map has no player spawn cell.
var ErrNoPlayerSpawn = errors.New("sim: map has no player spawn")

// EntityType identifies the kind of an entity in the world
type EntityType int

const (
	EntityTypeObstacle EntityType = iota
	EntityTypePlayer
	EntityTypeMob
	EntityTypeProjectile
)

func (t EntityType) String() string {
	switch t {
	case EntityTypeObstacle:
		return "obstacle"
	case EntityTypePlayer:
		return "player"
	case EntityTypeMob:
		return "mob"
	case EntityTypeProjectile:
		return "projectile"
	}
	return fmt.Sprintf("EntityType(%d)", int(t))
}

// Entity is a drawable member of the world
type Entity struct {
	Type EntityType

	// Exactly one of these is set, matching Type
	Obstacle   *tilemap.Obstacle
	Player     *Player
	Mob        *Mob
	Projectile *Projectile
}

// RenderRect returns the world box to draw for the entity
func (e Entity) RenderRect() geom.Rect {
	switch e.Type {
	case EntityTypeObstacle:
		return e.Obstacle.Rect
	case EntityTypePlayer:
		return e.Player.Render
	case EntityTypeMob:
		return e.Mob.Render
	case EntityTypeProjectile:
		return e.Projectile.Render
	}
	return geom.Rect{}
}

// Stats counts what happened during the most recent Step
type Stats struct {
	Fired   int
	Expired int
	Killed  int
}

// World owns every entity and runs one tick at a time. Each entity lives in
// the all-entities list plus the list for its type; nothing holds a pointer
// back to the lists it belongs to.
type World struct {
	cfg     *Config
	gameMap *tilemap.Map
	rng     *rand.Rand
	clock   float64

	player      *Player
	obstacles   []tilemap.Obstacle
	walls       []geom.Rect
	mobs        []*Mob
	projectiles []*Projectile
	all         []Entity

	pending []*Projectile
	camera  *Camera
	stats   Stats
}

// NewWorld builds a world from a loaded map. The player starts on the first
// player spawn cell and a mob is placed on every mob spawn cell.
func NewWorld(cfg *Config, m *tilemap.Map, rng *rand.Rand) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	spawns := m.Spawns(tilemap.TilePlayerSpawn)
	if len(spawns) == 0 {
		return nil, ErrNoPlayerSpawn
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(cfg.Seed))
	}

	viewW, viewH := cfg.Viewport()
	w := &World{
		cfg:     cfg,
		gameMap: m,
		rng:     rng,
		camera:  NewCamera(viewW, viewH, m.Width(), m.Height()),
	}

	w.obstacles = m.Obstacles()
	w.walls = make([]geom.Rect, len(w.obstacles))
	for i := range w.obstacles {
		w.walls[i] = w.obstacles[i].Rect
		w.all = append(w.all, Entity{Type: EntityTypeObstacle, Obstacle: &w.obstacles[i]})
	}

	w.player = NewPlayer(cfg, m.CellCenter(spawns[0]))
	w.all = append(w.all, Entity{Type: EntityTypePlayer, Player: w.player})

	for _, c := range m.Spawns(tilemap.TileMobSpawn) {
		w.AddMob(NewMob(cfg, m.CellCenter(c)))
	}

	w.camera.Update(w.player.Render)
	return w, nil
}

// AddMob registers a mob
func (w *World) AddMob(m *Mob) {
	w.mobs = append(w.mobs, m)
	w.all = append(w.all, Entity{Type: EntityTypeMob, Mob: m})
}

// KillMob marks a mob for removal at the end of the current or next Step.
// Killing a mob twice is harmless.
func (w *World) KillMob(m *Mob) {
	m.dead = true
}

// Step runs one tick: player, then mobs, then projectiles, then removal of
// expired and dead entities, then the shots fired this tick join the world,
// then the camera follows the player.
func (w *World) Step(in Intent, dt float64) {
	w.clock += dt
	now := w.clock
	w.stats = Stats{}

	if shot := w.player.Update(in, now, dt, w.walls, w.rng); shot != nil {
		w.pending = append(w.pending, shot)
		w.stats.Fired++
	}

	target := w.player.Pos
	for _, m := range w.mobs {
		if m.dead {
			continue
		}
		m.Update(target, dt, w.walls)
	}

	for _, p := range w.projectiles {
		p.Update(now, dt)
	}

	w.sweep()

	for _, p := range w.pending {
		w.projectiles = append(w.projectiles, p)
		w.all = append(w.all, Entity{Type: EntityTypeProjectile, Projectile: p})
	}
	clear(w.pending)
	w.pending = w.pending[:0]

	w.camera.Update(w.player.Render)
}

// sweep drops expired projectiles and dead mobs from every list they are in
func (w *World) sweep() {
	projectiles := w.projectiles[:0]
	for _, p := range w.projectiles {
		if p.expired {
			if !p.removed {
				p.removed = true
				w.stats.Expired++
			}
			continue
		}
		projectiles = append(projectiles, p)
	}
	clear(w.projectiles[len(projectiles):])
	w.projectiles = projectiles

	mobs := w.mobs[:0]
	for _, m := range w.mobs {
		if m.dead {
			w.stats.Killed++
			continue
		}
		mobs = append(mobs, m)
	}
	clear(w.mobs[len(mobs):])
	w.mobs = mobs

	all := w.all[:0]
	for _, e := range w.all {
		switch {
		case e.Type == EntityTypeProjectile && e.Projectile.removed:
			continue
		case e.Type == EntityTypeMob && e.Mob.dead:
			continue
		}
		all = append(all, e)
	}
	clear(w.all[len(all):])
	w.all = all
}

// Now returns the simulation clock in seconds
func (w *World) Now() float64 { return w.clock }

// Config returns the configuration the world was built with
func (w *World) Config() *Config { return w.cfg }

// Map returns the level the world was built from
func (w *World) Map() *tilemap.Map { return w.gameMap }

// Player returns the player
func (w *World) Player() *Player { return w.player }

// Mobs returns the live mobs. The slice is only valid until the next Step.
func (w *World) Mobs() []*Mob { return w.mobs }

// Projectiles returns the live projectiles. The slice is only valid until
// the next Step.
func (w *World) Projectiles() []*Projectile { return w.projectiles }

// Obstacles returns the static obstacles in collision order
func (w *World) Obstacles() []tilemap.Obstacle { return w.obstacles }

// Entities returns every entity in draw order: obstacles, the player, then
// mobs and projectiles in the order they joined. The slice is only valid
// until the next Step.
func (w *World) Entities() []Entity { return w.all }

// Camera returns the world's camera
func (w *World) Camera() *Camera { return w.camera }

// Stats returns counters for the last Step
func (w *World) Stats() Stats { return w.stats }
