package game

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"tilechase/sim"
	"tilechase/tilemap"
)

// Game adapts a sim.World to ebiten's frame loop
type Game struct {
	config   *sim.Config
	level    *tilemap.Map
	world    *sim.World
	input    *PlayerInput
	renderer *Renderer
	profiler *Profiler
	debug    DebugState

	// Last update time for delta time calculation
	lastUpdateTime time.Time
}

// NewGame creates a game over a loaded level
func NewGame(config *sim.Config, level *tilemap.Map, profiler *Profiler) (*Game, error) {
	g := &Game{
		config:   config,
		level:    level,
		input:    NewPlayerInput(config.ScreenWidth, config.ScreenHeight),
		renderer: NewRenderer(config),
		profiler: profiler,
		debug:    DebugState{ShowHUD: true},
	}
	if err := g.reset(); err != nil {
		return nil, err
	}
	return g, nil
}

// reset rebuilds the world from the level, throwing away every entity
func (g *Game) reset() error {
	world, err := sim.NewWorld(g.config, g.level, rand.New(rand.NewSource(g.config.Seed)))
	if err != nil {
		return fmt.Errorf("failed to build world: %w", err)
	}
	g.world = world
	g.lastUpdateTime = time.Now()

	log.Printf("World ready: %dx%d tiles, %d obstacles, %d mobs",
		g.level.TileWidth(), g.level.TileHeight(), len(world.Obstacles()), len(world.Mobs()))
	return nil
}

// World returns the running simulation
func (g *Game) World() *sim.World { return g.world }

// Update advances the simulation by the wall-clock time since the last frame
func (g *Game) Update() error {
	now := time.Now()
	deltaTime := now.Sub(g.lastUpdateTime).Seconds()
	g.lastUpdateTime = now

	// Clamp delta time to prevent large jumps after a stall
	if deltaTime > g.config.MaxFrameDelta {
		deltaTime = g.config.MaxFrameDelta
	}

	g.handleDebugKeys()

	g.world.Step(g.input.Poll(), deltaTime)
	return nil
}

func (g *Game) handleDebugKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.debug.ShowHitBoxes = !g.debug.ShowHitBoxes
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF2) {
		g.debug.ShowHUD = !g.debug.ShowHUD
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.reset(); err != nil {
			log.Printf("Restart failed: %v", err)
		}
	}
	if g.profiler != nil && inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		if err := g.profiler.CaptureProfile("manual"); err != nil {
			log.Printf("Profile not captured: %v", err)
		} else {
			log.Printf("Capturing CPU profile...")
		}
	}
}

// Draw renders the game
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Render(screen, g.world, g.debug)
	if g.profiler != nil && g.profiler.IsProfiling() {
		ebitenutil.DebugPrintAt(screen, "profiling", g.config.ScreenWidth-70, 4)
	}
}

// Layout returns the game's screen size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.config.ScreenWidth, g.config.ScreenHeight
}
