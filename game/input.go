package game

import (
	"github.com/hajimehoshi/ebiten/v2"

	"tilechase/geom"
	"tilechase/sim"
)

// PlayerInput turns keyboard and mouse state into a sim.Intent
type PlayerInput struct {
	screenW, screenH int
}

// NewPlayerInput creates an input reader for a screen of the given size
func NewPlayerInput(screenW, screenH int) *PlayerInput {
	return &PlayerInput{screenW: screenW, screenH: screenH}
}

// Poll reads the current device state. Arrows or WASD move, space or the
// left mouse button fire, and the cursor aims relative to the screen center.
func (p *PlayerInput) Poll() sim.Intent {
	cx, cy := ebiten.CursorPosition()

	return sim.Intent{
		Up:    ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW),
		Down:  ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS),
		Left:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		Right: ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		Fire:  ebiten.IsKeyPressed(ebiten.KeySpace) || ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		Aim:   geom.V(float64(cx)-float64(p.screenW)/2, float64(cy)-float64(p.screenH)/2),
	}
}
