package game

// DebugState holds debug toggles. It belongs to a Game and survives restarts.
type DebugState struct {
	ShowHitBoxes bool // Outline hit boxes and render boxes
	ShowHUD      bool // Clock, counts and TPS in the corner
}
