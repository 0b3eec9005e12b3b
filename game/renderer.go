package game

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"tilechase/geom"
	"tilechase/sim"
	"tilechase/tilemap"
)

var (
	colorFloor      = color.RGBA{40, 40, 40, 255}
	colorWall       = color.RGBA{110, 90, 70, 255}
	colorWall2      = color.RGBA{70, 90, 110, 255}
	colorPlayer     = color.RGBA{100, 150, 255, 255}
	colorMob        = color.RGBA{90, 200, 90, 255}
	colorProjectile = color.RGBA{255, 220, 0, 255}
	colorHitBox     = color.RGBA{255, 0, 0, 255}
	colorRenderBox  = color.RGBA{255, 255, 255, 160}
	colorHUD        = color.RGBA{230, 230, 230, 255}
	colorMarker     = color.RGBA{0, 0, 0, 255}
)

// Renderer draws a sim.World through its camera. It never changes the world.
type Renderer struct {
	face      *text.GoXFace
	playerImg *ebiten.Image
	mobImg    *ebiten.Image
}

// NewRenderer creates placeholder sprites sized from the config
func NewRenderer(cfg *sim.Config) *Renderer {
	return &Renderer{
		face:      text.NewGoXFace(basicfont.Face7x13),
		playerImg: placeholderSprite(cfg.PlayerSprite, colorPlayer),
		mobImg:    placeholderSprite(cfg.MobSprite, colorMob),
	}
}

// placeholderSprite is a filled box with a nose marker on the +x side, so
// rotation is visible.
func placeholderSprite(size geom.Vec2, clr color.Color) *ebiten.Image {
	w, h := int(math.Ceil(size.X)), int(math.Ceil(size.Y))
	img := ebiten.NewImage(w, h)
	img.Fill(clr)
	vector.DrawFilledRect(img, float32(w)*0.75, float32(h)*0.4, float32(w)*0.25, float32(h)*0.2, colorMarker, false)
	return img
}

// Render draws every entity in world order, then the optional overlays
func (r *Renderer) Render(screen *ebiten.Image, world *sim.World, debug DebugState) {
	screen.Fill(colorFloor)
	cam := world.Camera()

	for _, e := range world.Entities() {
		switch e.Type {
		case sim.EntityTypeObstacle:
			clr := colorWall
			if e.Obstacle.Kind == tilemap.TileWall2 {
				clr = colorWall2
			}
			fillRect(screen, cam.Apply(e.Obstacle.Rect), clr)
		case sim.EntityTypePlayer:
			r.drawSprite(screen, cam, r.playerImg, e.Player.Render, e.Player.Facing)
		case sim.EntityTypeMob:
			r.drawSprite(screen, cam, r.mobImg, e.Mob.Render, e.Mob.Facing)
		case sim.EntityTypeProjectile:
			fillRect(screen, cam.Apply(e.Projectile.Render), colorProjectile)
		}
	}

	if debug.ShowHitBoxes {
		r.drawBoxes(screen, world)
	}
	if debug.ShowHUD {
		r.drawHUD(screen, world)
	}
}

// drawSprite rotates the sprite counter-clockwise by facing degrees and
// centers it on the render box
func (r *Renderer) drawSprite(screen *ebiten.Image, cam *sim.Camera, img *ebiten.Image, render geom.Rect, facing float64) {
	b := img.Bounds()
	center := cam.ApplyPoint(render.Center())

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(b.Dx())/2, -float64(b.Dy())/2)
	op.GeoM.Rotate(-facing * math.Pi / 180)
	op.GeoM.Translate(center.X, center.Y)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(img, op)
}

func (r *Renderer) drawBoxes(screen *ebiten.Image, world *sim.World) {
	cam := world.Camera()
	p := world.Player()
	strokeRect(screen, cam.Apply(p.Render), colorRenderBox)
	strokeRect(screen, cam.Apply(p.Hit), colorHitBox)
	for _, m := range world.Mobs() {
		strokeRect(screen, cam.Apply(m.Render), colorRenderBox)
		strokeRect(screen, cam.Apply(m.Hit), colorHitBox)
	}
}

func (r *Renderer) drawHUD(screen *ebiten.Image, world *sim.World) {
	p := world.Player()
	lines := []string{
		fmt.Sprintf("t=%.1fs  TPS %.0f", world.Now(), ebiten.ActualTPS()),
		fmt.Sprintf("pos (%.0f, %.0f)  vel (%.0f, %.0f)  facing %.0f", p.Pos.X, p.Pos.Y, p.Vel.X, p.Vel.Y, p.Facing),
		fmt.Sprintf("mobs %d  projectiles %d", len(world.Mobs()), len(world.Projectiles())),
	}

	for i, line := range lines {
		op := &text.DrawOptions{}
		op.GeoM.Translate(8, 8+float64(i)*16)
		op.ColorScale.ScaleWithColor(colorHUD)
		text.Draw(screen, line, r.face, op)
	}
}

func fillRect(dst *ebiten.Image, r geom.Rect, clr color.Color) {
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), clr, false)
}

func strokeRect(dst *ebiten.Image, r geom.Rect, clr color.Color) {
	vector.StrokeRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 1, clr, false)
}
