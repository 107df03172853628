package adage

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	flySpeed         = 3.5   // units per second
	mouseSensitivity = 0.005 // radians per pixel of drag
)

// Game drives a Scene through ebiten's frame loop: it gathers input, ticks
// the scene, renders into the software Renderer and blits the framebuffer
// onto the screen each Draw.
type Game struct {
	scene    *Scene
	renderer *Renderer
	frame    *ebiten.Image
	pixels   []byte

	dragging     bool
	lastX, lastY int
}

func NewGame(scene *Scene, width, height int) *Game {
	log.Printf("Creating renderer %dx%d", width, height)
	scene.Camera.SetAspectRatio(float64(width), float64(height))
	return &Game{
		scene:    scene,
		renderer: NewRenderer(width, height),
		frame:    ebiten.NewImage(width, height),
		pixels:   make([]byte, width*height*4),
	}
}

func (g *Game) Update() error {
	dt := 1.0 / float64(ebiten.TPS())
	cam := g.scene.Camera

	// WASD flying, space/shift for up and down.
	if ebiten.IsKeyPressed(ebiten.KeyW) {
		cam.MoveForward(flySpeed * dt)
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) {
		cam.MoveForward(-flySpeed * dt)
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) {
		cam.MoveRight(-flySpeed * dt)
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) {
		cam.MoveRight(flySpeed * dt)
	}
	if ebiten.IsKeyPressed(ebiten.KeySpace) {
		cam.MoveUp(flySpeed * dt)
	}
	if ebiten.IsKeyPressed(ebiten.KeyShiftLeft) {
		cam.MoveUp(-flySpeed * dt)
	}

	// Dragging the mouse orbits the camera around its target.
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.dragging = true
		g.lastX, g.lastY = ebiten.CursorPosition()
	}
	if g.dragging {
		x, y := ebiten.CursorPosition()
		yaw := float64(x-g.lastX) * mouseSensitivity
		pitch := -float64(y-g.lastY) * mouseSensitivity
		cam.RotateAroundTarget(yaw, pitch)
		g.lastX, g.lastY = x, y
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.dragging = false
	}

	g.scene.Update(dt)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Render(g.renderer)

	// The framebuffer is packed ARGB; ebiten wants RGBA bytes.
	for i, p := range g.renderer.Framebuffer() {
		g.pixels[i*4+0] = byte(p >> 16)
		g.pixels[i*4+1] = byte(p >> 8)
		g.pixels[i*4+2] = byte(p)
		g.pixels[i*4+3] = byte(p >> 24)
	}
	g.frame.WritePixels(g.pixels)

	screen.DrawImage(g.frame, nil)
	ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %0.2f", ebiten.ActualFPS()))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.renderer.Dimensions()
}
