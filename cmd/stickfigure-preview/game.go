package main

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/matzehuels/stickfigure/internal/preview"
)

// Game runs a preview session inside an ebiten window.
//
// Keys: G toggles the drawing gate, U undoes the last stamp, Esc or Q
// quits.
type Game struct {
	session    *preview.Session
	background color.Color

	visible   *ebiten.Image
	transient *ebiten.Image

	lastX, lastY int
	status       string
}

// newGame wraps s. background fills the window behind both layers.
func newGame(s *preview.Session, background color.Color) *Game {
	w, h := s.Size()
	return &Game{
		session:    s,
		background: background,
		visible:    ebiten.NewImage(w, h),
		transient:  ebiten.NewImage(w, h),
		lastX:      -1,
		lastY:      -1,
	}
}

// run opens the window and blocks until it is closed.
func run(g *Game, title string) error {
	w, h := g.session.Size()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(title)
	return ebiten.RunGame(g)
}

func (g *Game) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape), inpututil.IsKeyJustPressed(ebiten.KeyQ):
		return ebiten.Termination
	case inpututil.IsKeyJustPressed(ebiten.KeyG):
		if g.session.ToggleGate() {
			g.status = "gate open"
		} else {
			g.status = "gate locked"
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyU):
		if !g.session.Undo() {
			g.status = "nothing to undo"
		}
	}

	x, y := ebiten.CursorPosition()
	fx, fy := float64(x), float64(y)
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		g.session.Press(fx, fy)
	case x != g.lastX || y != g.lastY:
		g.session.Move(fx, fy)
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.session.Release(fx, fy)
	}
	g.lastX, g.lastY = x, y
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.session.TakeDirty() {
		g.visible.WritePixels(pixels(g.session.Visible()))
		g.transient.WritePixels(pixels(g.session.Transient()))
	}
	screen.Fill(g.background)
	screen.DrawImage(g.visible, nil)
	screen.DrawImage(g.transient, nil)

	gate := "open"
	if !g.session.Open() {
		gate = "locked"
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf("stamps: %d  gate: %s  %s", g.session.Stamps(), gate, g.status))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.session.Size()
}

// pixels returns img as tightly packed premultiplied RGBA bytes.
func pixels(img image.Image) []byte {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Stride == 4*rgba.Rect.Dx() {
		return rgba.Pix
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst.Pix
}
