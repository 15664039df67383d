// Package viewer displays a rendered chart in a desktop window.
//
// The window shows a static image at its native resolution and closes on
// Escape, Q, or the window manager's close button. Show blocks until then,
// which matches how an interactive figure hands control back to a script.
package viewer

import (
	"errors"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// ErrNilImage is returned when Show is called without an image.
var ErrNilImage = errors.New("viewer: nil image")

// game wraps a static image as an ebiten scene. The GPU-side image is
// created lazily in Draw because textures must be allocated on the
// render thread.
type game struct {
	src image.Image
	img *ebiten.Image
	w   int
	h   int
}

func (g *game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) || ebiten.IsKeyPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.img == nil {
		g.img = ebiten.NewImageFromImage(g.src)
	}
	screen.DrawImage(g.img, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.w, g.h
}

// Show opens a window displaying img and blocks until the window closes.
func Show(img image.Image, title string) error {
	if img == nil {
		return ErrNilImage
	}
	b := img.Bounds()

	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(b.Dx(), b.Dy())
	ebiten.SetTPS(30)

	g := &game{src: img, w: b.Dx(), h: b.Dy()}
	return ebiten.RunGame(g)
}
