//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Overlay draws a one-line status readout (view mode, color mode, pause and
// recording state) in the top-left corner.
type Overlay struct {
	visible bool
}

// NewOverlay constructs an Overlay, visible by default.
func NewOverlay() *Overlay {
	return &Overlay{visible: true}
}

// Update handles the overlay's own input: H toggles visibility.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.visible = !o.visible
	}
}

// Draw renders the status line onto the screen.
func (o *Overlay) Draw(screen *ebiten.Image, status string) {
	if !o.visible || status == "" {
		return
	}
	face := basicfont.Face7x13
	text.Draw(screen, status, face, 6, 14, color.Black)
	text.Draw(screen, status, face, 5, 13, color.White)
}
