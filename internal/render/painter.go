//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// FieldPainter colorizes one scalar field per frame into an RGBA image and
// draws it scaled onto the screen.
type FieldPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewFieldPainter allocates a painter for a grid of size w*h.
func NewFieldPainter(w, h int) *FieldPainter {
	fp := &FieldPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	fp.img = ebiten.NewImage(w, h)
	return fp
}

// Blit colorizes field (brightness-masked by mask) into the painter image
// and draws it onto dst at the given integer scale.
func (fp *FieldPainter) Blit(dst *ebiten.Image, field, mask []float64, mode ColorMode, scale int) {
	if len(field) != fp.w*fp.h || len(mask) != fp.w*fp.h {
		return
	}
	fillFieldRGBA(fp.buf, field, mask, mode)
	fp.img.ReplacePixels(fp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(fp.img, op)
}

// Frame exposes the last colorized RGBA buffer at simulation resolution.
func (fp *FieldPainter) Frame() []byte { return fp.buf }

// Size returns the dimensions of the underlying image.
func (fp *FieldPainter) Size() (int, int) { return fp.w, fp.h }
