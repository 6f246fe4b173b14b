//go:build ebiten

package render

import (
	"conway-fb/pkg/framebuffer"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads a framebuffer into a single ebiten image.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a buffer of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit uploads fb into the painter image and draws it scaled onto dst.
func (gp *GridPainter) Blit(dst *ebiten.Image, fb *framebuffer.Framebuffer, scale int) {
	pixels := fb.Pixels()
	if len(pixels) != gp.w*gp.h {
		return
	}
	FillRGBA(gp.buf, pixels)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
