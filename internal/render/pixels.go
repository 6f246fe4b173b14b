package render

import (
	"image/color"

	"conway-fb/pkg/framebuffer"
	"conway-fb/pkg/life"
)

// DrawGrid clears fb and paints every cell of g at the matching pixel using
// the grid's colour mapping. Cells outside fb are skipped.
func DrawGrid(g *life.Grid, fb *framebuffer.Framebuffer) {
	fb.Clear()
	size := g.Size()
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			if state, ok := g.Cell(x, y); ok {
				fb.SetPixel(x, y, g.ColorFor(state))
			}
		}
	}
}

// FillRGBA serialises pixels into buf as R,G,B,A bytes. buf must hold at
// least 4*len(pixels) bytes; extra pixels are dropped otherwise.
func FillRGBA(buf []byte, pixels []color.RGBA) {
	n := len(buf) / 4
	if len(pixels) < n {
		n = len(pixels)
	}
	for i := 0; i < n; i++ {
		base := i * 4
		px := pixels[i]
		buf[base+0] = px.R
		buf[base+1] = px.G
		buf[base+2] = px.B
		buf[base+3] = px.A
	}
}
