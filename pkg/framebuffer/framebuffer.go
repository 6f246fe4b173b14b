// Package framebuffer provides a fixed-size, row-major colour buffer with
// bounds-checked writes and PNG export.
package framebuffer

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	"conway-fb/pkg/core"
)

// Framebuffer stores one colour per pixel in row-major order.
type Framebuffer struct {
	size       core.Size
	pixels     []color.RGBA
	current    color.RGBA
	background color.RGBA
}

// New allocates a w*h buffer cleared to a black background with white as the
// current paint colour. Negative dimensions are treated as zero.
func New(w, h int) *Framebuffer {
	fb := &Framebuffer{
		size:       core.NewSize(w, h),
		current:    rgba(color.White),
		background: rgba(color.Black),
	}
	fb.pixels = make([]color.RGBA, fb.size.Area())
	fb.Clear()
	return fb
}

func rgba(c color.Color) color.RGBA {
	return color.RGBAModel.Convert(c).(color.RGBA)
}

// Size returns the buffer dimensions.
func (fb *Framebuffer) Size() core.Size { return fb.size }

// Pixels exposes the backing slice. Callers may read it directly, e.g. for
// texture uploads.
func (fb *Framebuffer) Pixels() []color.RGBA { return fb.pixels }

// Clear fills every pixel with the background colour.
func (fb *Framebuffer) Clear() {
	for i := range fb.pixels {
		fb.pixels[i] = fb.background
	}
}

// SetPixel writes c at (x, y). Out of range writes are ignored.
func (fb *Framebuffer) SetPixel(x, y int, c color.Color) {
	if !fb.size.Contains(x, y) {
		return
	}
	fb.pixels[fb.size.Index(x, y)] = rgba(c)
}

// Point paints (x, y) with the current colour.
func (fb *Framebuffer) Point(x, y int) {
	fb.SetPixel(x, y, fb.current)
}

// Pixel returns the colour at (x, y); ok is false when out of range.
func (fb *Framebuffer) Pixel(x, y int) (c color.RGBA, ok bool) {
	if !fb.size.Contains(x, y) {
		return color.RGBA{}, false
	}
	return fb.pixels[fb.size.Index(x, y)], true
}

// SetBackgroundColor changes the colour used by subsequent Clear calls.
func (fb *Framebuffer) SetBackgroundColor(c color.Color) { fb.background = rgba(c) }

// SetCurrentColor changes the colour used by subsequent Point calls.
func (fb *Framebuffer) SetCurrentColor(c color.Color) { fb.current = rgba(c) }

// Background returns the clear colour.
func (fb *Framebuffer) Background() color.RGBA { return fb.background }

// Current returns the paint colour.
func (fb *Framebuffer) Current() color.RGBA { return fb.current }

// Image copies the buffer into a new RGBA image, one image pixel per buffer
// pixel.
func (fb *Framebuffer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.size.W, fb.size.H))
	for y := 0; y < fb.size.H; y++ {
		for x := 0; x < fb.size.W; x++ {
			img.SetRGBA(x, y, fb.pixels[fb.size.Index(x, y)])
		}
	}
	return img
}

// Encode writes the buffer to w as a PNG.
func (fb *Framebuffer) Encode(w io.Writer) error {
	return png.Encode(w, fb.Image())
}

// RenderToFile writes the buffer as a PNG to path, replacing any existing
// file.
func (fb *Framebuffer) RenderToFile(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("framebuffer: render to file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("framebuffer: render to file %s: %w", path, cerr)
		}
	}()
	if err := fb.Encode(f); err != nil {
		return fmt.Errorf("framebuffer: render to file %s: %w", path, err)
	}
	return nil
}
