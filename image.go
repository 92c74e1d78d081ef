package oled

import (
	"image"
	"image/draw"
)

// DrawImage draws src with its top-left corner at (x, y), converting pixels
// to monochrome through the display color model.
//
// The framebuffer is not cleared first: call Clear before DrawImage if the
// image should fully replace the current contents.
func (d *Display) DrawImage(src image.Image, x, y int) {
	d.mu.Lock()
	defer d.mu.Unlock()

	sr := src.Bounds()
	r := image.Rect(x, y, x+sr.Dx(), y+sr.Dy())
	draw.Draw(d.img, r, src, sr.Min, draw.Src)
}
