package pixel

import (
	"image"
	"image/color"
	"image/draw"
)

// Image is a packed image that supports in-place drawing.
type Image interface {
	draw.Image

	// Clear the image.
	Clear()

	// Fill the image with a single color.
	Fill(color.Color)
}

// Buffer holds the pixel values and is the container used by the packed image
// formats in this package.
type Buffer struct {
	// Rect is the image bounding box.
	Rect image.Rectangle

	// Pix are the image pixels.
	Pix []byte

	// Stride is the Pix stride (in bytes) between vertically adjacent pages.
	Stride int
}

func (p *Buffer) Bounds() image.Rectangle {
	return p.Rect
}

func (p *Buffer) Clear() {
	for i := range p.Pix {
		p.Pix[i] = 0x00
	}
}

// MonoVerticalLSBImage is a 1-bit per pixel monochrome image in the native
// byte order of SSD1xxx OLED display RAM.
//
// The surface is divided into horizontal pages of 8 pixel rows each; each
// byte holds one vertical 8-pixel slice of a page, with bit 0 at the top.
// The byte for pixel (x, y) is Pix[y/8*Stride + x], the bit within the byte
// is y&7.
type MonoVerticalLSBImage struct {
	Buffer
}

var _ Image = (*MonoVerticalLSBImage)(nil)

func NewMonoVerticalLSBImage(w, h int) *MonoVerticalLSBImage {
	pages := ((h + 7) & ^7) / 8 // round up to whole pages
	return &MonoVerticalLSBImage{
		Buffer: Buffer{
			Rect:   image.Rect(0, 0, w, h),
			Pix:    make([]byte, pages*w),
			Stride: w,
		},
	}
}

func (p *MonoVerticalLSBImage) ColorModel() color.Model {
	return MonoModel
}

func (p *MonoVerticalLSBImage) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return color.Transparent
	}

	var (
		pos = y/8*p.Stride + x
		bit = byte(1) << uint(y&7)
	)
	return Mono{
		On: p.Pix[pos]&bit != 0,
	}
}

// Set the pixel at (x, y). Pixels outside the image bounds are ignored.
func (p *MonoVerticalLSBImage) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return
	}

	var (
		pos = y/8*p.Stride + x
		bit = byte(1) << uint(y&7)
	)
	if monoModel(c).(Mono).On {
		p.Pix[pos] |= bit
	} else {
		p.Pix[pos] &^= bit
	}
}

// SetRect sets every pixel in r to c, one pixel at a time. Pixels outside the
// image bounds are ignored, so r may safely exceed the image.
func (p *MonoVerticalLSBImage) SetRect(r image.Rectangle, c color.Color) {
	for x := r.Min.X; x < r.Max.X; x++ {
		for y := r.Min.Y; y < r.Max.Y; y++ {
			p.Set(x, y, c)
		}
	}
}

func (p *MonoVerticalLSBImage) Fill(c color.Color) {
	var value byte
	if monoModel(c).(Mono).On {
		value = 0xff
	}
	for i := range p.Pix {
		p.Pix[i] = value
	}
}
