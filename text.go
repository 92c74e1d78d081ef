package oled

import (
	"image"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/BeatGlow/oled/pixel"
)

// DrawChar draws a single character with its top-left corner at (x, y).
func (d *Display) DrawChar(c rune, face font.Face, x, y int, on bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.drawString(string(c), face, x, y, on)
}

// DrawString draws a string with its top-left corner at (x, y). A newline
// moves the pen to the start of the next text line. Glyphs extending past
// the display edges are clipped pixel-wise.
//
// Drawing with on set to false erases previously drawn text.
func (d *Display) DrawString(s string, face font.Face, x, y int, on bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.drawString(s, face, x, y, on)
}

// DrawStringCentered draws a string horizontally centered at height y.
func (d *Display) DrawStringCentered(s string, face font.Face, y int, on bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	x := (d.width - font.MeasureString(face, s).Ceil()) / 2
	d.drawString(s, face, x, y, on)
}

func (d *Display) drawString(s string, face font.Face, x, y int, on bool) {
	metrics := face.Metrics()
	drawer := font.Drawer{
		Dst:  d.img,
		Src:  image.NewUniform(pixel.Mono{On: on}),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y) + metrics.Ascent},
	}
	for _, line := range strings.Split(s, "\n") {
		drawer.Dot.X = fixed.I(x)
		drawer.DrawString(line)
		drawer.Dot.Y += metrics.Height
	}
}
