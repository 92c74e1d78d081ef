package oled

import (
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
)

// LoadFontFace parses TTF font data and returns a face with the given point
// size, suitable for the Draw* text methods.
func LoadFontFace(ttf []byte, size float64) (font.Face, error) {
	f, err := truetype.Parse(ttf)
	if err != nil {
		return nil, err
	}
	return truetype.NewFace(f, &truetype.Options{
		Size: size,
	}), nil
}
