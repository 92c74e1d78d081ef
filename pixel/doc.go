// Package pixel implements the packed monochrome image format used by
// SSD1xxx OLED display controllers.
//
// The color and image types are compatible with Go's native [color.Color] and
// [image.Image] / [draw.Image] interfaces.
package pixel
