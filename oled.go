// Package oled contains a driver for SSD1306 monochrome OLED displays
// reached over a register-style serial bus.
//
// The driver owns an in-memory framebuffer in the controller's native packed
// byte order. Drawing operations mutate the framebuffer locally; Update and
// UpdateRect synchronize it to the device, streaming display RAM in bus
// transaction sized chunks.
package oled

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"log"
	"os"
	"sync"

	"github.com/BeatGlow/oled/pixel"
)

var debug bool

func init() {
	debug = os.Getenv("OLED_DEBUG") != ""
}

// Errors
var (
	ErrUpdateArea = errors.New("oled: invalid update area")
)

// Config is the display configuration.
type Config struct {
	// Width of the display in pixels.
	Width int

	// Height of the display in pixels.
	Height int
}

// Display drives a single SSD1306 display controller.
//
// One mutex guards the framebuffer, the transfer scratch buffer and the bus
// connection; every public mutating or I/O-performing method holds it for
// its full duration. Back-to-back calls from multiple goroutines are
// serialized, never interleaved.
type Display struct {
	mu      sync.Mutex
	c       Conn
	img     *pixel.MonoVerticalLSBImage
	scratch [maxTransferSize]byte
	width   int
	height  int
	halted  bool
}

// New clears the framebuffer, sends the initialization sequence and returns
// a ready display. A nil config selects the default 128×64 geometry. If any
// initialization write fails the transport error is returned and the display
// is unusable.
func New(c Conn, config *Config) (*Display, error) {
	if config == nil {
		config = new(Config)
	}
	if config.Width == 0 {
		config.Width = defaultWidth
	}
	if config.Height == 0 {
		config.Height = defaultHeight
	}

	var clockDiv, comPins byte
	switch {
	case config.Width == 64 && config.Height == 32:
		clockDiv, comPins = 0x80, 0x12
	case config.Width == 64 && config.Height == 48:
		clockDiv, comPins = 0x80, 0x12
	case config.Width == 96 && config.Height == 16:
		clockDiv, comPins = 0x60, 0x02
	case config.Width == 128 && config.Height == 32:
		clockDiv, comPins = 0x80, 0x02
	case config.Width == 128 && config.Height == 64:
		clockDiv, comPins = 0x80, 0x12
	default:
		return nil, fmt.Errorf("oled: unsupported size %dx%d", config.Width, config.Height)
	}

	d := &Display{
		c:      c,
		img:    pixel.NewMonoVerticalLSBImage(config.Width, config.Height),
		width:  config.Width,
		height: config.Height,
	}

	for _, cmd := range initSequence(config.Height, clockDiv, comPins) {
		if err := d.command(cmd); err != nil {
			return nil, err
		}
	}

	return d, nil
}

func (d *Display) String() string {
	return fmt.Sprintf("SSD1306 OLED %dx%d", d.width, d.height)
}

// Width is the display width in pixels.
func (d *Display) Width() int {
	return d.width
}

// Height is the display height in pixels.
func (d *Display) Height() int {
	return d.height
}

// Bounds is the display bounding box.
func (d *Display) Bounds() image.Rectangle {
	return image.Rect(0, 0, d.width, d.height)
}

// ColorModel used by the display.
func (d *Display) ColorModel() color.Model {
	return pixel.MonoModel
}

func (d *Display) command(cmd byte) error {
	return d.c.WriteReg(regCommand, cmd)
}

// Clear turns off every pixel in the framebuffer. The device is untouched
// until the next update.
func (d *Display) Clear() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.img.Clear()
}

// SetPixel sets or clears the pixel at (x, y) in the framebuffer.
//
// Coordinates outside the display are silently ignored, so callers may draw
// partially visible content without clipping first.
func (d *Display) SetPixel(x, y int, on bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.img.Set(x, y, pixel.Mono{On: on})
}

// Set the pixel color at (x, y); part of the [draw.Image] interface.
func (d *Display) Set(x, y int, c color.Color) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.img.Set(x, y, c)
}

// At returns the framebuffer color of the pixel at (x, y).
func (d *Display) At(x, y int) color.Color {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.img.At(x, y)
}

// ClearRect sets or clears every pixel in the rectangle [x, x+w) × [y, y+h).
// Pixels outside the display are silently ignored.
func (d *Display) ClearRect(x, y, w, h int, on bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.img.SetRect(image.Rect(x, y, x+w, y+h), pixel.Mono{On: on})
}

// Update synchronizes the whole framebuffer to the device.
func (d *Display) Update() error {
	return d.UpdateRect(0, 0, d.width, d.height)
}

// UpdateRect synchronizes the rectangular region [x, x+w) × [y, y+h) of the
// framebuffer to the device.
//
// The region is expanded vertically to whole 8-pixel pages, matching the
// controller's addressing granularity. Malformed regions are rejected with
// [ErrUpdateArea] before any bus I/O. A transport error aborts the transfer
// immediately; the framebuffer is unaffected but the device may be left
// showing a partially updated region.
func (d *Display) UpdateRect(x, y, w, h int) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if x < 0 || x > d.width || y < 0 || y > d.height || w <= 0 || h <= 0 ||
		x+w > d.width || y+h > d.height {
		return fmt.Errorf("%w: x=%d, y=%d, w=%d, h=%d", ErrUpdateArea, x, y, w, h)
	}

	var (
		startColumn = x
		endColumn   = x + w - 1
		startPage   = y / 8
		endPage     = (y + h - 1) / 8
	)

	// Configure the device's auto-incrementing write cursor: columns advance
	// within a page, then the page advances. The streaming loop below must
	// follow the same order.
	for _, cmd := range []byte{
		setColumnAddr, byte(startColumn), byte(endColumn),
		setPageAddr, byte(startPage), byte(endPage),
	} {
		if err := d.command(cmd); err != nil {
			return err
		}
	}

	if debug {
		log.Printf("oled: update columns %d-%d, pages %d-%d", startColumn, endColumn, startPage, endPage)
	}

	var (
		pix = d.img.Pix
		n   int
	)
	for page := startPage; page <= endPage; page++ {
		for column := startColumn; column <= endColumn; column++ {
			d.scratch[n] = pix[page*d.width+column]
			if n++; n == maxTransferSize {
				if err := d.c.WriteRegBuf(regData, d.scratch[:n]); err != nil {
					return err
				}
				n = 0
			}
		}
	}
	if n > 0 {
		return d.c.WriteRegBuf(regData, d.scratch[:n])
	}
	return nil
}

// Show toggles the display panel on or off. The display RAM is preserved.
func (d *Display) Show(show bool) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.show(show)
}

func (d *Display) show(show bool) error {
	if show {
		return d.command(setDisplayOn)
	}
	return d.command(setDisplayOff)
}

// SetContrast adjusts the contrast level.
func (d *Display) SetContrast(level uint8) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.command(setContrast); err != nil {
		return err
	}
	return d.command(level)
}

// Invert toggles inverted polarity (lit pixels become dark and vice versa).
func (d *Display) Invert(invert bool) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if invert {
		return d.command(setInvertDisplay)
	}
	return d.command(setNormalDisplay)
}

// Close blanks the panel and closes the bus connection.
func (d *Display) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.halted {
		if err := d.show(false); err != nil {
			_ = d.c.Close()
			return err
		}
		d.halted = true
	}
	return d.c.Close()
}
