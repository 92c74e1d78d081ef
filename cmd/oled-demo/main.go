// Command oled-demo exercises an SSD1306 OLED display connected to the I²C
// bus: it draws a border, centered text and an animated checkerboard, using
// partial updates for the animated region.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"golang.org/x/image/font/basicfont"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"

	"github.com/BeatGlow/oled"
)

func main() {
	widthFlag := flag.Int("width", 0, "Display width")
	heightFlag := flag.Int("height", 0, "Display height")
	i2cDeviceFlag := flag.Int("i2c-dev", oled.DefaultI2CConfig.Device, "I²C device number (default: use first available)")
	i2cAddrFlag := flag.Uint("i2c-addr", uint(oled.DefaultI2CConfig.Addr), "I²C device address")
	resetPinFlag := flag.String("reset", "", "Reset GPIO pin (optional)")
	contrastFlag := flag.Uint("contrast", 0xCF, "Contrast level")
	textFlag := flag.String("text", "Hello World!", "Text to display")
	flag.Parse()

	if _, err := host.Init(); err != nil {
		fatal(err)
	}

	c, err := oled.OpenI2C(&oled.I2CConfig{
		Device: *i2cDeviceFlag,
		Addr:   uint8(*i2cAddrFlag),
		Reset:  gpioreg.ByName(*resetPinFlag),
	})
	if err != nil {
		fatal(err)
	}
	fmt.Printf("using connection: %s\n", c)

	d, err := oled.New(c, &oled.Config{
		Width:  *widthFlag,
		Height: *heightFlag,
	})
	if err != nil {
		_ = c.Close()
		fatal(err)
	}
	defer d.Close()
	fmt.Printf("using display: %s\n", d)

	if err = d.SetContrast(uint8(*contrastFlag)); err != nil {
		fatal(err)
	}

	var (
		w = d.Width()
		h = d.Height()
	)

	// Border box
	for x := 0; x < w; x++ {
		d.SetPixel(x, 0, true)
		d.SetPixel(x, h-1, true)
	}
	for y := 0; y < h; y++ {
		d.SetPixel(0, y, true)
		d.SetPixel(w-1, y, true)
	}

	d.DrawStringCentered(*textFlag, basicfont.Face7x13, 8, true)

	if err = d.Update(); err != nil {
		fatal(err)
	}

	fmt.Println("hit control-c to stop...")
	var (
		offset int
		ticker = time.NewTicker(50 * time.Millisecond)
		bandY  = h / 2
		bandH  = h - bandY - 8
	)
	defer ticker.Stop()
	for {
		for y := bandY; y < bandY+bandH; y++ {
			for x := 8; x < w-8; x++ {
				d.SetPixel(x, y, (x+y+offset)%4 == 0)
			}
		}
		if err = d.UpdateRect(8, bandY, w-16, bandH); err != nil {
			fatal(err)
		}

		offset++
		<-ticker.C
	}
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "fatal error: %v\n", err)
	os.Exit(1)
}
