package pixel

import (
	"image"
	"image/color"
	"math/rand"
	"testing"
)

func TestMonoVerticalLSBImage(t *testing.T) {
	testCases := []image.Point{
		{},
		image.Pt(1, 1),
		image.Pt(2, 2),
		image.Pt(128, 32),
		image.Pt(128, 64),
	}
	for _, test := range testCases {
		t.Run(test.String(), func(it *testing.T) {
			i := NewMonoVerticalLSBImage(test.X, test.Y)

			if v := i.Bounds().Size(); !v.Eq(test) {
				it.Errorf("expected image size %s, got %s", test, v)
			}

			if v := i.ColorModel(); v != MonoModel {
				it.Errorf("expected color model %T, got %T", MonoModel, v)
			}

			it.Run("in-bounds", func(itt *testing.T) {
				for y := 0; y < test.Y; y++ {
					for x := 0; x < test.X; x++ {
						want := Mono{On: rand.Intn(2) == 1}
						i.Set(x, y, want)
						if got := i.At(x, y); got != want {
							itt.Fatalf("expected pixel (%d,%d) to be %v, got %v", x, y, want, got)
						}
					}
				}
			})

			it.Run("out-of-bounds", func(itt *testing.T) {
				i.Clear()
				for _, p := range []image.Point{
					image.Pt(-1, 0),
					image.Pt(0, -1),
					image.Pt(test.X, 0),
					image.Pt(0, test.Y),
					image.Pt(test.X, test.Y),
				} {
					i.Set(p.X, p.Y, On)
					if got := i.At(p.X, p.Y); got != color.Transparent {
						itt.Errorf("expected At(%d,%d) to be transparent, got %v", p.X, p.Y, got)
					}
				}
				for j, v := range i.Pix {
					if v != 0 {
						itt.Fatalf("out-of-bounds Set mutated Pix[%d] = %#02x", j, v)
					}
				}
			})
		})
	}
}

func TestMonoVerticalLSBImageLayout(t *testing.T) {
	i := NewMonoVerticalLSBImage(128, 64)

	if len(i.Pix) != 128*64/8 {
		t.Fatalf("expected %d bytes, got %d", 128*64/8, len(i.Pix))
	}

	testCases := []struct {
		x, y int
		pos  int
		bit  byte
	}{
		{0, 0, 0, 0x01},
		{10, 3, 10, 0x08},
		{127, 7, 127, 0x80},
		{0, 8, 128, 0x01},
		{5, 63, 7*128 + 5, 0x80},
	}
	for _, test := range testCases {
		i.Clear()
		i.Set(test.x, test.y, On)
		if got := i.Pix[test.pos]; got != test.bit {
			t.Errorf("Set(%d,%d): expected Pix[%d] = %#02x, got %#02x", test.x, test.y, test.pos, test.bit, got)
		}
	}
}

func TestMonoVerticalLSBImageLastWriteWins(t *testing.T) {
	i := NewMonoVerticalLSBImage(128, 64)

	i.Set(3, 9, On)
	i.Set(3, 9, Off)
	i.Set(3, 9, On)
	if got := i.At(3, 9); got != On {
		t.Errorf("expected On after set-clear-set, got %v", got)
	}

	i.Set(3, 9, Off)
	if got := i.At(3, 9); got != Off {
		t.Errorf("expected Off after final clear, got %v", got)
	}
}

func TestMonoVerticalLSBImageSetRect(t *testing.T) {
	i := NewMonoVerticalLSBImage(32, 16)

	i.SetRect(image.Rect(2, 2, 6, 6), On)
	for y := 0; y < 16; y++ {
		for x := 0; x < 32; x++ {
			want := x >= 2 && x < 6 && y >= 2 && y < 6
			if got := i.At(x, y).(Mono).On; got != want {
				t.Fatalf("pixel (%d,%d): expected %v, got %v", x, y, want, got)
			}
		}
	}

	// Rectangles may exceed the image; the excess is ignored.
	i.Clear()
	i.SetRect(image.Rect(30, 14, 40, 20), On)
	for y := 0; y < 16; y++ {
		for x := 0; x < 32; x++ {
			want := x >= 30 && y >= 14
			if got := i.At(x, y).(Mono).On; got != want {
				t.Fatalf("pixel (%d,%d): expected %v, got %v", x, y, want, got)
			}
		}
	}
}

func TestMonoVerticalLSBImageClear(t *testing.T) {
	i := NewMonoVerticalLSBImage(128, 64)
	i.Fill(On)

	i.Clear()
	for j, v := range i.Pix {
		if v != 0 {
			t.Fatalf("expected Pix[%d] = 0 after Clear, got %#02x", j, v)
		}
	}

	// Clear is idempotent.
	i.Clear()
	for j, v := range i.Pix {
		if v != 0 {
			t.Fatalf("expected Pix[%d] = 0 after second Clear, got %#02x", j, v)
		}
	}
}

func TestMonoModel(t *testing.T) {
	testCases := []struct {
		name string
		c    color.Color
		want Mono
	}{
		{"mono on", On, On},
		{"mono off", Off, Off},
		{"white", color.White, On},
		{"black", color.Black, Off},
		{"gray", color.Gray{Y: 0x80}, On},
	}
	for _, test := range testCases {
		t.Run(test.name, func(it *testing.T) {
			if got := MonoModel.Convert(test.c); got != test.want {
				it.Errorf("expected %v, got %v", test.want, got)
			}
		})
	}
}
