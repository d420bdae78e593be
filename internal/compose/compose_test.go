package compose

import (
	"image"
	"image/color"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/toothrot/lunartft/devices/st7735r"
)

func TestFit(t *testing.T) {
	cases := []struct {
		desc   string
		w, h   int
		corner st7735r.Color
	}{
		{"square", 256, 256, st7735r.White},
		// Letterboxed: the top rows are background.
		{"wide", 256, 64, st7735r.Black},
	}
	for _, c := range cases {
		t.Run(c.desc, func(t *testing.T) {
			src := imaging.New(c.w, c.h, color.White)
			got := Fit(src, 0, color.Black)
			if got.Bounds() != image.Rect(0, 0, st7735r.Width, st7735r.Height) {
				t.Fatalf("Fit().Bounds() = %v", got.Bounds())
			}
			if px := got.RGB565At(0, 0); px != c.corner {
				t.Errorf("Fit() (0, 0) = %#04x, want %#04x", uint16(px), uint16(c.corner))
			}
			if px := got.RGB565At(64, 64); px != st7735r.White {
				t.Errorf("Fit() centre = %#04x, want white", uint16(px))
			}
		})
	}
}

func TestDither(t *testing.T) {
	src := imaging.New(16, 16, color.RGBA{0xFF, 0, 0, 0xFF})
	got := Dither(src)
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			if px := got.RGB565At(x, y); px != st7735r.Red {
				t.Fatalf("Dither() (%d, %d) = %#04x, want red", x, y, uint16(px))
			}
		}
	}
}

func TestText(t *testing.T) {
	face, err := Face(24)
	if err != nil {
		t.Fatalf("Face() = _, %v", err)
	}
	img := Text("Hi", face, color.White, color.Black)
	if img.RGB565At(0, 0) != st7735r.Black {
		t.Errorf("Text() corner = %#04x, want background", uint16(img.RGB565At(0, 0)))
	}
	lit := 0
	for y := 0; y < st7735r.Height; y++ {
		for x := 0; x < st7735r.Width; x++ {
			if img.RGB565At(x, y) != st7735r.Black {
				lit++
			}
		}
	}
	if lit == 0 {
		t.Error("Text() drew nothing")
	}
}

func TestToPanelRebases(t *testing.T) {
	src := image.NewRGBA(image.Rect(10, 10, 12, 12))
	src.Set(10, 10, color.White)
	got := toPanel(src)
	if got.Bounds() != image.Rect(0, 0, 2, 2) {
		t.Fatalf("toPanel().Bounds() = %v", got.Bounds())
	}
	if got.RGB565At(0, 0) != st7735r.White {
		t.Errorf("toPanel() (0, 0) = %#04x, want white", uint16(got.RGB565At(0, 0)))
	}
}
