// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package st7735r

import (
	"image"
	"image/color"
)

// Color is a 16 bit 5-6-5 RGB value, the pixel format programmed by COLMOD.
type Color uint16

const (
	Black Color = 0x0000
	White Color = 0xFFFF
	Red   Color = 0xF800
	Green Color = 0x07E0
	Blue  Color = 0x001F
)

var Model = color.ModelFunc(model)

// RGB packs 8 bit channels into a Color.
func RGB(r, g, b uint8) Color {
	return Color(uint16(r>>3)<<11 | uint16(g>>2)<<5 | uint16(b>>3))
}

// Bytes returns c high byte first, the order the controller expects.
func (c Color) Bytes() (hi, lo byte) {
	return byte(c >> 8), byte(c)
}

func (c Color) RGBA() (r, g, b, a uint32) {
	r5 := uint32(c>>11) & 0x1F
	g6 := uint32(c>>5) & 0x3F
	b5 := uint32(c) & 0x1F
	// Replicate the high bits into the low ones so 0x1F maps to 0xFFFF.
	r = (r5<<11 | r5<<6 | r5<<1 | r5>>4)
	g = (g6<<10 | g6<<4 | g6>>2)
	b = (b5<<11 | b5<<6 | b5<<1 | b5>>4)
	return r, g, b, 0xffff
}

func model(c color.Color) color.Color {
	if cc, ok := c.(Color); ok {
		return cc
	}
	r, g, b, _ := c.RGBA()
	return RGB(uint8(r>>8), uint8(g>>8), uint8(b>>8))
}

// Image is an RGB565 pixel buffer laid out as the controller receives it:
// row-major, two bytes per pixel, high byte first.
type Image struct {
	Pix  []byte
	Rect image.Rectangle
}

func NewImage(r image.Rectangle) *Image {
	return &Image{
		Pix:  make([]byte, 2*r.Dx()*r.Dy()),
		Rect: r,
	}
}

func (i *Image) offset(x, y int) int {
	return 2 * ((y-i.Rect.Min.Y)*i.Rect.Dx() + (x - i.Rect.Min.X))
}

func (i *Image) Set(x, y int, c color.Color) {
	if !(image.Point{x, y}.In(i.Rect)) {
		return
	}
	o := i.offset(x, y)
	i.Pix[o], i.Pix[o+1] = model(c).(Color).Bytes()
}

func (i *Image) ColorModel() color.Model {
	return Model
}

func (i *Image) Bounds() image.Rectangle {
	return i.Rect
}

func (i *Image) At(x, y int) color.Color {
	return i.RGB565At(x, y)
}

// RGB565At returns the pixel at (x, y), Black outside the bounds.
func (i *Image) RGB565At(x, y int) Color {
	if !(image.Point{x, y}.In(i.Rect)) {
		return Black
	}
	o := i.offset(x, y)
	return Color(i.Pix[o])<<8 | Color(i.Pix[o+1])
}
