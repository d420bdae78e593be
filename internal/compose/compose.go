// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package compose prepares full screen images for st7735r.Display.DrawImage.
package compose

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"github.com/makeworld-the-better-one/dither"
	"github.com/toothrot/lunartft/devices/st7735r"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/opentype"
)

// Palette is the set of colours Dither reduces to.
var Palette = []color.Color{
	st7735r.Black,
	st7735r.White,
	st7735r.Red,
	st7735r.Green,
	st7735r.Blue,
	st7735r.RGB(0xFF, 0xFF, 0x00),
	st7735r.RGB(0x00, 0xFF, 0xFF),
	st7735r.RGB(0xFF, 0x00, 0xFF),
}

// Fit rotates img by deg degrees, scales it to fit the panel and centres it
// on bg.
func Fit(img image.Image, deg float64, bg color.Color) *st7735r.Image {
	rot := imaging.Rotate(img, deg, bg)
	fit := imaging.Fit(rot, st7735r.Width, st7735r.Height, imaging.Lanczos)
	return toPanel(imaging.PasteCenter(imaging.New(st7735r.Width, st7735r.Height, bg), fit))
}

// Dither reduces img to Palette with Floyd-Steinberg error diffusion.
func Dither(img image.Image) *st7735r.Image {
	d := dither.NewDitherer(Palette)
	d.Matrix = dither.FloydSteinberg
	d.Serpentine = true
	if out := d.Dither(img); out != nil {
		img = out
	}
	return toPanel(img)
}

// Text renders s centred and wrapped on a panel sized image.
func Text(s string, face font.Face, fg, bg color.Color) *st7735r.Image {
	ctx := gg.NewContext(st7735r.Width, st7735r.Height)
	ctx.SetColor(bg)
	ctx.Clear()
	ctx.SetFontFace(face)
	ctx.SetColor(fg)
	ctx.DrawStringWrapped(s, st7735r.Width/2, st7735r.Height/2, 0.5, 0.5, st7735r.Width-8, 1.0, gg.AlignCenter)
	return toPanel(ctx.Image())
}

// Face returns Go Mono Bold at size points.
func Face(size float64) (font.Face, error) {
	f, err := opentype.Parse(gomonobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("opentype.Parse() = %w", err)
	}
	ff, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("opentype.NewFace() = %w", err)
	}
	return ff, nil
}

func toPanel(img image.Image) *st7735r.Image {
	b := img.Bounds()
	out := st7735r.NewImage(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			out.Set(x-b.Min.X, y-b.Min.Y, img.At(x, y))
		}
	}
	return out
}
