// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Binary tftbanner displays text on an ST7735R display.
package main

import (
	"flag"
	"image"
	"image/color"

	"github.com/sirupsen/logrus"
	"github.com/toothrot/lunartft/devices/st7735r"
	"github.com/toothrot/lunartft/internal/compose"
	"github.com/toothrot/lunartft/internal/config"
)

var (
	flags  = config.RegisterFlags(flag.CommandLine)
	text   = flag.String("text", "Hello, world!", "Text to display.")
	size   = flag.Float64("size", 24, "Font size in points.")
	rotate = flag.Float64("rotate", 0.0, "Image rotation in degrees.")
	red    = flag.Bool("red", false, "Render in red instead of white.")
	invert = flag.Bool("invert", false, "Invert the panel colours.")
	out    = flag.String("out", "tftbanner.png", "Where a simulated panel is saved.")
)

func main() {
	flag.Parse()
	cfg, err := flags.Load()
	if err != nil {
		logrus.Fatal(err)
	}
	log := cfg.Logger()

	face, err := compose.Face(*size)
	if err != nil {
		log.Fatal(err)
	}
	var fg color.Color = st7735r.White
	if *red {
		fg = st7735r.Red
	}
	img := compose.Text(*text, face, fg, st7735r.Black)
	if *rotate != 0 {
		img = compose.Fit(img, *rotate, st7735r.Black)
	}

	d, panel, err := cfg.Open(log)
	if err != nil {
		log.Fatal(err)
	}
	defer d.Close()

	log.Info("Initializing")
	d.Setup()
	d.Invert(*invert)
	log.WithField("text", *text).Info("Displaying banner")
	d.DrawImage(image.Point{}, img)

	if panel != nil {
		if err := panel.Save(*out); err != nil {
			log.Fatal(err)
		}
		log.WithField("path", *out).Info("Saved simulated panel")
	}
}
