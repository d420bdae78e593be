// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Binary tftimage displays an image file on an ST7735R display.
package main

import (
	"flag"
	"image"
	"image/color"
	_ "image/png"
	"time"

	"github.com/disintegration/imaging"
	"github.com/sirupsen/logrus"
	"github.com/toothrot/lunartft/internal/compose"
	"github.com/toothrot/lunartft/internal/config"
)

var (
	flags  = config.RegisterFlags(flag.CommandLine)
	rotate = flag.Float64("rotate", 0.0, "Image rotation in degrees.")
	dith   = flag.Bool("dither", false, "Reduce to a small palette with Floyd-Steinberg dithering.")
	hold   = flag.Duration("hold", 0, "How long to show the image before sleeping the display.")
	out    = flag.String("out", "tftimage.png", "Where a simulated panel is saved.")
)

func main() {
	flag.Parse()
	if flag.NArg() != 1 {
		logrus.Fatal("usage: tftimage [flags] image")
	}
	cfg, err := flags.Load()
	if err != nil {
		logrus.Fatal(err)
	}
	log := cfg.Logger()

	src, err := imaging.Open(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}
	var img image.Image = compose.Fit(src, *rotate, color.Black)
	if *dith {
		img = compose.Dither(img)
	}

	d, panel, err := cfg.Open(log)
	if err != nil {
		log.Fatal(err)
	}
	defer d.Close()

	log.Info("Initializing")
	d.Setup()
	log.WithField("path", flag.Arg(0)).Info("Displaying image")
	d.DrawImage(image.Point{}, img)

	if panel != nil {
		if err := panel.Save(*out); err != nil {
			log.Fatal(err)
		}
		log.WithField("path", *out).Info("Saved simulated panel")
		return
	}
	if *hold > 0 {
		log.Infof("Waiting %v", *hold)
		time.Sleep(*hold)
		log.Info("Sleeping display")
		d.Sleep()
	}
}
