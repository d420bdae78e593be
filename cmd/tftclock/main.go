// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Binary tftclock displays a clock on an ST7735R display.
package main

import (
	"flag"
	"image"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/toothrot/lunartft/devices/st7735r"
	"github.com/toothrot/lunartft/internal/compose"
	"github.com/toothrot/lunartft/internal/config"
	"golang.org/x/image/font"
)

var (
	flags    = config.RegisterFlags(flag.CommandLine)
	format   = flag.String("format", "15:04", "time.Time format.")
	size     = flag.Float64("size", 36, "Font size in points.")
	interval = flag.Duration("interval", time.Minute, "Time between updates.")
	out      = flag.String("out", "tftclock.png", "Where a simulated panel is saved after each update.")
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
	d, panel, err := cfg.Open(log)
	if err != nil {
		log.Fatal(err)
	}
	defer d.Close()

	log.Info("Initializing")
	d.Setup()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	ticker := time.NewTicker(*interval)
	defer ticker.Stop()
	update(d, face, time.Now().Format(*format))
	for {
		if panel != nil {
			if err := panel.Save(*out); err != nil {
				log.Error(err)
			}
		}
		select {
		case s := <-c:
			log.Infof("Got signal %q, quitting", s.String())
			d.FillRect(0, 0, st7735r.Width, st7735r.Height, st7735r.Black)
			d.Sleep()
			return
		case t := <-ticker.C:
			update(d, face, t.Format(*format))
		}
	}
}

func update(d *st7735r.Display, face font.Face, text string) {
	d.DrawImage(image.Point{}, compose.Text(text, face, st7735r.White, st7735r.Black))
}
