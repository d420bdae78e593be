// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Binary tftlander plays lunar lander on an ST7735R display.
//
// Keys: a fires the engine for one frame, b starts the game and then resets
// the lander, c redraws the screen, Esc quits.
package main

import (
	"flag"
	"time"

	"github.com/eiannone/keyboard"
	"github.com/sirupsen/logrus"
	"github.com/toothrot/lunartft/devices/st7735r"
	"github.com/toothrot/lunartft/internal/config"
	"github.com/toothrot/lunartft/internal/lander"
)

var (
	flags     = config.RegisterFlags(flag.CommandLine)
	frameTime = flag.Duration("frame", 75*time.Millisecond, "Time between frames.")
	frames    = flag.Int("frames", 0, "Play this many frames without a keyboard, then quit.")
	out       = flag.String("out", "tftlander.png", "Where a simulated panel is saved on exit.")
)

type key int

const (
	keyThrust key = iota
	keyStart
	keyRedraw
	keyQuit
)

func main() {
	flag.Parse()
	cfg, err := flags.Load()
	if err != nil {
		logrus.Fatal(err)
	}
	log := cfg.Logger()
	d, panel, err := cfg.Open(log)
	if err != nil {
		log.Fatal(err)
	}
	defer d.Close()
	if panel != nil {
		defer func() {
			if err := panel.Save(*out); err != nil {
				log.Error(err)
				return
			}
			log.WithField("path", *out).Info("Saved simulated panel")
		}()
	}

	log.Info("Initializing")
	d.Setup()
	g := lander.New(d)
	g.DrawPad()

	keys := make(chan key, 8)
	if *frames > 0 {
		keys <- keyStart
	} else {
		if err := keyboard.Open(); err != nil {
			log.Fatal(err)
		}
		defer keyboard.Close()
		go scan(log, keys)
	}

	started := false
	ticker := time.NewTicker(*frameTime)
	defer ticker.Stop()
	for n := 0; *frames == 0 || n < *frames; n++ {
		<-ticker.C
		thrust := false
	drain:
		for {
			select {
			case k := <-keys:
				switch k {
				case keyQuit:
					log.Info("Quitting")
					return
				case keyThrust:
					thrust = true
				case keyStart:
					if !started {
						started = true
						redraw(d, g)
						log.Info("Start")
						continue
					}
					g.Reset()
					log.Info("Reset")
				case keyRedraw:
					redraw(d, g)
				}
			default:
				break drain
			}
		}
		if !started {
			continue
		}
		if thrust {
			log.Debug("Thrust")
		}
		if g.Step(thrust) {
			log.WithField("frame", n).Info("Crashed")
		}
	}
}

func redraw(d *st7735r.Display, g *lander.Game) {
	d.FillRect(0, 0, st7735r.Width, st7735r.Height, st7735r.Black)
	g.DrawPad()
}

// scan runs until Esc or a read error, so rendering never waits on input.
func scan(log logrus.FieldLogger, keys chan<- key) {
	for {
		ch, k, err := keyboard.GetKey()
		if err != nil {
			log.Error(err)
			keys <- keyQuit
			return
		}
		switch {
		case k == keyboard.KeyEsc || k == keyboard.KeyCtrlC:
			keys <- keyQuit
			return
		case ch == 'a':
			keys <- keyThrust
		case ch == 'b':
			keys <- keyStart
		case ch == 'c':
			keys <- keyRedraw
		}
	}
}
