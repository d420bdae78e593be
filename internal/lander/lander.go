// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lander is the lunar lander game played on the TFT. All positions
// and velocities are in st7735r working units.
package lander

import "github.com/toothrot/lunartft/devices/st7735r"

const (
	// Thrust is subtracted from the vertical velocity while the engine fires.
	Thrust  = 8
	Gravity = 1

	StartX = 60 * st7735r.Scale
	StartY = 8 * st7735r.Scale

	// Floor is the lowest y the lander survives at.
	Floor = st7735r.WorkingHeight - 400
)

// Pad is the landing pad, as line segments in working units.
var Pad = [][4]int{
	{0, 4064, 480, 3680},
	{480, 3680, 960, 3680},
	{960, 3680, 1440, 4064},
}

// Screen is the part of st7735r.Display the game draws with.
type Screen interface {
	FastSpriteAt(x, y int, on bool)
	DrawLine(x0, y0, x1, y1 int, c st7735r.Color)
}

type Game struct {
	s Screen

	X, Y    int
	VX, VY  int
	Gravity int
}

func New(s Screen) *Game {
	g := &Game{s: s}
	g.Reset()
	return g
}

// Reset puts the lander back at the start, at rest.
func (g *Game) Reset() {
	g.X, g.Y = StartX, StartY
	g.VX, g.VY = 0, 0
	g.Gravity = Gravity
}

// DrawPad draws the landing pad in white.
func (g *Game) DrawPad() {
	for _, l := range Pad {
		g.s.DrawLine(l[0], l[1], l[2], l[3], st7735r.White)
	}
}

// Step advances one frame, erasing the lander at its old position and
// drawing it at the new one. It reports whether the lander left the play
// area, in which case it restarts from the top at rest.
func (g *Game) Step(thrust bool) (crashed bool) {
	g.VY += g.Gravity
	if thrust {
		g.VY -= Thrust
	}
	g.s.FastSpriteAt(g.X, g.Y, false)
	g.X += g.VX
	g.Y += g.VY
	g.s.FastSpriteAt(g.X, g.Y, true)

	if g.Y < 0 || g.Y > Floor {
		g.Y = StartY
		g.VY = 0
		return true
	}
	return false
}
