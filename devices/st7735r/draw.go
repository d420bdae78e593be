// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package st7735r

import (
	"bytes"
	"image"
	"iter"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/image/draw"
)

// The controller addresses a larger area than the visible 128x128 region.
const (
	colOffset = 2
	rowOffset = 3
)

func (d *Display) clipped(what string, vs ...int) {
	d.log.WithFields(logrus.Fields{"coords": vs}).Debugf("%s: off screen, dropped", what)
}

// SetAddrWindow programs the rectangle, in pixels and inclusive, that the
// next memory write fills. It reports false, and sends nothing, when any
// coordinate is off screen.
func (d *Display) SetAddrWindow(x0, y0, x1, y1 int) bool {
	if !inBounds(x0, y0, x1, y1) {
		d.clipped("SetAddrWindow", x0, y0, x1, y1)
		return false
	}
	d.send(Cmd(CASET, 0x00, byte(x0+colOffset), 0x00, byte(x1+colOffset)))
	d.send(Cmd(RASET, 0x00, byte(y0+rowOffset), 0x00, byte(y1+rowOffset)))
	return true
}

// DrawPixel sets the pixel at (x, y).
func (d *Display) DrawPixel(x, y int, c Color) {
	if !inBounds(x, y) {
		d.clipped("DrawPixel", x, y)
		return
	}
	d.SetAddrWindow(x, y, x, y)
	hi, lo := c.Bytes()
	d.send(Cmd(RAMWR, hi, lo))
}

// DrawLine draws from (x0, y0) to (x1, y1), given in working units.
func (d *Display) DrawLine(x0, y0, x1, y1 int, c Color) {
	for p := range LinePoints(x0, y0, x1, y1) {
		d.DrawPixel(p.X, p.Y, c)
	}
}

// LinePoints yields the pixels DrawLine plots for a line in working units.
//
// It steps one pixel at a time along the longer axis and moves the other
// axis by a fixed, truncated increment. This is an approximation of a
// line, not Bresenham: every caller relies on these exact pixels.
func LinePoints(x0, y0, x1, y1 int) iter.Seq[image.Point] {
	return func(yield func(image.Point) bool) {
		dx, dy := x1-x0, y1-y0

		major, minor := dx, dy
		if abs(dy) > abs(dx) {
			major, minor = dy, dx
		}
		steps := abs(major / Scale)
		majorInc := Scale
		if major < 0 {
			majorInc = -Scale
		}
		minorInc := 0
		if minor != 0 && steps != 0 {
			minorInc = minor / steps
		}

		xInc, yInc := majorInc, minorInc
		if abs(dy) > abs(dx) {
			xInc, yInc = minorInc, majorInc
		}
		x, y := x0, y0
		for i := 0; i <= steps; i++ {
			if !yield(image.Pt(ToPixel(x), ToPixel(y))) {
				return
			}
			x += xInc
			y += yInc
		}
	}
}

// FillRect fills a w by h rectangle with its top left corner at (x, y). The
// rectangle is cut at the right and bottom edges of the panel; an origin off
// screen draws nothing.
func (d *Display) FillRect(x, y, w, h int, c Color) {
	if !inBounds(x, y) {
		d.clipped("FillRect", x, y)
		return
	}
	if x+w > Width {
		w = Width - x
	}
	if y+h > Height {
		h = Height - y
	}
	if w <= 0 || h <= 0 {
		return
	}
	hi, lo := c.Bytes()
	if !d.SetAddrWindow(x, y, x+w-1, y+h-1) {
		return
	}
	d.burst(RAMWR, bytes.Repeat([]byte{hi, lo}, w*h))
}

// DrawImage copies img to the panel with img.Bounds().Min at pt. The whole
// image must fit on screen, otherwise nothing is drawn.
func (d *Display) DrawImage(pt image.Point, img image.Image) {
	defer func(start time.Time) {
		d.log.Debugf("DrawImage: %s", time.Since(start).String())
	}(time.Now())
	b := img.Bounds()
	if b.Empty() {
		return
	}
	r := image.Rectangle{Min: pt, Max: pt.Add(b.Size())}
	if !d.SetAddrWindow(r.Min.X, r.Min.Y, r.Max.X-1, r.Max.Y-1) {
		return
	}
	buf, ok := img.(*Image)
	if !ok {
		buf = NewImage(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(buf, buf.Bounds(), img, b.Min, draw.Src)
	}
	d.burst(RAMWR, buf.Pix)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
