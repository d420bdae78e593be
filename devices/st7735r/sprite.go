// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package st7735r

const (
	spriteWidth  = 6
	spriteHeight = 7
)

// SpriteColor is the colour of the lander sprite.
const SpriteColor = Red

// spritePattern is the lander, row-major.
var spritePattern = [spriteWidth * spriteHeight]bool{
	false, false, true, true, false, false,
	false, true, false, false, true, false,
	false, true, false, false, true, false,
	false, false, true, true, false, false,
	false, true, false, false, true, false,
	true, false, false, false, false, true,
	true, false, false, false, false, true,
}

// FastSpriteAt draws the lander with its top left corner at (x, y), given in
// working units, or erases it to black when on is false. The caller erases
// the old position before drawing a new one.
func (d *Display) FastSpriteAt(x, y int, on bool) {
	x, y = ToPixel(x), ToPixel(y)
	if !inBounds(x, y, x+spriteWidth-1, y+spriteHeight-1) {
		d.clipped("FastSpriteAt", x, y)
		return
	}
	if !d.SetAddrWindow(x, y, x+spriteWidth-1, y+spriteHeight-1) {
		return
	}

	hi, lo := SpriteColor.Bytes()
	buf := make([]byte, 0, 2*len(spritePattern))
	for _, set := range spritePattern {
		if set && on {
			buf = append(buf, hi, lo)
		} else {
			buf = append(buf, 0, 0)
		}
	}
	d.burst(RAMWR, buf)
}
