// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package st7735r

const (
	// Width is the panel width in pixels.
	Width = 128
	// Height is the panel height in pixels.
	Height = 128

	// Scale is the number of working units per pixel. Game physics runs in
	// working units and crosses into pixels only when drawing.
	Scale      = 1 << scaleShift
	scaleShift = 5

	// WorkingWidth is the panel width in working units.
	WorkingWidth = Width * Scale
	// WorkingHeight is the panel height in working units.
	WorkingHeight = Height * Scale
)

// ToPixel converts working units to a pixel index. Any fractional part
// rounds up to the next pixel.
func ToPixel(v int) int {
	p := v >> scaleShift
	if v&(Scale-1) != 0 {
		p++
	}
	return p
}

// inBounds reports whether every value is a valid pixel index.
func inBounds(vs ...int) bool {
	for _, v := range vs {
		if v < 0 || v > Width-1 {
			return false
		}
	}
	return true
}
