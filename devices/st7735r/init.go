// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package st7735r

import "time"

// Gamma curves for the 1.44" green tab panel.
var (
	gammaPositive = []byte{
		0x02, 0x1c, 0x07, 0x12, 0x37, 0x32, 0x29, 0x2d,
		0x29, 0x25, 0x2B, 0x39, 0x00, 0x01, 0x03, 0x10,
	}
	gammaNegative = []byte{
		0x03, 0x1d, 0x07, 0x06, 0x2E, 0x2C, 0x29, 0x2D,
		0x2E, 0x2E, 0x37, 0x3F, 0x00, 0x00, 0x02, 0x10,
	}
)

// initSequence takes the controller from reset to a 16 bit, gamma
// corrected, displaying state. The order is significant.
var initSequence = []Command{
	Cmd(SWRESET),
	Cmd(Delay, 150), // at least 120ms
	Cmd(SLPOUT),
	Cmd(Delay, 150), // at least 120ms

	Cmd(FRMCTR1, 0x01, 0x2C, 0x2D),                   // Rate = fosc/(1x2+40) * (LINE+2C+2D)
	Cmd(FRMCTR2, 0x01, 0x2C, 0x2D),                   // idle mode
	Cmd(FRMCTR3, 0x01, 0x2C, 0x2D, 0x01, 0x2C, 0x2D), // dot inversion, then line inversion

	Cmd(INVCTR, 0x07),             // No inversion
	Cmd(PWCTR1, 0xA2, 0x02, 0x84), // -4.6V, AUTO mode
	Cmd(PWCTR2, 0xC5),             // VGH25 = 2.4C VGSEL = -10 VGH = 3 * AVDD
	Cmd(PWCTR3, 0x0A, 0x00),       // Opamp current small, boost frequency
	Cmd(PWCTR4, 0x8A, 0x2A),       // BCLK/2, Opamp current small & medium low
	Cmd(PWCTR5, 0x8A, 0xEE),
	Cmd(VMCTR1, 0x0E),
	Cmd(INVOFF),

	Cmd(MADCTL, 0xC8), // row addr/col addr, bottom to top refresh
	Cmd(COLMOD, 0x05), // 16 bit colour

	// 1.44" addressable area.
	Cmd(CASET, 0x00, 0x00, 0x00, 0x7F),
	Cmd(RASET, 0x00, 0x00, 0x00, 0x7F),

	Cmd(GMCTRP1, gammaPositive...),
	Cmd(GMCTRN1, gammaNegative...),

	Cmd(NORON),
	Cmd(Delay, 10),
	Cmd(DISPON),
	Cmd(Delay, 100),
}

// Setup initializes the controller and clears the screen to black. It is
// required before any drawing, and wakes the display after Sleep.
func (d *Display) Setup() {
	defer func(start time.Time) {
		d.log.Debugf("Setup: %s", time.Since(start).String())
	}(time.Now())
	d.Reset()
	for _, c := range initSequence {
		d.send(c)
	}
	d.FillRect(0, 0, Width, Height, Black)
}
