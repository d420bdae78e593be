// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package st7735r

import "fmt"

// Opcode selects a controller register or action. Values above 0xFF never
// reach the bus.
type Opcode uint16

const (
	NOP     Opcode = 0x00
	SWRESET Opcode = 0x01 // Software reset
	SLPIN   Opcode = 0x10 // Sleep in
	SLPOUT  Opcode = 0x11 // Sleep out
	NORON   Opcode = 0x13 // Normal display mode on
	INVOFF  Opcode = 0x20 // Display inversion off
	INVON   Opcode = 0x21 // Display inversion on
	DISPOFF Opcode = 0x28
	DISPON  Opcode = 0x29
	CASET   Opcode = 0x2A // Column address set
	RASET   Opcode = 0x2B // Row address set
	RAMWR   Opcode = 0x2C // Memory write
	MADCTL  Opcode = 0x36 // Memory data access control
	COLMOD  Opcode = 0x3A // Interface pixel format
	FRMCTR1 Opcode = 0xB1 // Frame rate control, normal mode
	FRMCTR2 Opcode = 0xB2 // Frame rate control, idle mode
	FRMCTR3 Opcode = 0xB3 // Frame rate control, partial mode
	INVCTR  Opcode = 0xB4 // Display inversion control
	PWCTR1  Opcode = 0xC0
	PWCTR2  Opcode = 0xC1
	PWCTR3  Opcode = 0xC2
	PWCTR4  Opcode = 0xC3
	PWCTR5  Opcode = 0xC4
	VMCTR1  Opcode = 0xC5 // VCOM control
	GMCTRP1 Opcode = 0xE0 // Gamma, positive polarity
	GMCTRN1 Opcode = 0xE1 // Gamma, negative polarity

	// Delay pauses the caller for Params[0] milliseconds, or
	// DefaultDelay when no parameter is given.
	Delay Opcode = 0xFFFF
)

// DefaultDelay is used by a Delay command without parameters.
const DefaultDelay = 500

var opcodeNames = map[Opcode]string{
	NOP:     "NOP",
	SWRESET: "SWRESET",
	SLPIN:   "SLPIN",
	SLPOUT:  "SLPOUT",
	NORON:   "NORON",
	INVOFF:  "INVOFF",
	INVON:   "INVON",
	DISPOFF: "DISPOFF",
	DISPON:  "DISPON",
	CASET:   "CASET",
	RASET:   "RASET",
	RAMWR:   "RAMWR",
	MADCTL:  "MADCTL",
	COLMOD:  "COLMOD",
	FRMCTR1: "FRMCTR1",
	FRMCTR2: "FRMCTR2",
	FRMCTR3: "FRMCTR3",
	INVCTR:  "INVCTR",
	PWCTR1:  "PWCTR1",
	PWCTR2:  "PWCTR2",
	PWCTR3:  "PWCTR3",
	PWCTR4:  "PWCTR4",
	PWCTR5:  "PWCTR5",
	VMCTR1:  "VMCTR1",
	GMCTRP1: "GMCTRP1",
	GMCTRN1: "GMCTRN1",
	Delay:   "DELAY",
}

func (o Opcode) String() string {
	if s, ok := opcodeNames[o]; ok {
		return s
	}
	return fmt.Sprintf("Opcode(0x%02X)", uint16(o))
}

// Command is an opcode and its parameter bytes.
type Command struct {
	Op     Opcode
	Params []byte
}

// Cmd is shorthand for building a Command.
func Cmd(op Opcode, params ...byte) Command {
	return Command{Op: op, Params: params}
}

func (c Command) String() string {
	return fmt.Sprintf("%v % X", c.Op, c.Params)
}

// wait returns how long a Delay command pauses for.
func (c Command) wait() int {
	if len(c.Params) == 1 {
		return int(c.Params[0])
	}
	return DefaultDelay
}
