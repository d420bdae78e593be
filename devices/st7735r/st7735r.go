// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package st7735r drives the Adafruit 1.44" 128x128 TFT, an ST7735R
// controller on a write-only SPI bus with a separate data/command line.
//
// Drawing calls never fail. Coordinates outside the panel make the whole
// primitive a no-op, and transport errors are logged rather than returned.
package st7735r

import (
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"periph.io/x/periph/conn/gpio"
	"periph.io/x/periph/conn/gpio/gpioreg"
	"periph.io/x/periph/conn/physic"
	"periph.io/x/periph/conn/spi"
	"periph.io/x/periph/conn/spi/spireg"
	"periph.io/x/periph/host"
)

// Display is a client for the TFT panel.
//
// Standard pin locations on a Raspberry Pi are as follows:
//  CLK  - SPI0 SCLK - Pin 23 (GPIO 11)
//  DIN  - SPI0 MOSI - Pin 19 (GPIO 10)
//  CS   - Chip sel  - Pin 24 (GPIO 8)
//  DC   - Data/Cmd  - Pin 22 (GPIO 25)
//  RST  - Reset     - Pin 11 (GPIO 17)
type Display struct {
	mu  sync.Mutex
	bus Bus
	// hw is set when the Display owns a periph connection.
	hw  *hardware
	log logrus.FieldLogger
}

type Pins struct {
	// CS pin name, typically "P1_24"
	CS string
	// DC pin name, typically "P1_22"
	DC string
	// RST pin name, typically "P1_11". Empty when the reset line is not wired.
	RST string
}

var DefaultPins = Pins{
	CS:  "P1_24",
	DC:  "P1_22",
	RST: "P1_11",
}

// Opts tunes the SPI connection. A nil *Opts uses DefaultOpts.
type Opts struct {
	// Port is the spireg port name, empty for the first port.
	Port string
	// Speed is the SPI clock.
	Speed physic.Frequency
	// TxLimit caps the bytes sent per SPI transfer.
	TxLimit int
}

var DefaultOpts = Opts{
	Speed:   4 * physic.MegaHertz,
	TxLimit: 4096,
}

// New opens the SPI port and pins named by p.
//
//  d, err := st7735r.New(st7735r.DefaultPins, nil)
//  if err != nil {
//    // Handle error.
//  }
//  d.Setup()
func New(p Pins, o *Opts) (*Display, error) {
	if o == nil {
		o = &DefaultOpts
	}
	if o.TxLimit <= 0 {
		return nil, fmt.Errorf("invalid transfer limit %d", o.TxLimit)
	}
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("host.Init() = %w", err)
	}

	dc := gpioreg.ByName(p.DC)
	if dc == nil {
		return nil, fmt.Errorf("invalid dc pin %q", p.DC)
	}
	if err := dc.Out(gpio.Low); err != nil {
		return nil, fmt.Errorf("dc.Out(%v) = %w", gpio.Low, err)
	}

	cs := gpioreg.ByName(p.CS)
	if cs == nil {
		return nil, fmt.Errorf("invalid cs pin %q", p.CS)
	}
	if err := cs.Out(gpio.High); err != nil {
		return nil, fmt.Errorf("cs.Out(%v) = %w", gpio.High, err)
	}

	var rst gpio.PinOut
	if p.RST != "" {
		r := gpioreg.ByName(p.RST)
		if r == nil {
			return nil, fmt.Errorf("invalid rst pin %q", p.RST)
		}
		if err := r.Out(gpio.High); err != nil {
			return nil, fmt.Errorf("rst.Out(%v) = %w", gpio.High, err)
		}
		rst = r
	}

	port, err := spireg.Open(o.Port)
	if err != nil {
		return nil, fmt.Errorf("spireg.Open(%q) = _, %w", o.Port, err)
	}
	c, err := port.Connect(o.Speed, spi.Mode0, 8)
	if err != nil {
		connerr := fmt.Errorf("port.Connect(%v, %v, %v) = %w", o.Speed, spi.Mode0, 8, err)
		if err := port.Close(); err != nil {
			return nil, fmt.Errorf("port.Close() = %w while handling %q", err, connerr)
		}
		return nil, connerr
	}

	hw := &hardware{
		txLimit: o.TxLimit,
		c:       c,
		closer:  port,
		cs:      cs,
		dc:      dc,
		rst:     rst,
	}
	d := NewBus(hw)
	d.hw = hw
	return d, nil
}

// NewBus returns a Display talking over b.
func NewBus(b Bus) *Display {
	return &Display{
		bus: b,
		log: logrus.StandardLogger(),
	}
}

// SetLogger replaces the logger, which defaults to logrus.StandardLogger().
func (d *Display) SetLogger(l logrus.FieldLogger) {
	d.log = l
}

// Reset pulses the hardware reset line, if one is wired.
func (d *Display) Reset() {
	if d.hw == nil {
		return
	}
	if err := d.hw.reset(); err != nil {
		d.log.WithError(err).Error("reset")
	}
}

// Close releases the SPI port opened by New.
func (d *Display) Close() error {
	if d.hw == nil {
		return nil
	}
	return d.hw.Close()
}

// Command sends op with its parameters. It is the escape hatch for
// registers the drawing calls do not cover; a Delay opcode pauses instead.
func (d *Display) Command(op Opcode, params ...byte) {
	d.send(Cmd(op, params...))
}

// Sleep puts the controller into sleep mode. Setup wakes it again.
func (d *Display) Sleep() {
	d.send(Cmd(SLPIN))
}

// Invert turns display colour inversion on or off.
func (d *Display) Invert(on bool) {
	if on {
		d.send(Cmd(INVON))
		return
	}
	d.send(Cmd(INVOFF))
}

func (d *Display) send(c Command) {
	if c.Op == Delay {
		d.bus.Delay(time.Duration(c.wait()) * time.Millisecond)
		return
	}
	if c.Op > 0xFF {
		d.log.WithField("op", c.Op).Error("opcode does not fit in a byte, not sent")
		return
	}
	d.transact(c.Op, c.Params)
}

// burst streams data after op in a single selection. It shares the framing
// of send but carries pixel payloads of any length.
func (d *Display) burst(op Opcode, data []byte) {
	d.transact(op, data)
}

func (d *Display) transact(op Opcode, data []byte) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.frame(op, data); err != nil {
		d.log.WithError(err).WithFields(logrus.Fields{
			"op":    op,
			"bytes": len(data),
		}).Error("transaction failed")
	}
}

// frame runs one transaction: the opcode with DC low, then data with DC
// high. The device is deselected and DC left low on every path.
func (d *Display) frame(op Opcode, data []byte) (err error) {
	if err := d.bus.SetDC(gpio.Low); err != nil {
		return err
	}
	if err := d.bus.Select(); err != nil {
		return err
	}
	defer func() {
		if e := d.bus.Deselect(); e != nil && err == nil {
			err = e
		}
		if e := d.bus.SetDC(gpio.Low); e != nil && err == nil {
			err = e
		}
	}()
	if err := d.bus.Write([]byte{byte(op)}); err != nil {
		return fmt.Errorf("sending command %v: %w", op, err)
	}
	if err := d.bus.SetDC(gpio.High); err != nil {
		return err
	}
	if len(data) == 0 {
		return nil
	}
	if err := d.bus.Write(data); err != nil {
		return fmt.Errorf("sending %d bytes after %v: %w", len(data), op, err)
	}
	return nil
}
