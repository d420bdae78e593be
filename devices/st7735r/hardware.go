// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package st7735r

import (
	"fmt"
	"io"
	"time"

	"periph.io/x/periph/conn"
	"periph.io/x/periph/conn/gpio"
)

// Bus is the link to the controller: a chip select, the data/command line
// and a write-only serial stream.
//
// The DC line is gpio.Low for opcodes and gpio.High for parameter and pixel
// data.
type Bus interface {
	Select() error
	Deselect() error
	SetDC(l gpio.Level) error
	Write(p []byte) error
	// Delay blocks the caller for d.
	Delay(d time.Duration)
}

// hardware is a Bus over a periph SPI connection and GPIO pins.
type hardware struct {
	txLimit int

	// c is a perhiph conn.Conn.
	c conn.Conn
	// closer releases the SPI port, may be nil.
	closer io.Closer

	// cs is the chip select pin.
	cs gpio.PinOut
	// dc is the data/command pin.
	dc gpio.PinOut
	// rst is the hardware reset pin, may be nil.
	rst gpio.PinOut
}

func (h *hardware) Select() error {
	if err := h.cs.Out(gpio.Low); err != nil {
		return fmt.Errorf("%v.Out(%v) = %w", h.cs.String(), gpio.Low.String(), err)
	}
	return nil
}

func (h *hardware) Deselect() error {
	if err := h.cs.Out(gpio.High); err != nil {
		return fmt.Errorf("%v.Out(%v) = %w", h.cs.String(), gpio.High.String(), err)
	}
	return nil
}

func (h *hardware) SetDC(l gpio.Level) error {
	if err := h.dc.Out(l); err != nil {
		return fmt.Errorf("%v.Out(%v) = %w", h.dc.String(), l.String(), err)
	}
	return nil
}

// Write sends p in transfers of at most txLimit bytes.
func (h *hardware) Write(p []byte) error {
	if h.txLimit <= 0 {
		return io.ErrShortWrite
	}
	for i := 0; i < len(p); i += h.txLimit {
		j := i + h.txLimit
		if j > len(p) {
			j = len(p)
		}
		if err := h.c.Tx(p[i:j], nil); err != nil {
			return fmt.Errorf("Tx(%d bytes at %d) = %w", j-i, i, err)
		}
	}
	return nil
}

func (h *hardware) Delay(d time.Duration) {
	time.Sleep(d)
}

// reset pulses the reset pin. It is a no-op when no pin is wired.
func (h *hardware) reset() error {
	if h.rst == nil {
		return nil
	}
	for _, step := range []struct {
		l gpio.Level
		d time.Duration
	}{
		{gpio.High, 200 * time.Millisecond},
		{gpio.Low, 2 * time.Millisecond},
		{gpio.High, 200 * time.Millisecond},
	} {
		if err := h.rst.Out(step.l); err != nil {
			return fmt.Errorf("%v.Out(%v) = %w", h.rst.String(), step.l.String(), err)
		}
		time.Sleep(step.d)
	}
	return nil
}

func (h *hardware) Close() error {
	if h.closer == nil {
		return nil
	}
	return h.closer.Close()
}
