// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sim emulates the ST7735R side of the bus, for running the driver
// without a panel attached.
//
// A Panel decodes CASET, RASET and RAMWR into controller memory and keeps a
// log of every transaction. Other commands are logged but have no effect;
// in particular MADCTL orientation is ignored and memory is row-major as
// addressed.
package sim

import (
	"fmt"
	"image"
	"image/color"
	"sync"
	"time"

	"github.com/disintegration/imaging"
	"github.com/toothrot/lunartft/devices/st7735r"
	"periph.io/x/periph/conn/gpio"
)

// Controller memory is larger than the visible area, which starts at
// column 2, row 3 on the 1.44" panel.
const (
	ramWidth  = 132
	ramHeight = 162

	visibleCol = 2
	visibleRow = 3
)

// Transaction is one selection of the controller: the opcode byte and the
// data that followed it.
type Transaction struct {
	Op   st7735r.Opcode
	Data []byte
}

// Panel implements st7735r.Bus.
type Panel struct {
	mu sync.Mutex

	ram []st7735r.Color

	selected bool
	dc       gpio.Level

	// Address window, inclusive, in memory coordinates.
	x0, y0, x1, y1 int
	// Write cursor.
	cx, cy int
	// hi holds the first byte of a pixel until its second arrives.
	hi     byte
	haveHi bool

	txs    []Transaction
	delays []time.Duration
	writes int
	stray  int

	// WriteErr, when set, is returned by every Write.
	WriteErr error
}

func New() *Panel {
	return &Panel{
		ram: make([]st7735r.Color, ramWidth*ramHeight),
		x1:  ramWidth - 1,
		y1:  ramHeight - 1,
	}
}

func (p *Panel) Select() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.selected = true
	return nil
}

func (p *Panel) Deselect() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.selected = false
	return nil
}

func (p *Panel) SetDC(l gpio.Level) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.dc = l
	return nil
}

// Delay records d without sleeping.
func (p *Panel) Delay(d time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.delays = append(p.delays, d)
}

func (p *Panel) Write(b []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.writes++
	if p.WriteErr != nil {
		return p.WriteErr
	}
	if !p.selected {
		p.stray += len(b)
		return nil
	}
	for _, v := range b {
		if p.dc == gpio.Low {
			p.command(v)
			continue
		}
		p.data(v)
	}
	return nil
}

func (p *Panel) command(op byte) {
	p.txs = append(p.txs, Transaction{Op: st7735r.Opcode(op)})
	if st7735r.Opcode(op) == st7735r.RAMWR {
		p.cx, p.cy = p.x0, p.y0
		p.haveHi = false
	}
}

func (p *Panel) data(v byte) {
	if len(p.txs) == 0 {
		p.stray++
		return
	}
	t := &p.txs[len(p.txs)-1]
	t.Data = append(t.Data, v)
	switch t.Op {
	case st7735r.CASET:
		if len(t.Data) == 4 {
			p.x0, p.x1 = word(t.Data[0:2]), word(t.Data[2:4])
		}
	case st7735r.RASET:
		if len(t.Data) == 4 {
			p.y0, p.y1 = word(t.Data[0:2]), word(t.Data[2:4])
		}
	case st7735r.RAMWR:
		if !p.haveHi {
			p.hi, p.haveHi = v, true
			return
		}
		p.haveHi = false
		p.put(st7735r.Color(p.hi)<<8 | st7735r.Color(v))
	}
}

// put stores c at the cursor and advances it row-major through the window.
func (p *Panel) put(c st7735r.Color) {
	if p.cx >= 0 && p.cx < ramWidth && p.cy >= 0 && p.cy < ramHeight {
		p.ram[p.cy*ramWidth+p.cx] = c
	}
	p.cx++
	if p.cx > p.x1 {
		p.cx = p.x0
		p.cy++
		if p.cy > p.y1 {
			p.cy = p.y0
		}
	}
}

func word(b []byte) int {
	return int(b[0])<<8 | int(b[1])
}

// Transactions returns the transactions seen so far.
func (p *Panel) Transactions() []Transaction {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]Transaction, len(p.txs))
	copy(out, p.txs)
	return out
}

// Delays returns the delays requested so far.
func (p *Panel) Delays() []time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]time.Duration(nil), p.delays...)
}

// Writes returns the number of Write calls, including failed and stray ones.
func (p *Panel) Writes() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.writes
}

// Stray returns the number of bytes written while the panel was not
// selected, or data bytes with no command before them.
func (p *Panel) Stray() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.stray
}

// Window returns the latched address window in visible pixel coordinates,
// with an exclusive Max.
func (p *Panel) Window() image.Rectangle {
	p.mu.Lock()
	defer p.mu.Unlock()
	return image.Rect(p.x0-visibleCol, p.y0-visibleRow, p.x1-visibleCol+1, p.y1-visibleRow+1)
}

// ClearLog forgets recorded transactions, delays and write counts. Memory
// is kept.
func (p *Panel) ClearLog() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.txs = nil
	p.delays = nil
	p.writes = 0
	p.stray = 0
}

func (p *Panel) ColorModel() color.Model {
	return st7735r.Model
}

func (p *Panel) Bounds() image.Rectangle {
	return image.Rect(0, 0, st7735r.Width, st7735r.Height)
}

func (p *Panel) At(x, y int) color.Color {
	return p.RGB565At(x, y)
}

// RGB565At returns the visible pixel at (x, y).
func (p *Panel) RGB565At(x, y int) st7735r.Color {
	if !(image.Point{x, y}.In(p.Bounds())) {
		return st7735r.Black
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ram[(y+visibleRow)*ramWidth+x+visibleCol]
}

// Snapshot copies the visible area into a new image.
func (p *Panel) Snapshot() *st7735r.Image {
	img := st7735r.NewImage(p.Bounds())
	for y := 0; y < st7735r.Height; y++ {
		for x := 0; x < st7735r.Width; x++ {
			img.Set(x, y, p.RGB565At(x, y))
		}
	}
	return img
}

// Save writes a snapshot of the visible area to path, in the format its
// extension names.
func (p *Panel) Save(path string) error {
	if err := imaging.Save(p.Snapshot(), path); err != nil {
		return fmt.Errorf("imaging.Save(%q) = %w", path, err)
	}
	return nil
}
