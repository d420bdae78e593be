package st7735r

import (
	"bytes"
	"image"
	"image/color"
	"testing"
	"time"

	"periph.io/x/periph/conn/gpio"
)

func TestSetAddrWindow(t *testing.T) {
	d, r, _ := newTestDisplay(t)
	if !d.SetAddrWindow(10, 20, 30, 40) {
		t.Fatal("SetAddrWindow(10, 20, 30, 40) = false, want true")
	}
	want := []string{
		"write 2A", "write 00 0C 00 20",
		"write 2B", "write 00 17 00 2B",
	}
	if got := r.writes(); !equal(got, want) {
		t.Errorf("writes = %q, want %q", got, want)
	}
}

func TestOffScreenSendsNothing(t *testing.T) {
	cases := []struct {
		desc string
		draw func(d *Display)
	}{
		{"DrawPixel x<0", func(d *Display) { d.DrawPixel(-1, 0, White) }},
		{"DrawPixel y>127", func(d *Display) { d.DrawPixel(0, 128, White) }},
		{"FillRect x>127", func(d *Display) { d.FillRect(128, 0, 4, 4, White) }},
		{"FillRect y<0", func(d *Display) { d.FillRect(0, -1, 4, 4, White) }},
		{"SetAddrWindow x1>127", func(d *Display) { d.SetAddrWindow(0, 0, 128, 5) }},
		{"SetAddrWindow x0<0", func(d *Display) { d.SetAddrWindow(-1, 0, 5, 5) }},
		{"FastSpriteAt x<0", func(d *Display) { d.FastSpriteAt(-33, 0, true) }},
		{"FastSpriteAt y>127", func(d *Display) { d.FastSpriteAt(0, WorkingHeight, true) }},
		{"FastSpriteAt right edge", func(d *Display) { d.FastSpriteAt(123*Scale, 0, true) }},
		{"DrawImage past edge", func(d *Display) {
			d.DrawImage(image.Pt(120, 0), NewImage(image.Rect(0, 0, 10, 10)))
		}},
	}
	for _, c := range cases {
		t.Run(c.desc, func(t *testing.T) {
			d, r, _ := newTestDisplay(t)
			c.draw(d)
			if len(r.events) != 0 {
				t.Errorf("events = %q, want none", r.events)
			}
		})
	}
}

func TestDrawPixel(t *testing.T) {
	d, r, _ := newTestDisplay(t)
	d.DrawPixel(127, 0, Color(0x1234))
	want := []string{
		"write 2A", "write 00 81 00 81",
		"write 2B", "write 00 03 00 03",
		"write 2C", "write 12 34",
	}
	if got := r.writes(); !equal(got, want) {
		t.Errorf("writes = %q, want %q", got, want)
	}
}

func TestFillRectClips(t *testing.T) {
	cases := []struct {
		desc          string
		x, y, w, h    int
		wantCol       []byte
		wantRow       []byte
		wantPixelData int
	}{
		{
			desc: "right edge", x: 120, y: 0, w: 20, h: 10,
			wantCol: []byte{0x00, 122, 0x00, 129}, wantRow: []byte{0x00, 3, 0x00, 12},
			wantPixelData: 8 * 10 * 2,
		},
		{
			desc: "bottom edge", x: 0, y: 100, w: 4, h: 100,
			wantCol: []byte{0x00, 2, 0x00, 5}, wantRow: []byte{0x00, 103, 0x00, 130},
			wantPixelData: 4 * 28 * 2,
		},
		{
			desc: "full screen", x: 0, y: 0, w: Width, h: Height,
			wantCol: []byte{0x00, 2, 0x00, 129}, wantRow: []byte{0x00, 3, 0x00, 130},
			wantPixelData: Width * Height * 2,
		},
	}
	for _, c := range cases {
		t.Run(c.desc, func(t *testing.T) {
			d, r, _ := newTestDisplay(t)
			d.FillRect(c.x, c.y, c.w, c.h, Color(0xABCD))
			if len(r.data) != 6 {
				t.Fatalf("FillRect made %d writes, want 6", len(r.data))
			}
			if !bytes.Equal(r.data[1], c.wantCol) {
				t.Errorf("CASET params = % X, want % X", r.data[1], c.wantCol)
			}
			if !bytes.Equal(r.data[3], c.wantRow) {
				t.Errorf("RASET params = % X, want % X", r.data[3], c.wantRow)
			}
			if !bytes.Equal(r.data[4], []byte{byte(RAMWR)}) {
				t.Errorf("opcode = % X, want RAMWR", r.data[4])
			}
			px := r.data[5]
			if len(px) != c.wantPixelData {
				t.Errorf("pixel data = %d bytes, want %d", len(px), c.wantPixelData)
			}
			if !bytes.Equal(px, bytes.Repeat([]byte{0xAB, 0xCD}, len(px)/2)) {
				t.Error("pixel data is not the fill colour, high byte first")
			}
		})
	}
}

func TestFillRectEmpty(t *testing.T) {
	d, r, _ := newTestDisplay(t)
	d.FillRect(5, 5, 0, 10, White)
	d.FillRect(5, 5, 10, -2, White)
	if len(r.events) != 0 {
		t.Errorf("events = %q, want none", r.events)
	}
}

func TestFillRectIsOneBurst(t *testing.T) {
	d, r, _ := newTestDisplay(t)
	d.FillRect(0, 0, 2, 2, White)
	var selects int
	for _, e := range r.events {
		if e == "select" {
			selects++
		}
	}
	// CASET, RASET, then a single RAMWR selection for all pixels.
	if selects != 3 {
		t.Errorf("FillRect selected the device %d times, want 3", selects)
	}
}

func TestLinePoints(t *testing.T) {
	cases := []struct {
		desc           string
		x0, y0, x1, y1 int
		want           []image.Point
	}{
		{
			desc: "horizontal",
			x1:   64,
			want: []image.Point{{0, 0}, {1, 0}, {2, 0}},
		},
		{
			desc: "horizontal backwards",
			x0:   64,
			want: []image.Point{{2, 0}, {1, 0}, {0, 0}},
		},
		{
			desc: "vertical",
			y1:   96,
			want: []image.Point{{0, 0}, {0, 1}, {0, 2}, {0, 3}},
		},
		{
			desc: "shallow, truncated increment",
			x1:   96, y1: 40,
			want: []image.Point{{0, 0}, {1, 1}, {2, 1}, {3, 2}},
		},
		{
			desc: "steep",
			x1:   20, y1: 64,
			want: []image.Point{{0, 0}, {1, 1}, {1, 2}},
		},
		{
			desc: "shorter than a pixel",
			x1:   10, y1: 5,
			want: []image.Point{{0, 0}},
		},
		{
			desc: "single point",
			x0:   320, y0: 320, x1: 320, y1: 320,
			want: []image.Point{{10, 10}},
		},
	}
	for _, c := range cases {
		t.Run(c.desc, func(t *testing.T) {
			var got []image.Point
			for p := range LinePoints(c.x0, c.y0, c.x1, c.y1) {
				got = append(got, p)
			}
			if len(got) != len(c.want) {
				t.Fatalf("LinePoints(%d, %d, %d, %d) = %v, want %v", c.x0, c.y0, c.x1, c.y1, got, c.want)
			}
			for i := range got {
				if got[i] != c.want[i] {
					t.Errorf("LinePoints(%d, %d, %d, %d) = %v, want %v", c.x0, c.y0, c.x1, c.y1, got, c.want)
					break
				}
			}
		})
	}
}

func TestLinePointsCount(t *testing.T) {
	lines := [][4]int{
		{0, 4064, 480, 3680},
		{480, 3680, 960, 3680},
		{960, 3680, 1440, 4064},
		{4000, 100, 10, 90},
	}
	for _, l := range lines {
		dx, dy := abs(l[2]-l[0]), abs(l[3]-l[1])
		major := dx
		if dy > dx {
			major = dy
		}
		var n int
		for range LinePoints(l[0], l[1], l[2], l[3]) {
			n++
		}
		if want := major/Scale + 1; n != want {
			t.Errorf("LinePoints(%v) yielded %d points, want %d", l, n, want)
		}
	}
}

func TestLinePointsStops(t *testing.T) {
	var n int
	for range LinePoints(0, 0, 4000, 0) {
		n++
		if n == 2 {
			break
		}
	}
	if n != 2 {
		t.Errorf("iterated %d points after break, want 2", n)
	}
}

func TestDrawLineOffScreenPointsSkipped(t *testing.T) {
	d, r, _ := newTestDisplay(t)
	// Starts one pixel left of the panel: only the second point is drawn.
	d.DrawLine(-Scale, 0, 0, 0, White)
	var rams int
	for _, w := range r.writes() {
		if w == "write 2C" {
			rams++
		}
	}
	if rams != 1 {
		t.Errorf("DrawLine wrote %d pixels, want 1", rams)
	}
}

func TestDrawImage(t *testing.T) {
	d, r, _ := newTestDisplay(t)
	src := image.NewRGBA(image.Rect(5, 5, 7, 6))
	src.Set(5, 5, color.RGBA{0xFF, 0, 0, 0xFF})
	src.Set(6, 5, color.RGBA{0, 0, 0xFF, 0xFF})

	d.DrawImage(image.Pt(1, 2), src)
	want := []string{
		"write 2A", "write 00 03 00 04",
		"write 2B", "write 00 05 00 05",
		"write 2C", "write F8 00 00 1F",
	}
	if got := r.writes(); !equal(got, want) {
		t.Errorf("writes = %q, want %q", got, want)
	}
}

type discard struct{}

func (discard) Select() error { return nil }
func (discard) Deselect() error { return nil }
func (discard) SetDC(gpio.Level) error { return nil }
func (discard) Write([]byte) error { return nil }
func (discard) Delay(time.Duration) {}

func BenchmarkFillRect(b *testing.B) {
	d := NewBus(discard{})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d.FillRect(0, 0, Width, Height, Blue)
	}
}

func BenchmarkFastSpriteAt(b *testing.B) {
	d := NewBus(discard{})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d.FastSpriteAt(60*Scale, 8*Scale, i%2 == 0)
	}
}

func BenchmarkDrawLine(b *testing.B) {
	d := NewBus(discard{})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d.DrawLine(0, 0, WorkingWidth-1, WorkingHeight-1, White)
	}
}
