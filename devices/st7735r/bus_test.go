package st7735r

import (
	"fmt"
	"testing"
	"time"

	"github.com/sirupsen/logrus/hooks/test"
	"periph.io/x/periph/conn/gpio"
)

// recorder is a Bus that logs every call.
type recorder struct {
	events []string
	data   [][]byte
	err    error
}

func (r *recorder) Select() error {
	r.events = append(r.events, "select")
	return nil
}

func (r *recorder) Deselect() error {
	r.events = append(r.events, "deselect")
	return nil
}

func (r *recorder) SetDC(l gpio.Level) error {
	if l == gpio.Low {
		r.events = append(r.events, "dc=cmd")
	} else {
		r.events = append(r.events, "dc=data")
	}
	return nil
}

func (r *recorder) Write(p []byte) error {
	r.events = append(r.events, fmt.Sprintf("write % X", p))
	r.data = append(r.data, append([]byte(nil), p...))
	return r.err
}

func (r *recorder) Delay(d time.Duration) {
	r.events = append(r.events, "delay "+d.String())
}

// writes returns the logged writes only.
func (r *recorder) writes() []string {
	var out []string
	for _, e := range r.events {
		if len(e) >= 5 && e[:5] == "write" {
			out = append(out, e)
		}
	}
	return out
}

func newTestDisplay(t *testing.T) (*Display, *recorder, *test.Hook) {
	t.Helper()
	r := &recorder{}
	d := NewBus(r)
	logger, hook := test.NewNullLogger()
	d.SetLogger(logger)
	return d, r, hook
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
