// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads the JSON5 board description shared by the commands.
//
//  {
//    // Pins as named by gpioreg.
//    pins: {cs: "P1_24", dc: "P1_22", rst: "P1_11"},
//    spiPort: "",
//    spiHz: 4000000,
//    txLimit: 4096,
//    logLevel: "info",
//    simulate: false
//  }
package config

import (
	"flag"
	"fmt"
	"io/ioutil"

	"github.com/flynn/json5"
	"github.com/sirupsen/logrus"
	"github.com/toothrot/lunartft/devices/st7735r"
	"github.com/toothrot/lunartft/devices/st7735r/sim"
	"periph.io/x/periph/conn/physic"
)

type Pins struct {
	CS  string `json:"cs"`
	DC  string `json:"dc"`
	RST string `json:"rst"`
}

type Config struct {
	Pins     Pins   `json:"pins"`
	SPIPort  string `json:"spiPort"`
	SPIHz    int64  `json:"spiHz"`
	TxLimit  int    `json:"txLimit"`
	LogLevel string `json:"logLevel"`
	// Simulate drives an in-memory panel instead of the hardware.
	Simulate bool `json:"simulate"`
}

// Default matches st7735r.DefaultPins and st7735r.DefaultOpts.
func Default() Config {
	return Config{
		Pins: Pins{
			CS:  st7735r.DefaultPins.CS,
			DC:  st7735r.DefaultPins.DC,
			RST: st7735r.DefaultPins.RST,
		},
		SPIPort:  st7735r.DefaultOpts.Port,
		SPIHz:    int64(st7735r.DefaultOpts.Speed / physic.Hertz),
		TxLimit:  st7735r.DefaultOpts.TxLimit,
		LogLevel: logrus.InfoLevel.String(),
	}
}

// Load reads path over the defaults. An empty path returns Default().
func Load(path string) (Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}
	b, err := ioutil.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("ioutil.ReadFile(%q) = %w", path, err)
	}
	if err := json5.Unmarshal(b, &c); err != nil {
		return c, fmt.Errorf("json5.Unmarshal(%q) = %w", path, err)
	}
	if err := c.validate(); err != nil {
		return c, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Flags are the command-line settings every command shares. Set flags
// override the file.
type Flags struct {
	Path     string
	Simulate bool
	LogLevel string
}

// RegisterFlags defines -config, -sim and -log on fs.
func RegisterFlags(fs *flag.FlagSet) *Flags {
	f := new(Flags)
	fs.StringVar(&f.Path, "config", "", "JSON5 board config.")
	fs.BoolVar(&f.Simulate, "sim", false, "Drive a simulated panel instead of the hardware.")
	fs.StringVar(&f.LogLevel, "log", "", "Log level, overriding the config.")
	return f
}

// Load reads f.Path and applies the overrides.
func (f *Flags) Load() (Config, error) {
	c, err := Load(f.Path)
	if err != nil {
		return c, err
	}
	if f.Simulate {
		c.Simulate = true
	}
	if f.LogLevel != "" {
		c.LogLevel = f.LogLevel
		if err := c.validate(); err != nil {
			return c, fmt.Errorf("-log: %w", err)
		}
	}
	return c, nil
}

func (c Config) validate() error {
	if c.Pins.CS == "" || c.Pins.DC == "" {
		return fmt.Errorf("pins.cs and pins.dc are required")
	}
	if c.SPIHz <= 0 {
		return fmt.Errorf("invalid spiHz %d", c.SPIHz)
	}
	if c.TxLimit <= 0 {
		return fmt.Errorf("invalid txLimit %d", c.TxLimit)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Logger returns a logger at the configured level.
func (c Config) Logger() *logrus.Logger {
	l := logrus.New()
	l.Formatter = new(logrus.TextFormatter)
	if lvl, err := logrus.ParseLevel(c.LogLevel); err == nil {
		l.Level = lvl
	}
	return l
}

// Open returns the display described by c. When c.Simulate is set the
// returned panel backs the display and nothing touches the hardware;
// otherwise the panel is nil.
func (c Config) Open(log logrus.FieldLogger) (*st7735r.Display, *sim.Panel, error) {
	if c.Simulate {
		p := sim.New()
		d := st7735r.NewBus(p)
		d.SetLogger(log)
		return d, p, nil
	}
	d, err := st7735r.New(st7735r.Pins{
		CS:  c.Pins.CS,
		DC:  c.Pins.DC,
		RST: c.Pins.RST,
	}, &st7735r.Opts{
		Port:    c.SPIPort,
		Speed:   physic.Frequency(c.SPIHz) * physic.Hertz,
		TxLimit: c.TxLimit,
	})
	if err != nil {
		return nil, nil, err
	}
	d.SetLogger(log)
	return d, nil, nil
}
