//go:build tinygo

package lcd

import (
	"errors"

	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/hd44780i2c"
)

// Common I2C backpack addresses (PCF8574 then PCF8574A).
var addrs = []uint8{0x27, 0x3F}

// Configure finds an HD44780 LCD on a preconfigured I2C bus and
// initializes it as a 16x2 display.
func Configure(bus drivers.I2C) (*hd44780i2c.Device, error) {
	for _, a := range addrs {
		// The backpack ACKs any single-byte write to its port register.
		if err := bus.Tx(uint16(a), []byte{0}, nil); err != nil {
			continue
		}
		dev := hd44780i2c.New(bus, a)
		dev.Configure(hd44780i2c.Config{
			Width:  16,
			Height: 2,
		})
		return &dev, nil
	}
	return nil, errors.New("LCD not found on addresses: 0x27, 0x3f")
}
