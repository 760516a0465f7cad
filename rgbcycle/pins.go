//go:build rp2040 || rp2350

package main

import "machine"

// RGB LED channels. Each line drives one LED cathode (or anode, for
// common-anode parts built with activeLow) through a current-limiting
// resistor.
const (
	redPin   = machine.GP13
	greenPin = machine.GP14
	bluePin  = machine.GP15
)

// Optional status LCD on I2C0.
const (
	lcdSDA = machine.GP4
	lcdSCL = machine.GP5
)
