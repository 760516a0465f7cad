//go:build tinygo

package led

import "machine"

// MachinePin adapts a TinyGo machine.Pin to Pin.
type MachinePin machine.Pin

func (p MachinePin) Configure() {
	// PinOutput has no pull resistors and pin interrupts stay disabled
	// until SetInterrupt is called.
	machine.Pin(p).Configure(machine.PinConfig{Mode: machine.PinOutput})
}

func (p MachinePin) Set(high bool) {
	machine.Pin(p).Set(high)
}
