// Package led drives a three-channel (red, green, blue) LED wired to
// three digital output pins.
//
// Example usage:
//
//	rgb := led.New(led.MachinePin(machine.GP13), led.MachinePin(machine.GP14), led.MachinePin(machine.GP15), logger)
//	rgb.Init()
//	rgb.SetRGB(true, false, true) // magenta
package led

import (
	"io"
	"log/slog"
)

// Channel identifies one colour of the LED.
type Channel uint8

const (
	Red Channel = iota
	Green
	Blue
)

func (c Channel) String() string {
	switch c {
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	}
	return "unknown"
}

// Pin is a digital output line.
type Pin interface {
	// Configure puts the pin in output mode with pull resistors and
	// interrupts disabled.
	Configure()
	// Set drives the pin high (true) or low (false).
	Set(high bool)
}

// LED binds one pin to each channel. Levels are logical: true means the
// channel is lit regardless of how the LED is wired.
type LED struct {
	pins   [3]Pin
	levels [3]bool // Last logical level written per channel.
	logger *slog.Logger

	// ActiveLow is set for common-anode LEDs, where a channel lights
	// when its pin is driven low.
	ActiveLow bool
}

// New returns an LED using the given pins. Init must be called before
// any channel is set.
func New(red, green, blue Pin, logger *slog.Logger) *LED {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
			Level: slog.Level(127),
		}))
	}
	return &LED{
		pins:   [3]Pin{red, green, blue},
		logger: logger,
	}
}

// Init configures the three pins as outputs and turns every channel off.
// Calling it again leaves the LED in the same off state.
func (l *LED) Init() {
	l.logger.Info("led:init-start")
	for _, p := range l.pins {
		p.Configure()
	}
	l.SetRGB(false, false, false)
	l.logger.Info("led:init-done", slog.Bool("activeLow", l.ActiveLow))
}

// SetChannel sets the level of a single channel. The other channels are
// left untouched. Unknown channels are ignored.
func (l *LED) SetChannel(ch Channel, on bool) {
	if ch > Blue {
		return
	}
	l.pins[ch].Set(on != l.ActiveLow)
	l.levels[ch] = on
}

// SetRGB sets all three channels, in red, green, blue order. The writes
// are sequential, so an observer may briefly see a mix of the old and
// new colour.
func (l *LED) SetRGB(red, green, blue bool) {
	l.SetChannel(Red, red)
	l.SetChannel(Green, green)
	l.SetChannel(Blue, blue)
}

// Level reports the last logical level written to ch.
func (l *LED) Level(ch Channel) bool {
	if ch > Blue {
		return false
	}
	return l.levels[ch]
}

// Levels reports the last logical level of every channel.
func (l *LED) Levels() (red, green, blue bool) {
	return l.levels[Red], l.levels[Green], l.levels[Blue]
}
