// Package config holds the firmware's build-time settings.
//
// Values are strings set with linker flags, for example:
//
//	tinygo flash -target=pico -ldflags="-X 'github.com/harveysanders/rgbcycle/rgbcycle/config.interval=500ms' -X 'github.com/harveysanders/rgbcycle/rgbcycle/config.activeLow=true'" ./rgbcycle
//
// Unset or malformed values fall back to the defaults.
package config

import (
	"strconv"
	"time"

	"github.com/harveysanders/rgbcycle/rgbcycle/task"
)

// DefaultInterval is the time each pattern stays lit.
const DefaultInterval = task.DefaultInterval

var (
	interval  string
	activeLow string
	lcd       string
)

// Interval returns the delay between pattern changes.
func Interval() time.Duration {
	d, err := time.ParseDuration(interval)
	if err != nil || d <= 0 {
		return DefaultInterval
	}
	return d
}

// ActiveLow reports whether the LED is common-anode.
func ActiveLow() bool { return parseBool(activeLow) }

// LCDEnabled reports whether the I2C status display should be used.
func LCDEnabled() bool { return parseBool(lcd) }

func parseBool(s string) bool {
	b, err := strconv.ParseBool(s)
	return err == nil && b
}
