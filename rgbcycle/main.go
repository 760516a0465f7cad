//go:build rp2040 || rp2350

package main

import (
	"log/slog"
	"machine"
	"strconv"

	"github.com/harveysanders/rgbcycle/rgbcycle/config"
	"github.com/harveysanders/rgbcycle/rgbcycle/lcd"
	"github.com/harveysanders/rgbcycle/rgbcycle/led"
	"github.com/harveysanders/rgbcycle/rgbcycle/pattern"
	"github.com/harveysanders/rgbcycle/rgbcycle/task"
)

func main() {
	logger := slog.New(slog.NewTextHandler(machine.Serial, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	logger.Info("rgbcycle:starting")

	rgb := led.New(led.MachinePin(redPin), led.MachinePin(greenPin), led.MachinePin(bluePin), logger)
	rgb.ActiveLow = config.ActiveLow()
	rgb.Init()

	driver := pattern.NewDriver(rgb, logger)
	if config.LCDEnabled() {
		if messages, ok := startLCD(logger); ok {
			driver.OnApply = func(index int, p pattern.Pattern) {
				lcd.Send(messages, "Pattern "+strconv.Itoa(index), p.Name)
			}
		}
	}

	task.Spawn(task.Config{
		Name:     "led_blink_task",
		Interval: config.Interval(),
		Logger:   logger,
	}, driver.Step)
	logger.Info("rgbcycle:task-started")

	// Returning from main ends the program; the task keeps running.
	select {}
}

// startLCD brings up the status display. Failures are logged and the
// firmware carries on without it.
func startLCD(logger *slog.Logger) (chan<- lcd.Message, bool) {
	err := machine.I2C0.Configure(machine.I2CConfig{
		SDA: lcdSDA,
		SCL: lcdSCL,
	})
	if err != nil {
		logger.Error("configure I2C", slog.Any("reason", err))
		return nil, false
	}

	dev, err := lcd.Configure(machine.I2C0)
	if err != nil {
		logger.Error("configure LCD", slog.Any("reason", err))
		return nil, false
	}

	messages := make(chan lcd.Message, 4)
	go lcd.NewHandler(dev, messages, logger).Run()
	return messages, true
}
