// Package task runs a function periodically on its own goroutine.
//
// TinyGo schedules goroutines cooperatively on a single core, so the
// function must return promptly; the task yields to other goroutines
// while it sleeps between calls.
package task

import (
	"io"
	"log/slog"
	"time"
)

// DefaultInterval is used when Config.Interval is not positive.
const DefaultInterval = 1000 * time.Millisecond

// Config describes a periodic task.
//
// Goroutine stack size is fixed at link time (tinygo -stack-size) and the
// scheduler has no priorities, so neither is configurable here.
type Config struct {
	Name     string
	Interval time.Duration       // Delay after each call.
	Sleep    func(time.Duration) // Defaults to time.Sleep.
	Logger   *slog.Logger
}

// Spawn starts fn on a new goroutine. See Run.
func Spawn(cfg Config, fn func()) {
	go Run(cfg, fn)
}

// Run calls fn, then sleeps for the configured interval, forever. It
// never returns.
func Run(cfg Config, fn func()) {
	cfg = cfg.withDefaults()
	cfg.Logger.Info("task:start",
		slog.String("name", cfg.Name),
		slog.Duration("interval", cfg.Interval),
	)
	for {
		fn()
		cfg.Sleep(cfg.Interval)
	}
}

func (cfg Config) withDefaults() Config {
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultInterval
	}
	if cfg.Sleep == nil {
		cfg.Sleep = time.Sleep
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
			Level: slog.Level(127),
		}))
	}
	if cfg.Name == "" {
		cfg.Name = "task"
	}
	return cfg
}
