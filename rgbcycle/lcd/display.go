// Package lcd mirrors firmware status onto a character LCD.
//
// Example usage:
//
//	dev, err := lcd.Configure(machine.I2C0)
//	...
//	messages := make(chan lcd.Message, 4)
//	go lcd.NewHandler(dev, messages, logger).Run()
//	lcd.Send(messages, "Pattern 0", "red")
package lcd

import (
	"io"
	"log/slog"
)

// Display is the subset of a character LCD driver the handler needs.
// *hd44780i2c.Device satisfies it.
type Display interface {
	ClearDisplay()
	SetCursor(x, y uint8)
	Print(data []byte)
}

// Message represents a two-line LCD message.
type Message struct {
	Line1 []byte
	Line2 []byte
}

// Handler processes LCD messages from a channel.
type Handler struct {
	device   Display
	messages <-chan Message
	logger   *slog.Logger
	columns  int
}

// NewHandler creates a new 16x2 LCD message handler.
func NewHandler(device Display, messages <-chan Message, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
			Level: slog.Level(127),
		}))
	}
	return &Handler{
		device:   device,
		messages: messages,
		logger:   logger,
		columns:  16,
	}
}

// Run draws messages until the channel is closed.
// Run should be called in a separate goroutine.
func (h *Handler) Run() {
	h.logger.Info("lcd:handler-start")
	for msg := range h.messages {
		h.display(msg)
	}
	h.logger.Info("lcd:handler-stop")
}

func (h *Handler) display(msg Message) {
	h.device.ClearDisplay()
	h.device.SetCursor(0, 0)
	h.device.Print(h.truncate(msg.Line1))
	h.device.SetCursor(0, 1)
	h.device.Print(h.truncate(msg.Line2))
}

// truncate reslices in place, no allocation.
func (h *Handler) truncate(line []byte) []byte {
	if len(line) > h.columns {
		return line[:h.columns]
	}
	return line
}

// Send queues a message without blocking. It reports false if the
// channel was full and the message was dropped.
func Send(messages chan<- Message, line1, line2 string) bool {
	select {
	case messages <- Message{Line1: []byte(line1), Line2: []byte(line2)}:
		return true
	default:
		return false
	}
}
