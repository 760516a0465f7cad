// Package pattern cycles an RGB output through a fixed table of colours.
package pattern

import (
	"io"
	"log/slog"
)

// Color is the on/off state of each LED channel.
type Color struct {
	Red   bool
	Green bool
	Blue  bool
}

// Pattern is a named entry of the colour table.
type Pattern struct {
	Name  string
	Label string // Name as shown on the device's local-language console.
	Color Color
}

// Table is the fixed sequence the driver walks through.
var Table = [...]Pattern{
	{Name: "red", Label: "赤", Color: Color{Red: true}},
	{Name: "green", Label: "緑", Color: Color{Green: true}},
	{Name: "blue", Label: "青", Color: Color{Blue: true}},
	{Name: "white", Label: "白", Color: Color{Red: true, Green: true, Blue: true}},
	{Name: "yellow", Label: "黄", Color: Color{Red: true, Green: true}},
	{Name: "cyan", Label: "シアン", Color: Color{Green: true, Blue: true}},
	{Name: "magenta", Label: "マゼンタ", Color: Color{Red: true, Blue: true}},
	{Name: "off", Label: "消灯", Color: Color{}},
}

// Len is the number of entries in Table.
const Len = len(Table)

// Output receives the colour of each step. *led.LED satisfies it.
type Output interface {
	SetRGB(red, green, blue bool)
}

// Driver owns the cursor into Table. It is not safe for concurrent use;
// a single task is expected to call Step.
type Driver struct {
	out    Output
	logger *slog.Logger
	cursor int

	// OnApply, if set, is called after each colour is written.
	OnApply func(index int, p Pattern)
}

// NewDriver returns a driver positioned at the first entry of Table.
// A nil logger discards log output.
func NewDriver(out Output, logger *slog.Logger) *Driver {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
			Level: slog.Level(127),
		}))
	}
	return &Driver{out: out, logger: logger}
}

// Cursor returns the index Step will apply next.
func (d *Driver) Cursor() int { return d.cursor }

// Step writes the colour at the cursor and advances the cursor, wrapping
// after the last entry.
func (d *Driver) Step() {
	i := d.cursor
	p := Table[i]
	d.out.SetRGB(p.Color.Red, p.Color.Green, p.Color.Blue)
	d.logger.Info("pattern:apply",
		slog.Int("index", i),
		slog.String("name", p.Name),
		slog.String("label", p.Label),
	)
	if d.OnApply != nil {
		d.OnApply(i, p)
	}
	d.cursor = (i + 1) % Len
}
