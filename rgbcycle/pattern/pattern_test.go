package pattern

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

// recorder is an Output that keeps every colour written to it.
type recorder struct {
	colors []Color
}

func (r *recorder) SetRGB(red, green, blue bool) {
	r.colors = append(r.colors, Color{Red: red, Green: green, Blue: blue})
}

func (r *recorder) last() Color { return r.colors[len(r.colors)-1] }

func TestTable(t *testing.T) {
	want := []struct {
		name    string
		r, g, b bool
	}{
		{"red", true, false, false},
		{"green", false, true, false},
		{"blue", false, false, true},
		{"white", true, true, true},
		{"yellow", true, true, false},
		{"cyan", false, true, true},
		{"magenta", true, false, true},
		{"off", false, false, false},
	}
	if Len != len(want) {
		t.Fatalf("Len = %d, want %d", Len, len(want))
	}
	for i, w := range want {
		p := Table[i]
		if p.Name != w.name {
			t.Errorf("Table[%d].Name = %q, want %q", i, p.Name, w.name)
		}
		if p.Label == "" {
			t.Errorf("Table[%d].Label is empty", i)
		}
		got := p.Color
		if got.Red != w.r || got.Green != w.g || got.Blue != w.b {
			t.Errorf("Table[%d].Color = %+v, want r=%v g=%v b=%v", i, got, w.r, w.g, w.b)
		}
	}
}

func TestStep_AppliesTableEntry(t *testing.T) {
	out := &recorder{}
	d := NewDriver(out, nil)

	for c := 0; c < Len; c++ {
		if d.Cursor() != c {
			t.Fatalf("Cursor() = %d before step %d", d.Cursor(), c)
		}
		d.Step()
		if got := out.last(); got != Table[c].Color {
			t.Errorf("step %d wrote %+v, want %+v", c, got, Table[c].Color)
		}
	}
}

func TestStep_CursorWraps(t *testing.T) {
	d := NewDriver(&recorder{}, nil)
	if d.Cursor() != 0 {
		t.Fatalf("initial Cursor() = %d, want 0", d.Cursor())
	}
	for k := 1; k <= 3*Len+5; k++ {
		d.Step()
		if got, want := d.Cursor(), k%Len; got != want {
			t.Fatalf("after %d steps Cursor() = %d, want %d", k, got, want)
		}
	}
}

func TestStep_NoSkipOrRepeat(t *testing.T) {
	var seen []int
	d := NewDriver(&recorder{}, nil)
	d.OnApply = func(index int, p Pattern) {
		if p != Table[index] {
			t.Errorf("OnApply(%d) got %+v, want %+v", index, p, Table[index])
		}
		seen = append(seen, index)
	}

	for i := 0; i < 2*Len+1; i++ {
		d.Step()
	}

	if seen[0] != 0 {
		t.Errorf("first applied index = %d, want 0", seen[0])
	}
	for i := 1; i < len(seen); i++ {
		if want := (seen[i-1] + 1) % Len; seen[i] != want {
			t.Errorf("index %d followed %d, want %d", seen[i], seen[i-1], want)
		}
	}
	if seen[Len] != 0 {
		t.Errorf("index after %d steps = %d, want 0", Len, seen[Len])
	}
}

func TestStep_BootScenario(t *testing.T) {
	out := &recorder{}
	d := NewDriver(out, nil)

	d.Step()
	if got := out.last(); got != (Color{Red: true}) {
		t.Errorf("first colour = %+v, want red only", got)
	}
	d.Step()
	if got := out.last(); got != (Color{Green: true}) {
		t.Errorf("second colour = %+v, want green only", got)
	}
	for i := 2; i < Len; i++ {
		d.Step()
	}
	d.Step()
	if got := out.last(); got != (Color{Red: true}) {
		t.Errorf("colour after a full cycle = %+v, want red only", got)
	}
}

func TestStep_Logs(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	d := NewDriver(&recorder{}, logger)

	d.Step()
	d.Step()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d log lines, want 2:\n%s", len(lines), buf.String())
	}
	for i, name := range []string{"red", "green"} {
		if !strings.Contains(lines[i], "msg=pattern:apply") {
			t.Errorf("line %d = %q, want pattern:apply message", i, lines[i])
		}
		if !strings.Contains(lines[i], "name="+name) {
			t.Errorf("line %d = %q, want name=%s", i, lines[i], name)
		}
	}
}
