package lcd

import (
	"strings"
	"testing"

	"synthmenu/menu"
)

// fakeDisplay records what the renderer writes.
type fakeDisplay struct {
	col, line int
	text      string
	writes    int
}

func (d *fakeDisplay) SetCursor(column, line int) { d.col, d.line = column, line }
func (d *fakeDisplay) Message(text string)        { d.text = text; d.writes++ }

func testMenu() *menu.Menu {
	return menu.NewMenu("Synth", []menu.Item{
		menu.NewNumber("Level", menu.NumberConfig{Default: 0.5}),
		menu.NewGroup("Filter", []menu.Item{
			menu.NewNumber("Cutoff", menu.NumberConfig{}),
		}),
	})
}

func TestScreenPanicsBelowTwoLines(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected a panic for a 1-line display")
		}
	}()
	NewScreen(&fakeDisplay{}, 16, 1, testMenu())
}

func TestScreenFrameShape(t *testing.T) {
	d := &fakeDisplay{}
	m := testMenu()
	s := NewScreen(d, 16, 2, m)

	frame := s.Frame(m.Selected())
	if len(frame) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(frame))
	}
	for i, row := range frame {
		if len(row) != 16 {
			t.Errorf("row %d: expected 16 columns, got %d (%q)", i, len(row), row)
		}
	}

	if !strings.HasPrefix(frame[0], "Syn:Level") {
		t.Errorf("expected group:item header, got %q", frame[0])
	}
	if !strings.HasPrefix(frame[1], ">Level") {
		t.Errorf("expected cursor on the level row, got %q", frame[1])
	}
	if !strings.Contains(frame[1], "0.5") {
		t.Errorf("expected the value label in the row, got %q", frame[1])
	}
}

func TestScreenLeafFrame(t *testing.T) {
	d := &fakeDisplay{}
	m := testMenu()
	s := NewScreen(d, 16, 2, m)
	m.Select() // edit Level

	frame := s.Frame(m.Selected())
	if !strings.HasPrefix(frame[0], "Level") {
		t.Errorf("expected the leaf title, got %q", frame[0])
	}
	if !strings.HasPrefix(frame[1], "0.5") {
		t.Errorf("expected the leaf label, got %q", frame[1])
	}
}

func TestScreenRedrawsOnChange(t *testing.T) {
	d := &fakeDisplay{}
	m := testMenu()
	NewScreen(d, 16, 2, m)

	before := d.writes
	m.Next()
	if d.writes != before+1 {
		t.Errorf("expected one write per change, got %d", d.writes-before)
	}

	m.Next() // clamped: no change, no write
	if d.writes != before+1 {
		t.Errorf("expected no write on a no-op, got %d", d.writes-before)
	}
}

func TestWindowScroll(t *testing.T) {
	tests := []struct {
		name                     string
		length, height, selected int
		loop                     bool
		want                     int
	}{
		{"fits", 3, 4, 2, false, 0},
		{"top clamp", 10, 4, 0, false, 0},
		{"centered", 10, 4, 5, false, 3},
		{"bottom clamp", 10, 4, 9, false, 6},
		{"loop wraps", 10, 4, 0, true, 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := window(tt.length, tt.height, tt.selected, tt.loop); got != tt.want {
				t.Errorf("expected top %d, got %d", tt.want, got)
			}
		})
	}
}
