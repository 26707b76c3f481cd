package widgets

import (
	"testing"

	"synthmenu/menu"
)

func TestWindow(t *testing.T) {
	tests := []struct {
		name                     string
		length, height, selected int
		loop                     bool
		want                     int
	}{
		{"short list", 3, 8, 1, false, 0},
		{"start clamp", 12, 5, 0, false, 0},
		{"centered", 12, 5, 6, false, 4},
		{"end clamp", 12, 5, 11, false, 7},
		{"loop scrolls past zero", 12, 5, 1, true, 11},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Window(tt.length, tt.height, tt.selected, tt.loop); got != tt.want {
				t.Errorf("expected top %d, got %d", tt.want, got)
			}
		})
	}
}

func TestGroupLines(t *testing.T) {
	g := menu.NewGroup("Voice", []menu.Item{
		menu.NewNumber("Level", menu.NumberConfig{Default: 0.5}),
		menu.NewGroup("Filter", nil),
		menu.NewNumber("Pan", menu.NumberConfig{Min: -1, Max: 1}),
	})
	g.SetIndex(1)

	lines := GroupLines(g, 8)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if !lines[1].Selected || lines[0].Selected {
		t.Error("expected only the cursor row marked selected")
	}
	if !lines[1].Group {
		t.Error("expected the filter row marked as a group")
	}
	if lines[0].Label != "0.5" {
		t.Errorf("expected the number label, got %q", lines[0].Label)
	}
}

func TestGroupLinesWindowed(t *testing.T) {
	items := make([]menu.Item, 10)
	for i := range items {
		items[i] = menu.NewNumber(string(rune('A'+i)), menu.NumberConfig{})
	}
	g := menu.NewGroup("Bank", items)
	g.SetIndex(5)

	lines := GroupLines(g, 4)
	if len(lines) != 4 {
		t.Fatalf("expected 4 visible lines, got %d", len(lines))
	}
	if lines[0].Title != "D" {
		t.Errorf("expected the window to start at D, got %q", lines[0].Title)
	}
	selected := 0
	for _, l := range lines {
		if l.Selected {
			selected++
		}
	}
	if selected != 1 {
		t.Errorf("expected exactly one selected row, got %d", selected)
	}
}

func TestEnvelopeSeries(t *testing.T) {
	e := menu.NewADSREnvelope("Amp")
	series := EnvelopeSeries(e, 40)
	if len(series) == 0 {
		t.Fatal("expected a plotted series")
	}
	if series[0] != 0 {
		t.Errorf("expected the trace to start at 0, got %f", series[0])
	}
	max := 0.0
	for _, v := range series {
		if v > max {
			max = v
		}
	}
	if max < 0.9 {
		t.Errorf("expected the attack to approach the attack level, got peak %f", max)
	}

	if got := EnvelopeSeries(menu.NewNumber("n", menu.NumberConfig{}), 40); got != nil {
		t.Error("expected nil for a non-envelope item")
	}
}
