package menu

import "testing"

func testGroup(loop bool) *Group {
	g := NewGroup("Voice", []Item{
		NewNumber("Level", NumberConfig{}),
		NewNumber("Pan", NumberConfig{Min: -1, Max: 1}),
		NewNumber("Detune", NumberConfig{}),
	})
	g.SetLoop(loop)
	return g
}

func TestGroupNavigateClamps(t *testing.T) {
	g := testGroup(false)

	if g.Navigate(-1) {
		t.Error("expected no change navigating before the first item")
	}
	if !g.Navigate(2) {
		t.Error("expected navigation to move")
	}
	if g.Index() != 2 {
		t.Errorf("expected index 2, got %d", g.Index())
	}
	if g.Navigate(1) {
		t.Error("expected no change navigating past the last item")
	}
	if g.Index() != 2 {
		t.Errorf("expected index to stay 2, got %d", g.Index())
	}
}

func TestGroupNavigateWraps(t *testing.T) {
	g := testGroup(true)

	if !g.Navigate(-1) {
		t.Error("expected wrap from the first to the last item")
	}
	if g.Index() != 2 {
		t.Errorf("expected index 2 after wrap, got %d", g.Index())
	}
	if !g.Navigate(1) {
		t.Error("expected wrap from the last to the first item")
	}
	if g.Index() != 0 {
		t.Errorf("expected index 0 after wrap, got %d", g.Index())
	}
	if !g.Navigate(-5) {
		t.Error("expected multi-step wrap to move")
	}
	if g.Index() != 1 {
		t.Errorf("expected index 1 after wrapping -5, got %d", g.Index())
	}
}

func TestGroupSetIndexModulo(t *testing.T) {
	g := testGroup(false)

	g.SetIndex(5)
	if g.Index() != 2 {
		t.Errorf("expected index 5 mod 3 = 2, got %d", g.Index())
	}
	g.SetIndex(-1)
	if g.Index() != 2 {
		t.Errorf("expected index -1 mod 3 = 2, got %d", g.Index())
	}
}

func TestGroupStepDelegation(t *testing.T) {
	level := NewNumber("Level", NumberConfig{Step: 0.5})
	sub := NewGroup("Filter", []Item{NewNumber("Cutoff", NumberConfig{})})
	g := NewGroup("Voice", []Item{level, sub})

	if !g.Increment() {
		t.Error("expected increment to reach the current leaf")
	}
	if got := level.Float(); got != 0.5 {
		t.Errorf("expected leaf at 0.5, got %f", got)
	}

	// Composite children cannot be stepped without descending into them.
	g.Navigate(1)
	if g.Increment() {
		t.Error("expected increment on a composite child to be a no-op")
	}
	if g.Decrement() {
		t.Error("expected decrement on a composite child to be a no-op")
	}
}

func TestGroupFind(t *testing.T) {
	g := testGroup(false)

	if item := g.Find("Pan"); item == nil || item.Title() != "Pan" {
		t.Error("expected to find the Pan item")
	}
	if item := g.Find("Missing"); item != nil {
		t.Error("expected nil for an unknown title")
	}
}

func TestGroupValuePositional(t *testing.T) {
	g := testGroup(false)

	g.SetValue([]any{0.5, -1.0})
	values := g.Value().([]any)
	if values[0].(float64) != 0.5 || values[1].(float64) != -1.0 {
		t.Errorf("expected positional assignment, got %v", values)
	}
	if values[2].(float64) != 0.0 {
		t.Errorf("expected unassigned tail untouched, got %v", values[2])
	}
}

func TestGroupDataOmitsValueless(t *testing.T) {
	g := NewGroup("Voice", []Item{
		NewNumber("Level", NumberConfig{Default: 0.5}),
		NewAction("Save", func() {}),
	})

	data := g.Data().(map[string]any)
	if _, ok := data["Save"]; ok {
		t.Error("expected action omitted from data")
	}
	if got := data["Level"].(float64); got != 0.5 {
		t.Errorf("expected level 0.5 in data, got %v", got)
	}
}

func TestGroupSetDataMergeTolerance(t *testing.T) {
	level := NewNumber("Level", NumberConfig{})
	g := NewGroup("Voice", []Item{level})

	// Unknown titles are skipped, known ones applied.
	g.SetData(map[string]any{"Ghost": 1.0, "Level": 0.75})
	if got := level.Float(); got != 0.75 {
		t.Errorf("expected 0.75 after merge, got %f", got)
	}
}

func TestGroupResetAll(t *testing.T) {
	level := NewNumber("Level", NumberConfig{Default: 1})
	cutoff := NewNumber("Cutoff", NumberConfig{Default: 0.5})
	g := NewGroup("Voice", []Item{level, NewGroup("Filter", []Item{cutoff})})

	level.SetValue(0.0)
	cutoff.SetValue(0.0)
	if !g.ResetAll() {
		t.Error("expected full reset to report a change")
	}
	if level.Float() != 1.0 || cutoff.Float() != 0.5 {
		t.Errorf("expected defaults restored, got %f and %f", level.Float(), cutoff.Float())
	}
}

func TestGroupEmpty(t *testing.T) {
	g := NewGroup("Empty", nil)

	if g.Navigate(1) || g.Increment() || g.Decrement() || g.Reset() {
		t.Error("expected all operations on an empty group to be no-ops")
	}
	if g.Current() != nil {
		t.Error("expected nil current item")
	}
}
