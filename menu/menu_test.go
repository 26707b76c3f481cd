package menu

import "testing"

func testMenu() (*Menu, *Number, *Group) {
	level := NewNumber("Level", NumberConfig{Step: 0.5})
	filter := NewGroup("Filter", []Item{
		NewNumber("Cutoff", NumberConfig{}),
		NewNumber("Resonance", NumberConfig{}),
	})
	m := NewMenu("Synth", []Item{level, filter})
	return m, level, filter
}

func TestMenuSelectAndExit(t *testing.T) {
	m, _, filter := testMenu()

	if m.Depth() != 1 || m.Selected() != Item(m) {
		t.Fatal("expected the menu itself on the stack initially")
	}

	m.Navigate(1)
	if !m.Select() {
		t.Fatal("expected selecting a group to succeed")
	}
	if m.Depth() != 2 || m.Selected() != Item(filter) {
		t.Errorf("expected the filter group selected at depth 2, got depth %d", m.Depth())
	}

	if !m.Exit() {
		t.Error("expected exit to pop the stack")
	}
	if m.Depth() != 1 {
		t.Errorf("expected depth 1 after exit, got %d", m.Depth())
	}
	if m.Exit() {
		t.Error("expected exit at the root to be a no-op")
	}
}

func TestMenuActionHandledOnce(t *testing.T) {
	var first, second int
	m := NewMenu("Main", []Item{
		NewAction("Save", func() { first++ }),
		NewAction("Load", func() { second++ }),
	})

	if !m.Next() {
		t.Fatal("expected next to move to the second action")
	}
	if !m.Select() {
		t.Fatal("expected selecting an action to report a change")
	}
	if first != 0 || second != 1 {
		t.Errorf("expected only the second action fired once, got %d and %d", first, second)
	}
	if m.Depth() != 1 {
		t.Errorf("expected actions to leave the stack alone, got depth %d", m.Depth())
	}
}

func TestMenuSelectIndexModulo(t *testing.T) {
	m, _, filter := testMenu()

	if !m.SelectIndex(3) {
		t.Fatal("expected select by index to succeed")
	}
	if m.Selected() != Item(filter) {
		t.Error("expected index 3 mod 2 = 1 to select the filter group")
	}
}

func TestMenuLeafEditing(t *testing.T) {
	m, level, _ := testMenu()

	if !m.Select() {
		t.Fatal("expected selecting a leaf to push it")
	}
	if m.Depth() != 2 || m.Selected() != Item(level) {
		t.Fatal("expected the level leaf as editing context")
	}

	// Stepping acts on the edited leaf.
	if !m.Increment() {
		t.Error("expected increment to step the edited leaf")
	}
	if level.Float() != 0.5 {
		t.Errorf("expected level 0.5, got %f", level.Float())
	}

	// Selecting again while editing a leaf does nothing.
	if m.Select() {
		t.Error("expected select on an edited leaf to be a no-op")
	}
	if m.Depth() != 2 {
		t.Errorf("expected depth unchanged, got %d", m.Depth())
	}
}

func TestMenuLateralLeafNavigation(t *testing.T) {
	m, _, filter := testMenu()

	m.Navigate(1)
	m.Select() // enter Filter
	m.Select() // edit Cutoff
	cutoff := filter.Items()[0]
	if m.Selected() != cutoff {
		t.Fatal("expected the cutoff leaf as editing context")
	}

	// Moving sideways while editing swaps in the sibling leaf.
	if !m.Next() {
		t.Fatal("expected lateral navigation to move")
	}
	if m.Selected().Title() != "Resonance" {
		t.Errorf("expected the resonance leaf, got %q", m.Selected().Title())
	}
	if m.Depth() != 3 {
		t.Errorf("expected depth unchanged at 3, got %d", m.Depth())
	}
	if filter.Index() != 1 {
		t.Errorf("expected the parent cursor to follow, got %d", filter.Index())
	}

	// At the edge with no loop there is nowhere to go.
	if m.Next() {
		t.Error("expected lateral navigation at the edge to be a no-op")
	}
}

func TestMenuIncrementAtRoot(t *testing.T) {
	m, level, _ := testMenu()

	if !m.Increment() {
		t.Error("expected increment at the root to step the current leaf")
	}
	if level.Float() != 0.5 {
		t.Errorf("expected level 0.5, got %f", level.Float())
	}

	// Composite children are not steppable from the list view.
	m.Navigate(1)
	if m.Increment() {
		t.Error("expected increment over a group child to be a no-op")
	}
}

func TestMenuResetActsOnRoot(t *testing.T) {
	level := NewNumber("Level", NumberConfig{Default: 1})
	cutoff := NewNumber("Cutoff", NumberConfig{Default: 0.5})
	filter := NewGroup("Filter", []Item{cutoff})
	m := NewMenu("Synth", []Item{level, filter})

	level.SetValue(0.0)
	m.Navigate(1)
	m.Select()
	cutoff.SetValue(0.0)

	// Reset targets the root group's cursor even while deeper in the tree.
	if !m.Reset() {
		t.Error("expected reset to restore the filter's current child")
	}
	if cutoff.Float() != 0.5 {
		t.Errorf("expected cutoff restored to 0.5, got %f", cutoff.Float())
	}
	if m.Depth() != 2 {
		t.Errorf("expected the stack untouched, got depth %d", m.Depth())
	}

	if !m.ResetAll() {
		t.Error("expected full reset to report a change")
	}
	if level.Float() != 1.0 {
		t.Errorf("expected level restored to 1.0, got %f", level.Float())
	}
}

func TestMenuDrawPerChange(t *testing.T) {
	m, _, _ := testMenu()
	draws := 0
	var last Item
	m.SetOnDraw(func(selected Item) {
		draws++
		last = selected
	})

	m.Increment() // steps the level leaf
	m.Next()      // moves the root cursor
	m.Increment() // no-op: the cursor is on a composite child
	if draws != 2 {
		t.Fatalf("expected 2 draws, got %d", draws)
	}

	m.Select() // 3
	if draws != 3 || last.Title() != "Filter" {
		t.Errorf("expected draw with the entered group, got %d draws, %q", draws, last.Title())
	}

	m.Previous() // moves filter cursor? index already 0: no-op
	if draws != 3 {
		t.Errorf("expected no draw on a no-op, got %d", draws)
	}

	m.Exit() // 4
	if draws != 4 {
		t.Errorf("expected a draw on exit, got %d", draws)
	}
}

func TestMenuPath(t *testing.T) {
	m, _, _ := testMenu()
	m.Navigate(1)
	m.Select()
	m.Select()
	if got := m.Path(); got != "Synth/Filter/Cutoff" {
		t.Errorf("expected breadcrumb path, got %q", got)
	}
}
