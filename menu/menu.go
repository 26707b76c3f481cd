package menu

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Menu is the root of the item tree and the owner of the navigation stack.
// The bottom of the stack is always the menu itself; pushing an item makes it
// the editing context. Every event method fires the draw hook at most once,
// and only when the externally visible state changed.
type Menu struct {
	Group
	stack  []Item
	onDraw func(selected Item)
}

// NewMenu creates a menu rooted at the given children.
func NewMenu(title string, items []Item) *Menu {
	m := &Menu{}
	initGroup(&m.Group, title, items)
	m.self = m
	m.stack = []Item{m}
	return m
}

func (m *Menu) Kind() Kind { return KindMenu }

// SetOnDraw installs the renderer hook. It receives the item now at the top
// of the navigation stack.
func (m *Menu) SetOnDraw(fn func(selected Item)) { m.onDraw = fn }

func (m *Menu) draw() {
	if m.onDraw != nil {
		m.onDraw(m.Selected())
	}
}

// Selected returns the current editing context, the top of the stack.
func (m *Menu) Selected() Item { return m.stack[len(m.stack)-1] }

// Depth is the stack depth; 1 means the root view.
func (m *Menu) Depth() int { return len(m.stack) }

// Path renders the stack as a breadcrumb of titles.
func (m *Menu) Path() string {
	titles := make([]string, len(m.stack))
	for i, item := range m.stack {
		titles[i] = item.Title()
	}
	return strings.Join(titles, "/")
}

// top returns the stack top and, when it is a composite, its embedded Group.
func (m *Menu) top() (Item, *Group) {
	item := m.Selected()
	return item, composite(item)
}

// Select activates the highlighted child of the current editing context.
// An accepting child is pushed and becomes the new context; a handled child
// runs its side effect in place; a rejecting child leaves the stack alone.
// Selecting while a leaf is the context is a no-op.
func (m *Menu) Select() bool {
	_, g := m.top()
	if g == nil {
		return false
	}
	current := g.Current()
	if current == nil {
		return false
	}
	switch current.Activate() {
	case SelectAccept:
		m.stack = append(m.stack, current)
		m.draw()
		return true
	case SelectHandled:
		m.draw()
		return true
	}
	return false
}

// SelectIndex moves the context's cursor to index (modulo the length) and
// then selects, so controllers can jump straight to a child.
func (m *Menu) SelectIndex(index int) bool {
	_, g := m.top()
	if g == nil || g.Len() == 0 {
		return false
	}
	g.SetIndex(index)
	return m.Select()
}

// Exit pops the editing context. It is a no-op at the root.
func (m *Menu) Exit() bool {
	if len(m.stack) <= 1 {
		return false
	}
	m.stack = m.stack[:len(m.stack)-1]
	m.draw()
	return true
}

// Navigate moves within the current context. When the context is a composite
// it moves that group's cursor. When it is a leaf being edited, navigation is
// lateral: the parent frame's cursor moves and the stack top is replaced with
// the newly highlighted sibling, so twisting the encoder walks the siblings
// without leaving edit mode.
func (m *Menu) Navigate(delta int) bool {
	item, g := m.top()
	if g != nil {
		if !g.Navigate(delta) {
			return false
		}
		m.draw()
		return true
	}
	parent := composite(m.stack[len(m.stack)-2])
	if parent == nil || !parent.Navigate(delta) {
		return false
	}
	if next := parent.Current(); next != nil && next != item {
		m.stack[len(m.stack)-1] = next
	}
	m.draw()
	return true
}

func (m *Menu) Previous() bool { return m.Navigate(-1) }
func (m *Menu) Next() bool     { return m.Navigate(1) }

// Increment steps the value under the cursor: the context itself when it is
// a leaf, otherwise the context's highlighted leaf child.
func (m *Menu) Increment() bool {
	item, g := m.top()
	changed := false
	if g != nil {
		changed = g.Increment()
	} else {
		changed = item.Increment()
	}
	if changed {
		m.draw()
	}
	return changed
}

func (m *Menu) Decrement() bool {
	item, g := m.top()
	changed := false
	if g != nil {
		changed = g.Decrement()
	} else {
		changed = item.Decrement()
	}
	if changed {
		m.draw()
	}
	return changed
}

// Reset restores the default of the root group's current child, regardless
// of how deep the navigation stack is.
func (m *Menu) Reset() bool {
	if !m.Group.Reset() {
		return false
	}
	m.draw()
	return true
}

// ResetAll restores the defaults of the entire tree.
func (m *Menu) ResetAll() bool {
	m.Group.ResetAll()
	m.draw()
	return true
}

// mustJSONPath rejects non-.json paths. A wrong extension is a programmer
// mistake, not a runtime condition.
func mustJSONPath(path string) {
	if filepath.Ext(path) != ".json" {
		panic(fmt.Sprintf("menu: %q is not a .json path", path))
	}
}

// WriteFile persists the tree's data document to path. It reports false on
// any I/O failure, or when the tree has nothing to persist (a menu of pure
// actions produces an empty document); only a non-.json path panics.
func (m *Menu) WriteFile(path string) bool {
	mustJSONPath(path)
	data, ok := m.Data().(map[string]any)
	if !ok || len(data) == 0 {
		return false
	}
	buf, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return false
	}
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		return false
	}
	return true
}

// ReadFile merges the data document at path into the tree and redraws.
// Unknown titles in the document and items missing from it are skipped, so
// documents survive menu layout changes in both directions.
func (m *Menu) ReadFile(path string) bool {
	mustJSONPath(path)
	buf, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	var data map[string]any
	if err := json.Unmarshal(buf, &data); err != nil {
		return false
	}
	// An empty or null document carries no state to merge.
	if len(data) == 0 {
		return false
	}
	m.SetData(data)
	m.draw()
	return true
}
