package menu

// Group is an ordered, fixed-length container of child items with a current
// index. It is the base of every composite kind.
type Group struct {
	itemBase
	items []Item
	index int
	loop  bool
}

// NewGroup creates a composite item owning the given children.
func NewGroup(title string, items []Item) *Group {
	g := &Group{}
	initGroup(g, title, items)
	return g
}

// initGroup fills in a Group embedded in a derived composite. The caller is
// responsible for re-pointing self at the outermost type.
func initGroup(g *Group, title string, items []Item) {
	g.title = title
	g.items = items
	g.self = g
}

func (g *Group) Kind() Kind { return KindGroup }

// group exposes the embedded Group of any composite item; see composite().
func (g *Group) group() *Group { return g }

// grouper is implemented by every composite kind through its embedded Group.
type grouper interface{ group() *Group }

// composite returns the Group embedded in item, or nil if item is a leaf.
func composite(item Item) *Group {
	if gr, ok := item.(grouper); ok {
		return gr.group()
	}
	return nil
}

// AsGroup returns the Group embedded in a composite item, or nil for a
// leaf. Renderers use it to list children without caring about the
// concrete variant.
func AsGroup(item Item) *Group { return composite(item) }

// Items returns the child sequence. Callers must treat it as read-only.
func (g *Group) Items() []Item { return g.items }

// Len returns the number of children.
func (g *Group) Len() int { return len(g.items) }

// Index returns the current child position.
func (g *Group) Index() int { return g.index }

// SetIndex moves the current position, normalized modulo the length.
func (g *Group) SetIndex(index int) {
	if len(g.items) == 0 {
		return
	}
	g.index = mod(index, len(g.items))
}

// Current returns the child at the current index, or nil for an empty group.
func (g *Group) Current() Item {
	if len(g.items) == 0 {
		return nil
	}
	return g.items[g.index]
}

// Loop reports whether navigation wraps at the ends.
func (g *Group) Loop() bool { return g.loop }

// SetLoop changes the wrap policy.
func (g *Group) SetLoop(loop bool) { g.loop = loop }

// Find returns the first child whose title matches, or nil.
func (g *Group) Find(title string) Item {
	for _, item := range g.items {
		if item.Title() == title {
			return item
		}
	}
	return nil
}

func (g *Group) Label() string { return ">" }

// Value is the tuple of child values.
func (g *Group) Value() any {
	values := make([]any, len(g.items))
	for i, item := range g.items {
		values[i] = item.Value()
	}
	return values
}

// SetValue assigns child values positionally from a []any, ignoring excess
// length on either side, then fires the group-level update callback.
func (g *Group) SetValue(value any) {
	values, ok := value.([]any)
	if !ok {
		return
	}
	for i, v := range values {
		if i >= len(g.items) {
			break
		}
		g.items[i].SetValue(v)
	}
	g.fireUpdate()
}

// Data is a mapping from child titles to child data. Children whose data is
// absent (actions) are omitted rather than stored as holes.
func (g *Group) Data() any {
	data := make(map[string]any)
	for _, item := range g.items {
		if d := item.Data(); d != nil {
			data[item.Title()] = d
		}
	}
	return data
}

// SetData merges a title-keyed mapping into the children. Unknown keys and
// unmatched children are silently skipped in both directions, which is what
// gives saved documents forward and backward schema tolerance.
func (g *Group) SetData(value any) {
	data, ok := value.(map[string]any)
	if !ok {
		return
	}
	for title, d := range data {
		if item := g.Find(title); item != nil {
			item.SetData(d)
		}
	}
}

// Navigate moves the current index by delta, wrapping modulo the length when
// looping and clamping to the ends otherwise. It returns false when the
// index did not move.
func (g *Group) Navigate(delta int) bool {
	if len(g.items) == 0 {
		return false
	}
	index := g.index + delta
	if g.loop {
		index = mod(index, len(g.items))
	} else {
		index = min(max(index, 0), len(g.items)-1)
	}
	if index == g.index {
		return false
	}
	g.index = index
	return true
}

// Increment steps the current child. Composite children are not steppable
// directly; they must be descended into first.
func (g *Group) Increment() bool {
	current := g.Current()
	if current == nil || current.Kind().Composite() {
		return false
	}
	return current.Increment()
}

func (g *Group) Decrement() bool {
	current := g.Current()
	if current == nil || current.Kind().Composite() {
		return false
	}
	return current.Decrement()
}

// Reset restores the current child's default (shallow).
func (g *Group) Reset() bool {
	current := g.Current()
	if current == nil {
		return false
	}
	return current.Reset()
}

// ResetAll restores every descendant's default and always reports a change.
func (g *Group) ResetAll() bool {
	for _, item := range g.items {
		item.ResetAll()
	}
	return true
}

func mod(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}
