// Package menu implements a hierarchical settings menu for synthesizer
// hardware: a tree of value-bearing items, a navigation stack driven by
// discrete input events, and a title-keyed JSON persistence format.
//
// The package is a pure state machine. It performs no I/O except through the
// explicit WriteFile/ReadFile entry points, spawns no goroutines, and expects
// a single owner: all methods run to completion on the caller's stack,
// including any update callbacks they trigger.
package menu

// Kind identifies the concrete variant of an Item. Renderers and the
// navigation engine branch on it instead of inspecting runtime types.
type Kind int

const (
	KindItem Kind = iota
	KindAction
	KindNumber
	KindBool
	KindPercentage
	KindTime
	KindList
	KindChar
	KindWaveformList

	// Composite kinds own an ordered sequence of child items.
	// Everything from KindGroup onward must stay in this block.
	KindGroup
	KindString
	KindWaveform
	KindAREnvelope
	KindADSREnvelope
	KindLFO
	KindFilter
	KindMix
	KindTune
	KindPatch
	KindSequence
	KindMenu
)

// Composite reports whether items of this kind contain child items.
func (k Kind) Composite() bool {
	return k >= KindGroup
}

var kindNames = [...]string{
	"item", "action", "number", "bool", "percentage", "time", "list", "char",
	"waveformlist", "group", "string", "waveform", "arenvelope", "adsrenvelope",
	"lfo", "filter", "mix", "tune", "patch", "sequence", "menu",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// SelectResult tells the Menu what to do after an item is selected.
type SelectResult int

const (
	// SelectReject means the item refuses entry; the Menu must not push it.
	SelectReject SelectResult = iota
	// SelectAccept means the item becomes the new editing context; the Menu
	// pushes it onto the navigation stack.
	SelectAccept
	// SelectHandled means the item performed an immediate side effect and
	// must not be pushed.
	SelectHandled
)

// Callback observes value changes. It runs synchronously inside the mutating
// call and must not alter the structure of the tree (see the package doc).
type Callback func(value any, item Item)

// Item is the contract every menu node implements, leaf or composite.
//
// The boolean returned by the stepping and navigation methods signals whether
// the externally visible state actually changed; callers use it as a redraw
// signal and must not redraw on a no-op.
type Item interface {
	// Title returns the node's display title, evaluating the title function
	// if one is installed.
	Title() string
	SetTitle(title string)
	// SetTitleFunc installs a dynamic title computed from the item itself.
	SetTitleFunc(fn func(Item) string)

	// Value is the node's semantic runtime value; its type varies by kind.
	Value() any
	SetValue(value any)

	// Label is the display string derived from Value.
	Label() string

	// Data is the serializer view of the value: one of float64, int, string,
	// []bool or map[string]any. A nil Data means the node does not persist.
	Data() any
	SetData(value any)

	// Activate is invoked when the user selects this item.
	Activate() SelectResult

	Navigate(delta int) bool
	Previous() bool
	Next() bool

	Increment() bool
	Decrement() bool
	Reset() bool
	// ResetAll restores defaults recursively; leaves treat it as Reset.
	ResetAll() bool

	Kind() Kind

	// SetOnUpdate installs a callback fired after any value-changing mutation.
	SetOnUpdate(fn Callback)
}

// itemBase carries the state shared by every item: the title, literal or
// computed, and the optional update callback. The self field points at the
// concrete item so that shared behavior dispatches to overridden methods.
type itemBase struct {
	title    string
	titleFn  func(Item) string
	onUpdate Callback
	self     Item
}

func (b *itemBase) Title() string {
	if b.titleFn != nil {
		return b.titleFn(b.self)
	}
	return b.title
}

// SetTitle replaces the title with a literal, clearing any title function.
func (b *itemBase) SetTitle(title string) {
	b.title = title
	b.titleFn = nil
}

func (b *itemBase) SetTitleFunc(fn func(Item) string) { b.titleFn = fn }

func (b *itemBase) SetOnUpdate(fn Callback) { b.onUpdate = fn }

// fireUpdate invokes the update callback with the item's current value.
func (b *itemBase) fireUpdate() {
	if b.onUpdate != nil {
		b.onUpdate(b.self.Value(), b.self)
	}
}

// Defaults for the pure leaf base: no value, no label, not navigable.

func (b *itemBase) Value() any              { return nil }
func (b *itemBase) SetValue(any)            {}
func (b *itemBase) Label() string           { return "" }
func (b *itemBase) Data() any               { return b.self.Value() }
func (b *itemBase) SetData(value any)       { b.self.SetValue(value) }
func (b *itemBase) Activate() SelectResult  { return SelectAccept }
func (b *itemBase) Navigate(delta int) bool { return false }
func (b *itemBase) Previous() bool          { return b.self.Navigate(-1) }
func (b *itemBase) Next() bool              { return b.self.Navigate(1) }
func (b *itemBase) Increment() bool         { return false }
func (b *itemBase) Decrement() bool         { return false }
func (b *itemBase) Reset() bool             { return false }
func (b *itemBase) ResetAll() bool          { return b.self.Reset() }
func (b *itemBase) Kind() Kind              { return KindItem }

// Action is a fire-and-forget leaf: selecting it runs the callback and leaves
// the navigation stack untouched. It has no value and is skipped by the
// persistence layer.
type Action struct {
	itemBase
	fn func()
}

// NewAction creates an action item with the given callback.
func NewAction(title string, fn func()) *Action {
	a := &Action{fn: fn}
	a.title = title
	a.self = a
	return a
}

func (a *Action) Kind() Kind { return KindAction }

func (a *Action) Activate() SelectResult {
	if a.fn != nil {
		a.fn()
	}
	return SelectHandled
}
