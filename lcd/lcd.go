// Package lcd renders a menu onto a fixed-size character display, the
// 16x2/20x4 kind found on hardware synth front panels. It consumes the menu
// draw hook and writes plain text frames through the Display interface.
package lcd

import (
	"fmt"
	"strings"

	"synthmenu/menu"
)

// Display is the character hardware: position the cursor, write text. The
// text may contain newlines; each line continues on the next display row.
type Display interface {
	SetCursor(column, line int)
	Message(text string)
}

// group is the composite surface the renderer needs from any menu node.
type group interface {
	menu.Item
	Current() menu.Item
	Items() []menu.Item
	Index() int
	Len() int
	Loop() bool
}

// Screen drives one character display from a menu's draw hook.
type Screen struct {
	display Display
	columns int
	lines   int
}

// NewScreen attaches a renderer to the menu. Fewer than 2 lines cannot show
// a title row plus content and is a programmer mistake.
func NewScreen(display Display, columns, lines int, m *menu.Menu) *Screen {
	if lines < 2 {
		panic("lcd: at least 2 lines are required")
	}
	s := &Screen{display: display, columns: columns, lines: lines}
	m.SetOnDraw(s.Draw)
	s.Draw(m.Selected())
	return s
}

// Draw renders the selected context and pushes it to the display.
func (s *Screen) Draw(selected menu.Item) {
	s.display.SetCursor(0, 0)
	s.display.Message(strings.Join(s.Frame(selected), "\n"))
}

// Frame renders the selected context into exactly lines rows of exactly
// columns characters.
func (s *Screen) Frame(selected menu.Item) []string {
	rows := make([]string, 0, s.lines)

	g, ok := selected.(group)
	if !ok || g.Len() == 0 {
		// A leaf being edited: its title, then its value label.
		rows = append(rows, s.fit(selected.Title()))
		rows = append(rows, s.fit(selected.Label()))
		return s.pad(rows)
	}

	// Header: "group:item", the group part capped at a quarter of the width.
	groupLen := s.columns/4 - 1
	itemLen := s.columns - groupLen - 1
	current := g.Current()
	rows = append(rows, s.fit(fmt.Sprintf("%-*s:%-*s",
		groupLen, clip(g.Title(), groupLen),
		itemLen, clip(current.Title(), itemLen))))

	// Remaining rows: a window of child rows around the cursor.
	visible := s.lines - 1
	top := window(g.Len(), visible, g.Index(), g.Loop())
	for n := 0; n < visible && n < g.Len(); n++ {
		i := (top + n) % g.Len()
		item := g.Items()[i]
		marker := " "
		if i == g.Index() {
			marker = ">"
		}
		label := clip(item.Label(), s.columns/2)
		title := clip(item.Title(), s.columns-1-len(label)-1)
		gap := s.columns - 1 - len(title) - len(label)
		rows = append(rows, s.fit(marker+title+strings.Repeat(" ", gap)+label))
	}
	return s.pad(rows)
}

// window picks the first visible row so the cursor stays in view, scrolling
// freely when the group loops and clamping at the ends otherwise.
func window(length, height, selected int, loop bool) int {
	if length <= height {
		return 0
	}
	top := selected - height/2
	if loop {
		return ((top % length) + length) % length
	}
	if top < 0 {
		return 0
	}
	if top > length-height {
		return length - height
	}
	return top
}

func (s *Screen) fit(text string) string {
	return fmt.Sprintf("%-*s", s.columns, clip(text, s.columns))
}

func (s *Screen) pad(rows []string) []string {
	for len(rows) < s.lines {
		rows = append(rows, strings.Repeat(" ", s.columns))
	}
	return rows
}

func clip(text string, max int) string {
	if max < 0 {
		max = 0
	}
	if len(text) > max {
		return text[:max]
	}
	return text
}
