package widgets

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"synthmenu/menu"
	"synthmenu/theme"
)

// Line is one rendered menu row: title on the left, label on the right.
type Line struct {
	Title    string
	Label    string
	Selected bool
	Group    bool
}

// Window computes the first visible row for a list of length rows shown in
// height rows, keeping the selection centered. Looping lists scroll freely;
// clamped lists stop at the ends so the last page stays full.
func Window(length, height, selected int, loop bool) int {
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

// GroupLines renders a group's children into at most height rows with the
// cursor row marked selected.
func GroupLines(g *menu.Group, height int) []Line {
	items := g.Items()
	if len(items) == 0 {
		return nil
	}
	if height <= 0 {
		height = len(items)
	}
	top := Window(len(items), height, g.Index(), g.Loop())

	count := min(height, len(items))
	lines := make([]Line, 0, count)
	for n := 0; n < count; n++ {
		i := (top + n) % len(items)
		item := items[i]
		lines = append(lines, Line{
			Title:    item.Title(),
			Label:    item.Label(),
			Selected: i == g.Index(),
			Group:    item.Kind().Composite(),
		})
	}
	return lines
}

// RenderLines formats rows into a column block, highlighting the selection.
func RenderLines(lines []Line, width int, th *theme.Theme) string {
	cursorStyle := lipgloss.NewStyle().Foreground(th.Cursor()).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(th.FG())
	dimStyle := lipgloss.NewStyle().Foreground(th.Muted())

	var out []string
	for _, line := range lines {
		marker := ' '
		if line.Selected {
			marker = th.Symbols.Cursor
		}
		label := line.Label
		if line.Group {
			label = string(th.Symbols.Enter)
		}

		pad := width - len([]rune(line.Title)) - len([]rune(label)) - 2
		if pad < 1 {
			pad = 1
		}
		row := fmt.Sprintf("%c %s%s%s", marker, line.Title, strings.Repeat(" ", pad), label)

		switch {
		case line.Selected:
			out = append(out, cursorStyle.Render(row))
		case line.Group:
			out = append(out, rowStyle.Render(row))
		default:
			out = append(out, dimStyle.Render(row))
		}
	}
	return strings.Join(out, "\n")
}
