package widgets

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"synthmenu/menu"
	"synthmenu/theme"
)

// RenderBar draws a horizontal value bar for a numeric leaf using its
// normalized position, with the label appended.
func RenderBar(n *menu.Number, width int, th *theme.Theme) string {
	if width < 8 {
		width = 8
	}
	cells := width - 2
	fill := int(n.RelativeValue()*float64(cells) + 0.5)
	if fill > cells {
		fill = cells
	}

	bar := strings.Repeat(string(th.Symbols.BarFill), fill) +
		strings.Repeat(string(th.Symbols.BarRest), cells-fill)

	barStyle := lipgloss.NewStyle().Foreground(th.Value())
	labelStyle := lipgloss.NewStyle().Foreground(th.FG())
	return barStyle.Render(bar) + " " + labelStyle.Render(n.Label())
}

// RenderWaveform plots a waveform's sample table with its loop window
// marked underneath.
func RenderWaveform(w *menu.Waveform, width, height int, th *theme.Theme) string {
	plot := asciigraph.Plot(w.Samples(),
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(w.Wave.Label()),
	)

	// Loop window markers under the chart.
	start := int(w.LoopStart.Float() * float64(width-1))
	end := int(w.LoopEnd.Float() * float64(width-1))
	markers := make([]rune, width)
	for i := range markers {
		markers[i] = ' '
	}
	markers[start] = th.Symbols.Loop
	markers[end] = th.Symbols.Loop

	chartStyle := lipgloss.NewStyle().Foreground(th.Value())
	markStyle := lipgloss.NewStyle().Foreground(th.Cursor())
	return chartStyle.Render(plot) + "\n" + markStyle.Render(string(markers))
}

// EnvelopeSeries samples an envelope's shape for plotting. AR envelopes get
// an attack/hold/release trace, ADSR adds the decay stage. Segment widths
// follow the relative stage times.
func EnvelopeSeries(item menu.Item, points int) []float64 {
	if points < 8 {
		points = 8
	}
	switch e := item.(type) {
	case *menu.AREnvelope:
		return envelopeTrace(points, []segment{
			{e.Attack.Float(), 0, 1},
			{hold, e.Sustain.Float(), e.Sustain.Float()},
			{e.Release.Float(), e.Sustain.Float(), 0},
		})
	case *menu.ADSREnvelope:
		return envelopeTrace(points, []segment{
			{e.Attack.Float(), 0, e.AttackLevel.Float()},
			{e.Decay.Float(), e.AttackLevel.Float(), e.Sustain.Float()},
			{hold, e.Sustain.Float(), e.Sustain.Float()},
			{e.Release.Float(), e.Sustain.Float(), 0},
		})
	}
	return nil
}

// hold is the synthetic duration of the sustain stage in the plotted trace.
const hold = 0.5

type segment struct {
	duration float64
	from, to float64
}

func envelopeTrace(points int, segments []segment) []float64 {
	total := 0.0
	for _, s := range segments {
		total += s.duration
	}
	if total == 0 {
		return make([]float64, points)
	}

	series := make([]float64, 0, points)
	for _, s := range segments {
		n := int(float64(points) * s.duration / total)
		if n < 1 {
			n = 1
		}
		for i := 0; i < n; i++ {
			t := float64(i) / float64(n)
			series = append(series, s.from+(s.to-s.from)*t)
		}
	}
	return series
}

// RenderEnvelope plots an AR or ADSR envelope shape.
func RenderEnvelope(item menu.Item, width, height int, th *theme.Theme) string {
	series := EnvelopeSeries(item, width)
	if series == nil {
		return ""
	}
	plot := asciigraph.Plot(series,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(item.Title()),
	)
	return lipgloss.NewStyle().Foreground(th.Value()).Render(plot)
}

// RenderSteps draws a sequence pattern as a row of step dots with the
// cursor position bracketed.
func RenderSteps(s *menu.Sequence, th *theme.Theme) string {
	onStyle := lipgloss.NewStyle().Foreground(th.Value())
	offStyle := lipgloss.NewStyle().Foreground(th.Muted())
	curStyle := lipgloss.NewStyle().Foreground(th.Cursor()).Bold(true)

	var out strings.Builder
	for i, on := range s.Steps() {
		sym := th.Symbols.StepOff
		style := offStyle
		if on {
			sym = th.Symbols.StepOn
			style = onStyle
		}
		cell := string(sym)
		if i == s.Index() {
			cell = curStyle.Render("[" + cell + "]")
		} else {
			cell = " " + style.Render(cell) + " "
		}
		out.WriteString(cell)
	}
	return out.String()
}

// RenderString draws a string field with the edited character underlined.
func RenderString(s *menu.String, th *theme.Theme) string {
	textStyle := lipgloss.NewStyle().Foreground(th.FG())
	curStyle := lipgloss.NewStyle().Foreground(th.Cursor()).Bold(true).Underline(true)

	text := s.String()
	i := s.Index()
	if i >= len(text) {
		return textStyle.Render(text)
	}
	return textStyle.Render(text[:i]) + curStyle.Render(string(text[i])) + textStyle.Render(text[i+1:])
}

// RenderKeyHelp formats key bindings in a friendly way
func RenderKeyHelp(sections []KeySection) string {
	var lines []string
	for _, sec := range sections {
		if sec.Title != "" {
			lines = append(lines, sec.Title)
		}
		for _, k := range sec.Keys {
			lines = append(lines, fmt.Sprintf("  %-12s %s", k.Key, k.Desc))
		}
	}
	return strings.Join(lines, "\n")
}

// KeySection groups related key bindings
type KeySection struct {
	Title string
	Keys  []KeyBinding
}

// KeyBinding is a single key and its description
type KeyBinding struct {
	Key  string
	Desc string
}
