package theme

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

type Theme struct {
	Palette *Palette
	Symbols Symbols
}

type Symbols struct {
	Cursor  rune // > current row
	Enter   rune // › enterable group row
	BarFill rune // █ filled part of a value bar
	BarRest rune // ░ empty part of a value bar
	StepOn  rune // ● active sequence step
	StepOff rune // · inactive sequence step
	Loop    rune // | loop window marker on waveform charts
	CharSel rune // _ cursor under the edited character
}

func New(palette *Palette) *Theme {
	return &Theme{
		Palette: palette,
		Symbols: Symbols{
			Cursor:  '>',
			Enter:   '›',
			BarFill: '█',
			BarRest: '░',
			StepOn:  '●',
			StepOff: '·',
			Loop:    '|',
			CharSel: '_',
		},
	}
}

// Color roles mapped to palette positions (0-1)
const (
	RoleBG      = 0.0 // deep base
	RoleSurface = 0.1 // panel background
	RoleMuted   = 0.2 // dim labels, inactive rows
	RoleFG      = 0.4 // regular text
	RoleAccent  = 0.5 // titles, breadcrumb
	RoleCursor  = 0.6 // selected row
	RoleValue   = 0.7 // value bars and charts
	RoleWarning = 0.8 // failed save/load notices
	RoleSuccess = 1.0 // confirmations
)

// Style helpers

func (t *Theme) BG() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleBG))
}

func (t *Theme) FG() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleFG))
}

func (t *Theme) Accent() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleAccent))
}

func (t *Theme) Muted() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleMuted))
}

func (t *Theme) Cursor() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleCursor))
}

func (t *Theme) Value() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleValue))
}

func (t *Theme) Warning() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleWarning))
}

func (t *Theme) Success() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleSuccess))
}

// Color returns lipgloss color for any normalized value 0-1
func (t *Theme) Color(norm float64) lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(norm))
}

func rgbToLipgloss(c RGB) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c[0], c[1], c[2]))
}
