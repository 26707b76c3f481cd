package menu

import (
	"math"
	"strconv"
	"strings"
)

// Bool is an on/off toggle built on the integer register with range [0, 1].
type Bool struct {
	Number
	labels [2]string
}

// NewBool creates a toggle. Stepping flips it; the loop flag makes repeated
// increments alternate instead of saturating.
func NewBool(title string, value bool) *Bool {
	b := &Bool{labels: [2]string{"Off", "On"}}
	def := 0.0
	if value {
		def = 1
	}
	initNumber(&b.Number, title, NumberConfig{
		Step:    1,
		Default: def,
		Min:     0,
		Max:     1,
		Loop:    true,
		Integer: true,
	})
	b.self = b
	return b
}

func (b *Bool) Kind() Kind { return KindBool }

// SetLabels replaces the off/on display words.
func (b *Bool) SetLabels(off, on string) { b.labels = [2]string{off, on} }

// Bool reports the toggle state.
func (b *Bool) Bool() bool { return b.Float() != 0 }

func (b *Bool) Value() any { return b.Bool() }

// SetValue accepts bool directly and numbers by thresholding at 0.5.
func (b *Bool) SetValue(value any) {
	if v, ok := value.(bool); ok {
		f := 0.0
		if v {
			f = 1
		}
		b.setStored(f)
		return
	}
	b.Number.SetValue(value)
}

func (b *Bool) Label() string {
	if b.Bool() {
		return b.labels[1]
	}
	return b.labels[0]
}

// Percentage is a [0, 1] float leaf displayed as a whole percent.
type Percentage struct {
	Number
}

// NewPercentage creates a percentage control stepping by 1%.
func NewPercentage(title string, value float64) *Percentage {
	p := &Percentage{}
	initNumber(&p.Number, title, NumberConfig{
		Step:    0.01,
		Default: value,
		Min:     0,
		Max:     1,
	})
	p.self = p
	return p
}

func (p *Percentage) Kind() Kind { return KindPercentage }

func (p *Percentage) Label() string {
	return strconv.Itoa(int(math.Round(p.Float()*100))) + "%"
}

// Time is a duration leaf in seconds with a cubic response curve, so the
// encoder has fine resolution at short times and coarse at long ones.
type Time struct {
	Number
}

// NewTime creates a time control over the standard [1ms, 4s] range.
func NewTime(title string) *Time {
	return NewTimeRange(title, 0.025, 0.001, 0.001, 4.0)
}

// NewTimeRange creates a time control with explicit step, default and bounds.
// Step and default are positions on the [0, 1] stored axis, bounds are
// seconds.
func NewTimeRange(title string, step, value, min, max float64) *Time {
	t := &Time{}
	initNumber(&t.Number, title, NumberConfig{
		Step:      step,
		Default:   value,
		Min:       min,
		Max:       max,
		Smoothing: 3,
		Decimals:  3,
		Append:    "s",
	})
	t.self = t
	return t
}

func (t *Time) Kind() Kind { return KindTime }

// List is a leaf selecting one option from a fixed set of words. The stored
// value is the option index; the label is the option itself.
type List struct {
	Number
	options []string
}

// NewList creates an option selector. The default index is clamped into the
// option range and stepping wraps around.
func NewList(title string, options []string, def int) *List {
	l := &List{options: options}
	initNumber(&l.Number, title, NumberConfig{
		Step:    1,
		Default: float64(min(def, len(options)-1)),
		Min:     0,
		Max:     float64(len(options) - 1),
		Loop:    true,
		Integer: true,
	})
	l.self = l
	return l
}

func (l *List) Kind() Kind { return KindList }

// Options returns the selectable words.
func (l *List) Options() []string { return l.options }

// Index returns the selected option position.
func (l *List) Index() int { return int(math.Round(l.stored)) }

// Option returns the selected word.
func (l *List) Option() string { return l.options[l.Index()] }

func (l *List) Value() any { return l.Index() }

// SetValue accepts an option word or an index; unknown words are ignored.
func (l *List) SetValue(value any) {
	if s, ok := value.(string); ok {
		for i, option := range l.options {
			if option == s {
				l.setStored(float64(i))
				return
			}
		}
		return
	}
	l.Number.SetValue(value)
}

func (l *List) Label() string { return l.Option() }

// characters is the ordered alphabet a Char leaf cycles through. Space first
// so a reset clears the position.
const characters = " abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!-_#$%&+@~^,.`*?()=|/\\[]{}<>"

// Char is a single-character leaf cycling through the alphabet above. It is
// the building block of String.
type Char struct {
	Number
}

// NewChar creates a character position, initially a space.
func NewChar(title string) *Char {
	c := &Char{}
	initNumber(&c.Number, title, NumberConfig{
		Step:    1,
		Min:     0,
		Max:     float64(len(characters) - 1),
		Loop:    true,
		Integer: true,
	})
	c.self = c
	return c
}

func (c *Char) Kind() Kind { return KindChar }

// Char returns the current character.
func (c *Char) Char() string {
	return string(characters[int(math.Round(c.stored))])
}

func (c *Char) Value() any { return c.Char() }

// SetValue accepts a string (only its first character counts, and characters
// outside the alphabet are ignored), a fractional float in [0, 1] read as a
// uniform position across the alphabet, or an alphabet index taken modulo
// the alphabet length.
func (c *Char) SetValue(value any) {
	if s, ok := value.(string); ok {
		if s == "" {
			return
		}
		i := strings.IndexByte(characters, s[0])
		if i < 0 {
			return
		}
		c.setStored(float64(i))
		return
	}
	if f, ok := toFloat(value); ok {
		if f != math.Trunc(f) && f >= 0 && f <= 1 {
			c.Number.SetValue(f)
			return
		}
		c.setStored(float64(mod(int(math.Round(f)), len(characters))))
	}
}

func (c *Char) Label() string { return c.Char() }
