package menu

import (
	"fmt"
	"math"
	"strconv"
)

// Tolerance for deciding that a stepped float has reached its upper bound.
// Repeated addition of a decimal step accumulates binary error, so looping
// float controls compare against the bound with this slack.
const stepEps = 1e-9

// NumberConfig describes the value model of a Number.
//
// Step, Default and Loop act on the stored scalar. When Smoothing != 1 the
// stored scalar spans [0, 1] and the runtime value follows the power-law
// curve stored^Smoothing scaled into [Min, Max]; otherwise stored and value
// coincide.
type NumberConfig struct {
	Step    float64 // stored-domain step size; 0 means 0.1
	Default float64 // stored-domain initial value
	Min     float64
	Max     float64 // when Min and Max are both 0, Max defaults to 1
	// Smoothing is the power-law response exponent; 0 or 1 means linear.
	Smoothing float64
	// Loop wraps stepping past a bound to the opposite bound instead of
	// clamping. For float registers the upper bound is treated as congruent
	// to the lower, so a full cycle of steps returns to Min.
	Loop bool
	// Integer selects the integer register: the stored value is kept on
	// whole numbers and Value/Data return int.
	Integer bool
	// ShowSign formats integer labels with an explicit sign ("+0" becomes "0").
	ShowSign bool
	// Decimals is the float label precision; 0 means 1.
	Decimals int
	// Prepend and Append are literal label decorations, e.g. a unit suffix.
	Prepend string
	Append  string
}

// Number is a bounded scalar leaf with stepping, an optional nonlinear
// response curve, and a formatted label. It is the base of most leaf kinds.
type Number struct {
	itemBase
	cfg    NumberConfig
	stored float64
}

// NewNumber creates a bounded numeric item.
func NewNumber(title string, cfg NumberConfig) *Number {
	n := &Number{}
	initNumber(n, title, cfg)
	return n
}

// initNumber fills in a Number embedded in a derived leaf. The caller is
// responsible for re-pointing self at the outermost type.
func initNumber(n *Number, title string, cfg NumberConfig) {
	if cfg.Step == 0 {
		cfg.Step = 0.1
	}
	if cfg.Min == 0 && cfg.Max == 0 {
		cfg.Max = 1
	}
	if cfg.Smoothing == 0 {
		cfg.Smoothing = 1
	}
	if cfg.Decimals <= 0 {
		cfg.Decimals = 1
	}
	n.cfg = cfg
	n.title = title
	n.self = n
	n.stored = n.clampStored(cfg.Default)
}

func (n *Number) Kind() Kind { return KindNumber }

func (n *Number) number() *Number { return n }

// AsNumber returns the Number embedded in a numeric leaf, or nil for other
// items. Renderers use it to draw value bars for any numeric kind.
func AsNumber(item Item) *Number {
	if nr, ok := item.(interface{ number() *Number }); ok {
		return nr.number()
	}
	return nil
}

// Smoothed reports whether the nonlinear response curve is active.
func (n *Number) Smoothed() bool { return n.cfg.Smoothing != 1 }

// Min and Max are the bounds of the runtime value.
func (n *Number) Min() float64 { return n.cfg.Min }
func (n *Number) Max() float64 { return n.cfg.Max }

// Loop reports whether stepping wraps at the bounds.
func (n *Number) Loop() bool { return n.cfg.Loop }

// SetLoop changes the wrap policy.
func (n *Number) SetLoop(loop bool) { n.cfg.Loop = loop }

// Integer reports whether the item uses the integer register.
func (n *Number) Integer() bool { return n.cfg.Integer }

func (n *Number) storedMin() float64 {
	if n.Smoothed() {
		return 0
	}
	return n.cfg.Min
}

func (n *Number) storedMax() float64 {
	if n.Smoothed() {
		return 1
	}
	return n.cfg.Max
}

func (n *Number) clampStored(v float64) float64 {
	return math.Min(math.Max(v, n.storedMin()), n.storedMax())
}

// setStored assigns the stored scalar, firing the update callback once if
// the value actually changed.
func (n *Number) setStored(v float64) bool {
	if v == n.stored {
		return false
	}
	n.stored = v
	n.fireUpdate()
	return true
}

// Float returns the runtime value as a float64 regardless of register,
// applying the smoothing curve when active.
func (n *Number) Float() float64 {
	if n.Smoothed() {
		return math.Pow(n.stored, n.cfg.Smoothing)*(n.cfg.Max-n.cfg.Min) + n.cfg.Min
	}
	return n.stored
}

func (n *Number) Value() any {
	if n.cfg.Integer {
		return int(math.Round(n.stored))
	}
	return n.Float()
}

// SetValue assigns the stored scalar, clamped into the stored bounds. A
// fractional float in [0, 1] assigned to an integer register is treated as a
// normalized controller position and quantized into the range.
func (n *Number) SetValue(value any) {
	f, ok := toFloat(value)
	if !ok {
		return
	}
	if n.cfg.Integer {
		if f != math.Trunc(f) && f >= 0 && f <= 1 {
			f = math.Round(f*(n.cfg.Max-n.cfg.Min)) + n.cfg.Min
		} else {
			f = math.Round(f)
		}
	}
	n.setStored(n.clampStored(f))
}

// RelativeValue is the normalized [0, 1] position of the stored scalar,
// ignoring the smoothing transform. Renderers use it for bars and charts.
func (n *Number) RelativeValue() float64 {
	span := n.storedMax() - n.storedMin()
	if span == 0 {
		return 0
	}
	return (n.stored - n.storedMin()) / span
}

// Data is the stored scalar, which for smoothed numbers differs from the
// runtime value: the curve is applied on read, not persisted.
func (n *Number) Data() any {
	if n.cfg.Integer {
		return int(math.Round(n.stored))
	}
	return n.stored
}

func (n *Number) SetData(value any) { n.self.SetValue(value) }

func (n *Number) Label() string {
	var label string
	if n.cfg.Integer {
		v := int(math.Round(n.stored))
		if n.cfg.ShowSign {
			label = fmt.Sprintf("%+d", v)
			if label == "+0" {
				label = "0"
			}
		} else {
			label = strconv.Itoa(v)
		}
	} else {
		label = strconv.FormatFloat(n.Float(), 'f', n.cfg.Decimals, 64)
		if n.cfg.ShowSign && n.Float() > 0 {
			label = "+" + label
		}
	}
	return n.cfg.Prepend + label + n.cfg.Append
}

func (n *Number) Increment() bool {
	v := n.stored + n.cfg.Step
	max := n.storedMax()
	if n.cfg.Loop {
		if n.cfg.Integer {
			if v > max {
				v = n.storedMin()
			}
		} else if v >= max-stepEps {
			// Upper bound is congruent to the lower on a looping float
			// control; a full cycle of steps lands back on Min.
			v = n.storedMin()
		}
	} else {
		v = math.Min(v, max)
	}
	return n.setStored(v)
}

func (n *Number) Decrement() bool {
	v := n.stored - n.cfg.Step
	min := n.storedMin()
	if n.cfg.Loop {
		if n.cfg.Integer {
			if v < min {
				v = n.storedMax()
			}
		} else if v < min-stepEps {
			v = n.storedMax()
		} else if v < min {
			v = min
		}
	} else {
		v = math.Max(v, min)
	}
	return n.setStored(v)
}

func (n *Number) Reset() bool {
	return n.setStored(n.clampStored(n.cfg.Default))
}

// toFloat widens the numeric types a caller or the JSON decoder may hand us.
func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case bool:
		if v {
			return 1, true
		}
		return 0, true
	}
	return 0, false
}
