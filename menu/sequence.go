package menu

import "strconv"

// Sequence is a row of boolean step toggles, like a one-lane drum pattern.
// Its value is the whole step tuple: flipping any single step re-fires the
// sequence-level update callback exactly once with the full tuple, so a
// consumer always sees a consistent pattern.
type Sequence struct {
	Group
	steps []*Bool
	// updating suppresses per-step callbacks during bulk assignment so the
	// sequence-level callback still fires exactly once.
	updating bool
}

// NewSequence creates a sequence of length all-off steps titled "1".."n".
func NewSequence(title string, length int) *Sequence {
	s := &Sequence{}
	initGroup(&s.Group, title, nil)
	s.self = s
	s.grow(length)
	return s
}

func (s *Sequence) Kind() Kind { return KindSequence }

// grow appends wired step toggles up to length.
func (s *Sequence) grow(length int) {
	for i := len(s.steps); i < length; i++ {
		step := NewBool(strconv.Itoa(i+1), false)
		step.SetOnUpdate(func(any, Item) {
			if !s.updating {
				s.fireUpdate()
			}
		})
		s.steps = append(s.steps, step)
		s.items = append(s.items, step)
	}
}

// SetLength truncates or pads the step list. New steps start off. The
// sequence callback fires once when the length actually changes.
func (s *Sequence) SetLength(length int) {
	if length < 0 {
		length = 0
	}
	if length == len(s.steps) {
		return
	}
	if length < len(s.steps) {
		s.steps = s.steps[:length]
		s.items = s.items[:length]
		if s.index >= length && length > 0 {
			s.index = length - 1
		}
	} else {
		s.grow(length)
	}
	s.fireUpdate()
}

// Steps returns the pattern as a bool slice.
func (s *Sequence) Steps() []bool {
	steps := make([]bool, len(s.steps))
	for i, step := range s.steps {
		steps[i] = step.Bool()
	}
	return steps
}

// Step reports a single step, indexed modulo the length so a running
// sequencer can read it with a free-running counter.
func (s *Sequence) Step(i int) bool {
	if len(s.steps) == 0 {
		return false
	}
	return s.steps[mod(i, len(s.steps))].Bool()
}

// SetStep flips a single step, firing the sequence callback if it changed.
func (s *Sequence) SetStep(i int, on bool) {
	if len(s.steps) == 0 {
		return
	}
	s.steps[mod(i, len(s.steps))].SetValue(on)
}

func (s *Sequence) Value() any { return s.Steps() }

// SetValue assigns the pattern positionally and fires the sequence callback
// exactly once.
func (s *Sequence) SetValue(value any) {
	steps, ok := toBoolSlice(value)
	if !ok {
		return
	}
	s.updating = true
	for i, v := range steps {
		if i >= len(s.steps) {
			break
		}
		s.steps[i].SetValue(v)
	}
	s.updating = false
	s.fireUpdate()
}

// Data persists the pattern as a boolean array rather than a title map.
func (s *Sequence) Data() any { return s.Steps() }

func (s *Sequence) SetData(value any) { s.SetValue(value) }

// toBoolSlice accepts a native bool slice or the []any a JSON decode yields.
func toBoolSlice(value any) ([]bool, bool) {
	switch v := value.(type) {
	case []bool:
		return v, true
	case []any:
		steps := make([]bool, len(v))
		for i, e := range v {
			b, ok := e.(bool)
			if !ok {
				f, okf := toFloat(e)
				if !okf {
					return nil, false
				}
				b = f != 0
			}
			steps[i] = b
		}
		return steps, true
	}
	return nil, false
}
