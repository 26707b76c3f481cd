package menu

import "strconv"

// String is a fixed-length run of Char leaves edited one position at a time
// and exposed as a single string value. Positions are titled "1".."n".
type String struct {
	Group
	chars []*Char
}

// NewString creates a string field of the given length.
func NewString(title string, length int) *String {
	s := &String{chars: make([]*Char, length)}
	items := make([]Item, length)
	for i := range items {
		c := NewChar(strconv.Itoa(i + 1))
		s.chars[i] = c
		items[i] = c
	}
	initGroup(&s.Group, title, items)
	s.self = s
	return s
}

func (s *String) Kind() Kind { return KindString }

// String returns the assembled text, trailing spaces included.
func (s *String) String() string {
	buf := make([]byte, len(s.chars))
	for i, c := range s.chars {
		buf[i] = c.Char()[0]
	}
	return string(buf)
}

func (s *String) Value() any { return s.String() }

// SetValue assigns characters positionally. Text longer than the field is
// truncated; shorter text leaves the tail untouched.
func (s *String) SetValue(value any) {
	text, ok := value.(string)
	if !ok {
		return
	}
	for i := 0; i < len(text) && i < len(s.chars); i++ {
		s.chars[i].SetValue(string(text[i]))
	}
	s.fireUpdate()
}

func (s *String) Label() string { return s.String() }

// Data persists the assembled text rather than a per-position map.
func (s *String) Data() any { return s.String() }

func (s *String) SetData(value any) { s.SetValue(value) }
