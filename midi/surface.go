package midi

import (
	"fmt"

	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"

	"synthmenu/config"
	"synthmenu/debug"
)

// Surface decodes a mapped control surface into menu operations: one CC for
// row navigation, one CC for value edits, two notes for select and exit. It
// only produces events; it never touches the menu tree itself.
type Surface struct {
	id       string
	cfg      config.SurfaceConfig
	inPort   drivers.In
	stopFunc func()

	events chan Event

	// Last seen positions of absolute encoders, for delta decoding.
	lastNavigate int
	lastValue    int
}

// NewSurface opens the input port and starts decoding.
func NewSurface(id string, inPort drivers.In, cfg config.SurfaceConfig) (*Surface, error) {
	s := &Surface{
		id:           id,
		cfg:          cfg,
		inPort:       inPort,
		events:       make(chan Event, 32),
		lastNavigate: -1,
		lastValue:    -1,
	}

	stop, err := gomidi.ListenTo(inPort, s.handle)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	s.stopFunc = stop
	return s, nil
}

// ID returns the port identifier the surface was opened on.
func (s *Surface) ID() string { return s.id }

// Events returns the decoded operation stream.
func (s *Surface) Events() <-chan Event { return s.events }

func (s *Surface) handle(msg gomidi.Message, timestampms int32) {
	var channel, key, velocity uint8
	if msg.GetNoteOn(&channel, &key, &velocity) && velocity > 0 {
		if !s.onChannel(channel) {
			return
		}
		switch key {
		case s.cfg.SelectNote:
			s.emit(Event{Op: OpSelect, Steps: 1})
		case s.cfg.ExitNote:
			s.emit(Event{Op: OpExit, Steps: 1})
		}
		return
	}

	var cc, value uint8
	if !msg.GetControlChange(&channel, &cc, &value) || !s.onChannel(channel) {
		return
	}
	debug.LogEvery(32, "surface", "cc %d = %d", cc, value)

	switch cc {
	case s.cfg.NavigateCC:
		s.emitDelta(s.delta(value, &s.lastNavigate), OpNext, OpPrevious)
	case s.cfg.ValueCC:
		s.emitDelta(s.delta(value, &s.lastValue), OpIncrement, OpDecrement)
	}
}

func (s *Surface) onChannel(channel uint8) bool {
	return s.cfg.Channel == 0 || channel == s.cfg.Channel-1
}

// delta turns a CC value into a signed step count. Relative encoders send
// two's-complement offsets around zero; absolute ones are diffed against the
// previous position, with the first message only establishing it.
func (s *Surface) delta(value uint8, last *int) int {
	if s.cfg.Relative {
		// Two's-complement offsets: 1..63 clockwise, 65..127 counter-clockwise.
		if value >= 64 {
			return int(value) - 128
		}
		return int(value)
	}
	prev := *last
	*last = int(value)
	if prev < 0 {
		return 0
	}
	return int(value) - prev
}

func (s *Surface) emitDelta(delta int, up, down Op) {
	if delta == 0 {
		return
	}
	if delta > 0 {
		s.emit(Event{Op: up, Steps: delta})
	} else {
		s.emit(Event{Op: down, Steps: -delta})
	}
}

// emit drops events instead of blocking the MIDI callback.
func (s *Surface) emit(e Event) {
	select {
	case s.events <- e:
	default:
		debug.Log("surface", "dropped %s", e.Op)
	}
}

// Close stops the listener and closes the event stream.
func (s *Surface) Close() error {
	if s.stopFunc != nil {
		s.stopFunc()
	}
	close(s.events)
	return nil
}
