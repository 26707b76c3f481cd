package midi

import (
	"testing"

	gomidi "gitlab.com/gomidi/midi/v2"

	"synthmenu/config"
)

func testSurface(cfg config.SurfaceConfig) *Surface {
	return &Surface{
		cfg:          cfg,
		events:       make(chan Event, 32),
		lastNavigate: -1,
		lastValue:    -1,
	}
}

func drain(s *Surface) []Event {
	var events []Event
	for {
		select {
		case e := <-s.events:
			events = append(events, e)
		default:
			return events
		}
	}
}

func TestSurfaceRelativeEncoder(t *testing.T) {
	s := testSurface(config.SurfaceConfig{NavigateCC: 114, ValueCC: 115, Relative: true})

	s.handle(gomidi.ControlChange(0, 114, 1), 0)   // +1
	s.handle(gomidi.ControlChange(0, 114, 127), 0) // -1
	s.handle(gomidi.ControlChange(0, 115, 3), 0)   // +3 fast turn
	s.handle(gomidi.ControlChange(0, 115, 125), 0) // -3

	events := drain(s)
	want := []Event{
		{Op: OpNext, Steps: 1},
		{Op: OpPrevious, Steps: 1},
		{Op: OpIncrement, Steps: 3},
		{Op: OpDecrement, Steps: 3},
	}
	if len(events) != len(want) {
		t.Fatalf("expected %d events, got %d: %v", len(want), len(events), events)
	}
	for i := range want {
		if events[i] != want[i] {
			t.Errorf("event %d: expected %+v, got %+v", i, want[i], events[i])
		}
	}
}

func TestSurfaceAbsoluteEncoder(t *testing.T) {
	s := testSurface(config.SurfaceConfig{NavigateCC: 114, ValueCC: 115})

	// The first message only establishes the position.
	s.handle(gomidi.ControlChange(0, 115, 64), 0)
	if events := drain(s); len(events) != 0 {
		t.Fatalf("expected no event for the baseline message, got %v", events)
	}

	s.handle(gomidi.ControlChange(0, 115, 66), 0)
	s.handle(gomidi.ControlChange(0, 115, 65), 0)

	events := drain(s)
	want := []Event{
		{Op: OpIncrement, Steps: 2},
		{Op: OpDecrement, Steps: 1},
	}
	if len(events) != len(want) {
		t.Fatalf("expected %d events, got %v", len(want), events)
	}
	for i := range want {
		if events[i] != want[i] {
			t.Errorf("event %d: expected %+v, got %+v", i, want[i], events[i])
		}
	}
}

func TestSurfaceButtons(t *testing.T) {
	s := testSurface(config.SurfaceConfig{SelectNote: 44, ExitNote: 45})

	s.handle(gomidi.NoteOn(0, 44, 100), 0)
	s.handle(gomidi.NoteOn(0, 45, 100), 0)
	s.handle(gomidi.NoteOn(0, 44, 0), 0) // running-status note off: ignored
	s.handle(gomidi.NoteOn(0, 60, 100), 0)

	events := drain(s)
	if len(events) != 2 || events[0].Op != OpSelect || events[1].Op != OpExit {
		t.Errorf("expected select then exit, got %v", events)
	}
}

func TestSurfaceChannelFilter(t *testing.T) {
	s := testSurface(config.SurfaceConfig{Channel: 2, NavigateCC: 114, Relative: true})

	s.handle(gomidi.ControlChange(0, 114, 1), 0) // wrong channel
	s.handle(gomidi.ControlChange(1, 114, 1), 0) // channel 2, 1-based

	events := drain(s)
	if len(events) != 1 || events[0].Op != OpNext {
		t.Errorf("expected only the matching channel decoded, got %v", events)
	}
}
