package menu

// AREnvelope groups the controls of an attack/release envelope.
type AREnvelope struct {
	Group
	Attack  *Time
	Sustain *Number
	Release *Time
}

// NewAREnvelope creates an AR envelope with standard time ranges.
func NewAREnvelope(title string) *AREnvelope {
	e := &AREnvelope{
		Attack:  NewTime("Attack Time"),
		Sustain: NewNumber("Sustain Level", NumberConfig{Step: 0.05}),
		Release: NewTime("Release Time"),
	}
	initGroup(&e.Group, title, []Item{e.Attack, e.Sustain, e.Release})
	e.self = e
	return e
}

func (e *AREnvelope) Kind() Kind { return KindAREnvelope }

// ADSREnvelope groups the controls of a full attack/decay/sustain/release
// envelope, including the attack peak level.
type ADSREnvelope struct {
	Group
	Attack      *Time
	AttackLevel *Number
	Decay       *Time
	Sustain     *Number
	Release     *Time
}

// NewADSREnvelope creates an ADSR envelope with standard defaults.
func NewADSREnvelope(title string) *ADSREnvelope {
	e := &ADSREnvelope{
		Attack:      NewTime("Attack Time"),
		AttackLevel: NewNumber("Attack Level", NumberConfig{Default: 1, Step: 0.05}),
		Decay:       NewTime("Decay Time"),
		Sustain:     NewNumber("Sustain Level", NumberConfig{Default: 0.75, Step: 0.05}),
		Release:     NewTime("Release Time"),
	}
	initGroup(&e.Group, title, []Item{
		e.Attack, e.AttackLevel, e.Decay, e.Sustain, e.Release,
	})
	e.self = e
	return e
}

func (e *ADSREnvelope) Kind() Kind { return KindADSREnvelope }
