package midi

// Op is a discrete menu operation decoded from a control surface message.
type Op int

const (
	OpNone Op = iota
	OpNext
	OpPrevious
	OpIncrement
	OpDecrement
	OpSelect
	OpExit
)

var opNames = [...]string{"none", "next", "previous", "increment", "decrement", "select", "exit"}

func (o Op) String() string {
	if o < 0 || int(o) >= len(opNames) {
		return "unknown"
	}
	return opNames[o]
}

// Event is one decoded operation. Steps is usually 1; a relative encoder
// turned quickly reports a multi-tick offset in a single message.
type Event struct {
	Op    Op
	Steps int
}
