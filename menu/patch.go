package menu

// Patch groups a looping program slot selector with an editable patch name.
type Patch struct {
	Group
	Slot *Number
	Name *String
}

// NewPatch creates a patch selector over count slots with a 16-character
// name field.
func NewPatch(title string, count int) *Patch {
	p := &Patch{
		Slot: NewNumber("Patch", NumberConfig{
			Step: 1, Min: 0, Max: float64(count - 1), Loop: true, Integer: true,
		}),
		Name: NewString("Name", 16),
	}
	initGroup(&p.Group, title, []Item{p.Slot, p.Name})
	p.self = p
	return p
}

func (p *Patch) Kind() Kind { return KindPatch }
