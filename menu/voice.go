package menu

// LFO groups a low-frequency oscillator's controls. Depth and rate use a
// square-law curve so the low end of the encoder travel is usable.
type LFO struct {
	Group
	Depth *Number
	Rate  *Number
	Delay *Time
}

// NewLFO creates an LFO control group.
func NewLFO(title string) *LFO {
	l := &LFO{
		Depth: NewNumber("Depth", NumberConfig{Step: 0.01, Max: 0.5, Smoothing: 2}),
		Rate:  NewNumber("Rate", NumberConfig{Step: 0.01, Max: 32, Smoothing: 2}),
		Delay: NewTimeRange("Delay", 0.025, 0, 0, 4),
	}
	initGroup(&l.Group, title, []Item{l.Depth, l.Rate, l.Delay})
	l.self = l
	return l
}

func (l *LFO) Kind() Kind { return KindLFO }

// Filter groups a voice filter's controls.
type Filter struct {
	Group
	Type      *List
	Frequency *Number
	Resonance *Number
}

// NewFilter creates a filter control group.
func NewFilter(title string) *Filter {
	f := &Filter{
		Type:      NewList("Type", []string{"Low Pass", "High Pass", "Band Pass"}, 0),
		Frequency: NewNumber("Frequency", NumberConfig{Default: 1, Step: 0.01, Smoothing: 3}),
		Resonance: NewNumber("Resonance", NumberConfig{}),
	}
	initGroup(&f.Group, title, []Item{f.Type, f.Frequency, f.Resonance})
	f.self = f
	return f
}

func (f *Filter) Kind() Kind { return KindFilter }

// Mix groups output level and stereo pan.
type Mix struct {
	Group
	Level *Percentage
	Pan   *Number
}

// NewMix creates a mix control group at full level, centered.
func NewMix(title string) *Mix {
	m := &Mix{
		Level: NewPercentage("Level", 1),
		Pan:   NewNumber("Pan", NumberConfig{Step: 0.1, Min: -1, Max: 1}),
	}
	initGroup(&m.Group, title, []Item{m.Level, m.Pan})
	m.self = m
	return m
}

func (m *Mix) Kind() Kind { return KindMix }

// Tune groups pitch offset controls. Coarse counts semitones, fine and bend
// are stored in octaves, glide and slew time are seconds. The SetOn hooks
// hand external voices values already scaled into octaves so pitch math
// downstream is uniform.
type Tune struct {
	Group
	Coarse   *Number
	Fine     *Number
	Glide    *Time
	Bend     *Number
	Slew     *Percentage
	SlewTime *Time
}

// NewTune creates a tuning control group.
func NewTune(title string) *Tune {
	t := &Tune{
		Coarse: NewNumber("Coarse", NumberConfig{
			Step: 1, Min: -36, Max: 36, Integer: true, ShowSign: true,
		}),
		Fine: NewNumber("Fine", NumberConfig{
			Step: 1.0 / 144, Min: -1.0 / 12, Max: 1.0 / 12, ShowSign: true, Decimals: 3,
		}),
		Glide: NewTimeRange("Glide", 0.05, 0, 0, 2),
		Bend: NewNumber("Bend", NumberConfig{
			Step: 1.0 / 24, Min: -2, Max: 2, ShowSign: true, Decimals: 2,
		}),
		Slew:     NewPercentage("Slew", 0),
		SlewTime: NewTimeRange("Slew Time", 0.05, 0, 0, 2),
	}
	initGroup(&t.Group, title, []Item{
		t.Coarse, t.Fine, t.Glide, t.Bend, t.Slew, t.SlewTime,
	})
	t.self = t
	return t
}

func (t *Tune) Kind() Kind { return KindTune }

// SetOnCoarse installs a hook receiving the coarse offset in octaves.
func (t *Tune) SetOnCoarse(fn func(octaves float64)) {
	t.Coarse.SetOnUpdate(func(value any, _ Item) {
		fn(float64(value.(int)) / 12)
	})
}

// SetOnFine installs a hook receiving the fine offset in octaves.
func (t *Tune) SetOnFine(fn func(octaves float64)) {
	t.Fine.SetOnUpdate(func(value any, _ Item) {
		fn(value.(float64))
	})
}

// SetOnBend installs a hook receiving the full-deflection bend range in
// octaves. Bend is edited in semitones.
func (t *Tune) SetOnBend(fn func(octaves float64)) {
	t.Bend.SetOnUpdate(func(value any, _ Item) {
		fn(value.(float64) / 12)
	})
}
