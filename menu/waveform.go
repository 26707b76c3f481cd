package menu

import "math"

// WaveformFunc generates one cycle of a waveform as size samples in [-1, 1].
type WaveformFunc func(size int) []float64

// WaveformEntry pairs a display name with its generator.
type WaveformEntry struct {
	Name string
	Func WaveformFunc
}

// WaveformList is a List over waveform generators. The persisted value is
// the generator index; the generated samples are exposed through Samples so
// renderers and voices can pull the table on demand.
type WaveformList struct {
	List
	entries []WaveformEntry
	size    int
}

// NewWaveformList creates a generator selector producing tables of the given
// sample count.
func NewWaveformList(title string, entries []WaveformEntry, size int) *WaveformList {
	w := &WaveformList{entries: entries, size: size}
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	w.options = names
	initNumber(&w.Number, title, NumberConfig{
		Step:    1,
		Min:     0,
		Max:     float64(len(entries) - 1),
		Loop:    true,
		Integer: true,
	})
	w.self = w
	return w
}

func (w *WaveformList) Kind() Kind { return KindWaveformList }

// Size returns the sample count of generated tables.
func (w *WaveformList) Size() int { return w.size }

// Samples generates the selected waveform table.
func (w *WaveformList) Samples() []float64 {
	return w.entries[w.Index()].Func(w.size)
}

// Waveform is a WaveformList plus a loop window over the generated table.
// The window bounds push each other: raising the start past the end drags
// the end along, and vice versa, so start <= end always holds.
type Waveform struct {
	Group
	Wave      *WaveformList
	LoopStart *Percentage
	LoopEnd   *Percentage
}

// NewWaveform creates a waveform selector with loop controls.
func NewWaveform(title string, entries []WaveformEntry, size int) *Waveform {
	w := &Waveform{
		Wave:      NewWaveformList("Waveform", entries, size),
		LoopStart: NewPercentage("Loop Start", 0),
		LoopEnd:   NewPercentage("Loop End", 1),
	}
	w.LoopStart.SetOnUpdate(func(value any, _ Item) {
		if v := value.(float64); v > w.LoopEnd.Float() {
			w.LoopEnd.SetValue(v)
		}
	})
	w.LoopEnd.SetOnUpdate(func(value any, _ Item) {
		if v := value.(float64); v < w.LoopStart.Float() {
			w.LoopStart.SetValue(v)
		}
	})
	initGroup(&w.Group, title, []Item{w.Wave, w.LoopStart, w.LoopEnd})
	w.self = w
	return w
}

func (w *Waveform) Kind() Kind { return KindWaveform }

// Samples generates the selected waveform table.
func (w *Waveform) Samples() []float64 { return w.Wave.Samples() }

// Standard generators.

// Sine generates one sine cycle.
func Sine(size int) []float64 {
	samples := make([]float64, size)
	for i := range samples {
		samples[i] = math.Sin(2 * math.Pi * float64(i) / float64(size))
	}
	return samples
}

// Triangle generates one triangle cycle starting at zero and rising.
func Triangle(size int) []float64 {
	samples := make([]float64, size)
	for i := range samples {
		p := float64(i) / float64(size)
		switch {
		case p < 0.25:
			samples[i] = 4 * p
		case p < 0.75:
			samples[i] = 2 - 4*p
		default:
			samples[i] = 4*p - 4
		}
	}
	return samples
}

// Saw generates one rising sawtooth cycle.
func Saw(size int) []float64 {
	samples := make([]float64, size)
	for i := range samples {
		samples[i] = 2*float64(i)/float64(size) - 1
	}
	return samples
}

// Square generates one square cycle.
func Square(size int) []float64 {
	samples := make([]float64, size)
	for i := range samples {
		if float64(i) < float64(size)/2 {
			samples[i] = 1
		} else {
			samples[i] = -1
		}
	}
	return samples
}

// Waveforms returns the standard generator table used by the demo menus.
func Waveforms() []WaveformEntry {
	return []WaveformEntry{
		{"Sine", Sine},
		{"Triangle", Triangle},
		{"Saw", Saw},
		{"Square", Square},
	}
}
