package domain

import "strings"

// Step is one visited position of the walk: the vertex id and whether the
// rendered chord root is replaced by the note a tritone away. The flag is
// carried explicitly; it is never encoded inside the vertex id.
type Step struct {
	Vertex  int  `json:"vertex"`
	Tritone bool `json:"tritone,omitempty"`
}

// Chord is one rendered chord: its symbol (root letter plus quality) and
// the ordered pitch names at the configured octave.
type Chord struct {
	Symbol  string   `json:"symbol"`
	Pitches []string `json:"pitches"`
}

// Progression is the result of a single Generate call. Steps and Chords
// are index-aligned: Chords[i] is the rendering of Steps[i].
type Progression struct {
	Steps  []Step  `json:"steps"`
	Chords []Chord `json:"chords"`
}

// Symbols returns the chord symbols in progression order.
func (p *Progression) Symbols() []string {
	out := make([]string, len(p.Chords))
	for i, c := range p.Chords {
		out[i] = c.Symbol
	}
	return out
}

// String renders the progression as a space-separated symbol line.
func (p *Progression) String() string {
	return strings.Join(p.Symbols(), " ")
}
