package ports

// ScaleProvider defines how the engine resolves a reference scale.
// This allows the theory layer (defaults, custom tunings) to be decoupled.
type ScaleProvider interface {
	// Notes returns the ordered note names of the scale: 7 entries for
	// conventional scales, 12 for chromatic. The engine indexes this list
	// by vertex id minus one.
	Notes(root, scaleName string) ([]string, error)
}

// ChordSpeller defines how the engine expands a chord symbol into concrete
// pitches.
type ChordSpeller interface {
	// Spell returns the ordered pitch names (note plus octave digits, e.g.
	// "E4") for the chord tones of symbol. The chord root carries the given
	// octave; later tones ascend from it.
	Spell(symbol string, octave int) ([]string, error)
}
