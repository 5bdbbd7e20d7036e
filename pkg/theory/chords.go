package theory

import (
	"errors"
	"fmt"
)

// ErrUnknownQuality is returned when a chord symbol carries a quality with
// no interval table entry.
var ErrUnknownQuality = errors.New("theory: unknown chord quality")

// qualityIntervals maps a quality suffix to the semitone offsets of its
// chord tones above the root. It covers every quality the substitution
// table can emit.
var qualityIntervals = map[string][]int{
	"":      {0, 4, 7},
	"m":     {0, 3, 7},
	"dim":   {0, 3, 6},
	"aug":   {0, 4, 8},
	"-5":    {0, 4, 6},
	"-9":    {0, 4, 7, 10, 13},
	"M7":    {0, 4, 7, 11},
	"7":     {0, 4, 7, 10},
	"m7":    {0, 3, 7, 10},
	"mM7":   {0, 3, 7, 11},
	"dim7":  {0, 3, 6, 9},
	"aug7":  {0, 4, 8, 10},
	"M9":    {0, 4, 7, 11, 14},
	"M11":   {0, 4, 7, 11, 14, 17},
	"M13":   {0, 4, 7, 11, 14, 17, 21},
	"9":     {0, 4, 7, 10, 14},
	"11":    {0, 4, 7, 10, 14, 17},
	"13":    {0, 4, 7, 10, 14, 17, 21},
	"m9":    {0, 3, 7, 10, 14},
	"m11":   {0, 3, 7, 10, 14, 17},
	"m13":   {0, 3, 7, 10, 14, 17, 21},
	"7(-5)": {0, 4, 6, 10},
	"7(-9)": {0, 4, 7, 10, 13},
}

// Speller expands chord symbols into pitch names. It implements
// ports.ChordSpeller and is the engine's default speller.
type Speller struct{}

// Spell returns the pitch names of the chord tones of symbol. The root
// carries the given octave; subsequent tones increment the octave each time
// the pitch class wraps, so Spell("F", 4) yields F4 A4 C5. Output is
// sharp-spelled.
func (Speller) Spell(symbol string, octave int) ([]string, error) {
	root, quality, err := SplitSymbol(symbol)
	if err != nil {
		return nil, err
	}
	pc, err := PitchClass(root)
	if err != nil {
		return nil, err
	}
	intervals, ok := qualityIntervals[quality]
	if !ok {
		return nil, fmt.Errorf("%w: %q in %q", ErrUnknownQuality, quality, symbol)
	}
	pitches := make([]string, len(intervals))
	for i, semis := range intervals {
		abs := pc + semis
		pitches[i] = fmt.Sprintf("%s%d", SharpName(abs), octave+abs/12)
	}
	return pitches, nil
}

// SplitSymbol separates a chord symbol into its root note and quality
// suffix: the root is the leading letter plus any accidentals, the quality
// is everything after it ("Dbm7" -> "Db", "m7").
func SplitSymbol(symbol string) (root, quality string, err error) {
	if symbol == "" {
		return "", "", fmt.Errorf("%w: empty symbol", ErrBadNote)
	}
	if _, ok := letterClass[symbol[0]]; !ok {
		return "", "", fmt.Errorf("%w: %q", ErrBadNote, symbol)
	}
	i := 1
	for i < len(symbol) && (symbol[i] == '#' || symbol[i] == 'b') {
		i++
	}
	return symbol[:i], symbol[i:], nil
}
