package theory

import (
	"errors"
	"fmt"
)

// ErrUnknownScale is returned when a scale name has no interval pattern.
var ErrUnknownScale = errors.New("theory: unknown scale")

var scaleIntervals = map[string][]int{
	"major":          {0, 2, 4, 5, 7, 9, 11},
	"minor":          {0, 2, 3, 5, 7, 8, 10},
	"harmonic_minor": {0, 2, 3, 5, 7, 8, 11},
	"melodic_minor":  {0, 2, 3, 5, 7, 9, 11},
	"dorian":         {0, 2, 3, 5, 7, 9, 10},
	"mixolydian":     {0, 2, 4, 5, 7, 9, 10},
	"chromatic":      {0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11},
}

// Scales resolves scale names into note lists. It implements
// ports.ScaleProvider and is the engine's default provider.
type Scales struct{}

// Notes returns the sharp-spelled notes of the named scale from root.
func (Scales) Notes(root, scaleName string) ([]string, error) {
	pc, err := PitchClass(root)
	if err != nil {
		return nil, err
	}
	intervals, ok := scaleIntervals[scaleName]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScale, scaleName)
	}
	notes := make([]string, len(intervals))
	for i, semis := range intervals {
		notes[i] = SharpName(pc + semis)
	}
	return notes, nil
}

// ScaleNames returns the supported scale names. For help texts.
func ScaleNames() []string {
	return []string{"chromatic", "dorian", "harmonic_minor", "major", "melodic_minor", "minor", "mixolydian"}
}
