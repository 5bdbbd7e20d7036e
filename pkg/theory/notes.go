package theory

import (
	"errors"
	"fmt"
)

// ErrBadNote is returned when a note name cannot be parsed.
var ErrBadNote = errors.New("theory: malformed note name")

var sharpNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}
var flatNames = [12]string{"C", "Db", "D", "Eb", "E", "F", "Gb", "G", "Ab", "A", "Bb", "B"}

var letterClass = map[byte]int{
	'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11,
}

// PitchClass parses a note name (letter A-G plus optional # or b
// accidentals) into its chromatic pitch class 0..11.
func PitchClass(name string) (int, error) {
	if name == "" {
		return 0, fmt.Errorf("%w: empty", ErrBadNote)
	}
	pc, ok := letterClass[name[0]]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrBadNote, name)
	}
	for _, r := range name[1:] {
		switch r {
		case '#':
			pc++
		case 'b':
			pc--
		default:
			return 0, fmt.Errorf("%w: %q", ErrBadNote, name)
		}
	}
	return ((pc % 12) + 12) % 12, nil
}

// SharpName returns the sharp-spelled name of a pitch class.
func SharpName(pc int) string {
	return sharpNames[((pc%12)+12)%12]
}

// FlatName returns the flat-spelled name of a pitch class.
func FlatName(pc int) string {
	return flatNames[((pc%12)+12)%12]
}
