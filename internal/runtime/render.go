package runtime

import (
	"context"
	"fmt"
	"regexp"

	"github.com/aretw0/cadenza/pkg/domain"
	"github.com/aretw0/cadenza/pkg/theory"
)

// tritoneNames[pc] names the pitch six semitones above pitch class pc.
// Built once, preferring the flat spelling and falling back to the sharp
// one.
var tritoneNames = func() [12]string {
	var t [12]string
	for pc := 0; pc < 12; pc++ {
		name := theory.FlatName(pc + 6)
		if name == "" {
			name = theory.SharpName(pc + 6)
		}
		t[pc] = name
	}
	return t
}()

var sharpPitch = regexp.MustCompile(`^([A-G]#)(\d+)$`)

// enharmonicFlats is the fixed 7-entry table for sharp-to-flat re-spelling.
// The rewrite is a literal string substitution keeping the octave digits:
// E# and B# keep their digits even though their naturals sit in the next
// letter.
var enharmonicFlats = map[string]string{
	"C#": "Db",
	"D#": "Eb",
	"E#": "F",
	"F#": "Gb",
	"G#": "Ab",
	"A#": "Bb",
	"B#": "C",
}

// render turns the walked steps and (possibly substituted) qualities into
// chords. Collaborator failures surface as DependencyError.
func (e *Engine) render(ctx context.Context, steps []domain.Step, qualities []string) ([]domain.Chord, error) {
	notes, err := e.scales.Notes(e.cfg.ScaleRoot, e.cfg.ScaleName)
	if err != nil {
		return nil, &domain.DependencyError{Op: "scale lookup", Err: err}
	}
	chords := make([]domain.Chord, 0, len(steps))
	for n, step := range steps {
		if step.Vertex < 1 || step.Vertex > len(notes) {
			return nil, &domain.DependencyError{
				Op:  "scale degree",
				Err: fmt.Errorf("vertex %d exceeds %d scale notes", step.Vertex, len(notes)),
			}
		}
		note := notes[step.Vertex-1]
		if step.Tritone {
			pc, err := theory.PitchClass(note)
			if err != nil {
				return nil, &domain.DependencyError{Op: "tritone lookup", Err: err}
			}
			note = tritoneNames[pc]
		}
		symbol := note + qualities[step.Vertex-1]
		pitches, err := e.speller.Spell(symbol, e.cfg.Octave)
		if err != nil {
			return nil, &domain.DependencyError{Op: "chord spelling", Err: err}
		}
		if e.cfg.Flat {
			for i, p := range pitches {
				pitches[i] = flatten(p)
			}
		}
		chord := domain.Chord{Symbol: symbol, Pitches: pitches}
		e.emitChordRendered(ctx, n+1, chord)
		chords = append(chords, chord)
	}
	return chords, nil
}

// flatten rewrites a sharp-spelled pitch name ("A#4") through the
// enharmonic table ("Bb4"). Anything not matching <letter>#<digits> is
// returned untouched.
func flatten(pitch string) string {
	m := sharpPitch.FindStringSubmatch(pitch)
	if m == nil {
		return pitch
	}
	flat, ok := enharmonicFlats[m[1]]
	if !ok {
		return pitch
	}
	return flat + m[2]
}
