package runtime

import (
	"context"
	"math/rand"

	"github.com/aretw0/cadenza/pkg/domain"
)

// qualityClass partitions chord qualities for the substitution table. The
// enumeration is closed: anything outside it falls into classOther and
// passes through unchanged.
type qualityClass int

const (
	classTriad           qualityClass = iota // "" or "m"
	classDimAug                              // "dim" or "aug"
	classAltered                             // "-5" or "-9"
	classMajorSeventh                        // "M7"
	classDominantSeventh                     // "7"
	classMinorSeventh                        // "m7"
	classOther
)

func classify(quality string) qualityClass {
	switch quality {
	case "", "m":
		return classTriad
	case "dim", "aug":
		return classDimAug
	case "-5", "-9":
		return classAltered
	case "M7":
		return classMajorSeventh
	case "7":
		return classDominantSeventh
	case "m7":
		return classMinorSeventh
	default:
		return classOther
	}
}

// Substitute maps a chord quality to a jazz extension per the fixed rule
// table, drawing from r only for tie-breaks. Unrecognized qualities are
// returned unchanged, never dropped.
func Substitute(r *rand.Rand, quality string) string {
	switch classify(quality) {
	case classTriad:
		if r.Intn(2) == 0 {
			return quality + "M7"
		}
		return quality + "7"
	case classDimAug:
		return quality + "7"
	case classAltered:
		return "7(" + quality + ")"
	case classMajorSeventh:
		return pick(r, "M9", "M11", "M13")
	case classDominantSeventh:
		return pick(r, "9", "11", "13")
	case classMinorSeventh:
		return pick(r, "m9", "m11", "m13")
	default:
		return quality
	}
}

func pick(r *rand.Rand, options ...string) string {
	return options[r.Intn(len(options))]
}

// applySubstitutions runs one substitution decision per net key against a
// per-call copy of the qualities, flagging tritone positions on steps as a
// fallback. A vertex quality is fixed for the whole net, independent of how
// many times the walk visits it.
//
// Two independent condition draws per key: the first gates the quality
// substitution, the second gates the tritone marking and happens only when
// the first attempt left the quality unchanged (gate false, or the table
// mapped the quality to itself). The draw order is part of the contract
// under a seeded random source.
func (e *Engine) applySubstitutions(ctx context.Context, qualities []string, steps []domain.Step) {
	for idx := range qualities {
		vertex := idx + 1
		changed := false
		if e.subCondition() {
			next := Substitute(e.rand, qualities[idx])
			changed = next != qualities[idx]
			if changed {
				e.emitSubstitution(ctx, vertex, qualities[idx], next, false)
			}
			qualities[idx] = next
		}
		if changed {
			continue
		}
		if e.subCondition() {
			for i := range steps {
				if steps[i].Vertex == vertex {
					steps[i].Tritone = true
				}
			}
			e.emitSubstitution(ctx, vertex, qualities[idx], qualities[idx], true)
		}
	}
}
