package runtime

import (
	"context"
	"fmt"

	"github.com/aretw0/cadenza/pkg/domain"
)

// walk produces the visited vertex sequence, one Step per position. The
// first and last positions get their own boundary policies; every other
// position follows a random edge out of the previous vertex. The last
// position wins over the first when Max > 1.
//
// Tritone flags all start false here; the substitution pass sets them.
func (e *Engine) walk(ctx context.Context) ([]domain.Step, error) {
	steps := make([]domain.Step, 0, e.cfg.Max)
	prev := 0
	for n := 1; n <= e.cfg.Max; n++ {
		var (
			v   int
			err error
		)
		switch {
		case n == e.cfg.Max && e.cfg.Max > 1:
			v, err = e.resolveBoundary(e.cfg.ResolvePolicy, e.cfg.Net.MaxKey())
		case n == 1:
			v, err = e.resolveBoundary(e.cfg.TonicPolicy, 1)
		default:
			v, err = e.graph.RandomSuccessor(e.rand, prev)
		}
		if err != nil {
			return nil, fmt.Errorf("walk position %d: %w", n, err)
		}
		e.emitStepChosen(ctx, n, v)
		steps = append(steps, domain.Step{Vertex: v})
		prev = v
	}
	return steps, nil
}

// resolveBoundary applies a boundary policy. For PolicyNeighbor, ref is the
// vertex whose successors are sampled: vertex 1 for the tonic position, and
// the highest net key for the resolve position. The resolve position
// deliberately samples successors of the last net key, not of the vertex
// actually visited one step earlier.
func (e *Engine) resolveBoundary(p domain.Policy, ref int) (int, error) {
	switch p {
	case domain.PolicyFixed:
		return 1, nil
	case domain.PolicyNeighbor:
		return e.graph.RandomSuccessor(e.rand, ref)
	case domain.PolicyRandom:
		return e.graph.RandomFullKey(e.rand)
	default:
		// Unreachable after Config.Validate.
		return 0, fmt.Errorf("unknown policy %q", p)
	}
}
