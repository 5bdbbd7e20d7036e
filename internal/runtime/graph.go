package runtime

import (
	"fmt"
	"math/rand"

	"github.com/aretw0/cadenza/pkg/domain"
)

// TransitionGraph answers successor queries over a configured net. It is
// built once per engine instance and read-only afterwards.
type TransitionGraph struct {
	succ map[int][]int
	full []int
}

// NewTransitionGraph builds the vertex and edge sets from the net.
// Deterministic and side-effect free.
func NewTransitionGraph(net domain.Net) *TransitionGraph {
	g := &TransitionGraph{succ: make(map[int][]int, len(net))}
	for _, k := range net.Keys() {
		out := append([]int(nil), net[k]...)
		g.succ[k] = out
		if len(out) > 0 {
			g.full = append(g.full, k)
		}
	}
	return g
}

// RandomSuccessor returns a uniformly chosen successor of v, drawn from r.
// A vertex with no outgoing edges yields ErrNoSuccessors.
func (g *TransitionGraph) RandomSuccessor(r *rand.Rand, v int) (int, error) {
	out := g.succ[v]
	if len(out) == 0 {
		return 0, fmt.Errorf("vertex %d: %w", v, domain.ErrNoSuccessors)
	}
	return out[r.Intn(len(out))], nil
}

// FullKeys returns the vertices that have at least one outgoing edge, in
// ascending order. Policies that want "any valid vertex" draw from this
// list rather than following an edge.
func (g *TransitionGraph) FullKeys() []int {
	return append([]int(nil), g.full...)
}

// RandomFullKey returns a uniformly chosen vertex with outgoing edges.
func (g *TransitionGraph) RandomFullKey(r *rand.Rand) (int, error) {
	if len(g.full) == 0 {
		return 0, fmt.Errorf("no full keys: %w", domain.ErrNoSuccessors)
	}
	return g.full[r.Intn(len(g.full))], nil
}

// Successors returns a copy of the successor list of v. For introspection.
func (g *TransitionGraph) Successors(v int) []int {
	return append([]int(nil), g.succ[v]...)
}
