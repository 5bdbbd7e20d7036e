package dsl

import (
	"fmt"

	"github.com/aretw0/cadenza/pkg/domain"
)

// Builder manages the net construction.
type Builder struct {
	succ map[int][]int
}

// New creates a new net builder.
func New() *Builder {
	return &Builder{
		succ: make(map[int][]int),
	}
}

// Vertex declares a vertex in the net. If the vertex already exists, it
// returns a builder for the existing entry.
func (b *Builder) Vertex(id int) *VertexBuilder {
	if _, ok := b.succ[id]; !ok {
		b.succ[id] = nil
	}
	return &VertexBuilder{builder: b, id: id}
}

// Build compiles the accumulated vertices into a domain.Net, running the
// same shape checks the engine applies: contiguous ids from 1 and no
// dangling successors. Targets referenced by To but never declared are
// added as isolated vertices.
func (b *Builder) Build() (domain.Net, error) {
	net := make(domain.Net, len(b.succ))
	for id, succ := range b.succ {
		net[id] = append([]int(nil), succ...)
	}
	for _, succ := range b.succ {
		for _, t := range succ {
			if _, ok := net[t]; !ok {
				net[t] = nil
			}
		}
	}
	for i := 1; i <= len(net); i++ {
		if _, ok := net[i]; !ok {
			return nil, fmt.Errorf("net ids must be contiguous from 1, missing %d", i)
		}
	}
	return net, nil
}

// VertexBuilder configures one vertex of the net.
type VertexBuilder struct {
	builder *Builder
	id      int
}

// To appends successor edges to the vertex and returns the vertex builder
// for chaining.
func (vb *VertexBuilder) To(targets ...int) *VertexBuilder {
	vb.builder.succ[vb.id] = append(vb.builder.succ[vb.id], targets...)
	return vb
}

// Done returns the parent builder.
func (vb *VertexBuilder) Done() *Builder {
	return vb.builder
}
