package graph_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aretw0/cadenza/internal/presentation/graph"
	"github.com/aretw0/cadenza/pkg/domain"
)

func TestGenerateMermaid(t *testing.T) {
	net := domain.Net{
		1: {2, 3},
		2: {1},
		3: {},
	}
	out := graph.GenerateMermaid(net, []string{"", "m", "dim"})

	assert.True(t, strings.HasPrefix(out, "graph TD\n"))

	// Tonic is a circle, the dead end a subroutine, the rest rectangles.
	assert.Contains(t, out, `v1(("1"))`)
	assert.Contains(t, out, `v2["2m"]`)
	assert.Contains(t, out, `v3[["3dim"]]`)

	assert.Contains(t, out, "v1 --> v2")
	assert.Contains(t, out, "v1 --> v3")
	assert.Contains(t, out, "v2 --> v1")
	assert.NotContains(t, out, "v3 -->")

	// Keys render in ascending order regardless of map iteration.
	assert.Less(t, strings.Index(out, "v1(("), strings.Index(out, "v2["))
	assert.Less(t, strings.Index(out, `v2["`), strings.Index(out, "v3[["))
}

func TestGenerateMermaidDefaults(t *testing.T) {
	cfg := domain.DefaultConfig()
	out := graph.GenerateMermaid(cfg.Net, cfg.ChordQualities)

	assert.Contains(t, out, `v1(("1"))`)
	assert.Contains(t, out, `v6["6m"]`)
	assert.Equal(t, 1+6+15, strings.Count(out, "\n"), "one line per vertex and edge")
}
