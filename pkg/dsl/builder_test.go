package dsl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/cadenza/pkg/domain"
	"github.com/aretw0/cadenza/pkg/dsl"
)

func TestBuilder(t *testing.T) {
	t.Run("Chained Vertices", func(t *testing.T) {
		net, err := dsl.New().
			Vertex(1).To(2, 3).Done().
			Vertex(2).To(3).Done().
			Vertex(3).To(1).Done().
			Build()
		require.NoError(t, err)
		assert.Equal(t, domain.Net{1: {2, 3}, 2: {3}, 3: {1}}, net)
	})

	t.Run("Referenced Targets Become Isolated Vertices", func(t *testing.T) {
		net, err := dsl.New().
			Vertex(1).To(2).Done().
			Build()
		require.NoError(t, err)
		require.Contains(t, net, 2)
		assert.Empty(t, net[2])
	})

	t.Run("Repeated Vertex Accumulates Edges", func(t *testing.T) {
		b := dsl.New()
		b.Vertex(1).To(2)
		b.Vertex(2)
		b.Vertex(1).To(3)
		net, err := b.Build()
		require.NoError(t, err)
		assert.Equal(t, []int{2, 3}, net[1])
		require.Contains(t, net, 3)
	})

	t.Run("Gap In Ids", func(t *testing.T) {
		_, err := dsl.New().
			Vertex(1).To(1).Done().
			Vertex(3).Done().
			Build()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "contiguous")
	})

	t.Run("Built Net Passes Engine Validation", func(t *testing.T) {
		net, err := dsl.New().
			Vertex(1).To(2).Done().
			Vertex(2).To(1).Done().
			Build()
		require.NoError(t, err)

		cfg := domain.DefaultConfig()
		cfg.Net = net
		cfg.ChordQualities = []string{"", "m"}
		assert.NoError(t, cfg.Validate())
	})
}
