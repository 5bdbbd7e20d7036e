package runtime_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/cadenza/internal/runtime"
	"github.com/aretw0/cadenza/pkg/domain"
)

func TestTransitionGraph(t *testing.T) {
	net := domain.Net{
		1: {2, 3},
		2: {1},
		3: {},
	}
	g := runtime.NewTransitionGraph(net)
	r := rand.New(rand.NewSource(1))

	t.Run("Full Keys Exclude Isolated Vertices", func(t *testing.T) {
		assert.Equal(t, []int{1, 2}, g.FullKeys())
	})

	t.Run("Random Successor Stays On Edges", func(t *testing.T) {
		seen := map[int]bool{}
		for i := 0; i < 10000; i++ {
			v, err := g.RandomSuccessor(r, 1)
			require.NoError(t, err)
			require.Contains(t, []int{2, 3}, v)
			seen[v] = true
		}
		assert.True(t, seen[2], "successor 2 never drawn")
		assert.True(t, seen[3], "successor 3 never drawn")
	})

	t.Run("Forced Successor", func(t *testing.T) {
		for i := 0; i < 100; i++ {
			v, err := g.RandomSuccessor(r, 2)
			require.NoError(t, err)
			assert.Equal(t, 1, v)
		}
	})

	t.Run("Empty Successor List", func(t *testing.T) {
		_, err := g.RandomSuccessor(r, 3)
		assert.ErrorIs(t, err, domain.ErrNoSuccessors)
	})

	t.Run("Random Full Key", func(t *testing.T) {
		for i := 0; i < 1000; i++ {
			v, err := g.RandomFullKey(r)
			require.NoError(t, err)
			assert.Contains(t, []int{1, 2}, v)
		}
	})

	t.Run("Successors Returns A Copy", func(t *testing.T) {
		succ := g.Successors(1)
		succ[0] = 99
		fresh := g.Successors(1)
		assert.Equal(t, []int{2, 3}, fresh)
	})
}

func TestTransitionGraphAllIsolated(t *testing.T) {
	g := runtime.NewTransitionGraph(domain.Net{1: {}})
	r := rand.New(rand.NewSource(1))

	_, err := g.RandomFullKey(r)
	assert.ErrorIs(t, err, domain.ErrNoSuccessors)
	assert.Empty(t, g.FullKeys())
}
