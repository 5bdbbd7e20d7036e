package runtime_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/cadenza/internal/runtime"
	"github.com/aretw0/cadenza/pkg/domain"
	"github.com/aretw0/cadenza/pkg/theory"
)

// chainConfig is a degree-1 cycle: every successor choice is forced, so a
// walk is fully determined by the boundary policies.
func chainConfig() domain.Config {
	cfg := domain.DefaultConfig()
	cfg.Net = domain.Net{1: {2}, 2: {3}, 3: {4}, 4: {5}, 5: {6}, 6: {1}}
	cfg.Max = 6
	cfg.ResolvePolicy = domain.PolicyNeighbor
	return cfg
}

func newEngine(cfg domain.Config, opts ...runtime.EngineOption) *runtime.Engine {
	opts = append([]runtime.EngineOption{
		runtime.WithRand(rand.New(rand.NewSource(1))),
	}, opts...)
	return runtime.NewEngine(cfg, theory.Scales{}, theory.Speller{}, opts...)
}

func TestGenerateLength(t *testing.T) {
	for _, max := range []int{1, 2, 8, 32} {
		cfg := domain.DefaultConfig()
		cfg.Max = max

		prog, err := newEngine(cfg).Generate(context.Background())
		require.NoError(t, err)
		assert.Len(t, prog.Chords, max)
		assert.Len(t, prog.Steps, max)
	}
}

func TestGenerateFixedBoundaries(t *testing.T) {
	// Fixed tonic and resolve pin both ends to vertex 1 for any seed.
	for seed := int64(0); seed < 20; seed++ {
		cfg := domain.DefaultConfig()
		eng := runtime.NewEngine(cfg, theory.Scales{}, theory.Speller{},
			runtime.WithRand(rand.New(rand.NewSource(seed))))

		prog, err := eng.Generate(context.Background())
		require.NoError(t, err)

		first := prog.Chords[0]
		last := prog.Chords[len(prog.Chords)-1]
		assert.Equal(t, []string{"C4", "E4", "G4"}, first.Pitches)
		assert.Equal(t, []string{"C4", "E4", "G4"}, last.Pitches)
	}
}

func TestGenerateDeterministicChain(t *testing.T) {
	prog, err := newEngine(chainConfig()).Generate(context.Background())
	require.NoError(t, err)

	want := [][]string{
		{"C4", "E4", "G4"},
		{"D4", "F4", "A4"},
		{"E4", "G4", "B4"},
		{"F4", "A4", "C5"},
		{"G4", "B4", "D5"},
		{"C4", "E4", "G4"},
	}
	require.Len(t, prog.Chords, len(want))
	for i, chord := range prog.Chords {
		assert.Equal(t, want[i], chord.Pitches, "position %d", i+1)
	}
	// The last position samples successors of the highest net key (6), not
	// of the vertex visited at position 5.
	assert.Equal(t, 1, prog.Steps[5].Vertex)
}

func TestGenerateNeighborTonic(t *testing.T) {
	cfg := chainConfig()
	cfg.Max = 3
	cfg.TonicPolicy = domain.PolicyNeighbor
	cfg.ResolvePolicy = domain.PolicyFixed

	prog, err := newEngine(cfg).Generate(context.Background())
	require.NoError(t, err)

	// Neighbor of vertex 1 is forced to 2, then the chain walks to 3, and
	// the fixed resolve returns to 1.
	assert.Equal(t, 2, prog.Steps[0].Vertex)
	assert.Equal(t, 3, prog.Steps[1].Vertex)
	assert.Equal(t, 1, prog.Steps[2].Vertex)
	assert.Equal(t, "Dm", prog.Chords[0].Symbol)
}

func TestGenerateMaxOneUsesTonicPolicy(t *testing.T) {
	cfg := chainConfig()
	cfg.Max = 1
	// Resolve policy must not apply when max == 1.
	cfg.ResolvePolicy = domain.PolicyNeighbor

	prog, err := newEngine(cfg).Generate(context.Background())
	require.NoError(t, err)
	require.Len(t, prog.Steps, 1)
	assert.Equal(t, 1, prog.Steps[0].Vertex)
	assert.Equal(t, []string{"C4", "E4", "G4"}, prog.Chords[0].Pitches)
}

func TestGenerateRandomPolicies(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.TonicPolicy = domain.PolicyRandom
	cfg.ResolvePolicy = domain.PolicyRandom

	eng := newEngine(cfg)
	for i := 0; i < 200; i++ {
		prog, err := eng.Generate(context.Background())
		require.NoError(t, err)
		for _, step := range prog.Steps {
			assert.Contains(t, cfg.Net, step.Vertex)
		}
	}
}

func TestGenerateScaleRoots(t *testing.T) {
	t.Run("B Major", func(t *testing.T) {
		cfg := domain.DefaultConfig()
		cfg.ScaleRoot = "B"

		prog, err := newEngine(cfg).Generate(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{"B4", "D#5", "F#5"}, prog.Chords[0].Pitches)
	})

	t.Run("Bb Major With Flat Spelling", func(t *testing.T) {
		cfg := domain.DefaultConfig()
		cfg.ScaleRoot = "Bb"
		cfg.Flat = true

		prog, err := newEngine(cfg).Generate(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{"Bb4", "D5", "F5"}, prog.Chords[0].Pitches)
	})

	t.Run("Bb Major Raw Output Is Sharp", func(t *testing.T) {
		cfg := domain.DefaultConfig()
		cfg.ScaleRoot = "Bb"

		prog, err := newEngine(cfg).Generate(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{"A#4", "D5", "F5"}, prog.Chords[0].Pitches)
	})
}

func TestGenerateConfigurationError(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.ChordQualities = []string{""}

	walkStarted := false
	eng := newEngine(cfg, runtime.WithLifecycleHooks(domain.LifecycleHooks{
		OnWalkStart: func(context.Context, *domain.WalkEvent) { walkStarted = true },
	}))

	prog, err := eng.Generate(context.Background())
	require.Error(t, err)
	assert.Nil(t, prog)

	var cfgErr *domain.ConfigurationError
	assert.ErrorAs(t, err, &cfgErr)
	assert.False(t, walkStarted, "no walk may start on invalid config")
}

func TestGenerateDependencyError(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.ScaleName = "klingon"

	_, err := newEngine(cfg).Generate(context.Background())
	require.Error(t, err)

	var depErr *domain.DependencyError
	require.ErrorAs(t, err, &depErr)
	assert.ErrorIs(t, err, theory.ErrUnknownScale)
}

func TestGenerateReproducible(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.Substitute = true

	gen := func(seed int64) string {
		eng := runtime.NewEngine(cfg, theory.Scales{}, theory.Speller{},
			runtime.WithRand(rand.New(rand.NewSource(seed))))
		prog, err := eng.Generate(context.Background())
		require.NoError(t, err)
		return prog.String()
	}

	assert.Equal(t, gen(42), gen(42))
}

func TestGenerateHooks(t *testing.T) {
	cfg := chainConfig()

	var steps, chords int
	eng := newEngine(cfg, runtime.WithLifecycleHooks(domain.LifecycleHooks{
		OnStepChosen:    func(_ context.Context, ev *domain.StepEvent) { steps++ },
		OnChordRendered: func(_ context.Context, ev *domain.ChordEvent) { chords++ },
	}))

	_, err := eng.Generate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 6, steps)
	assert.Equal(t, 6, chords)
}
