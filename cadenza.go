package cadenza

import (
	"context"
	"log/slog"
	"math/rand"

	"github.com/aretw0/cadenza/internal/runtime"
	"github.com/aretw0/cadenza/pkg/domain"
	"github.com/aretw0/cadenza/pkg/ports"
	"github.com/aretw0/cadenza/pkg/theory"
)

// Engine is the high-level entry point for the Cadenza library.
// It wraps the internal runtime and provides a simplified API for consumers.
type Engine struct {
	runtime *runtime.Engine
	cfg     domain.Config
	scales  ports.ScaleProvider
	speller ports.ChordSpeller
	rand    *rand.Rand
	hooks   domain.LifecycleHooks
	logger  *slog.Logger
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithConfig sets the generation configuration. Without it the engine uses
// domain.DefaultConfig.
func WithConfig(cfg domain.Config) Option {
	return func(e *Engine) {
		e.cfg = cfg
	}
}

// WithRand injects a custom random source. Tests fix a seed here to assert
// exact sequences.
func WithRand(r *rand.Rand) Option {
	return func(e *Engine) {
		e.rand = r
	}
}

// WithSeed is shorthand for WithRand over a seeded source.
func WithSeed(seed int64) Option {
	return func(e *Engine) {
		e.rand = rand.New(rand.NewSource(seed))
	}
}

// WithScaleProvider injects a custom scale resolver, bypassing the default
// theory tables.
func WithScaleProvider(p ports.ScaleProvider) Option {
	return func(e *Engine) {
		e.scales = p
	}
}

// WithChordSpeller injects a custom chord speller.
func WithChordSpeller(s ports.ChordSpeller) Option {
	return func(e *Engine) {
		e.speller = s
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// New initializes a new Cadenza Engine. Configuration problems are reported
// by Generate, not here, so a zero-argument New always succeeds.
func New(opts ...Option) (*Engine, error) {
	eng := &Engine{cfg: domain.DefaultConfig()}

	for _, opt := range opts {
		opt(eng)
	}

	if eng.scales == nil {
		eng.scales = theory.Scales{}
	}
	if eng.speller == nil {
		eng.speller = theory.Speller{}
	}

	runtimeOpts := []runtime.EngineOption{
		runtime.WithLifecycleHooks(eng.hooks),
	}
	if eng.rand != nil {
		runtimeOpts = append(runtimeOpts, runtime.WithRand(eng.rand))
	}
	if eng.logger != nil {
		runtimeOpts = append(runtimeOpts, runtime.WithLogger(eng.logger))
	}

	eng.runtime = runtime.NewEngine(eng.cfg, eng.scales, eng.speller, runtimeOpts...)

	return eng, nil
}

// Generate produces one progression. It consumes randomness and is not
// idempotent across calls unless the random source is fixed.
func (e *Engine) Generate(ctx context.Context) (*domain.Progression, error) {
	return e.runtime.Generate(ctx)
}

// Config returns the engine configuration.
func (e *Engine) Config() domain.Config {
	return e.runtime.Config()
}

// Net returns a copy of the configured transition net.
func (e *Engine) Net() domain.Net {
	return e.runtime.Config().Net.Clone()
}

// Substitute maps a chord quality to its jazz extension per the engine's
// rule table, drawing tie-breaks from r. Exposed standalone for direct
// invocation.
func Substitute(r *rand.Rand, quality string) string {
	return runtime.Substitute(r, quality)
}
