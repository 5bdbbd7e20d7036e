package runtime

import (
	"context"
	"io"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/aretw0/cadenza/pkg/domain"
	"github.com/aretw0/cadenza/pkg/ports"
)

// defaultSubProbability is the chance the default substitution condition
// answers true.
const defaultSubProbability = 0.25

// Engine is the core progression generator. It owns an immutable Config, a
// lazily-built cached transition graph, and a single injectable random
// source. It is synchronous and single-threaded: one bounded O(max)
// computation per Generate call, no I/O beyond the diagnostic hooks.
type Engine struct {
	cfg     domain.Config
	scales  ports.ScaleProvider
	speller ports.ChordSpeller
	rand    *rand.Rand
	logger  *slog.Logger
	hooks   domain.LifecycleHooks

	buildOnce sync.Once
	graph     *TransitionGraph
}

// EngineOption defines a functional option for configuring the Engine.
type EngineOption func(*Engine)

// WithRand injects the random source. Fix the seed for reproducible output.
func WithRand(r *rand.Rand) EngineOption {
	return func(e *Engine) {
		e.rand = r
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) EngineOption {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// NewEngine creates a new engine with its collaborators.
func NewEngine(cfg domain.Config, scales ports.ScaleProvider, speller ports.ChordSpeller, opts ...EngineOption) *Engine {
	e := &Engine{
		cfg:     cfg,
		scales:  scales,
		speller: speller,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rand == nil {
		e.rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if e.logger == nil {
		e.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return e
}

// Config returns the engine configuration.
func (e *Engine) Config() domain.Config { return e.cfg }

// Generate produces one progression: validate, walk, substitute, render.
// Validation happens before any randomness is consumed. The graph is built
// on first use and reused across calls; the progression itself is computed
// fresh every call and never cached.
func (e *Engine) Generate(ctx context.Context) (*domain.Progression, error) {
	if err := e.cfg.Validate(); err != nil {
		return nil, err
	}
	e.buildOnce.Do(func() {
		e.graph = NewTransitionGraph(e.cfg.Net)
	})

	e.emitWalkStart(ctx)
	steps, err := e.walk(ctx)
	if err != nil {
		return nil, err
	}

	qualities := append([]string(nil), e.cfg.ChordQualities...)
	if e.cfg.Substitute {
		e.applySubstitutions(ctx, qualities, steps)
	}

	chords, err := e.render(ctx, steps, qualities)
	if err != nil {
		return nil, err
	}

	e.logger.Debug("progression generated",
		"length", len(chords),
		"scale", e.cfg.ScaleRoot+" "+e.cfg.ScaleName,
		"substitute", e.cfg.Substitute,
	)
	return &domain.Progression{Steps: steps, Chords: chords}, nil
}

// subCondition draws one substitution decision. Each call is independent.
func (e *Engine) subCondition() bool {
	if e.cfg.SubCondition != nil {
		return e.cfg.SubCondition()
	}
	return e.rand.Float64() < defaultSubProbability
}

func (e *Engine) emitWalkStart(ctx context.Context) {
	if e.hooks.OnWalkStart == nil {
		return
	}
	e.hooks.OnWalkStart(ctx, &domain.WalkEvent{
		EventBase: eventBase(domain.EventWalkStart),
		Max:       e.cfg.Max,
	})
}

func (e *Engine) emitStepChosen(ctx context.Context, position, vertex int) {
	e.logger.Debug("step chosen", "position", position, "vertex", vertex)
	if e.hooks.OnStepChosen == nil {
		return
	}
	e.hooks.OnStepChosen(ctx, &domain.StepEvent{
		EventBase: eventBase(domain.EventStepChosen),
		Position:  position,
		Vertex:    vertex,
	})
}

func (e *Engine) emitSubstitution(ctx context.Context, vertex int, from, to string, tritone bool) {
	e.logger.Debug("substitution", "vertex", vertex, "from", from, "to", to, "tritone", tritone)
	if e.hooks.OnSubstitution == nil {
		return
	}
	e.hooks.OnSubstitution(ctx, &domain.SubstitutionEvent{
		EventBase: eventBase(domain.EventSubstitution),
		Vertex:    vertex,
		From:      from,
		To:        to,
		Tritone:   tritone,
	})
}

func (e *Engine) emitChordRendered(ctx context.Context, position int, chord domain.Chord) {
	if e.hooks.OnChordRendered == nil {
		return
	}
	e.hooks.OnChordRendered(ctx, &domain.ChordEvent{
		EventBase: eventBase(domain.EventChordRendered),
		Position:  position,
		Chord:     chord,
	})
}

func eventBase(t domain.EventType) domain.EventBase {
	return domain.EventBase{Timestamp: time.Now(), Type: t}
}
