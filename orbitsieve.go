package orbitsieve

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/orbitsieve/pkg/domain"
	"github.com/aretw0/orbitsieve/pkg/observability"
	"github.com/aretw0/orbitsieve/pkg/ports"
	"github.com/aretw0/orbitsieve/pkg/sieve"
	"github.com/aretw0/orbitsieve/pkg/spin"
	"github.com/aretw0/orbitsieve/pkg/symmetry"
)

// Version is the library and CLI version.
const Version = "0.1.0"

// Engine is the high-level entry point: it closes the symmetry group over a
// universe and runs the orbit sieve.
type Engine struct {
	universe     ports.Universe
	oracle       ports.CausalityOracle
	mode         symmetry.Mode
	generators   []domain.Transformation
	admissible   []domain.SpinIndices
	bound        int
	witnessLimit int
	hooks        domain.SieveHooks
	metrics      *observability.Metrics
	logger       *slog.Logger
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithOracle sets the causality oracle (default: never zero).
func WithOracle(o ports.CausalityOracle) Option {
	return func(e *Engine) {
		e.oracle = o
	}
}

// WithMode selects a predefined generator list.
func WithMode(m symmetry.Mode) Option {
	return func(e *Engine) {
		e.mode = m
	}
}

// WithGenerators sets an explicit generator list, overriding the mode.
func WithGenerators(gens ...domain.Transformation) Option {
	return func(e *Engine) {
		e.generators = gens
	}
}

// WithAdmissibleSpins restricts the spin sectors the table may contain.
func WithAdmissibleSpins(spins ...domain.SpinIndices) Option {
	return func(e *Engine) {
		e.admissible = spins
	}
}

// WithBound caps the group order.
func WithBound(n int) Option {
	return func(e *Engine) {
		e.bound = n
	}
}

// WithWitnessLimit restricts operational equality to the first n diagrams.
func WithWitnessLimit(n int) Option {
	return func(e *Engine) {
		e.witnessLimit = n
	}
}

// WithHooks registers observability hooks.
func WithHooks(h domain.SieveHooks) Option {
	return func(e *Engine) {
		e.hooks = h
	}
}

// WithMetrics records sieve activity into m.
func WithMetrics(m *observability.Metrics) Option {
	return func(e *Engine) {
		e.metrics = m
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// New creates an engine over u.
func New(u ports.Universe, opts ...Option) (*Engine, error) {
	if u == nil {
		return nil, fmt.Errorf("universe is required")
	}
	eng := &Engine{universe: u, mode: symmetry.ModeDefault, bound: symmetry.DefaultBound}
	for _, opt := range opts {
		opt(eng)
	}
	if eng.logger == nil {
		eng.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if eng.generators == nil {
		gens, err := symmetry.Generators(eng.mode)
		if err != nil {
			return nil, err
		}
		eng.generators = gens
	}
	return eng, nil
}

// Result is the outcome of Classify.
type Result struct {
	*sieve.Result
	Group *symmetry.Group
}

// Group enumerates the universe and closes the generators over it.
func (e *Engine) Group(ctx context.Context) (*symmetry.Group, []domain.Diagram, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	ds, err := e.universe.Enumerate()
	if err != nil {
		return nil, nil, fmt.Errorf("enumerate universe: %w", err)
	}

	witnesses := ds
	if e.witnessLimit > 0 && e.witnessLimit < len(ds) {
		witnesses = ds[:e.witnessLimit]
	}
	g, err := symmetry.Close(e.generators, witnesses,
		symmetry.WithBound(e.bound),
		symmetry.WithLogger(e.logger),
	)
	if err != nil {
		e.logger.Error("symmetry closure failed", "error", err)
		return nil, nil, err
	}
	if e.metrics != nil {
		e.metrics.GroupOrder.Set(float64(g.Len()))
	}
	return g, ds, nil
}

// Classify runs the full pipeline and returns the frozen table.
func (e *Engine) Classify(ctx context.Context) (*Result, error) {
	g, ds, err := e.Group(ctx)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	hooks := e.hooks
	if e.metrics != nil {
		hooks = e.metrics.Hooks(hooks)
	}
	s := sieve.New(g, spin.NewGuard(e.admissible...), e.oracle,
		sieve.WithHooks(hooks),
		sieve.WithLogger(e.logger),
	)
	res, err := s.Run(ds)
	if err != nil {
		e.logger.Error("sieve failed", "error", err)
		return nil, err
	}
	return &Result{Result: res, Group: g}, nil
}
