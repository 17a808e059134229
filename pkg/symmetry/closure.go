package symmetry

import (
	"io"
	"log/slog"

	"github.com/aretw0/orbitsieve/pkg/domain"
)

// DefaultBound caps the number of group elements Close will discover.
const DefaultBound = 4096

// Options configures Close.
type Options struct {
	Bound  int
	Logger *slog.Logger
}

// Option mutates Options.
type Option func(*Options)

// WithBound sets the maximum group order before Close gives up.
func WithBound(n int) Option {
	return func(o *Options) { o.Bound = n }
}

// WithLogger sets the logger used for closure diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// Group is a finite set of operationally distinct transformations, closed
// under composition. Identity is always the first element; the remaining
// elements follow discovery order.
type Group struct {
	generators []domain.Transformation
	arena      *Arena
}

// Close computes the group generated by generators, comparing elements over
// witnesses. It fails with a *ClosureError when more than the configured
// bound of elements is discovered.
func Close(generators []domain.Transformation, witnesses []domain.Diagram, opts ...Option) (*Group, error) {
	if len(generators) == 0 {
		return nil, domain.ErrEmptyGenerators
	}
	o := Options{Bound: DefaultBound}
	for _, opt := range opts {
		opt(&o)
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	arena := NewArena(witnesses)
	var queue []domain.Transformation

	add := func(t domain.Transformation) error {
		if _, isNew := arena.Intern(t); !isNew {
			return nil
		}
		if arena.Len() > o.Bound {
			return &ClosureError{Generators: generators, Bound: o.Bound}
		}
		queue = append(queue, t)
		return nil
	}

	// Identity is implied by any finite generator set; seed it first so the
	// sieve always meets it before any other element.
	if err := add(domain.IdentityT); err != nil {
		return nil, err
	}
	for _, g := range generators {
		if prev, ok := arena.Lookup(g); ok && !prev.Equal(g) {
			o.Logger.Debug("generator acts as an existing element",
				"generator", g.String(),
				"element", prev.String(),
			)
		}
		if err := add(g); err != nil {
			return nil, err
		}
	}

	for len(queue) > 0 {
		x := queue[0]
		queue = queue[1:]

		// arena.elements grows while we iterate; new elements are also
		// composed with x when they are dequeued themselves.
		for i := 0; i < arena.Len(); i++ {
			e := arena.elements[i]
			if err := add(domain.Compose(x, e)); err != nil {
				return nil, err
			}
			if err := add(domain.Compose(e, x)); err != nil {
				return nil, err
			}
		}
	}

	o.Logger.Debug("symmetry group closed",
		"generators", len(generators),
		"order", arena.Len(),
		"witnesses", len(witnesses),
	)

	return &Group{generators: generators, arena: arena}, nil
}

// Elements returns the group elements in enumeration order.
func (g *Group) Elements() []domain.Transformation {
	out := make([]domain.Transformation, len(g.arena.elements))
	copy(out, g.arena.elements)
	return out
}

// Generators returns the seed set the group was closed from.
func (g *Group) Generators() []domain.Transformation {
	out := make([]domain.Transformation, len(g.generators))
	copy(out, g.generators)
	return out
}

// Len returns the group order.
func (g *Group) Len() int { return g.arena.Len() }

// Contains reports whether an element operationally equal to t is present.
func (g *Group) Contains(t domain.Transformation) bool {
	_, ok := g.arena.Lookup(t)
	return ok
}

// Canonical returns the stored representative of t.
func (g *Group) Canonical(t domain.Transformation) (domain.Transformation, bool) {
	return g.arena.Lookup(t)
}

// Order returns the smallest n > 0 with t^n = Identity, or 0 when t is not
// an element of the group.
func (g *Group) Order(t domain.Transformation) int {
	if !g.Contains(t) {
		return 0
	}
	id := g.arena.Signature(domain.IdentityT)
	p := t
	for n := 1; n <= g.Len(); n++ {
		if g.arena.Signature(p) == id {
			return n
		}
		p = domain.Compose(t, p)
	}
	return 0
}

// IsClosed verifies that every product of two elements is an element.
func (g *Group) IsClosed() bool {
	for _, a := range g.arena.elements {
		for _, b := range g.arena.elements {
			if !g.Contains(domain.Compose(a, b)) {
				return false
			}
		}
	}
	return true
}
