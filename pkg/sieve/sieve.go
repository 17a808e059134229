package sieve

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/orbitsieve/pkg/domain"
	"github.com/aretw0/orbitsieve/pkg/ports"
	"github.com/aretw0/orbitsieve/pkg/spin"
	"github.com/aretw0/orbitsieve/pkg/symmetry"
	"github.com/aretw0/orbitsieve/pkg/table"
)

// Sieve classifies a universe against a closed symmetry group.
type Sieve struct {
	group  *symmetry.Group
	guard  *spin.Guard
	oracle ports.CausalityOracle
	hooks  domain.SieveHooks
	logger *slog.Logger
}

// Option configures a Sieve.
type Option func(*Sieve)

// WithHooks registers observability hooks.
func WithHooks(h domain.SieveHooks) Option {
	return func(s *Sieve) { s.hooks = h }
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Sieve) { s.logger = l }
}

// New creates a sieve. A nil guard admits every spin sector and a nil oracle
// never forces zero.
func New(group *symmetry.Group, guard *spin.Guard, oracle ports.CausalityOracle, opts ...Option) *Sieve {
	s := &Sieve{group: group, guard: guard, oracle: oracle}
	for _, opt := range opts {
		opt(s)
	}
	if s.guard == nil {
		s.guard = spin.NewGuard()
	}
	if s.oracle == nil {
		s.oracle = ports.NeverZero
	}
	if s.logger == nil {
		s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return s
}

// Result is the outcome of a sieve run.
type Result struct {
	Table *table.Table

	// Orbits counts orbits that survived the causality test; each has one
	// independent representative.
	Orbits int

	// ZeroOrbits counts orbits forced to vanish.
	ZeroOrbits int

	// Total is the number of diagrams classified.
	Total int
}

// link is a parity-linked diagram and the parity transformation reaching it
// from the seed (Identity for the seed itself).
type link struct {
	diagram domain.Diagram
	parity  domain.Transformation
}

// Run classifies ds and returns the frozen table.
func (s *Sieve) Run(ds []domain.Diagram) (*Result, error) {
	for _, d := range ds {
		if !s.guard.Admissible(d) {
			return nil, fmt.Errorf("%w: %s has spin %q", domain.ErrInadmissibleSeed, d.Key(), d.SpinIndices())
		}
	}

	res := &Result{Table: table.FromDiagrams(ds), Total: len(ds)}
	elements := s.group.Elements()

	for _, d := range ds {
		open, err := res.Table.Unresolved(d.Key())
		if err != nil {
			return nil, err
		}
		if !open {
			continue
		}

		links := s.link(d)
		linked := make([]domain.Diagram, len(links))
		keys := make([]domain.Key, len(links))
		for i, l := range links {
			linked[i] = l.diagram
			keys[i] = l.diagram.Key()
		}

		zero := s.oracle.ForcesZero(linked)
		if zero {
			res.ZeroOrbits++
		} else {
			res.Orbits++
		}
		s.logger.Debug("orbit opened", "seed", d.Key(), "linked", len(links), "zero", zero)
		if s.hooks.OnOrbitStart != nil {
			s.hooks.OnOrbitStart(&domain.OrbitEvent{
				Seed:   d.Key(),
				Index:  res.Orbits + res.ZeroOrbits,
				Linked: keys,
				Zero:   zero,
			})
		}

		// Exact parity identities are recorded before the group sweep.
		if !zero {
			for _, l := range links[1:] {
				if err := s.offer(res.Table, domain.Related(l.diagram.Key(), l.parity, d.Key())); err != nil {
					return nil, err
				}
			}
		}

		for _, l := range links {
			for _, g := range elements {
				applied, img, err := s.guard.Resolve(g, l.diagram)
				if err != nil {
					return nil, fmt.Errorf("orbit of %s: %w", d.Key(), err)
				}

				var cand domain.Entry
				if zero {
					cand = domain.Zero(img.Key())
				} else {
					cand = domain.Related(img.Key(), derive(applied, l.parity), d.Key())
				}
				if err := s.offer(res.Table, cand); err != nil {
					return nil, fmt.Errorf("orbit of %s under %s: %w", d.Key(), applied, err)
				}
			}
		}
	}

	res.Table.Freeze()
	s.logger.Info("sieve complete",
		"diagrams", res.Total,
		"independent", res.Orbits,
		"zero_orbits", res.ZeroOrbits,
		"group_order", len(elements),
	)
	return res, nil
}

// link returns the seed followed by its distinct parity images.
func (s *Sieve) link(d domain.Diagram) []link {
	links := []link{{diagram: d, parity: domain.IdentityT}}
	seen := map[domain.Key]bool{d.Key(): true}
	for _, p := range d.ParityGroup() {
		img := p.Apply(d)
		if seen[img.Key()] {
			continue
		}
		seen[img.Key()] = true
		links = append(links, link{diagram: img, parity: p})
	}
	return links
}

// derive returns the transformation taking the seed to g applied to the
// linked diagram reached through parity p.
func derive(g, p domain.Transformation) domain.Transformation {
	switch {
	case p.IsIdentity():
		return g
	case g.IsIdentity():
		return p
	default:
		return domain.Compose(g, p)
	}
}

func (s *Sieve) offer(tb *table.Table, cand domain.Entry) error {
	written, prev, err := tb.Offer(cand)
	if err != nil {
		return err
	}
	if written && s.hooks.OnClassify != nil {
		s.hooks.OnClassify(&domain.ClassifyEvent{
			Entry:     cand,
			Previous:  prev,
			Overwrite: prev.Status != domain.StatusUnresolved,
		})
	}
	return nil
}
