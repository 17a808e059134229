package keldysh

import (
	"github.com/aretw0/orbitsieve/pkg/domain"
)

// Options selects the slice of the component space to enumerate.
type Options struct {
	Classes      []Class
	Channels     []Channel
	ParticleHole bool
}

// Universe enumerates V-component diagrams in storage order: class,
// channel, Keldysh index, then frequency sign (+ before -).
type Universe struct {
	opts Options
}

// NewUniverse creates a universe; empty class or channel lists mean all.
// Callers taking user input should run Options.Validate first: an open
// selection maps diagrams outside the universe.
func NewUniverse(opts Options) *Universe {
	if len(opts.Classes) == 0 {
		opts.Classes = Classes
	}
	if len(opts.Channels) == 0 {
		opts.Channels = Channels
	}
	return &Universe{opts: opts}
}

// Enumerate implements ports.Universe.
func (u *Universe) Enumerate() ([]domain.Diagram, error) {
	out := make([]domain.Diagram, 0, len(u.opts.Classes)*len(u.opts.Channels)*32)
	for _, c := range u.opts.Classes {
		for _, ch := range u.opts.Channels {
			for iK := 0; iK < 16; iK++ {
				for _, sign := range []int8{1, -1} {
					d := FromIndex(c, ch, iK, sign)
					d.particleHole = u.opts.ParticleHole
					out = append(out, d)
				}
			}
		}
	}
	return out, nil
}

// AdmissibleSpins returns the spin sector the universe enumerates.
func AdmissibleSpins() []domain.SpinIndices {
	return []domain.SpinIndices{SpinV}
}

// Causality is the oracle for Keldysh components: the component with every
// index equal to 2 vanishes in every class, and K1 also vanishes at 1111.
type Causality struct{}

// ForcesZero implements ports.CausalityOracle.
func (Causality) ForcesZero(linked []domain.Diagram) bool {
	for _, l := range linked {
		d, ok := l.(Diagram)
		if !ok {
			continue
		}
		if d.Uniform(Two) || (d.Class == K1 && d.Uniform(One)) {
			return true
		}
	}
	return false
}
