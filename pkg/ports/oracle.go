package ports

import "github.com/aretw0/orbitsieve/pkg/domain"

// CausalityOracle decides whether an antisymmetry or causality constraint
// forces the class of the given parity-linked diagrams to vanish.
// The first element is always the orbit seed.
type CausalityOracle interface {
	ForcesZero(linked []domain.Diagram) bool
}

// CausalityFunc adapts a function to the CausalityOracle interface.
type CausalityFunc func(linked []domain.Diagram) bool

// ForcesZero calls f.
func (f CausalityFunc) ForcesZero(linked []domain.Diagram) bool { return f(linked) }

// NeverZero is an oracle that never forces a class to vanish.
var NeverZero CausalityOracle = CausalityFunc(func([]domain.Diagram) bool { return false })
