package ports

import "github.com/aretw0/orbitsieve/pkg/domain"

// Universe supplies the finite set of diagrams to classify.
// Enumerate must be deterministic and restartable: every call yields the
// same diagrams in the same order.
type Universe interface {
	Enumerate() ([]domain.Diagram, error)
}

// UniverseFunc adapts a function to the Universe interface.
type UniverseFunc func() ([]domain.Diagram, error)

// Enumerate calls f.
func (f UniverseFunc) Enumerate() ([]domain.Diagram, error) { return f() }
