package domain

// Key canonically identifies a diagram. Equal keys denote the same diagram
// for bookkeeping; keys are totally ordered by string comparison.
type Key string

// SpinIndices is the opaque spin-index combination on a diagram's external
// legs (e.g. "ud"). Admissibility is decided against a configured set.
type SpinIndices string

// Diagram is the contract the classifier needs from a diagram representation.
type Diagram interface {
	// Key returns the canonical identifier.
	Key() Key

	// SpinIndices returns the spin sector of the external legs.
	SpinIndices() SpinIndices

	// ParityGroup returns the parity transformations under which the value
	// of this diagram is preserved exactly.
	ParityGroup() []Transformation

	// Transform applies the primitive operation k. It must be pure and must
	// return a diagram for every primitive kind.
	Transform(k Kind) Diagram
}
