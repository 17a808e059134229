// Package symmetry computes the finite symmetry group generated by a seed set
// of transformations.
//
// Group elements are compared operationally: two transformations are the same
// element when they induce the same key mapping over a witness set of
// diagrams. The Arena interns each element by that induced mapping, so
// structurally different composites that act identically are stored once, in
// discovery order.
//
// Errors:
//
//	ErrEmptyGenerators  - Close called without generators.
//	ErrClosureUnstable  - no fixed point within the bound (see ClosureError).
package symmetry
