/*
Package domain contains the core models of the orbit sieve.

It defines the closed Transformation variant and its algebra, the Diagram
contract supplied by external representations, and the entries of the
dependency table. The package is free of I/O.

# Key Entities

  - Transformation: a primitive symmetry operation, a Composite(inner, outer)
    or a Parity wrapper. Compose(t1, t2) applies t2 first.
  - Diagram: opaque object exposing a Key, SpinIndices, ParityGroup and the
    action of each primitive Kind.
  - Entry: Zero, Related(t, representative) or Unresolved. Related(Identity,
    self) is read as Independent.
*/
package domain
