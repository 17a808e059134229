/*
Package ports defines the driven ports (interfaces) of the orbit sieve.

These interfaces decouple the classifier from diagram representations and
physical derivations, so the same sieve runs over an in-memory test universe
or a Keldysh-index universe.

# Key Interfaces

  - Universe: deterministic, restartable enumeration of the diagrams.
  - CausalityOracle: decides whether a parity-linked set must vanish.
*/
package ports
