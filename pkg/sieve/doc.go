/*
Package sieve runs the orbit classification pass.

Diagrams are visited in universe order. Every diagram still unresolved when
it is reached seeds a new orbit: its parity-linked diagrams are collected, the
causality oracle decides whether the class vanishes, and every element of the
symmetry group is applied to every linked diagram. Images are written to the
dependency table as Zero or as Related to the seed, with the table's quality
rule deciding between competing derivations.

Every enumerated diagram must lie in the admissible spin sector. Run checks
this before classifying anything and fails with domain.ErrInadmissibleSeed
otherwise.

The pass is single-threaded and bounded by universe × group × linked set.
*/
package sieve
