package domain

import "errors"

// ErrClosureUnstable is returned when group closure does not reach a fixed
// point within the configured bound. The generator set is malformed.
var ErrClosureUnstable = errors.New("symmetry group closure did not stabilize")

// ErrSpinSector is returned when a transformed diagram stays outside the
// admissible spin sector after the single SpinFlip correction.
var ErrSpinSector = errors.New("spin sector inadmissible after correction")

// ErrUnknownKey is returned when a key is not part of the dependency table.
// The table must be pre-populated for the whole universe.
var ErrUnknownKey = errors.New("key not in dependency table")

// ErrTableFrozen is returned when a frozen table is written to.
var ErrTableFrozen = errors.New("dependency table is frozen")

// ErrInadmissibleSeed is returned when the universe yields a diagram outside
// the admissible spin sector.
var ErrInadmissibleSeed = errors.New("universe diagram outside admissible spin sector")

// ErrEmptyGenerators is returned when closure is requested without generators.
var ErrEmptyGenerators = errors.New("generator set is empty")

// ErrUnknownKind is returned when a primitive kind name cannot be parsed.
var ErrUnknownKind = errors.New("unknown transformation kind")
