package domain

import "fmt"

// Kind is the discriminator of a Transformation.
type Kind uint8

// Primitive kinds come first; Composite and Parity are structural.
const (
	Identity Kind = iota
	SwapIncoming
	SwapOutgoing
	SwapBoth
	Conjugate
	SpinFlip
	ParticleHole
	RealityConstraint
	Composite
	Parity
)

var kindLabels = [...]string{
	Identity:          "1",
	SwapOutgoing:      "T1",
	SwapIncoming:      "T2",
	SwapBoth:          "T3",
	Conjugate:         "TC",
	SpinFlip:          "TS",
	ParticleHole:      "TP",
	RealityConstraint: "TR",
	Composite:         "composite",
	Parity:            "P",
}

var kindNames = [...]string{
	Identity:          "identity",
	SwapIncoming:      "swap_incoming",
	SwapOutgoing:      "swap_outgoing",
	SwapBoth:          "swap_both",
	Conjugate:         "conjugate",
	SpinFlip:          "spin_flip",
	ParticleHole:      "particle_hole",
	RealityConstraint: "reality_constraint",
	Composite:         "composite",
	Parity:            "parity",
}

// IsPrimitive reports whether k is one of the fixed named symmetry operations.
func (k Kind) IsPrimitive() bool { return k < Composite }

// Label is the short label used in reports (e.g. "T1", "TC").
func (k Kind) Label() string {
	if int(k) < len(kindLabels) {
		return kindLabels[k]
	}
	return fmt.Sprintf("kind(%d)", k)
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", k)
}

// ParseKind resolves a primitive kind from its name or label.
func ParseKind(s string) (Kind, error) {
	for k := Identity; k < Composite; k++ {
		if s == kindNames[k] || s == kindLabels[k] {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Transformation is a closed tagged variant: a primitive operation, a
// Composite(inner, outer) or a Parity wrapper around a base transformation.
// Values are immutable; the zero value is Identity.
type Transformation struct {
	kind  Kind
	inner *Transformation
	outer *Transformation
	base  *Transformation
}

// Primitive returns the primitive transformation of kind k.
// It panics if k is structural; primitives are fixed constants.
func Primitive(k Kind) Transformation {
	if !k.IsPrimitive() {
		panic(fmt.Sprintf("domain: %s is not a primitive kind", k))
	}
	return Transformation{kind: k}
}

// Named primitive constants.
var (
	IdentityT          = Transformation{kind: Identity}
	SwapIncomingT      = Transformation{kind: SwapIncoming}
	SwapOutgoingT      = Transformation{kind: SwapOutgoing}
	SwapBothT          = Transformation{kind: SwapBoth}
	ConjugateT         = Transformation{kind: Conjugate}
	SpinFlipT          = Transformation{kind: SpinFlip}
	ParticleHoleT      = Transformation{kind: ParticleHole}
	RealityConstraintT = Transformation{kind: RealityConstraint}
)

// Compose returns the transformation "apply t2, then t1".
// Identity on either side is a no-op and the other operand is returned unchanged.
func Compose(t1, t2 Transformation) Transformation {
	if t1.kind == Identity {
		return t2
	}
	if t2.kind == Identity {
		return t1
	}
	inner, outer := t2, t1
	return Transformation{kind: Composite, inner: &inner, outer: &outer}
}

// NewParity wraps base as a parity transformation: its action is base's
// action, but the result is known to carry exactly the same value.
func NewParity(base Transformation) Transformation {
	b := base
	return Transformation{kind: Parity, base: &b}
}

// Kind returns the discriminator.
func (t Transformation) Kind() Kind { return t.kind }

// IsPrimitive reports whether t is one of the named primitive operations.
func (t Transformation) IsPrimitive() bool { return t.kind.IsPrimitive() }

// IsIdentity reports whether t is structurally the identity.
func (t Transformation) IsIdentity() bool { return t.kind == Identity }

// IsComposite reports whether t is a Composite.
func (t Transformation) IsComposite() bool { return t.kind == Composite }

// IsParity reports whether t is a parity transformation.
func (t Transformation) IsParity() bool { return t.kind == Parity }

// Base returns the wrapped transformation of a Parity.
func (t Transformation) Base() (Transformation, bool) {
	if t.kind != Parity {
		return Transformation{}, false
	}
	return *t.base, true
}

// Depth is the number of primitive operations in the derivation.
func (t Transformation) Depth() int {
	switch t.kind {
	case Composite:
		return t.inner.Depth() + t.outer.Depth()
	case Parity:
		return t.base.Depth()
	case Identity:
		return 0
	default:
		return 1
	}
}

// Apply runs t on d. Primitive actions are delegated to the diagram.
func (t Transformation) Apply(d Diagram) Diagram {
	switch t.kind {
	case Identity:
		return d
	case Composite:
		return t.outer.Apply(t.inner.Apply(d))
	case Parity:
		return t.base.Apply(d)
	default:
		return d.Transform(t.kind)
	}
}

// String renders the derivation: composites as "outer∘inner", parities as "P(base)".
func (t Transformation) String() string {
	switch t.kind {
	case Composite:
		return t.outer.String() + "∘" + t.inner.String()
	case Parity:
		return "P(" + t.base.String() + ")"
	default:
		return t.kind.Label()
	}
}

// Equal reports structural equality. Operational equality is decided by
// the symmetry package over a witness set.
func (t Transformation) Equal(o Transformation) bool {
	if t.kind != o.kind {
		return false
	}
	switch t.kind {
	case Composite:
		return t.inner.Equal(*o.inner) && t.outer.Equal(*o.outer)
	case Parity:
		return t.base.Equal(*o.base)
	default:
		return true
	}
}

// MarshalText encodes the transformation label, used by the YAML report.
func (t Transformation) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}
