package domain_test

import (
	"fmt"
	"testing"

	"github.com/aretw0/orbitsieve/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ring is a diagram on Z_n: SwapIncoming adds one, SwapOutgoing negates,
// every other primitive is a fixed point.
type ring struct {
	v, n int
}

func (r ring) Key() domain.Key                       { return domain.Key(fmt.Sprintf("r%d", r.v)) }
func (r ring) SpinIndices() domain.SpinIndices       { return "ud" }
func (r ring) ParityGroup() []domain.Transformation { return nil }

func (r ring) Transform(k domain.Kind) domain.Diagram {
	switch k {
	case domain.SwapIncoming:
		return ring{v: (r.v + 1) % r.n, n: r.n}
	case domain.SwapOutgoing:
		return ring{v: (r.n - r.v) % r.n, n: r.n}
	default:
		return r
	}
}

func TestCompose_IdentityIsNoOp(t *testing.T) {
	g := domain.SwapIncomingT

	assert.True(t, domain.Compose(domain.IdentityT, g).Equal(g))
	assert.True(t, domain.Compose(g, domain.IdentityT).Equal(g))
	assert.True(t, domain.Compose(domain.IdentityT, domain.IdentityT).IsIdentity())
}

func TestCompose_AppliesInnerFirst(t *testing.T) {
	d := ring{v: 1, n: 5}

	// negate after increment: -(1+1) = 3 mod 5
	c := domain.Compose(domain.SwapOutgoingT, domain.SwapIncomingT)
	require.True(t, c.IsComposite())
	assert.Equal(t, domain.Key("r3"), c.Apply(d).Key())

	// increment after negate: -1+1 = 0
	c2 := domain.Compose(domain.SwapIncomingT, domain.SwapOutgoingT)
	assert.Equal(t, domain.Key("r0"), c2.Apply(d).Key())

	assert.Equal(t, "T1∘T2", c.String())
}

func TestCompose_Associative(t *testing.T) {
	a, b, c := domain.SwapIncomingT, domain.SwapOutgoingT, domain.SwapIncomingT
	left := domain.Compose(domain.Compose(a, b), c)
	right := domain.Compose(a, domain.Compose(b, c))

	for v := 0; v < 7; v++ {
		d := ring{v: v, n: 7}
		assert.Equal(t, left.Apply(d).Key(), right.Apply(d).Key(), "v=%d", v)
	}
	assert.Equal(t, 3, left.Depth())
}

func TestTransformation_Labels(t *testing.T) {
	tests := []struct {
		name string
		t    domain.Transformation
		want string
	}{
		{"identity", domain.IdentityT, "1"},
		{"swap outgoing", domain.SwapOutgoingT, "T1"},
		{"swap incoming", domain.SwapIncomingT, "T2"},
		{"conjugate", domain.ConjugateT, "TC"},
		{"composite", domain.Compose(domain.SwapBothT, domain.ConjugateT), "T3∘TC"},
		{"parity", domain.NewParity(domain.ParticleHoleT), "P(TP)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.t.String())
		})
	}
}

func TestTransformation_Predicates(t *testing.T) {
	p := domain.NewParity(domain.SwapIncomingT)

	assert.True(t, domain.SpinFlipT.IsPrimitive())
	assert.False(t, p.IsPrimitive())
	assert.True(t, p.IsParity())
	assert.False(t, domain.Compose(domain.SpinFlipT, domain.ConjugateT).IsPrimitive())

	base, ok := p.Base()
	require.True(t, ok)
	assert.Equal(t, domain.SwapIncoming, base.Kind())

	d := ring{v: 2, n: 4}
	assert.Equal(t, domain.Key("r3"), p.Apply(d).Key())
}

func TestPrimitive_PanicsOnStructuralKind(t *testing.T) {
	assert.Panics(t, func() { domain.Primitive(domain.Composite) })
	assert.Equal(t, domain.ConjugateT, domain.Primitive(domain.Conjugate))
}

func TestParseKind(t *testing.T) {
	k, err := domain.ParseKind("TC")
	require.NoError(t, err)
	assert.Equal(t, domain.Conjugate, k)

	k, err = domain.ParseKind("reality_constraint")
	require.NoError(t, err)
	assert.Equal(t, domain.RealityConstraint, k)

	_, err = domain.ParseKind("composite")
	assert.ErrorIs(t, err, domain.ErrUnknownKind)
}

func TestEntry_Classification(t *testing.T) {
	assert.Equal(t, domain.ClassIndependent, domain.Independent("A").Classification())
	assert.Equal(t, domain.ClassRelated, domain.Related("B", domain.SwapIncomingT, "A").Classification())
	assert.Equal(t, domain.ClassZero, domain.Zero("C").Classification())
	assert.Equal(t, domain.ClassUnresolved, domain.Entry{Key: "D"}.Classification())

	// identity pointing elsewhere is a plain relation
	assert.Equal(t, domain.ClassRelated, domain.Related("B", domain.IdentityT, "A").Classification())
}
