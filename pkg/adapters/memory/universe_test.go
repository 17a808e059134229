package memory_test

import (
	"testing"

	"github.com/aretw0/orbitsieve/pkg/adapters/memory"
	"github.com/aretw0/orbitsieve/pkg/domain"
	"github.com/aretw0/orbitsieve/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUniverse_Contract(t *testing.T) {
	b := memory.NewBuilder()
	b.Add("A").Swap(domain.SwapIncoming, "B").Parity(domain.ParticleHole)
	b.Add("C").On(domain.SpinFlip, "C'")
	b.Add("C'").Spin("du").Hidden()

	u, err := b.Build()
	require.NoError(t, err)

	ports.RunUniverseContract(t, u)
}

func TestBuilder_DeclarationOrder(t *testing.T) {
	b := memory.NewBuilder()
	b.Add("A").Swap(domain.SwapIncoming, "B")
	b.Add("C")
	b.Add("hidden").Hidden()

	u, err := b.Build()
	require.NoError(t, err)

	ds, err := u.Enumerate()
	require.NoError(t, err)
	keys := make([]domain.Key, len(ds))
	for i, d := range ds {
		keys[i] = d.Key()
	}
	assert.Equal(t, []domain.Key{"A", "B", "C"}, keys)

	h, err := u.Get("hidden")
	require.NoError(t, err)
	assert.Equal(t, domain.Key("hidden"), h.Key())
}

func TestUniverse_Actions(t *testing.T) {
	b := memory.NewBuilder()
	b.Add("A").Swap(domain.SwapIncoming, "B").Parity(domain.ParticleHole)

	u, err := b.Build()
	require.NoError(t, err)
	a, err := u.Get("A")
	require.NoError(t, err)

	assert.Equal(t, domain.Key("B"), a.Transform(domain.SwapIncoming).Key())
	assert.Equal(t, domain.Key("A"), a.Transform(domain.Conjugate).Key())
	assert.Equal(t, domain.Key("A"), domain.Compose(domain.SwapIncomingT, domain.SwapIncomingT).Apply(a).Key())

	pg := a.ParityGroup()
	require.Len(t, pg, 1)
	assert.Equal(t, "P(TP)", pg[0].String())
}

func TestNewUniverse_Validation(t *testing.T) {
	tests := []struct {
		name  string
		nodes []memory.Node
	}{
		{"Missing key", []memory.Node{{}}},
		{"Duplicate key", []memory.Node{{Key: "A"}, {Key: "A"}}},
		{"Unknown target", []memory.Node{{Key: "A", Actions: map[domain.Kind]domain.Key{domain.SwapBoth: "Z"}}}},
		{"Structural action", []memory.Node{{Key: "A", Actions: map[domain.Kind]domain.Key{domain.Composite: "A"}}}},
		{"Structural parity", []memory.Node{{Key: "A", Parity: []domain.Kind{domain.Parity}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := memory.NewUniverse(tt.nodes...)
			assert.Error(t, err)
		})
	}

	_, err := memory.NewBuilder().Build()
	assert.NoError(t, err)
}
