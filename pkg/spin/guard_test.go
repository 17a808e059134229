package spin_test

import (
	"testing"

	"github.com/aretw0/orbitsieve/pkg/domain"
	"github.com/aretw0/orbitsieve/pkg/spin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// leg is a two-state spin diagram: SwapIncoming and SpinFlip toggle the
// spin label, Conjugate moves to a sector nothing can repair.
type leg struct {
	spin domain.SpinIndices
}

func (l leg) Key() domain.Key                       { return domain.Key("leg/" + string(l.spin)) }
func (l leg) SpinIndices() domain.SpinIndices       { return l.spin }
func (l leg) ParityGroup() []domain.Transformation { return nil }

func (l leg) Transform(k domain.Kind) domain.Diagram {
	switch k {
	case domain.SwapIncoming, domain.SpinFlip:
		switch l.spin {
		case "ud":
			return leg{spin: "du"}
		case "du":
			return leg{spin: "ud"}
		}
		return l
	case domain.Conjugate:
		return leg{spin: "uu"}
	default:
		return l
	}
}

func TestGuard_Admissible(t *testing.T) {
	g := spin.NewGuard("ud")
	assert.True(t, g.Admissible(leg{spin: "ud"}))
	assert.False(t, g.Admissible(leg{spin: "du"}))

	open := spin.NewGuard()
	assert.True(t, open.Admissible(leg{spin: "anything"}))
}

func TestGuard_Resolve(t *testing.T) {
	g := spin.NewGuard("ud")
	d := leg{spin: "ud"}

	t.Run("Admissible image keeps transformation", func(t *testing.T) {
		tr, img, err := g.Resolve(domain.SwapBothT, d)
		require.NoError(t, err)
		assert.True(t, tr.Equal(domain.SwapBothT))
		assert.Equal(t, domain.Key("leg/ud"), img.Key())
	})

	t.Run("Inadmissible image gets one SpinFlip", func(t *testing.T) {
		tr, img, err := g.Resolve(domain.SwapIncomingT, d)
		require.NoError(t, err)
		assert.True(t, tr.IsComposite())
		assert.Equal(t, "TS∘T2", tr.String())
		assert.Equal(t, domain.Key("leg/ud"), img.Key())
		assert.Equal(t, img.Key(), tr.Apply(d).Key())
	})

	t.Run("Identity repaired to bare SpinFlip", func(t *testing.T) {
		tr, img, err := g.Resolve(domain.IdentityT, leg{spin: "du"})
		require.NoError(t, err)
		assert.True(t, tr.Equal(domain.SpinFlipT))
		assert.Equal(t, domain.Key("leg/ud"), img.Key())
	})

	t.Run("Unrepairable sector is fatal", func(t *testing.T) {
		_, _, err := g.Resolve(domain.ConjugateT, d)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrSpinSector)

		var serr *spin.SectorError
		require.ErrorAs(t, err, &serr)
		assert.Equal(t, domain.SpinIndices("uu"), serr.Spin)
		assert.Equal(t, domain.Key("leg/ud"), serr.Diagram)
	})
}
