package keldysh_test

import (
	"strings"
	"testing"

	"github.com/aretw0/orbitsieve/pkg/adapters/keldysh"
	"github.com/aretw0/orbitsieve/pkg/domain"
	"github.com/aretw0/orbitsieve/pkg/ports"
	"github.com/aretw0/orbitsieve/pkg/sieve"
	"github.com/aretw0/orbitsieve/pkg/spin"
	"github.com/aretw0/orbitsieve/pkg/symmetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUniverse_Contract(t *testing.T) {
	ports.RunUniverseContract(t, keldysh.NewUniverse(keldysh.Options{ParticleHole: true}))
}

func TestUniverse_Size(t *testing.T) {
	ds, err := keldysh.NewUniverse(keldysh.Options{}).Enumerate()
	require.NoError(t, err)
	assert.Len(t, ds, 4*3*16*2)
	assert.Equal(t, domain.Key("K1a:ud:1111:+"), ds[0].Key())
	assert.Equal(t, domain.Key("K1a:ud:1111:-"), ds[1].Key())

	ds, err = keldysh.NewUniverse(keldysh.Options{
		Classes:  []keldysh.Class{keldysh.K3},
		Channels: []keldysh.Channel{'p'},
	}).Enumerate()
	require.NoError(t, err)
	assert.Len(t, ds, 32)
}

func TestDiagram_Index(t *testing.T) {
	for iK := 0; iK < 16; iK++ {
		d := keldysh.FromIndex(keldysh.K2, 't', iK, 1)
		assert.Equal(t, iK, d.Index())
	}
	assert.True(t, keldysh.FromIndex(keldysh.K1, 'a', 0, 1).Uniform(keldysh.One))
	assert.True(t, keldysh.FromIndex(keldysh.K1, 'a', 15, 1).Uniform(keldysh.Two))
}

func TestDiagram_Transform(t *testing.T) {
	d := keldysh.FromIndex(keldysh.K2, 'a', 0b0101, 1)
	require.Equal(t, domain.Key("K2a:ud:1212:+"), d.Key())

	tests := []struct {
		kind domain.Kind
		want domain.Key
	}{
		{domain.SwapOutgoing, "K2t:du:2112:+"},
		{domain.SwapIncoming, "K2t:du:1221:+"},
		{domain.SwapBoth, "K2a:ud:2121:+"},
		{domain.Conjugate, "K2ba:ud:1212:+"},
		{domain.SpinFlip, "K2a:du:1212:+"},
		{domain.ParticleHole, "K2a:ud:1212:-"},
		{domain.RealityConstraint, "K2ba:ud:1212:-"},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, d.Transform(tt.kind).Key())
		})
	}
}

func TestCausality(t *testing.T) {
	var c keldysh.Causality
	assert.True(t, c.ForcesZero([]domain.Diagram{keldysh.FromIndex(keldysh.K3, 'p', 15, 1)}))
	assert.True(t, c.ForcesZero([]domain.Diagram{keldysh.FromIndex(keldysh.K1, 't', 0, -1)}))
	assert.False(t, c.ForcesZero([]domain.Diagram{keldysh.FromIndex(keldysh.K3, 'p', 0, 1)}))
	assert.False(t, c.ForcesZero([]domain.Diagram{keldysh.FromIndex(keldysh.K2, 'a', 5, 1)}))
}

func TestPipeline(t *testing.T) {
	for _, mode := range []symmetry.Mode{symmetry.ModeDefault, symmetry.ModeExtended} {
		t.Run(string(mode), func(t *testing.T) {
			ds, err := keldysh.NewUniverse(keldysh.Options{ParticleHole: true}).Enumerate()
			require.NoError(t, err)

			gens, err := symmetry.Generators(mode)
			require.NoError(t, err)
			g, err := symmetry.Close(gens, ds)
			require.NoError(t, err)
			require.True(t, g.IsClosed())

			res, err := sieve.New(g, spin.NewGuard(keldysh.AdmissibleSpins()...), keldysh.Causality{}).Run(ds)
			require.NoError(t, err)
			require.NoError(t, res.Table.Verify(ds))

			tb := res.Table
			assert.Equal(t, 0, tb.Count(domain.ClassUnresolved))
			assert.Equal(t, res.Total, tb.Count(domain.ClassZero)+tb.Count(domain.ClassIndependent)+tb.Count(domain.ClassRelated))
			assert.Len(t, tb.Independent(), res.Orbits)

			for _, k := range []domain.Key{"K1a:ud:1111:+", "K1a:ud:2222:-", "K3p:ud:2222:-"} {
				e, err := tb.Lookup(k)
				require.NoError(t, err)
				assert.Equal(t, domain.ClassZero, e.Classification(), k)
			}
			// negative frequencies are always reached through the parity link
			for _, k := range tb.Independent() {
				assert.True(t, strings.HasSuffix(string(k), ":+"), k)
			}
		})
	}
}

func TestOptions_Validate(t *testing.T) {
	tests := []struct {
		name    string
		opts    keldysh.Options
		wantErr error
	}{
		{"everything", keldysh.Options{}, nil},
		{"closed subset", keldysh.Options{Classes: []keldysh.Class{keldysh.K2, keldysh.K2b}, Channels: []keldysh.Channel{'a', 't'}}, nil},
		{"p alone", keldysh.Options{Classes: []keldysh.Class{keldysh.K1}, Channels: []keldysh.Channel{'p'}}, nil},
		{"K2 without K2b", keldysh.Options{Classes: []keldysh.Class{keldysh.K2}}, keldysh.ErrOpenSelection},
		{"a without t", keldysh.Options{Channels: []keldysh.Channel{'a'}}, keldysh.ErrOpenSelection},
		{"unknown channel", keldysh.Options{Channels: []keldysh.Channel{'x'}}, keldysh.ErrUnknownChannel},
		{"unknown class", keldysh.Options{Classes: []keldysh.Class{keldysh.Class(9)}}, keldysh.ErrUnknownClass},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestParse(t *testing.T) {
	c, err := keldysh.ParseClass("K2b")
	require.NoError(t, err)
	assert.Equal(t, keldysh.K2b, c)
	_, err = keldysh.ParseClass("K4")
	assert.ErrorIs(t, err, keldysh.ErrUnknownClass)

	ch, err := keldysh.ParseChannel("t")
	require.NoError(t, err)
	assert.Equal(t, keldysh.Channel('t'), ch)
	_, err = keldysh.ParseChannel("ap")
	assert.ErrorIs(t, err, keldysh.ErrUnknownChannel)
}

// A validated closed selection classifies without leaving the universe.
func TestPipeline_ClosedSelection(t *testing.T) {
	opts := keldysh.Options{
		Classes:  []keldysh.Class{keldysh.K2, keldysh.K2b},
		Channels: []keldysh.Channel{'a', 't'},
	}
	require.NoError(t, opts.Validate())
	ds, err := keldysh.NewUniverse(opts).Enumerate()
	require.NoError(t, err)

	gens, err := symmetry.Generators(symmetry.ModeDefault)
	require.NoError(t, err)
	g, err := symmetry.Close(gens, ds)
	require.NoError(t, err)
	res, err := sieve.New(g, spin.NewGuard(keldysh.AdmissibleSpins()...), keldysh.Causality{}).Run(ds)
	require.NoError(t, err)
	require.NoError(t, res.Table.Verify(ds))
}
