package observability_test

import (
	"bytes"
	"testing"

	"github.com/aretw0/orbitsieve/pkg/adapters/memory"
	"github.com/aretw0/orbitsieve/pkg/domain"
	"github.com/aretw0/orbitsieve/pkg/observability"
	"github.com/aretw0/orbitsieve/pkg/ports"
	"github.com/aretw0/orbitsieve/pkg/sieve"
	"github.com/aretw0/orbitsieve/pkg/symmetry"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_RecordsSieveRun(t *testing.T) {
	b := memory.NewBuilder()
	b.Add("A").Swap(domain.SwapIncoming, "B")
	b.Add("C")
	u, err := b.Build()
	require.NoError(t, err)
	ds, err := u.Enumerate()
	require.NoError(t, err)
	g, err := symmetry.Close([]domain.Transformation{domain.SwapIncomingT}, ds)
	require.NoError(t, err)

	m, err := observability.NewMetrics(prometheus.NewRegistry())
	require.NoError(t, err)
	m.GroupOrder.Set(float64(g.Len()))

	var seen int
	hooks := m.Hooks(domain.SieveHooks{
		OnClassify: func(*domain.ClassifyEvent) { seen++ },
	})
	oracle := ports.CausalityFunc(func(linked []domain.Diagram) bool { return linked[0].Key() == "C" })
	_, err = sieve.New(g, nil, oracle, sieve.WithHooks(hooks)).Run(ds)
	require.NoError(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Orbits.WithLabelValues("independent")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Orbits.WithLabelValues("zero")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Classifications.WithLabelValues("independent")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Classifications.WithLabelValues("related")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Classifications.WithLabelValues("zero")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.Overwrites))
	assert.Equal(t, 3, seen, "wrapped hooks must still run")

	var buf bytes.Buffer
	require.NoError(t, m.Dump(&buf))
	assert.Contains(t, buf.String(), "orbitsieve_group_order 2")
	assert.Contains(t, buf.String(), `orbitsieve_orbits_total{outcome="zero"} 1`)
}

func TestNewMetrics_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := observability.NewMetrics(reg)
	require.NoError(t, err)
	_, err = observability.NewMetrics(reg)
	assert.Error(t, err)
}
