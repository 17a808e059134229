package ports

import (
	"testing"

	"github.com/aretw0/orbitsieve/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunUniverseContract runs a suite of tests to verify that a Universe
// implementation adheres to the enumeration contract.
func RunUniverseContract(t *testing.T, u Universe) {
	first, err := u.Enumerate()
	require.NoError(t, err, "Enumerate should not return error")
	require.NotEmpty(t, first, "universe must not be empty")

	t.Run("Restartable and deterministic", func(t *testing.T) {
		second, err := u.Enumerate()
		require.NoError(t, err)
		require.Len(t, second, len(first))
		for i := range first {
			assert.Equal(t, first[i].Key(), second[i].Key(), "position %d", i)
		}
	})

	t.Run("Unique keys", func(t *testing.T) {
		seen := make(map[domain.Key]bool, len(first))
		for _, d := range first {
			assert.False(t, seen[d.Key()], "duplicate key %s", d.Key())
			seen[d.Key()] = true
		}
	})

	t.Run("Pure primitive actions", func(t *testing.T) {
		for _, d := range first {
			for k := domain.Identity; k < domain.Composite; k++ {
				a := d.Transform(k)
				require.NotNil(t, a, "%s: %s returned nil", d.Key(), k)
				assert.Equal(t, a.Key(), d.Transform(k).Key(), "%s: %s is not pure", d.Key(), k)
			}
			assert.Equal(t, d.Key(), d.Transform(domain.Identity).Key(), "identity must fix %s", d.Key())
		}
	})

	t.Run("Parity group is parity", func(t *testing.T) {
		for _, d := range first {
			for _, p := range d.ParityGroup() {
				assert.True(t, p.IsParity(), "%s: %s is not a parity transformation", d.Key(), p)
			}
		}
	})
}
