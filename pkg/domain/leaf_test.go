package domain_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/stratify/pkg/domain"
)

func TestNewLeaf_Range(t *testing.T) {
	t.Run("Boundaries Accepted", func(t *testing.T) {
		for _, value := range []float64{0.0, 1.0, 0.5, 0.1} {
			leaf, err := domain.NewLeaf(value)
			require.NoError(t, err)
			assert.Equal(t, value, leaf.Value)
		}
	})

	t.Run("Out Of Range Rejected", func(t *testing.T) {
		epsilon := math.Nextafter(0, 1)
		for _, value := range []float64{-epsilon, 1 + 1e-9, -1, 2, math.NaN()} {
			_, err := domain.NewLeaf(value)
			assert.ErrorIs(t, err, domain.ErrInvalidLeafValue, "value %v", value)
		}
	})
}

func TestLeaf_String(t *testing.T) {
	cases := map[float64]string{
		0.1:  "0.1",
		0.25: "0.25",
		0.0:  "0.0",
		1.0:  "1.0",
	}
	for value, expected := range cases {
		leaf, err := domain.NewLeaf(value)
		require.NoError(t, err)
		assert.Equal(t, expected, leaf.String())
	}
}
