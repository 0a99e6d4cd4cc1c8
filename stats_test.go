package rtreedb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsEmptyTreeHeightOne(t *testing.T) {
	tr, err := New(4, Quadratic)
	require.NoError(t, err)
	s := tr.Stats()
	assert.Equal(t, 1, s.Height)
	assert.Equal(t, 1, s.NodeCount)
	assert.Equal(t, 1, s.LeafCount)
	assert.Equal(t, 0.0, s.AverageNodeFill)
}

func TestStatsGrowsWithHeight(t *testing.T) {
	tr, err := New(2, Quadratic)
	require.NoError(t, err)
	for i := 0; i < 40; i++ {
		require.NoError(t, tr.Insert(Box{float64(i), float64(i), float64(i) + 1, float64(i) + 1}, i))
	}
	s := tr.Stats()
	assert.Greater(t, s.Height, 1)
	assert.Greater(t, s.NodeCount, 1)
	assert.Greater(t, s.AverageNodeFill, 0.0)
}
