package rtreedb

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCombine(t *testing.T) {
	a := Box{0, 0, 2, 2}
	b := Box{1, 1, 3, 3}
	require.Equal(t, Box{0, 0, 3, 3}, combine(a, b))
}

func TestAreaAndPerimeter(t *testing.T) {
	b := Box{0, 0, 3, 4}
	assert.Equal(t, 12.0, area(b))
	assert.Equal(t, 14.0, perimeter(b))
}

func TestIntersectsTouchingIsTrue(t *testing.T) {
	a := Box{0, 0, 1, 1}
	b := Box{1, 0, 2, 1}
	assert.True(t, intersects(a, b))
}

func TestIntersectsDisjoint(t *testing.T) {
	a := Box{0, 0, 1, 1}
	b := Box{2, 2, 3, 3}
	assert.False(t, intersects(a, b))
}

func TestOverlapArea(t *testing.T) {
	a := Box{0, 0, 2, 2}
	b := Box{1, 1, 3, 3}
	assert.Equal(t, 1.0, overlapArea(a, b))

	disjoint := Box{5, 5, 6, 6}
	assert.Equal(t, 0.0, overlapArea(a, disjoint))
}

func TestContainsPoint(t *testing.T) {
	b := Box{0, 0, 2, 2}
	assert.True(t, containsPoint(b, 1, 1))
	assert.True(t, containsPoint(b, 0, 0))
	assert.True(t, containsPoint(b, 2, 2))
	assert.False(t, containsPoint(b, 2.1, 1))
}

func TestMBRDistanceInsideIsZero(t *testing.T) {
	b := Box{0, 0, 2, 2}
	assert.Equal(t, 0.0, mbrDistance(b, 1, 1))
	assert.Equal(t, 0.0, mbrDistance(b, 0, 0))
}

func TestMBRDistanceOutside(t *testing.T) {
	b := Box{0, 0, 2, 2}
	got := mbrDistance(b, 5, 0)
	assert.Equal(t, 3.0, got)

	got = mbrDistance(b, 5, 6)
	assert.InDelta(t, math.Hypot(3, 4), got, 1e-9)
}
