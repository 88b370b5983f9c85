package mst

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisjointSet_SingletonsAreDistinct(t *testing.T) {
	ds := newDisjointSet(4)
	for i := 0; i < 4; i++ {
		assert.Equal(t, i, ds.find(i))
	}
}

func TestDisjointSet_UnionMerges(t *testing.T) {
	ds := newDisjointSet(4)

	assert.True(t, ds.union(0, 1))
	assert.Equal(t, ds.find(0), ds.find(1))

	// A repeated union of the same pair is a no-op.
	assert.False(t, ds.union(0, 1))
	assert.False(t, ds.union(1, 0))
}

func TestDisjointSet_UnionIsTransitive(t *testing.T) {
	ds := newDisjointSet(5)

	assert.True(t, ds.union(0, 1))
	assert.True(t, ds.union(1, 2))
	assert.True(t, ds.union(3, 4))

	assert.Equal(t, ds.find(0), ds.find(2))
	assert.NotEqual(t, ds.find(0), ds.find(3))

	// Bridging the two components collapses everything into one set.
	assert.True(t, ds.union(2, 3))
	assert.Equal(t, ds.find(0), ds.find(4))
	assert.False(t, ds.union(0, 4))
}

func TestDisjointSet_LongChainCompresses(t *testing.T) {
	const n = 1000
	ds := newDisjointSet(n)
	for i := 1; i < n; i++ {
		assert.True(t, ds.union(i-1, i))
	}

	root := ds.find(0)
	for i := 0; i < n; i++ {
		assert.Equal(t, root, ds.find(i))
	}
}
