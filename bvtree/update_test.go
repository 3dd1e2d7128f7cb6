package bvtree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tanglebrook/go-boundstree/bvtree"
)

func TestUpdateMovesEntry(t *testing.T) {
	tree := bvtree.New[int]()
	require.NoError(t, tree.Insert(1, unit(0)))
	require.NoError(t, tree.Insert(2, unit(5)))

	require.NoError(t, tree.Update(1, unit(100)))

	assert.Equal(t, 2, tree.Count())
	assert.Empty(t, tree.Query(unit(0), nil), "old position is vacated")
	assert.Equal(t, []int{1}, tree.Query(unit(100), nil))
	assert.NoError(t, tree.Validate())
}

func TestUpdateUnknownKey(t *testing.T) {
	tree := bvtree.New[int]()
	require.NoError(t, tree.Insert(1, unit(0)))

	err := tree.Update(2, unit(10))
	require.ErrorIs(t, err, bvtree.ErrKeyNotFound)

	// Nothing moved.
	assert.Equal(t, 1, tree.Count())
	assert.Equal(t, []int{1}, tree.Query(unit(0), nil))
}

func TestUpdateInvalidBounds(t *testing.T) {
	tree := bvtree.New[int]()
	require.NoError(t, tree.Insert(1, unit(0)))

	err := tree.Update(1, box(0, 0, 5, 1, 1, 1))
	require.ErrorIs(t, err, bvtree.ErrInvalidBounds)
	assert.Equal(t, []int{1}, tree.Query(unit(0), nil), "entry keeps its old bounds")
}

func TestUpdateEveryFrame(t *testing.T) {
	// Simulates the motivating workload: a handful of objects drifting a
	// little every frame, relocated via Update each time.
	tree := bvtree.New[int]()
	const entries = 32
	for key := 0; key < entries; key++ {
		require.NoError(t, tree.Insert(key, unit(float64(key))))
	}

	for frame := 1; frame <= 100; frame++ {
		for key := 0; key < entries; key++ {
			at := float64(key) + float64(frame)*0.25
			require.NoError(t, tree.Update(key, unit(at)))
		}
		require.NoError(t, tree.Validate(), "after frame %d", frame)
		require.Equal(t, entries, tree.Count())
	}

	// After all that drift every entry is still found at its final spot.
	for key := 0; key < entries; key++ {
		at := float64(key) + 25
		assert.Contains(t, tree.Query(unit(at), nil), key)
	}
}
