package bvtree_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tanglebrook/go-boundstree/aabb"
	"github.com/tanglebrook/go-boundstree/bvtree"
)

func box(minX, minY, minZ, maxX, maxY, maxZ float64) aabb.Box {
	return aabb.New(mgl64.Vec3{minX, minY, minZ}, mgl64.Vec3{maxX, maxY, maxZ})
}

func unit(at float64) aabb.Box {
	return box(at, at, at, at+1, at+1, at+1)
}

func TestInsertRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		boxes []aabb.Box
	}{
		{
			"single entry",
			[]aabb.Box{unit(0)},
		},
		{
			"disjoint entries",
			[]aabb.Box{unit(0), unit(10), unit(-10), unit(100)},
		},
		{
			"nested entries",
			[]aabb.Box{box(0, 0, 0, 10, 10, 10), box(1, 1, 1, 2, 2, 2), box(3, 3, 3, 4, 4, 4)},
		},
		{
			"identical entries under distinct keys",
			[]aabb.Box{unit(5), unit(5), unit(5)},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := bvtree.New[int]()
			for key, b := range tt.boxes {
				require.NoError(t, tree.Insert(key, b))
			}
			require.Equal(t, len(tt.boxes), tree.Count())
			require.NoError(t, tree.Validate())

			// Every entry is found by querying its own box.
			for key, b := range tt.boxes {
				assert.Contains(t, tree.Query(b, nil), key)
			}
		})
	}
}

func TestInsertDisjointQueryIsEmpty(t *testing.T) {
	tree := bvtree.New[int]()
	require.NoError(t, tree.Insert(1, box(0, 0, 0, 1, 1, 1)))

	got := tree.Query(box(10, 10, 10, 11, 11, 11), nil)
	assert.Empty(t, got)
}

func TestInsertOverlapQueryReturnsBoth(t *testing.T) {
	tree := bvtree.New[int]()
	require.NoError(t, tree.Insert(1, box(0, 0, 0, 1, 1, 1)))
	require.NoError(t, tree.Insert(2, box(0.5, 0.5, 0.5, 1.5, 1.5, 1.5)))

	got := tree.Query(box(0.25, 0.25, 0.25, 1.25, 1.25, 1.25), nil)
	assert.ElementsMatch(t, []int{1, 2}, got)
}

func TestInsertReplacesDuplicateKey(t *testing.T) {
	volumeA := box(0, 0, 0, 1, 1, 1)
	volumeB := box(50, 50, 50, 51, 51, 51)

	tree := bvtree.New[int]()
	require.NoError(t, tree.Insert(1, volumeA))
	require.NoError(t, tree.Insert(1, volumeB))

	assert.Equal(t, 1, tree.Count())
	assert.Empty(t, tree.Query(volumeA, nil), "the old volume must be gone")
	assert.Equal(t, []int{1}, tree.Query(volumeB, nil))
	assert.NoError(t, tree.Validate())
}

func TestInsertInvalidBoundsRejectedBeforeMutation(t *testing.T) {
	tree := bvtree.New[int]()
	require.NoError(t, tree.Insert(1, unit(0)))

	inverted := box(1, 3, 1, 2, 2, 2)
	err := tree.Insert(1, inverted)
	require.ErrorIs(t, err, bvtree.ErrInvalidBounds)

	// The pre-existing entry for the key survives untouched.
	assert.Equal(t, 1, tree.Count())
	assert.Equal(t, []int{1}, tree.Query(unit(0), nil))
	assert.NoError(t, tree.Validate())
}

func TestInsertAppendsToCallerSlice(t *testing.T) {
	tree := bvtree.New[int]()
	require.NoError(t, tree.Insert(7, unit(0)))

	results := []int{99}
	results = tree.Query(unit(0), results)
	assert.Equal(t, []int{99, 7}, results, "existing contents are kept, hits are appended")
}
