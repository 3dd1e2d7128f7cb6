package bvtree_test

import (
	"testing"

	"gotest.tools/v3/assert"

	"github.com/tanglebrook/go-boundstree/bvtree"
	"github.com/tanglebrook/go-boundstree/bvtreetesting"
)

// A longer churn run with clear/refill cycles, approximating a level
// being torn down and rebuilt repeatedly on one tree instance.
func TestSoakChurnWithClearCycles(t *testing.T) {
	if testing.Short() {
		t.Skip("soak run skipped in short mode")
	}

	scene := bvtreetesting.New(t, bvtreetesting.Config{Seed: 9, WorldExtent: 500})
	tree := bvtree.New[int]()

	nextKey := 0
	for cycle := 0; cycle < 5; cycle++ {
		live := scene.Populate(tree, 512)
		nextKey = 512
		scene.Mutate(tree, live, &nextKey, 2000)

		assert.NilError(t, tree.Validate())
		assert.Equal(t, tree.Count(), len(live))

		hits := tree.Query(scene.World(), nil)
		assert.Equal(t, len(hits), len(live))

		tree.Clear()
		assert.Equal(t, tree.Count(), 0)
		assert.NilError(t, tree.Validate())
	}
}
