// Package bvtreetesting provides shared helpers for exercising trees in
// tests: deterministic scene generation and a randomized mutation runner
// that keeps a plain map of the expected live entries for cross-checking.
package bvtreetesting

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/tanglebrook/go-boundstree/aabb"
	"github.com/tanglebrook/go-boundstree/bvtree"
)

// Config controls scene generation.
type Config struct {
	// Seed feeds the RNG. It is normal to force it to a fixed value so
	// the generated scene is the same from run to run.
	Seed int64
	// WorldExtent is the half extent of the cube boxes are placed in.
	WorldExtent float64
	// MaxBoxSize bounds the edge length of generated boxes.
	MaxBoxSize float64
	// LabelPrefix names the scene in failure output. A short unique
	// suffix is appended so interleaved test logs stay attributable.
	LabelPrefix string
}

// Scene generates reproducible boxes and runs randomized operation mixes
// against a tree while mirroring the expected state in a plain map.
type Scene struct {
	T     *testing.T
	Label string

	cfg Config
	rng *rand.Rand
}

// New returns a scene for cfg, filling in usable defaults for any zero
// fields.
func New(t *testing.T, cfg Config) *Scene {
	if cfg.WorldExtent <= 0 {
		cfg.WorldExtent = 100
	}
	if cfg.MaxBoxSize <= 0 {
		cfg.MaxBoxSize = 4
	}
	if cfg.LabelPrefix == "" {
		cfg.LabelPrefix = t.Name()
	}
	return &Scene{
		T:     t,
		Label: cfg.LabelPrefix + "-" + uuid.NewString()[:8],
		cfg:   cfg,
		rng:   rand.New(rand.NewSource(cfg.Seed)),
	}
}

// Box returns the next generated box: a random size at a random position
// inside the world cube. The result is always valid.
func (s *Scene) Box() aabb.Box {
	half := mgl64.Vec3{
		s.rng.Float64() * s.cfg.MaxBoxSize / 2,
		s.rng.Float64() * s.cfg.MaxBoxSize / 2,
		s.rng.Float64() * s.cfg.MaxBoxSize / 2,
	}
	center := mgl64.Vec3{
		(s.rng.Float64()*2 - 1) * s.cfg.WorldExtent,
		(s.rng.Float64()*2 - 1) * s.cfg.WorldExtent,
		(s.rng.Float64()*2 - 1) * s.cfg.WorldExtent,
	}
	return aabb.FromCenter(center, half)
}

// World returns a box covering everything Box can generate.
func (s *Scene) World() aabb.Box {
	e := s.cfg.WorldExtent + s.cfg.MaxBoxSize
	return aabb.New(mgl64.Vec3{-e, -e, -e}, mgl64.Vec3{e, e, e})
}

// Populate inserts n entries keyed 0..n-1 and returns the expected state.
func (s *Scene) Populate(tree *bvtree.Tree[int], n int) map[int]aabb.Box {
	live := make(map[int]aabb.Box, n)
	for key := 0; key < n; key++ {
		b := s.Box()
		require.NoError(s.T, tree.Insert(key, b), "scene %s: insert %d", s.Label, key)
		live[key] = b
	}
	return live
}

// Mutate applies ops random operations to tree, roughly evenly split
// between inserting a fresh key, updating a live one and removing a live
// one, keeping live in sync. nextKey supplies fresh keys and is advanced.
func (s *Scene) Mutate(tree *bvtree.Tree[int], live map[int]aabb.Box, nextKey *int, ops int) {
	for op := 0; op < ops; op++ {
		switch roll := s.rng.Intn(3); {
		case roll == 0 || len(live) == 0:
			key := *nextKey
			*nextKey++
			b := s.Box()
			require.NoError(s.T, tree.Insert(key, b), "scene %s: insert %d", s.Label, key)
			live[key] = b
		case roll == 1:
			key := s.anyLiveKey(live)
			b := s.Box()
			require.NoError(s.T, tree.Update(key, b), "scene %s: update %d", s.Label, key)
			live[key] = b
		default:
			key := s.anyLiveKey(live)
			require.NoError(s.T, tree.Remove(key), "scene %s: remove %d", s.Label, key)
			delete(live, key)
		}
	}
}

// ExpectedHits returns the keys in live whose box intersects query.
func ExpectedHits(live map[int]aabb.Box, query aabb.Box) []int {
	var hits []int
	for key, b := range live {
		if b.Intersects(query) {
			hits = append(hits, key)
		}
	}
	return hits
}

func (s *Scene) anyLiveKey(live map[int]aabb.Box) int {
	// Map iteration order is not seeded; collect and sort first so the
	// choice replays with the scene seed.
	keys := make([]int, 0, len(live))
	for k := range live {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys[s.rng.Intn(len(keys))]
}
