package main

import (
	"math/rand"
	"os"

	"github.com/go-gl/mathgl/mgl64"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"github.com/tanglebrook/go-boundstree/aabb"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// sceneFile is the on-disk form of a set of keyed boxes, kept flat so
// scenes can be produced by other tools or by hand.
type sceneFile struct {
	Entries []sceneEntry `json:"entries"`
}

type sceneEntry struct {
	Key int        `json:"key"`
	Min [3]float64 `json:"min"`
	Max [3]float64 `json:"max"`
}

func (e sceneEntry) box() aabb.Box {
	return aabb.New(mgl64.Vec3(e.Min), mgl64.Vec3(e.Max))
}

func entryFromBox(key int, b aabb.Box) sceneEntry {
	return sceneEntry{Key: key, Min: [3]float64(b.Min), Max: [3]float64(b.Max)}
}

// loadScene reads and validates a scene file. Any inverted box fails the
// whole load; a scene with bad boxes would be rejected entry by entry at
// insert time anyway.
func loadScene(path string) ([]sceneEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading scene %s", path)
	}
	var f sceneFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrapf(err, "decoding scene %s", path)
	}
	for i, e := range f.Entries {
		if !e.box().IsValid() {
			return nil, errors.Errorf("scene %s: entry %d (key %d) has inverted bounds", path, i, e.Key)
		}
	}
	return f.Entries, nil
}

func writeScene(path string, entries []sceneEntry) error {
	data, err := json.MarshalIndent(sceneFile{Entries: entries}, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encoding scene")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "writing scene %s", path)
	}
	return nil
}

// randomEntries generates n entries with the same distribution the test
// helpers use: boxes of bounded size scattered in a world cube.
func randomEntries(n int, seed int64, worldExtent, maxBoxSize float64) []sceneEntry {
	rng := rand.New(rand.NewSource(seed))
	entries := make([]sceneEntry, n)
	for i := range entries {
		half := mgl64.Vec3{
			rng.Float64() * maxBoxSize / 2,
			rng.Float64() * maxBoxSize / 2,
			rng.Float64() * maxBoxSize / 2,
		}
		center := mgl64.Vec3{
			(rng.Float64()*2 - 1) * worldExtent,
			(rng.Float64()*2 - 1) * worldExtent,
			(rng.Float64()*2 - 1) * worldExtent,
		}
		entries[i] = entryFromBox(i, aabb.FromCenter(center, half))
	}
	return entries
}
