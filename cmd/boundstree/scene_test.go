package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSceneRoundTrip(t *testing.T) {
	entries := randomEntries(25, 3, 100, 5)
	path := filepath.Join(t.TempDir(), "scene.json")

	require.NoError(t, writeScene(path, entries))

	got, err := loadScene(path)
	require.NoError(t, err)
	assert.Equal(t, entries, got)
}

func TestLoadSceneMissingFile(t *testing.T) {
	_, err := loadScene(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading scene")
}

func TestLoadSceneRejectsInvertedBounds(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	raw := `{"entries":[{"key":1,"min":[0,5,0],"max":[1,1,1]}]}`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	_, err := loadScene(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "inverted bounds")
}

func TestRandomEntriesAreValidAndSeeded(t *testing.T) {
	a := randomEntries(50, 9, 100, 5)
	b := randomEntries(50, 9, 100, 5)
	assert.Equal(t, a, b, "the same seed replays the same scene")

	for i, e := range a {
		assert.True(t, e.box().IsValid(), "entry %d", i)
		assert.Equal(t, i, e.Key)
	}
}
