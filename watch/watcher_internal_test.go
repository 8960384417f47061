package watch

import (
	"path/filepath"
	"testing"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRelevant(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	cfg := filepath.Join(t.TempDir(), "data.json")

	w, err := New(Options{
		Root:    root,
		Exclude: filepath.Join(root, "public"),
		Files:   []string{cfg},
	})
	require.NoError(t, err)

	tests := []struct {
		name  string
		event fsnotify.Event
		want  bool
	}{
		{"template write", fsnotify.Event{Name: filepath.Join(root, "index.html"), Op: fsnotify.Write}, true},
		{"nested create", fsnotify.Event{Name: filepath.Join(root, "a", "b.html"), Op: fsnotify.Create}, true},
		{"remove", fsnotify.Event{Name: filepath.Join(root, "old.html"), Op: fsnotify.Remove}, true},
		{"rename", fsnotify.Event{Name: filepath.Join(root, "old.html"), Op: fsnotify.Rename}, true},
		{"chmod only", fsnotify.Event{Name: filepath.Join(root, "index.html"), Op: fsnotify.Chmod}, false},
		{"output dir", fsnotify.Event{Name: filepath.Join(root, "public", "fr", "index.html"), Op: fsnotify.Write}, false},
		{"output root itself", fsnotify.Event{Name: filepath.Join(root, "public"), Op: fsnotify.Create}, false},
		{"sibling prefix", fsnotify.Event{Name: filepath.Join(root, "publication.html"), Op: fsnotify.Write}, true},
		{"config file", fsnotify.Event{Name: cfg, Op: fsnotify.Write}, true},
		{"config neighbour", fsnotify.Event{Name: filepath.Join(filepath.Dir(cfg), "other.json"), Op: fsnotify.Write}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, w.relevant(tt.event))
		})
	}
}

func TestWithin(t *testing.T) {
	t.Parallel()

	dir := filepath.Join("/srv", "site")
	assert.True(t, within(dir, dir))
	assert.True(t, within(dir, filepath.Join(dir, "x.html")))
	assert.False(t, within(dir, dir+"-old"))
}
