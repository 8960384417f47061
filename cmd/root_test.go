package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "src")
	out := filepath.Join(dir, "public")
	cfg := filepath.Join(dir, "data.json")

	require.NoError(t, os.MkdirAll(in, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(in, "index.html"), []byte("<p>{{title}}</p>"), 0644))
	require.NoError(t, os.WriteFile(cfg, []byte(`{
		"languages": ["fr", "ru"],
		"files_mapping": {"index.html": {"fr": "index_fr.html", "ru": "index_ru.html"}},
		"fr": {"title": "Bonjour"},
		"ru": {"title": "Привет"}
	}`), 0644))

	var logs bytes.Buffer
	rootCmd.SetErr(&logs)
	t.Cleanup(func() { rootCmd.SetErr(nil) })

	rootCmd.SetArgs([]string{"--in", in, "--out", out, "--json", cfg, "--origin", "https://example.com", "--no-color"})
	require.NoError(t, rootCmd.Execute())

	fr, err := os.ReadFile(filepath.Join(out, "fr", "index_fr.html"))
	require.NoError(t, err)
	assert.Equal(t, "<p>Bonjour</p>", string(fr))

	ru, err := os.ReadFile(filepath.Join(out, "ru", "index_ru.html"))
	require.NoError(t, err)
	assert.Equal(t, "<p>Привет</p>", string(ru))

	sitemap, err := os.ReadFile(filepath.Join(out, "sitemap.xml"))
	require.NoError(t, err)
	assert.Contains(t, string(sitemap), "<loc>https://example.com/ru/index_ru.html</loc>")

	assert.Contains(t, logs.String(), "generation complete")
	assert.Contains(t, logs.String(), "written=2")

	// A broken config fails a single pass.
	require.NoError(t, os.WriteFile(cfg, []byte(`{"languages": ["fr"]}`), 0644))
	rootCmd.SetArgs([]string{"--in", in, "--out", out, "--json", cfg, "--origin", "", "--no-color"})
	err = rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "files_mapping")
}
