package utils_test

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ZacxDev/htmlgen/utils"
)

func TestGenerateSitemapContent(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	content, err := utils.GenerateSitemapContent("https://example.com/", []utils.SitemapEntry{
		{Lang: "fr", Name: "index_fr.html"},
		{Lang: "ru", Name: "index_ru.html"},
	}, now)
	require.NoError(t, err)

	assert.Contains(t, content, `<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">`)
	assert.Contains(t, content, "<loc>https://example.com/fr/index_fr.html</loc>")
	assert.Contains(t, content, "<loc>https://example.com/ru/index_ru.html</loc>")
	assert.Equal(t, 2, strings.Count(content, "<lastmod>2026-03-14</lastmod>"))
}

func TestWriteSitemap(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "sitemap.xml")
	err := utils.WriteSitemap(path, "https://example.com", []utils.SitemapEntry{{Lang: "fr", Name: "a.html"}}, time.Now())
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), `<?xml version="1.0" encoding="UTF-8"?>`))
	assert.Contains(t, string(data), "<loc>https://example.com/fr/a.html</loc>")
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, slog.LevelDebug, utils.ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, utils.ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, utils.ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, utils.ParseLevel(""))
}

func TestNewLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := utils.NewLogger(&buf, "warn", true)

	logger.Info("hidden")
	logger.Warn("unresolved reference", "ref", "nope.html")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "unresolved reference")
	assert.Contains(t, buf.String(), "ref=nope.html")
}
