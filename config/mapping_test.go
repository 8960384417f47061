package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ZacxDev/htmlgen/config"
)

func TestFileMapping(t *testing.T) {
	t.Parallel()

	m := config.FileMapping{
		"index.html": {"fr": "index_fr.html", "ru-link": "index_ru.html", "de": ""},
		"about.html": {},
	}

	assert.True(t, m.Has("about.html"))
	assert.False(t, m.Has("contact.html"))

	name, ok := m.Output("index.html", "fr")
	assert.True(t, ok)
	assert.Equal(t, "index_fr.html", name)

	_, ok = m.Output("index.html", "de")
	assert.False(t, ok, "empty names are treated as unmapped")

	name, ok = m.LinkName("index.html", "ru")
	assert.True(t, ok)
	assert.Equal(t, "index_ru.html", name)

	_, ok = m.LinkName("about.html", "ru")
	assert.False(t, ok)

	assert.True(t, m.IsOutput("index_fr.html"))
	assert.True(t, m.IsOutput("index_ru.html"), "link entries count as outputs")
	assert.False(t, m.IsOutput("index.html"))
	assert.False(t, m.IsOutput(""))
}

func TestStore(t *testing.T) {
	t.Parallel()

	store, err := config.NewStore([]string{"fr"}, map[string]map[string]string{
		"fr": {"title": "Bonjour"},
	})
	assert.NoError(t, err)

	langs := store.Languages()
	langs[0] = "xx"
	assert.Equal(t, []string{"fr"}, store.Languages())

	v, ok := store.Lookup("fr", "title")
	assert.True(t, ok)
	assert.Equal(t, "Bonjour", v)

	_, ok = store.Lookup("fr", "missing")
	assert.False(t, ok)
	_, ok = store.Lookup("ru", "title")
	assert.False(t, ok)
	assert.False(t, store.Has("ru"))
}
