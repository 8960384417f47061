package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// config/document.go
//
// Document format:
//
//	{
//	  "languages": ["fr", "ru"],
//	  "files_mapping": {
//	    "index.html": {"fr": "index_fr.html", "ru": "index_ru.html"}
//	  },
//	  "fr": {"title": "Bonjour"},
//	  "ru": {"title": "Привет"}
//	}

const (
	LanguagesKey    = "languages"
	FilesMappingKey = "files_mapping"
)

type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

// FormatFor picks the decoder from the file extension. Anything that is not
// YAML is read as JSON.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Document is one snapshot of the configuration, loaded fresh for every
// generation pass and read-only afterwards.
type Document struct {
	Store   *Store
	Mapping FileMapping
}

func (d *Document) Languages() []string {
	return d.Store.Languages()
}

// Load reads and validates the configuration document at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading config %s", path)
	}

	doc, err := Parse(data, FormatFor(path))
	if err != nil {
		return nil, errors.Wrapf(err, "loading config %s", path)
	}

	return doc, nil
}

func Parse(data []byte, format Format) (*Document, error) {
	raw := make(map[string]interface{})

	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &raw)
	default:
		err = json.Unmarshal(data, &raw)
	}
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidDocument, "%v", err)
	}

	return decode(raw)
}

func decode(raw map[string]interface{}) (*Document, error) {
	langsRaw, ok := raw[LanguagesKey]
	if !ok {
		return nil, errors.Wrapf(ErrMissingKey, "%q", LanguagesKey)
	}
	languages, err := stringList(langsRaw, LanguagesKey)
	if err != nil {
		return nil, err
	}

	mappingRaw, ok := raw[FilesMappingKey]
	if !ok {
		return nil, errors.Wrapf(ErrMissingKey, "%q", FilesMappingKey)
	}
	mappingEntries, err := objectOf(mappingRaw, FilesMappingKey)
	if err != nil {
		return nil, err
	}

	mapping := make(FileMapping, len(mappingEntries))
	for template, entry := range mappingEntries {
		outputs, err := flatStrings(entry, FilesMappingKey+"."+template)
		if err != nil {
			return nil, err
		}
		mapping[template] = outputs
	}

	translations := make(map[string]map[string]string, len(languages))
	for _, lang := range languages {
		table, ok := raw[lang]
		if !ok {
			continue
		}
		values, err := flatStrings(table, lang)
		if err != nil {
			return nil, err
		}
		translations[lang] = values
	}

	store, err := NewStore(languages, translations)
	if err != nil {
		return nil, err
	}

	return &Document{Store: store, Mapping: mapping}, nil
}

// objectOf normalizes both JSON (string keys) and yaml.v2 (interface keys)
// objects.
func objectOf(v interface{}, field string) (map[string]interface{}, error) {
	switch m := v.(type) {
	case map[string]interface{}:
		return m, nil
	case map[interface{}]interface{}:
		out := make(map[string]interface{}, len(m))
		for k, val := range m {
			key, ok := k.(string)
			if !ok {
				key = fmt.Sprint(k)
			}
			out[key] = val
		}
		return out, nil
	case nil:
		return map[string]interface{}{}, nil
	default:
		return nil, errors.Wrapf(ErrInvalidDocument, "%s: expected an object, got %T", field, v)
	}
}

func flatStrings(v interface{}, field string) (map[string]string, error) {
	obj, err := objectOf(v, field)
	if err != nil {
		return nil, err
	}

	out := make(map[string]string, len(obj))
	for key, val := range obj {
		s, ok := val.(string)
		if !ok {
			return nil, errors.Wrapf(ErrInvalidDocument, "%s.%s: expected a string, got %T", field, key, val)
		}
		out[key] = s
	}
	return out, nil
}

func stringList(v interface{}, field string) ([]string, error) {
	items, ok := v.([]interface{})
	if !ok {
		return nil, errors.Wrapf(ErrInvalidDocument, "%s: expected a list, got %T", field, v)
	}

	out := make([]string, 0, len(items))
	for i, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, errors.Wrapf(ErrInvalidDocument, "%s[%d]: expected a string, got %T", field, i, item)
		}
		out = append(out, s)
	}
	return out, nil
}
