package config

import "github.com/pkg/errors"

// Store holds the target languages, in generation order, and a flat
// key->string translation table per language.
type Store struct {
	languages    []string
	translations map[string]map[string]string
}

// NewStore validates that languages are unique and that every language has
// a translation table.
func NewStore(languages []string, translations map[string]map[string]string) (*Store, error) {
	seen := make(map[string]struct{}, len(languages))
	for _, lang := range languages {
		if lang == "" {
			return nil, errors.Wrap(ErrInvalidDocument, "empty language code")
		}
		if _, ok := seen[lang]; ok {
			return nil, errors.Wrapf(ErrDuplicateLanguage, "%q", lang)
		}
		seen[lang] = struct{}{}

		if _, ok := translations[lang]; !ok {
			return nil, errors.Wrapf(ErrMissingTranslations, "%q", lang)
		}
	}

	return &Store{
		languages:    append([]string(nil), languages...),
		translations: translations,
	}, nil
}

func (s *Store) Languages() []string {
	return append([]string(nil), s.languages...)
}

func (s *Store) Has(lang string) bool {
	_, ok := s.translations[lang]
	return ok
}

// Lookup returns the localized string for key in lang.
func (s *Store) Lookup(lang, key string) (string, bool) {
	table, ok := s.translations[lang]
	if !ok {
		return "", false
	}
	value, ok := table[key]
	return value, ok
}
