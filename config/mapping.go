package config

// FileMapping maps a template base filename to per-language output filenames.
type FileMapping map[string]map[string]string

// Has reports whether the template is registered for generation at all.
func (m FileMapping) Has(template string) bool {
	_, ok := m[template]
	return ok
}

// Output returns the explicit output filename of template for lang.
func (m FileMapping) Output(template, lang string) (string, bool) {
	entries, ok := m[template]
	if !ok {
		return "", false
	}
	name, ok := entries[lang]
	if !ok || name == "" {
		return "", false
	}
	return name, true
}

// IsOutput reports whether name is the output filename of any template in
// any language, link entries included.
func (m FileMapping) IsOutput(name string) bool {
	if name == "" {
		return false
	}
	for _, entries := range m {
		for _, out := range entries {
			if out == name {
				return true
			}
		}
	}
	return false
}

// LinkName resolves the localized filename of template for lang, consulting
// the "<lang>-link" entry when lang itself is not mapped.
func (m FileMapping) LinkName(template, lang string) (string, bool) {
	if name, ok := m.Output(template, lang); ok {
		return name, true
	}
	return m.Output(template, lang+"-link")
}
