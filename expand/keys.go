package expand

import "regexp"

var keyPattern = regexp.MustCompile(`\{\{([A-Za-z0-9_-]+)\}\}`)

// LookupFunc resolves a translation key for one language.
type LookupFunc func(key string) (string, bool)

// Keys replaces {{key}} placeholders. Unknown keys render as the key name
// itself so missing translations show up in the page.
func Keys(content string, lookup LookupFunc) Result {
	unknown := newRefSet(RefKey)

	text := keyPattern.ReplaceAllStringFunc(content, func(placeholder string) string {
		key := placeholder[2 : len(placeholder)-2]
		if value, ok := lookup(key); ok {
			return value
		}
		unknown.add(key)
		return key
	})

	return Result{Text: text, Unresolved: unknown.refs}
}
