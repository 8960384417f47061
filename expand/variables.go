package expand

import (
	"regexp"
	"strings"

	"github.com/ZacxDev/htmlgen/config"
)

// VariableLink expands to the localized filename of the page being rendered.
const VariableLink = "LINK"

// $$<VARIABLE>_<LANG>$$; the variable name may itself contain underscores,
// the language suffix is whatever follows the last one.
var variablePattern = regexp.MustCompile(`\$\$([A-Za-z][A-Za-z0-9_]*)_([A-Za-z0-9-]+)\$\$`)

// Variables expands special variables for the page named page. Placeholders
// that cannot be resolved are left as written.
func Variables(content, page string, mapping config.FileMapping) Result {
	unresolved := newRefSet(RefVariable)

	text := variablePattern.ReplaceAllStringFunc(content, func(placeholder string) string {
		m := variablePattern.FindStringSubmatch(placeholder)
		name, lang := strings.ToUpper(m[1]), m[2]

		switch name {
		case VariableLink:
			if value, ok := mapping.LinkName(page, lang); ok {
				return value
			}
			if value, ok := mapping.LinkName(page, strings.ToLower(lang)); ok {
				return value
			}
		}

		unresolved.add(placeholder)
		return placeholder
	})

	return Result{Text: text, Unresolved: unresolved.refs}
}
