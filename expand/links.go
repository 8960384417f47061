package expand

import (
	"regexp"

	"github.com/ZacxDev/htmlgen/config"
)

// href="<segments/>*<basename>.<html|htm><?query|#fragment>"
//
// The attribute must start the input or follow whitespace, so data-href and
// similar attributes are not touched. Segments only allow alphanumerics and
// dots, so absolute URLs, hosts and root-relative paths never match.
var linkPattern = regexp.MustCompile(`(^|\s)href="((?:[A-Za-z0-9.]+/)*)([A-Za-z0-9_-]+)\.(html|htm)([?#][^"]*)?"`)

// Links points local page links at the output filename for lang, keeping the
// path prefix and query/fragment suffix. Targets without a mapping are left
// alone and reported, unless they already name a generated page.
func Links(content, lang string, mapping config.FileMapping) Result {
	unmapped := newRefSet(RefLink)

	text := linkPattern.ReplaceAllStringFunc(content, func(attr string) string {
		m := linkPattern.FindStringSubmatch(attr)
		lead, prefix, target, suffix := m[1], m[2], m[3]+"."+m[4], m[5]

		name, ok := mapping.Output(target, lang)
		if !ok {
			if !mapping.IsOutput(target) {
				unmapped.add(target)
			}
			return attr
		}
		return lead + `href="` + prefix + name + suffix + `"`
	})

	return Result{Text: text, Unresolved: unmapped.refs}
}
