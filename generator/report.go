package generator

import "github.com/ZacxDev/htmlgen/expand"

type Reason string

const (
	ReasonUnmapped   Reason = "template has no files_mapping entry"
	ReasonNoLanguage Reason = "no files_mapping entry for language"
	ReasonUnreadable Reason = "template could not be read"
)

// Output is one file written during a pass.
type Output struct {
	Template string
	Lang     string
	// Name is the mapped filename, relative to the language directory.
	Name string
	Path string
}

type Skip struct {
	Template string
	Lang     string
	Reason   Reason
}

// Warning is an unresolved reference. Lang is empty for include warnings,
// which apply to every language of the template.
type Warning struct {
	Template string
	Lang     string
	Kind     expand.RefKind
	Ref      string
}

// Report enumerates everything a generation pass did and skipped.
type Report struct {
	Written  []Output
	Skipped  []Skip
	Warnings []Warning
}

func (r *Report) Paths() []string {
	paths := make([]string, 0, len(r.Written))
	for _, out := range r.Written {
		paths = append(paths, out.Path)
	}
	return paths
}
