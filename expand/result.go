package expand

type RefKind string

const (
	RefInclude  RefKind = "include"
	RefVariable RefKind = "variable"
	RefKey      RefKind = "key"
	RefLink     RefKind = "link"
)

// Unresolved is a reference a stage could not resolve. Stages never fail on
// these; they apply their fallback and report the reference.
type Unresolved struct {
	Kind RefKind
	Ref  string
}

type Result struct {
	Text       string
	Unresolved []Unresolved
}

// refSet collects unresolved references once each, in order of first
// appearance.
type refSet struct {
	kind RefKind
	seen map[string]struct{}
	refs []Unresolved
}

func newRefSet(kind RefKind) *refSet {
	return &refSet{kind: kind, seen: make(map[string]struct{})}
}

func (s *refSet) add(ref string) {
	if _, ok := s.seen[ref]; ok {
		return
	}
	s.seen[ref] = struct{}{}
	s.refs = append(s.refs, Unresolved{Kind: s.kind, Ref: ref})
}
