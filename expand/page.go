package expand

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/ZacxDev/htmlgen/config"
)

// Page is a template with its includes already inlined. Include expansion
// does not depend on the language, so it runs once per template.
type Page struct {
	Path string
	// Name is the template's base filename, the key into files_mapping.
	Name    string
	Content string
	// Missing lists include targets that could not be read.
	Missing []Unresolved
}

func LoadPage(path string) (*Page, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading template %s", path)
	}
	return NewPage(path, string(raw)), nil
}

func NewPage(path, raw string) *Page {
	included := Includes(raw, filepath.Dir(path))

	return &Page{
		Path:    path,
		Name:    filepath.Base(path),
		Content: included.Text,
		Missing: included.Unresolved,
	}
}

// Render produces the page for one language: special variables, then
// translation keys, then link rewriting. Keys run before links so a key that
// expands to a page link is rewritten too.
func (p *Page) Render(lang string, doc *config.Document) Result {
	vars := Variables(p.Content, p.Name, doc.Mapping)

	keys := Keys(vars.Text, func(key string) (string, bool) {
		return doc.Store.Lookup(lang, key)
	})

	links := Links(keys.Text, lang, doc.Mapping)

	unresolved := make([]Unresolved, 0, len(vars.Unresolved)+len(keys.Unresolved)+len(links.Unresolved))
	unresolved = append(unresolved, vars.Unresolved...)
	unresolved = append(unresolved, keys.Unresolved...)
	unresolved = append(unresolved, links.Unresolved...)

	return Result{Text: links.Text, Unresolved: unresolved}
}
