package expand

import (
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/gobuffalo/plush"
	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/parser"
)

// <!-- #include virtual="path" --> or <!-- #include file='path' -->
var includePattern = regexp.MustCompile(`<!--\s*#include\s+(?:virtual|file)\s*=\s*(?:"([^"]*)"|'([^']*)')\s*-->`)

const missingIncludeTemplate = `<div class="include-error" style="color:#a40000;background:#fdecea;border:1px solid #a40000;padding:4px 8px;font-family:monospace">missing include: <%= path %></div>`

// Includes inlines every include directive in content with the referenced
// file, resolved relative to dir. Included content is not scanned again, so
// directives inside it stay as written. Markdown files are rendered to HTML
// first. Unreadable targets are replaced with a visible error block.
func Includes(content, dir string) Result {
	missing := newRefSet(RefInclude)

	text := includePattern.ReplaceAllStringFunc(content, func(directive string) string {
		m := includePattern.FindStringSubmatch(directive)
		ref := m[1]
		if ref == "" {
			ref = m[2]
		}

		data, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(ref)))
		if err != nil {
			missing.add(ref)
			return missingIncludeBlock(ref)
		}

		if strings.EqualFold(filepath.Ext(ref), ".md") {
			return string(renderMarkdown(data))
		}
		return string(data)
	})

	return Result{Text: text, Unresolved: missing.refs}
}

func missingIncludeBlock(ref string) string {
	fallback := fmt.Sprintf(`<div class="include-error">missing include: %s</div>`, template.HTMLEscapeString(ref))

	block, err := plush.Parse(missingIncludeTemplate)
	if err != nil {
		return fallback
	}

	ctx := plush.NewContext()
	ctx.Set("path", ref)

	out, err := block.Exec(ctx)
	if err != nil {
		return fallback
	}
	return out
}

// MathJax is off: it would swallow $$NAME_lang$$ variables before they are
// resolved.
func renderMarkdown(md []byte) []byte {
	extensions := parser.CommonExtensions&^parser.MathJax | parser.AutoHeadingIDs
	p := parser.NewWithExtensions(extensions)
	return markdown.ToHTML(md, p, nil)
}
