package handlers

import (
	"html/template"
	"net/http"

	"github.com/gobuffalo/plush"
)

const notFoundPage = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>404 Not Found</title></head>
<body>
<h1>404 Not Found</h1>
<p>No generated page at <code><%= path %></code>.</p>
</body>
</html>
`

func Custom404Handler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	ctx := plush.NewContext()
	ctx.Set("path", r.URL.Path)

	page, err := plush.Parse(notFoundPage)
	if err != nil {
		http.Error(w, "404 page not found", http.StatusNotFound)
		return
	}

	content, err := page.Exec(ctx)
	if err != nil {
		http.Error(w, "404 page not found: "+template.HTMLEscapeString(r.URL.Path), http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNotFound)
	_, _ = w.Write([]byte(content))
}
