package http

import (
	"embed"
	"html/template"
	"path/filepath"
)

//go:embed templates
var embeddedTemplates embed.FS

// loadTemplates parses templates/<group>/<name>.html. Each file defines its
// templates by view name, e.g. "books/list".
func loadTemplates(path string) (*template.Template, error) {
	tmpl := template.New("")
	if path == "" {
		return tmpl.ParseFS(embeddedTemplates, "templates/*/*.html")
	}
	return tmpl.ParseGlob(filepath.Join(path, "*", "*.html"))
}
