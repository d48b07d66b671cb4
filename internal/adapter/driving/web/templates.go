package web

import (
	"fmt"
	"html/template"
)

// pageTemplates holds one parsed template set per page. Every page shares
// templates/layout.html and defines its own "content" block. Parsing happens
// once at construction, not per request.
type pageTemplates struct {
	index         *template.Template
	edit          *template.Template
	deleteConfirm *template.Template
}

func parseTemplates() (*pageTemplates, error) {
	pages := &pageTemplates{}

	for _, page := range []struct {
		file string
		dst  **template.Template
	}{
		{"index.html", &pages.index},
		{"edit.html", &pages.edit},
		{"delete_confirm.html", &pages.deleteConfirm},
	} {
		tmpl, err := template.ParseFS(templateFS, "templates/layout.html", "templates/"+page.file)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", page.file, err)
		}
		*page.dst = tmpl
	}

	return pages, nil
}
