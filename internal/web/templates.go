package web

import (
	"embed"
	"html/template"
	"time"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed static/*
var staticFS embed.FS

var pageTemplates = []string{
	"home.html",
	"login.html",
	"book_list.html",
	"book_detail.html",
	"book_form.html",
	"book_confirm_delete.html",
	"author_list.html",
	"author_detail.html",
	"author_form.html",
	"author_confirm_delete.html",
	"genre_list.html",
	"genre_detail.html",
	"my_loans.html",
	"all_loans.html",
	"renew_form.html",
	"error.html",
}

// parseTemplates builds one template set per page, each cloned from the
// shared layout.
func parseTemplates() map[string]*template.Template {
	funcs := template.FuncMap{
		"year": func() int { return time.Now().Year() },
		"date": func(t time.Time) string { return t.Format("Jan 2, 2006") },
		"dateptr": func(t *time.Time) string {
			if t == nil {
				return "unknown"
			}
			return t.Format("Jan 2, 2006")
		},
		"inputdate": formatDate,
	}

	layout := template.Must(template.New("layout.html").Funcs(funcs).ParseFS(templatesFS, "templates/layout.html"))

	set := make(map[string]*template.Template, len(pageTemplates))
	for _, page := range pageTemplates {
		set[page] = template.Must(template.Must(layout.Clone()).ParseFS(templatesFS, "templates/"+page))
	}
	return set
}
