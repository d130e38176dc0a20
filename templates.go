package main

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"
	"time"

	"github.com/Zachkp/portfolio/internal/i18n"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed static
var staticFiles embed.FS

var templateFuncs = template.FuncMap{
	"paragraphs": i18n.Paragraphs,
	"year":       func() int { return time.Now().Year() },
	"date":       func(t time.Time) string { return t.Format("2006-01-02 15:04") },
}

func mustParseTemplates() *template.Template {
	return template.Must(template.New("").Funcs(templateFuncs).ParseFS(templatesFS, "templates/*.html"))
}

func staticFS() http.FileSystem {
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}
