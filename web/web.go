// Package web bundles the HTML templates and static assets into the binary.
package web

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"

	"modernband/internal/booking"
	"modernband/internal/domain"
	"modernband/internal/utils"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

func Funcs() template.FuncMap {
	return template.FuncMap{
		"rupees":    utils.FormatRupees,
		"amount":    utils.FormatAmount,
		"dateLabel": utils.DateLabel,
		"shortDate": utils.ShortDate,
		"has": func(set booking.FieldSet, f string) bool {
			return set.Contains(booking.FieldID(f))
		},
		"errFor": func(errs any, f string) string {
			switch m := errs.(type) {
			case map[booking.FieldID]string:
				return m[booking.FieldID(f)]
			case domain.FieldErrors:
				return m[f]
			case map[string]string:
				return m[f]
			}
			return ""
		},
		"stars": func(n int) []int { return make([]int, n) },
		"add":   func(a, b int) int { return a + b },
	}
}

// Templates parses every page template together with the shared partials.
func Templates() (*template.Template, error) {
	return template.New("").Funcs(Funcs()).ParseFS(templateFS, "templates/*.html")
}

func Static() http.FileSystem {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}
