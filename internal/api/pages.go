package api

import (
	"embed"
	"html/template"

	"github.com/endoclin/admin/internal"
	"github.com/endoclin/admin/internal/service"
)

//go:embed templates/*.html
var templatesFS embed.FS

func LoadTemplates() *template.Template {
	return template.Must(template.New("").Funcs(template.FuncMap{
		"currency": service.FormatCurrency,
		"kinds":    func() []internal.AttendanceKind { return internal.AttendanceKinds },
	}).ParseFS(templatesFS, "templates/*.html"))
}

type loginPage struct {
	Username string
	Error    string
}

type adminPage struct {
	Professionals []service.ProfessionalView
}
