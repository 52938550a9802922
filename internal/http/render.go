package http

import (
	"embed"
	"html/template"
	"io"
	"time"

	"github.com/labstack/echo/v4"

	dto "task-manager.com/task-manager/internal/data_models"
	apperrors "task-manager.com/task-manager/internal/errors"
	"task-manager.com/task-manager/internal/flash"
	model "task-manager.com/task-manager/pkg/models"
)

//go:embed templates/*.html
var templateFS embed.FS

// PageData is the view model shared by all task pages.
type PageData struct {
	Title            string
	Tasks            []model.Task
	Form             dto.TaskForm
	Errors           *apperrors.ValidationError
	Error            string
	Flash            flash.Message
	Statuses         []string
	CompletionStatus string
}

type Renderer struct {
	templates *template.Template
}

func NewRenderer() (*Renderer, error) {
	t, err := template.New("").Funcs(template.FuncMap{
		"date": func(d *time.Time) string {
			if d == nil {
				return "-"
			}
			return d.Format(dto.DateLayout)
		},
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	return &Renderer{templates: t}, nil
}

func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}
