package httpserver

import (
	"html/template"
	"io"

	"github.com/labstack/echo/v4"
)

// Renderer adapts html/template to echo's Renderer interface.
type Renderer struct {
	templates *template.Template
}

func NewRenderer(glob string) (*Renderer, error) {
	t, err := template.ParseGlob(glob)
	if err != nil {
		return nil, err
	}
	return &Renderer{templates: t}, nil
}

func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}
