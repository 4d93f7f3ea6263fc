package view

import (
	"embed"
	"fmt"
	"io"

	"go-product-catalog/internal/delivery/dto"

	"github.com/aymerick/raymond"
)

//go:embed templates/*.hbs
var templates embed.FS

// Renderer turns catalog screen views into HTML using handlebars templates.
type Renderer struct {
	catalog *raymond.Template
}

func NewRenderer() (*Renderer, error) {
	catalog, err := parseTemplate("templates/product_list.hbs")
	if err != nil {
		return nil, err
	}

	catalog.RegisterHelper("fieldError", fieldError)

	return &Renderer{catalog: catalog}, nil
}

func parseTemplate(name string) (*raymond.Template, error) {
	source, err := templates.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("read template %s: %w", name, err)
	}

	tpl, err := raymond.Parse(string(source))
	if err != nil {
		return nil, fmt.Errorf("parse template %s: %w", name, err)
	}
	return tpl, nil
}

// RenderCatalog writes the catalog screen to w.
func (r *Renderer) RenderCatalog(w io.Writer, v *dto.CatalogScreenView) error {
	out, err := r.catalog.Exec(v)
	if err != nil {
		return fmt.Errorf("render catalog: %w", err)
	}
	_, err = io.WriteString(w, out)
	return err
}

// fieldError renders the inline message for field, if there is one.
func fieldError(errs interface{}, field string) raymond.SafeString {
	messages, ok := errs.(map[string]string)
	if !ok {
		return ""
	}
	msg, ok := messages[field]
	if !ok {
		return ""
	}
	return raymond.SafeString(`<span class="text-red-500 text-sm" data-error-for="` + field + `">` + raymond.Escape(msg) + `</span>`)
}
