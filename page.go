package md2site

import (
	"fmt"
	"strings"
	"text/template"
)

// pageData is the substitution context for the page template.
type pageData struct {
	Title string
	Body  string
}

// pageRenderer substitutes assembled body hypertext into the page
// template.
type pageRenderer interface {
	RenderPage(data pageData) (string, error)
}

// templatePageRenderer renders through text/template. The body slot holds
// trusted hypertext, so html/template's escaping would corrupt it. The
// source is parsed per render; a template referencing a slot the context
// lacks fails at execution, which is fatal for the document.
type templatePageRenderer struct {
	source string
}

func (r *templatePageRenderer) RenderPage(data pageData) (string, error) {
	tmpl, err := template.New("page").Parse(r.source)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTemplateRender, err)
	}

	var sb strings.Builder
	if err := tmpl.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrTemplateRender, err)
	}
	return sb.String(), nil
}
