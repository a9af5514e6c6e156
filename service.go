package md2site

import (
	"context"
	"fmt"

	"github.com/alnah/go-md2site/internal/assets"
)

// Service orchestrates the markdown-to-page pipeline.
type Service struct {
	converter htmlConverter
	footnotes footnoteRenderer
	page      pageRenderer
}

// New creates a Service with default configuration and the embedded page
// template. Use options to customize behavior (e.g., WithPageTemplate).
func New(opts ...Option) *Service {
	s := &Service{
		converter: newGoldmarkConverter(),
		footnotes: goldmarkFootnoteRenderer{},
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.page == nil {
		s.page = &templatePageRenderer{source: assets.MustTemplate("page")}
	}

	return s
}

// Convert runs the full pipeline on one document and returns the rendered
// page. The context is used for cancellation. Conversions share no mutable
// state: each call owns its own footnote list and parse.
func (s *Service) Convert(ctx context.Context, input Input) (string, error) {
	if input.Markdown == "" {
		return "", ErrEmptyMarkdown
	}

	meta, body, err := splitFrontmatter(input.Markdown)
	if err != nil {
		return "", err
	}

	content, defLines := splitFootnotes(body)

	bodyHTML, err := s.converter.ToHTML(ctx, content)
	if err != nil {
		return "", fmt.Errorf("converting body: %w", err)
	}

	notesHTML, err := s.footnotes.RenderFootnotes(ctx, defLines)
	if err != nil {
		return "", fmt.Errorf("rendering footnotes: %w", err)
	}

	title := meta.Title
	if title == "" {
		title = input.Title
	}

	page, err := s.page.RenderPage(pageData{Title: title, Body: bodyHTML + notesHTML})
	if err != nil {
		return "", fmt.Errorf("assembling page: %w", err)
	}

	return page, nil
}
