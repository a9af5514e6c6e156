package md2site

// Input contains conversion parameters.
type Input struct {
	Markdown string // Raw document source including frontmatter (required)
	Title    string // Page title fallback when the frontmatter has none (optional)
}

// Option configures a Service.
type Option func(*Service)

// WithPageTemplate overrides the embedded page template. The template
// receives the assembled document in {{.Body}} and the page title in
// {{.Title}}; the body slot holds trusted hypertext and is substituted
// without escaping.
func WithPageTemplate(source string) Option {
	return func(s *Service) {
		s.page = &templatePageRenderer{source: source}
	}
}
