package md2site

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyMarkdown  = errors.New("markdown content cannot be empty")
	ErrHTMLConversion = errors.New("HTML conversion failed")

	// Frontmatter errors.
	ErrFrontmatter = errors.New("missing or unterminated frontmatter")

	// Footnote errors.
	ErrFootnoteFormat = errors.New("malformed footnote definition")

	// Orbit deck errors.
	ErrDeckPayload = errors.New("malformed orbit deck payload")
	ErrDeckField   = errors.New("orbit card missing required field")

	// Page assembly errors.
	ErrTemplateRender = errors.New("page template rendering failed")
)
