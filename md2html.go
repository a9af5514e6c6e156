package md2site

import (
	"bytes"
	"context"
	"fmt"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// htmlConverter abstracts Markdown body to HTML conversion.
type htmlConverter interface {
	ToHTML(ctx context.Context, content string) (string, error)
}

// goldmarkConverter converts Markdown to an HTML fragment using goldmark.
type goldmarkConverter struct {
	md goldmark.Markdown
}

// newGoldmarkConverter creates a converter with the full extension set:
// strikethrough, smart punctuation, syntax highlighting, footnote
// references, .md link rewriting, and orbit review decks.
func newGoldmarkConverter() *goldmarkConverter {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.Strikethrough,
			extension.Typographer, // Straight quotes/dashes to typographic equivalents
			highlighting.NewHighlighting(
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true), // CSS classes for external stylesheet control
				),
			),
			&footnoteRefExtension{},
			&linkRewriteExtension{},
			&orbitExtension{},
		),
		goldmark.WithRendererOptions(
			html.WithXHTML(), // Self-closing tags
			// Trusted hypertext: document bodies may carry raw inline HTML
			// that must pass through unescaped.
			html.WithUnsafe(),
		),
	)
	return &goldmarkConverter{md: md}
}

// ToHTML converts Markdown content to an HTML fragment.
func (c *goldmarkConverter) ToHTML(ctx context.Context, content string) (string, error) {
	return convertWithContext(ctx, c.md, content)
}

// convertWithContext runs a goldmark conversion under a context. Goldmark
// doesn't natively support context, so the conversion runs in a goroutine
// with a select on ctx.Done.
func convertWithContext(ctx context.Context, md goldmark.Markdown, content string) (string, error) {
	// Fast path: check context before starting
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := md.Convert([]byte(content), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %w", ErrHTMLConversion, err)}
			return
		}
		done <- result{html: buf.String()}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.html, r.err
	}
}
