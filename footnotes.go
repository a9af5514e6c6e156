package md2site

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"
)

// footnotePrefix marks a footnote definition line.
const footnotePrefix = "[^"

// footnoteDefinition matches a definition line: [^label]:body.
var footnoteDefinition = regexp.MustCompile(`^\[\^(.*)\]:(.*)$`)

// splitFootnotes partitions body text into content and footnote definition
// lines. Definitions are collected in encountered order; the remaining
// lines are rejoined with newlines. This runs before structural parsing
// because footnote rendering bypasses the parser's built-in handling in
// favor of custom back-reference anchors.
func splitFootnotes(body string) (content string, defs []string) {
	var kept []string
	for _, line := range strings.Split(body, "\n") {
		if strings.HasPrefix(line, footnotePrefix) {
			defs = append(defs, line)
		} else {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n"), defs
}

// footnoteDef is one parsed definition line.
type footnoteDef struct {
	label string
	body  string
}

// parseFootnoteDefs parses collected definition lines. A line that does
// not match [^label]:body is fatal for the document.
func parseFootnoteDefs(lines []string) ([]footnoteDef, error) {
	defs := make([]footnoteDef, 0, len(lines))
	for _, line := range lines {
		m := footnoteDefinition.FindStringSubmatch(line)
		if m == nil {
			return nil, fmt.Errorf("%w: %q", ErrFootnoteFormat, line)
		}
		defs = append(defs, footnoteDef{label: m[1], body: m[2]})
	}
	return defs, nil
}

// footnoteRenderer renders collected definition lines as the footnote
// block of a page.
type footnoteRenderer interface {
	RenderFootnotes(ctx context.Context, defLines []string) (string, error)
}

// goldmarkFootnoteRenderer re-parses definitions as a synthetic ordered
// list through a parser configured identically to the body pass.
type goldmarkFootnoteRenderer struct{}

// RenderFootnotes builds one list item per definition, prefixed by a
// thematic break as visual separator, and rewrites each item start to
// carry the definition anchor. Labels are consumed positionally, in the
// order the definitions were collected.
func (goldmarkFootnoteRenderer) RenderFootnotes(ctx context.Context, defLines []string) (string, error) {
	defs, err := parseFootnoteDefs(defLines)
	if err != nil {
		return "", err
	}

	var src strings.Builder
	src.WriteString(frontmatterDelimiter + "\n")
	labels := make([]string, 0, len(defs))
	for _, def := range defs {
		labels = append(labels, def.label)
		fmt.Fprintf(&src, "1. %s <a class=\"fn-back\" href=\"#%s-back\">↩</a>\n", def.body, def.label)
	}

	return convertWithContext(ctx, newFootnoteMarkdown(labels), src.String())
}

// newFootnoteMarkdown builds a goldmark instance for the footnote pass.
// The list-item renderer holds per-render state (the label cursor), so a
// fresh instance is built for every document.
func newFootnoteMarkdown(labels []string) goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(
			extension.Strikethrough,
			extension.Typographer,
			highlighting.NewHighlighting(
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true),
				),
			),
			&footnoteRefExtension{},
			&linkRewriteExtension{},
		),
		goldmark.WithRendererOptions(
			html.WithXHTML(),
			// Trusted hypertext: the synthetic source embeds the raw
			// back-reference anchors.
			html.WithUnsafe(),
			renderer.WithNodeRenderers(
				util.Prioritized(&listItemAnchorRenderer{labels: labels}, 100),
			),
		),
	)
}

// listItemAnchorRenderer replaces list-item tags with <li id="label">,
// consuming labels strictly positionally.
type listItemAnchorRenderer struct {
	labels []string
	next   int
}

func (r *listItemAnchorRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(ast.KindListItem, r.renderListItem)
}

func (r *listItemAnchorRenderer) renderListItem(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if entering {
		if r.next < len(r.labels) {
			_, _ = fmt.Fprintf(w, "<li id=%q>", r.labels[r.next])
			r.next++
		} else {
			_, _ = w.WriteString("<li>")
		}
		return ast.WalkContinue, nil
	}
	_, _ = w.WriteString("</li>\n")
	return ast.WalkContinue, nil
}
