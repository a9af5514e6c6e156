package md2site

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// Extensions for internal links.
const (
	markdownExt = ".md"
	htmlExt     = ".html"
)

// kindFootnoteRef identifies inline footnote reference nodes.
var kindFootnoteRef = ast.NewNodeKind("FootnoteRef")

// footnoteRef is an inline [^label] reference. Index is the 1-based
// occurrence counter within the document, assigned in appearance order and
// incremented per reference regardless of label reuse.
type footnoteRef struct {
	ast.BaseInline
	Label string
	Index int
}

// Kind implements ast.Node.
func (n *footnoteRef) Kind() ast.NodeKind { return kindFootnoteRef }

// Dump implements ast.Node.
func (n *footnoteRef) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, map[string]string{
		"Label": n.Label,
		"Index": fmt.Sprint(n.Index),
	}, nil)
}

// footnoteRefParser recognizes [^label] inline references. It registers at
// priority 101, the slot goldmark's own footnote extension occupies, so it
// runs before the link parser.
type footnoteRefParser struct{}

func (footnoteRefParser) Trigger() []byte { return []byte{'['} }

func (footnoteRefParser) Parse(parent ast.Node, block text.Reader, pc parser.Context) ast.Node {
	line, _ := block.PeekLine()
	if len(line) < 4 || line[1] != '^' {
		return nil
	}
	end := bytes.IndexByte(line, ']')
	if end < 3 { // require at least one label byte between [^ and ]
		return nil
	}
	label := string(line[2:end])
	block.Advance(end + 1)
	return &footnoteRef{Label: label}
}

// footnoteIndexer assigns occurrence indexes to footnote references. The
// counter lives in the Transform call, so a single parser instance stays
// safe across documents.
type footnoteIndexer struct{}

func (footnoteIndexer) Transform(doc *ast.Document, reader text.Reader, pc parser.Context) {
	index := 0
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering {
			if ref, ok := n.(*footnoteRef); ok {
				index++
				ref.Index = index
			}
		}
		return ast.WalkContinue, nil
	})
}

// footnoteRefRenderer renders a reference as a superscript anchor pointing
// at its definition and carrying the back-reference id. A label referenced
// twice yields two back-anchors targeting the same definition.
type footnoteRefRenderer struct{}

func (r *footnoteRefRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(kindFootnoteRef, r.render)
}

func (r *footnoteRefRenderer) render(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	ref := node.(*footnoteRef)
	_, _ = fmt.Fprintf(w, `<sup class="fn"><a id="%s-back" href="#%s">[%d]</a></sup>`, ref.Label, ref.Label, ref.Index)
	return ast.WalkSkipChildren, nil
}

// footnoteRefExtension wires the reference parser, indexer, and renderer.
type footnoteRefExtension struct{}

func (e *footnoteRefExtension) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(
		parser.WithInlineParsers(util.Prioritized(footnoteRefParser{}, 101)),
		parser.WithASTTransformers(util.Prioritized(footnoteIndexer{}, 200)),
	)
	m.Renderer().AddOptions(
		renderer.WithNodeRenderers(util.Prioritized(&footnoteRefRenderer{}, 200)),
	)
}

// linkRewriter rewrites link destinations ending in .md to point at the
// rendered .html page. Only the suffix changes; the rest of the
// destination and all other link attributes pass through byte-identical.
type linkRewriter struct{}

func (linkRewriter) Transform(doc *ast.Document, reader text.Reader, pc parser.Context) {
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering {
			if link, ok := n.(*ast.Link); ok && bytes.HasSuffix(link.Destination, []byte(markdownExt)) {
				trimmed := link.Destination[:len(link.Destination)-len(markdownExt)]
				link.Destination = append(append([]byte(nil), trimmed...), htmlExt...)
			}
		}
		return ast.WalkContinue, nil
	})
}

// linkRewriteExtension wires the .md link rewrite into a parser.
type linkRewriteExtension struct{}

func (e *linkRewriteExtension) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(
		parser.WithASTTransformers(util.Prioritized(linkRewriter{}, 210)),
	)
}
