package md2site

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"text/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// orbitLanguage tags a fenced code block as a review deck.
const orbitLanguage = "orbit"

// Widget markup for review decks. Card fields are substituted verbatim:
// values are author-trusted and must not be re-escaped.
const (
	reviewAreaStart = `<orbit-reviewarea>`
	reviewAreaEnd   = `</orbit-reviewarea>`
	promptTemplate  = `<orbit-prompt question="{{.Question}}" question-attachments="{{.QuestionAttachments}}" answer="{{.Answer}}"></orbit-prompt>`
)

// Card is one flashcard in a review deck.
type Card struct {
	Question            string
	QuestionAttachments string
	Answer              string
}

// Deck is an ordered set of flashcards declared by an orbit block. A deck
// is immutable once parsed and is consumed exactly once to produce
// hypertext.
type Deck struct {
	Cards []Card
}

// cardPayload mirrors the JSON schema with pointer fields so missing keys
// are distinguishable from empty strings.
type cardPayload struct {
	Question            *string `json:"question"`
	QuestionAttachments *string `json:"question_attachments"`
	Answer              *string `json:"answer"`
}

// parseDeck decodes a deck payload: a JSON array of cards, each with
// exactly the three required string fields. Unknown fields, missing
// fields, wrong types, and syntax errors are all fatal.
func parseDeck(payload []byte) (*Deck, error) {
	dec := json.NewDecoder(bytes.NewReader(payload))
	dec.DisallowUnknownFields()

	var raw []cardPayload
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDeckPayload, err)
	}
	if dec.More() {
		return nil, fmt.Errorf("%w: trailing data after deck array", ErrDeckPayload)
	}

	deck := &Deck{Cards: make([]Card, 0, len(raw))}
	for i, c := range raw {
		switch {
		case c.Question == nil:
			return nil, fmt.Errorf("%w: card %d: question", ErrDeckField, i)
		case c.QuestionAttachments == nil:
			return nil, fmt.Errorf("%w: card %d: question_attachments", ErrDeckField, i)
		case c.Answer == nil:
			return nil, fmt.Errorf("%w: card %d: answer", ErrDeckField, i)
		}
		deck.Cards = append(deck.Cards, Card{
			Question:            *c.Question,
			QuestionAttachments: *c.QuestionAttachments,
			Answer:              *c.Answer,
		})
	}
	return deck, nil
}

// toHTML renders one <orbit-prompt> widget per card, in input order,
// inside the review area container.
func (d *Deck) toHTML() (string, error) {
	tmpl, err := template.New("orbit-prompt").Parse(promptTemplate)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTemplateRender, err)
	}

	var sb strings.Builder
	sb.WriteString(reviewAreaStart)
	for _, card := range d.Cards {
		if err := tmpl.Execute(&sb, card); err != nil {
			return "", fmt.Errorf("%w: %v", ErrTemplateRender, err)
		}
	}
	sb.WriteString(reviewAreaEnd)
	return sb.String(), nil
}

// kindOrbitBlock identifies replaced orbit deck blocks.
var kindOrbitBlock = ast.NewNodeKind("OrbitBlock")

// orbitBlock stands in for an orbit-tagged fenced code block. It carries
// the raw interior payload; everything between the fence markers belongs
// to the deck, not to prose, and never reaches any other renderer.
type orbitBlock struct {
	ast.BaseBlock
	payload []byte
}

// Kind implements ast.Node.
func (n *orbitBlock) Kind() ast.NodeKind { return kindOrbitBlock }

// Dump implements ast.Node.
func (n *orbitBlock) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, nil, nil)
}

// orbitTransformer swaps orbit fenced code blocks for orbitBlock nodes.
// Candidates are collected first and replaced after the walk so the
// traversal never mutates the tree under itself.
type orbitTransformer struct{}

func (orbitTransformer) Transform(doc *ast.Document, reader text.Reader, pc parser.Context) {
	var blocks []*ast.FencedCodeBlock
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering {
			if fenced, ok := n.(*ast.FencedCodeBlock); ok &&
				string(fenced.Language(reader.Source())) == orbitLanguage {
				blocks = append(blocks, fenced)
			}
		}
		return ast.WalkContinue, nil
	})

	for _, fenced := range blocks {
		parent := fenced.Parent()
		parent.ReplaceChild(parent, fenced, &orbitBlock{
			payload: fenceInterior(fenced, reader.Source()),
		})
	}
}

// fenceInterior reassembles the block's interior from its line segments,
// which spares us from slicing the fence delimiters off by fixed byte
// offsets.
func fenceInterior(fenced *ast.FencedCodeBlock, source []byte) []byte {
	var buf bytes.Buffer
	lines := fenced.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		buf.Write(seg.Value(source))
	}
	return buf.Bytes()
}

// orbitRenderer deserializes the payload and splices in the widget markup
// as a raw, unescaped fragment. A malformed payload aborts the whole
// conversion through the error return.
type orbitRenderer struct{}

func (r *orbitRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(kindOrbitBlock, r.render)
}

func (r *orbitRenderer) render(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	block := node.(*orbitBlock)
	deck, err := parseDeck(block.payload)
	if err != nil {
		return ast.WalkStop, err
	}
	fragment, err := deck.toHTML()
	if err != nil {
		return ast.WalkStop, err
	}
	_, _ = w.WriteString(fragment)
	return ast.WalkContinue, nil
}

// orbitExtension wires the deck transformer and renderer.
type orbitExtension struct{}

func (e *orbitExtension) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(
		parser.WithASTTransformers(util.Prioritized(orbitTransformer{}, 500)),
	)
	m.Renderer().AddOptions(
		renderer.WithNodeRenderers(util.Prioritized(&orbitRenderer{}, 200)),
	)
}
