// Package md2site converts annotated Markdown documents into templated
// HTML pages, with an embedded "orbit" fenced-block extension that renders
// flashcard review widgets.
//
// # Quick Start
//
// Create a service and convert a document:
//
//	svc := md2site.New()
//	page, err := svc.Convert(ctx, md2site.Input{
//	    Markdown: source,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("note.html", []byte(page), 0644)
//
// # Conversion Pipeline
//
// Each document flows through these stages:
//
//  1. Frontmatter split (the "---"-delimited preamble is removed; its YAML
//     feeds the page title on a best-effort basis)
//  2. Footnote split (lines starting with [^ are set aside before parsing)
//  3. Body conversion via Goldmark (strikethrough, smart punctuation,
//     syntax highlighting, footnote references, .md link rewriting,
//     orbit review decks)
//  4. Footnote rendering (definitions re-parsed as an ordered list with
//     back-reference anchors)
//  5. Page assembly (body + footnotes substituted into the page template)
//
// # Trusted Hypertext
//
// Document bodies, deck card fields, and the assembled body slot are
// treated as author-trusted hypertext: no HTML escaping is applied at any
// of these boundaries. Feeding untrusted input to this package is unsafe.
//
// # Orbit Decks
//
// A fenced code block tagged "orbit" is not rendered as code. Its interior
// must be a JSON array of cards, each with exactly three string fields:
//
//	```orbit
//	[{"question":"Q","question_attachments":"","answer":"A"}]
//	```
//
// Each card becomes an <orbit-prompt> widget inside an <orbit-reviewarea>
// container. A malformed payload fails the whole conversion.
package md2site
