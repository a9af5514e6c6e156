package md2site

import (
	"fmt"
	"strings"

	"github.com/alnah/go-md2site/internal/yamlutil"
)

// frontmatterDelimiter marks the start and end of the metadata preamble.
const frontmatterDelimiter = "---"

// Meta holds document metadata parsed from the frontmatter preamble.
type Meta struct {
	Title       string `yaml:"title"`
	Author      string `yaml:"author"`
	Date        string `yaml:"date"`
	Description string `yaml:"description"`
}

// splitFrontmatter removes the frontmatter preamble and returns the
// document body. The document must open with a "---" line and contain a
// closing "---" line; anything shorter is fatal.
//
// The preamble interior is opaque by contract: it is decoded as YAML on a
// best-effort basis to populate Meta, and an interior that does not decode
// yields empty metadata rather than an error.
//
// Not idempotent: applying splitFrontmatter to its own output fails with
// ErrFrontmatter, since the body no longer carries a preamble.
func splitFrontmatter(markdown string) (Meta, string, error) {
	var meta Meta

	interior, body, err := cutFrontmatter(markdown)
	if err != nil {
		return meta, "", err
	}

	if interior != "" {
		_ = yamlutil.Unmarshal([]byte(interior), &meta)
	}

	return meta, body, nil
}

// cutFrontmatter scans for the actual delimiter lines rather than assuming
// a fixed preamble length.
func cutFrontmatter(markdown string) (interior, body string, err error) {
	rest, found := strings.CutPrefix(markdown, frontmatterDelimiter+"\n")
	if !found {
		return "", "", fmt.Errorf("%w: document does not start with a %q line", ErrFrontmatter, frontmatterDelimiter)
	}

	// Empty preamble: the closing delimiter follows immediately.
	if after, ok := strings.CutPrefix(rest, frontmatterDelimiter+"\n"); ok {
		return "", after, nil
	}

	end := strings.Index(rest, "\n"+frontmatterDelimiter+"\n")
	if end < 0 {
		return "", "", fmt.Errorf("%w: closing %q line not found", ErrFrontmatter, frontmatterDelimiter)
	}

	marker := "\n" + frontmatterDelimiter + "\n"
	return rest[:end], rest[end+len(marker):], nil
}
