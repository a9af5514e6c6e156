package md2site

import (
	"errors"
	"testing"
)

func TestSplitFrontmatter(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantMeta  Meta
		wantBody  string
		wantError bool
	}{
		{
			name:     "yaml frontmatter",
			input:    "---\ntitle: Hello\nauthor: Jo\n---\n# Heading\nbody",
			wantMeta: Meta{Title: "Hello", Author: "Jo"},
			wantBody: "# Heading\nbody",
		},
		{
			name:     "opaque interior yields empty metadata",
			input:    "---\na\nb\nc\n---\n# Hello\nworld",
			wantMeta: Meta{},
			wantBody: "# Hello\nworld",
		},
		{
			name:     "empty preamble",
			input:    "---\n---\nbody",
			wantMeta: Meta{},
			wantBody: "body",
		},
		{
			name:      "missing opening delimiter",
			input:     "# Hello\nno frontmatter here",
			wantError: true,
		},
		{
			name:      "unterminated preamble",
			input:     "---\ntitle: Hello\nno closing line",
			wantError: true,
		},
		{
			name:      "empty document",
			input:     "",
			wantError: true,
		},
		{
			name:      "delimiter not on its own line",
			input:     "--- title\nbody",
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta, body, err := splitFrontmatter(tt.input)
			if tt.wantError {
				if !errors.Is(err, ErrFrontmatter) {
					t.Fatalf("splitFrontmatter() error = %v, want ErrFrontmatter", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("splitFrontmatter() error = %v", err)
			}
			if meta != tt.wantMeta {
				t.Errorf("meta = %+v, want %+v", meta, tt.wantMeta)
			}
			if body != tt.wantBody {
				t.Errorf("body = %q, want %q", body, tt.wantBody)
			}
		})
	}
}

// Splitting is not idempotent: the output carries no preamble, so a second
// application fails loudly instead of silently dropping content.
func TestSplitFrontmatterNotIdempotent(t *testing.T) {
	_, body, err := splitFrontmatter("---\ntitle: Hello\n---\n# Heading\nbody")
	if err != nil {
		t.Fatalf("first split: %v", err)
	}

	_, _, err = splitFrontmatter(body)
	if !errors.Is(err, ErrFrontmatter) {
		t.Fatalf("second split error = %v, want ErrFrontmatter", err)
	}
}
