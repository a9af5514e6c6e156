package md2site

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestParseDeck(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    []Card
		wantErr error
	}{
		{
			name:    "single card",
			payload: `[{"question":"Q1","question_attachments":"","answer":"A1"}]`,
			want:    []Card{{Question: "Q1", QuestionAttachments: "", Answer: "A1"}},
		},
		{
			name: "order preserved",
			payload: `[
				{"question":"first","question_attachments":"img.png","answer":"1"},
				{"question":"second","question_attachments":"","answer":"2"}
			]`,
			want: []Card{
				{Question: "first", QuestionAttachments: "img.png", Answer: "1"},
				{Question: "second", QuestionAttachments: "", Answer: "2"},
			},
		},
		{
			name:    "empty deck",
			payload: `[]`,
			want:    nil,
		},
		{
			name:    "missing question",
			payload: `[{"question_attachments":"","answer":"A"}]`,
			wantErr: ErrDeckField,
		},
		{
			name:    "missing attachments",
			payload: `[{"question":"Q","answer":"A"}]`,
			wantErr: ErrDeckField,
		},
		{
			name:    "missing answer",
			payload: `[{"question":"Q","question_attachments":""}]`,
			wantErr: ErrDeckField,
		},
		{
			name:    "unknown field",
			payload: `[{"question":"Q","question_attachments":"","answer":"A","extra":"x"}]`,
			wantErr: ErrDeckPayload,
		},
		{
			name:    "wrong field type",
			payload: `[{"question":1,"question_attachments":"","answer":"A"}]`,
			wantErr: ErrDeckPayload,
		},
		{
			name:    "not an array",
			payload: `{"deck":[]}`,
			wantErr: ErrDeckPayload,
		},
		{
			name:    "syntax error",
			payload: `[{"question":`,
			wantErr: ErrDeckPayload,
		},
		{
			name:    "trailing data",
			payload: `[] []`,
			wantErr: ErrDeckPayload,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deck, err := parseDeck([]byte(tt.payload))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("parseDeck() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseDeck() error = %v", err)
			}
			if len(deck.Cards) != len(tt.want) {
				t.Fatalf("got %d cards, want %d", len(deck.Cards), len(tt.want))
			}
			for i := range deck.Cards {
				if deck.Cards[i] != tt.want[i] {
					t.Errorf("card %d = %+v, want %+v", i, deck.Cards[i], tt.want[i])
				}
			}
		})
	}
}

func TestDeckToHTML(t *testing.T) {
	deck := &Deck{Cards: []Card{
		{Question: "Q1", QuestionAttachments: "", Answer: "A1"},
		{Question: "Q2", QuestionAttachments: "att.png", Answer: "A2"},
	}}

	html, err := deck.toHTML()
	if err != nil {
		t.Fatalf("toHTML() error = %v", err)
	}

	if !strings.HasPrefix(html, "<orbit-reviewarea>") || !strings.HasSuffix(html, "</orbit-reviewarea>") {
		t.Fatalf("deck not wrapped in review area: %q", html)
	}

	// Cards render in input order, one widget each.
	first := strings.Index(html, `question="Q1"`)
	second := strings.Index(html, `question="Q2"`)
	if first < 0 || second < 0 || second < first {
		t.Fatalf("widgets missing or out of order: %q", html)
	}
	if got := strings.Count(html, "<orbit-prompt"); got != 2 {
		t.Fatalf("got %d widgets, want 2", got)
	}
	if !strings.Contains(html, `question-attachments="att.png"`) {
		t.Errorf("attachments not carried: %q", html)
	}
}

// Card fields are trusted: markup inside them must reach the widget
// attributes verbatim, with no escaping applied.
func TestDeckToHTMLVerbatimFields(t *testing.T) {
	deck := &Deck{Cards: []Card{
		{Question: "What is <em>x</em>?", QuestionAttachments: "", Answer: "x &amp; y"},
	}}

	html, err := deck.toHTML()
	if err != nil {
		t.Fatalf("toHTML() error = %v", err)
	}
	if !strings.Contains(html, `question="What is <em>x</em>?"`) {
		t.Errorf("question escaped or altered: %q", html)
	}
	if !strings.Contains(html, `answer="x &amp; y"`) {
		t.Errorf("answer escaped or altered: %q", html)
	}
}

func TestDeckToHTMLManyCards(t *testing.T) {
	const n = 25
	deck := &Deck{}
	for i := 0; i < n; i++ {
		deck.Cards = append(deck.Cards, Card{
			Question:            fmt.Sprintf("q%d", i),
			QuestionAttachments: "",
			Answer:              fmt.Sprintf("a%d", i),
		})
	}

	html, err := deck.toHTML()
	if err != nil {
		t.Fatalf("toHTML() error = %v", err)
	}
	if got := strings.Count(html, "<orbit-prompt"); got != n {
		t.Fatalf("got %d widgets, want %d", got, n)
	}

	last := -1
	for i := 0; i < n; i++ {
		idx := strings.Index(html, fmt.Sprintf(`question="q%d"`, i))
		if idx <= last {
			t.Fatalf("card %d out of order", i)
		}
		last = idx
	}
}
