package yamlutil

import (
	"errors"
	"strings"
	"testing"
)

func TestUnmarshal(t *testing.T) {
	type meta struct {
		Title string `yaml:"title"`
	}

	var m meta
	if err := Unmarshal([]byte("title: Hello"), &m); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if m.Title != "Hello" {
		t.Errorf("Title = %q, want %q", m.Title, "Hello")
	}
}

func TestUnmarshalValidation(t *testing.T) {
	type meta struct {
		Title string `yaml:"title"`
	}
	var m meta

	if err := Unmarshal(nil, &m); !errors.Is(err, ErrNilData) {
		t.Errorf("nil data error = %v, want ErrNilData", err)
	}
	if err := Unmarshal([]byte("title: x"), nil); !errors.Is(err, ErrNilDestination) {
		t.Errorf("nil destination error = %v, want ErrNilDestination", err)
	}

	big := []byte(strings.Repeat("a", MaxInputSize+1))
	if err := Unmarshal(big, &m); !errors.Is(err, ErrInputTooLarge) {
		t.Errorf("oversized input error = %v, want ErrInputTooLarge", err)
	}
}

func TestUnmarshalBadInput(t *testing.T) {
	type meta struct {
		Title string `yaml:"title"`
	}
	var m meta

	if err := Unmarshal([]byte("a\nb\nc"), &m); err == nil {
		t.Error("Unmarshal() of non-mapping input succeeded, want error")
	}
}
