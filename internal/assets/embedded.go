package assets

import (
	"embed"
	"fmt"
)

//go:embed styles/*
var styles embed.FS

//go:embed templates/*
var templates embed.FS

// EmbeddedLoader loads assets from the embedded filesystem.
// Implements the Loader interface.
type EmbeddedLoader struct{}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

// LoadStyle loads a CSS stylesheet from embedded assets by name.
// The name should not include the .css extension.
func (e *EmbeddedLoader) LoadStyle(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	content, err := styles.ReadFile("styles/" + name + ".css")
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrStyleNotFound, name)
	}

	return string(content), nil
}

// LoadTemplate loads a page template from embedded assets by name.
// The name should not include the .html extension.
func (e *EmbeddedLoader) LoadTemplate(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	content, err := templates.ReadFile("templates/" + name + ".html")
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrTemplateNotFound, name)
	}

	return string(content), nil
}

// MustTemplate returns an embedded template by name, panicking if absent.
// Embedded assets are fixed at compile time, so a miss is programmer
// error.
func MustTemplate(name string) string {
	content, err := NewEmbeddedLoader().LoadTemplate(name)
	if err != nil {
		panic("assets: " + err.Error())
	}
	return content
}

// MustStyle returns an embedded stylesheet by name, panicking if absent.
func MustStyle(name string) string {
	content, err := NewEmbeddedLoader().LoadStyle(name)
	if err != nil {
		panic("assets: " + err.Error())
	}
	return content
}

// Compile-time interface check.
var _ Loader = (*EmbeddedLoader)(nil)
