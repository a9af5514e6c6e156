// Package assets provides the embedded page template and stylesheets
// shipped with the site generator, plus named loaders for overriding them.
package assets

// Loader resolves styles and templates by name.
type Loader interface {
	// LoadStyle loads a CSS stylesheet by name (without the .css extension).
	LoadStyle(name string) (string, error)

	// LoadTemplate loads a page template by name (without the .html extension).
	LoadTemplate(name string) (string, error)
}
