// Package fileutil provides file and path helpers for site generation.
package fileutil

import (
	"os"
	"path/filepath"
	"strings"
)

// IsHidden reports whether a directory entry name is dot-prefixed.
func IsHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}

// IsMarkdown reports whether a file name ends in .md.
func IsMarkdown(name string) bool {
	return strings.HasSuffix(name, ".md")
}

// SwapExtension returns name with its extension replaced by ext.
// The replacement extension must include the leading dot.
//
// Examples:
//   - SwapExtension("note.md", ".html") -> "note.html"
//   - SwapExtension("note", ".html") -> "note.html"
func SwapExtension(name, ext string) string {
	return strings.TrimSuffix(name, filepath.Ext(name)) + ext
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
