package main

import (
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/alnah/go-md2site/internal/fileutil"
)

// discoverDocuments walks the source tree and returns markdown file paths
// in traversal order. A dot-prefixed entry is skipped along with all of
// its descendants.
func discoverDocuments(sourceDir string) ([]string, error) {
	var docs []string

	err := filepath.WalkDir(sourceDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}

		// The root itself may be spelled "." or live under a dot
		// directory; only prune hidden entries below it.
		if path != sourceDir && fileutil.IsHidden(d.Name()) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if !d.IsDir() && fileutil.IsMarkdown(d.Name()) {
			docs = append(docs, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return docs, nil
}
