package main

import (
	"errors"
	"os"

	md2site "github.com/alnah/go-md2site"
)

// Exit codes for the md2site CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage/input, 3=I/O.
const (
	ExitSuccess = 0 // Successful run (including the no-argument no-op)
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags or malformed document input
	ExitIO      = 3 // File not found, permission denied
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must wrap with
// fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) || errors.Is(err, os.ErrPermission) {
		return ExitIO
	}

	// Malformed input (exit 2)
	if errors.Is(err, md2site.ErrEmptyMarkdown) ||
		errors.Is(err, md2site.ErrFrontmatter) ||
		errors.Is(err, md2site.ErrFootnoteFormat) ||
		errors.Is(err, md2site.ErrDeckPayload) ||
		errors.Is(err, md2site.ErrDeckField) ||
		errors.Is(err, md2site.ErrTemplateRender) {
		return ExitUsage
	}

	return ExitGeneral
}
