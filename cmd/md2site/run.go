package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	md2site "github.com/alnah/go-md2site"
	"github.com/alnah/go-md2site/internal/assets"
	"github.com/alnah/go-md2site/internal/fileutil"
)

// Fixed output names and permissions.
const (
	stylesheetName = "tufte.css"
	outputDirPerm  = 0o755
	outputFilePerm = 0o644
)

// run converts every markdown document under the source directory into
// the destination directory. With fewer than two positional arguments it
// performs no work and reports success.
//
// Documents are converted strictly sequentially in traversal order; the
// first failure aborts the batch with no per-document isolation. Output is
// flattened into the destination root: source subdirectory structure is
// not preserved.
func run(ctx context.Context, flags *cliFlags, args []string, stderr io.Writer) error {
	if len(args) < 2 {
		return nil
	}
	sourceDir, destDir := args[0], args[1]

	style, tmplSource, err := resolveAssets(flags)
	if err != nil {
		return err
	}

	var opts []md2site.Option
	if tmplSource != "" {
		opts = append(opts, md2site.WithPageTemplate(tmplSource))
	}
	svc := md2site.New(opts...)

	docs, err := discoverDocuments(sourceDir)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(destDir, outputDirPerm); err != nil {
		return fmt.Errorf("creating destination: %w", err)
	}

	for _, doc := range docs {
		if err := convertDocument(ctx, svc, doc, destDir); err != nil {
			return err
		}
		if flags.verbose {
			fmt.Fprintf(stderr, "rendered %s\n", doc)
		}
	}

	// One shared stylesheet per run, at the destination root.
	stylePath := filepath.Join(destDir, stylesheetName)
	if err := os.WriteFile(stylePath, []byte(style), outputFilePerm); err != nil {
		return fmt.Errorf("writing stylesheet: %w", err)
	}

	return nil
}

// convertDocument reads, converts, and writes a single document. The
// output file keeps the source stem with the extension swapped to .html.
func convertDocument(ctx context.Context, svc *md2site.Service, path, destDir string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	stem := strings.TrimSuffix(filepath.Base(path), ".md")
	page, err := svc.Convert(ctx, md2site.Input{
		Markdown: string(raw),
		Title:    stem,
	})
	if err != nil {
		return fmt.Errorf("converting %s: %w", path, err)
	}

	outPath := filepath.Join(destDir, fileutil.SwapExtension(filepath.Base(path), ".html"))
	if err := os.WriteFile(outPath, []byte(page), outputFilePerm); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}
	return nil
}

// resolveAssets returns the stylesheet content to ship and the optional
// page template override source.
func resolveAssets(flags *cliFlags) (style, tmplSource string, err error) {
	if flags.style != "" {
		content, err := os.ReadFile(flags.style)
		if err != nil {
			return "", "", fmt.Errorf("reading stylesheet override: %w", err)
		}
		style = string(content)
	} else {
		style = assets.MustStyle("tufte")
	}

	if flags.template != "" {
		content, err := os.ReadFile(flags.template)
		if err != nil {
			return "", "", fmt.Errorf("reading template override: %w", err)
		}
		tmplSource = string(content)
	}

	return style, tmplSource, nil
}
