// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/mdreader/internal/document"
)

// Options tunes a document export. Zero-value fields take defaults:
// outputs land next to the source file, the bundled stylesheet is used,
// and the engine is auto-detected.
type Options struct {
	// HTMLPath overrides the HTML output path (default <stem>.html next
	// to the document).
	HTMLPath string

	// PDFPath overrides the PDF output path (default <stem>.pdf next to
	// the document).
	PDFPath string

	// CSS is the raw stylesheet inlined into the HTML head. Empty uses
	// DefaultCSS; see LoadCSS for reading one from disk.
	CSS string

	// Engine performs the HTML-to-PDF step. Nil auto-detects.
	Engine Engine

	// Page controls the PDF page layout.
	Page PageOptions

	// SkipPDF stops after writing the HTML output.
	SkipPDF bool
}

// Result holds the paths written by Export.
type Result struct {
	HTMLPath string
	PDFPath  string
}

// Export writes the document as standalone HTML, then renders that HTML
// to PDF. The HTML file is kept alongside the PDF, mirroring the original
// two-artifact export.
func Export(ctx context.Context, doc *document.Document, opts Options) (Result, error) {
	stem := strings.TrimSuffix(doc.Path, filepath.Ext(doc.Path))
	res := Result{
		HTMLPath: opts.HTMLPath,
		PDFPath:  opts.PDFPath,
	}
	if res.HTMLPath == "" {
		res.HTMLPath = stem + ".html"
	}
	if res.PDFPath == "" {
		res.PDFPath = stem + ".pdf"
	}

	page, err := HTML(doc, opts.CSS)
	if err != nil {
		return Result{}, err
	}
	if err := os.WriteFile(res.HTMLPath, []byte(page), 0o644); err != nil {
		return Result{}, fmt.Errorf("writing HTML: %w", err)
	}

	if opts.SkipPDF {
		res.PDFPath = ""
		return res, nil
	}

	engine := opts.Engine
	if engine == nil {
		if engine, err = NewEngine(""); err != nil {
			return Result{}, err
		}
	}
	if err := engine.Render(ctx, res.HTMLPath, res.PDFPath, opts.Page); err != nil {
		return Result{}, err
	}
	return res, nil
}
