// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/pdiddy/mdreader/pkg/types"
)

// PageOptions controls the PDF page layout. The zero value means A4 with
// uniform 10 mm margins, the defaults the original pdfkit setup used.
type PageOptions struct {
	// Size is the paper size name: A4, A3, A5, Letter or Legal.
	Size string

	// Margin is the uniform page margin with unit suffix, e.g. "10mm".
	Margin string
}

func (p PageOptions) withDefaults() PageOptions {
	if p.Size == "" {
		p.Size = "A4"
	}
	if p.Margin == "" {
		p.Margin = "10mm"
	}
	return p
}

// Engine converts a rendered HTML file into a PDF.
type Engine interface {
	// Name returns the engine name ("wkhtmltopdf" or "chrome").
	Name() string

	// Available reports whether the engine's binary can be found and run.
	Available() bool

	// Render converts htmlPath into a PDF written to pdfPath.
	Render(ctx context.Context, htmlPath, pdfPath string, page PageOptions) error
}

// NewEngine returns the engine for an explicit selection, or auto-detects
// one when kind is empty: wkhtmltopdf is preferred, headless Chrome is the
// fallback.
func NewEngine(kind types.PDFEngine) (Engine, error) {
	switch kind {
	case types.EngineWkhtmltopdf:
		return NewWkhtmltopdfEngine(), nil
	case types.EngineChrome:
		return NewChromeEngine(), nil
	case "":
		return detectEngine()
	default:
		return nil, fmt.Errorf("unknown PDF engine %q", kind)
	}
}

func detectEngine() (Engine, error) {
	wk := NewWkhtmltopdfEngine()
	if wk.Available() {
		return wk, nil
	}

	chrome := NewChromeEngine()
	if chrome.Available() {
		return chrome, nil
	}

	return nil, fmt.Errorf(
		"no PDF engine available: neither %s nor a Chrome binary found",
		binWkhtmltopdf,
	)
}

// paperInches maps supported paper sizes to width and height in inches.
var paperInches = map[string][2]float64{
	"A3":     {11.69, 16.54},
	"A4":     {8.27, 11.69},
	"A5":     {5.83, 8.27},
	"LETTER": {8.5, 11},
	"LEGAL":  {8.5, 14},
}

// paperSize resolves a paper size name to inches.
func paperSize(name string) (width, height float64, err error) {
	dims, ok := paperInches[strings.ToUpper(name)]
	if !ok {
		return 0, 0, fmt.Errorf("unsupported paper size %q", name)
	}
	return dims[0], dims[1], nil
}

// parseLength converts a CSS-style length ("10mm", "1.5cm", "0.4in") to
// inches. A bare number is taken as millimeters.
func parseLength(s string) (float64, error) {
	s = strings.TrimSpace(s)
	unit := "mm"
	for _, u := range []string{"mm", "cm", "in"} {
		if strings.HasSuffix(s, u) {
			unit = u
			s = strings.TrimSuffix(s, u)
			break
		}
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid length %q", s)
	}

	switch unit {
	case "mm":
		return v / 25.4, nil
	case "cm":
		return v / 2.54, nil
	default:
		return v, nil
	}
}
