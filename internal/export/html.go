// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export renders documents to standalone HTML and PDF. Markdown is
// converted with goldmark; PDF rendering is delegated to a pluggable Engine
// (wkhtmltopdf or headless Chrome).
package export

import (
	"bytes"
	_ "embed"
	"fmt"
	"html"
	"os"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	htmlrenderer "github.com/yuin/goldmark/renderer/html"

	"github.com/pdiddy/mdreader/internal/document"
)

// DefaultCSS is the stylesheet bundled with the package, used when the
// caller supplies no CSS of its own.
//
//go:embed export.css
var DefaultCSS string

// md is the shared goldmark instance. Raw HTML passes through unchanged;
// GFM covers tables, strikethrough, autolinks and task lists.
var md = goldmark.New(
	goldmark.WithRendererOptions(
		htmlrenderer.WithUnsafe(),
	),
	goldmark.WithExtensions(extension.GFM, extension.Footnote),
)

// HTML renders the document body to a standalone HTML page: document title,
// a viewport meta tag for fluid width, and the stylesheet inlined in the
// head. Empty css selects DefaultCSS.
func HTML(doc *document.Document, css string) (string, error) {
	if css == "" {
		css = DefaultCSS
	}

	var body bytes.Buffer
	if err := md.Convert([]byte(doc.Body()), &body); err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}

	var page bytes.Buffer
	page.WriteString("<!DOCTYPE html>\n<html>\n<head>\n")
	page.WriteString(`<meta charset="utf-8">` + "\n")
	page.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1.0">` + "\n")
	fmt.Fprintf(&page, "<title>%s</title>\n", html.EscapeString(doc.Header().Name))
	page.WriteString("<style>\n" + css + "\n</style>\n")
	page.WriteString("</head>\n<body>\n")
	page.Write(body.Bytes())
	page.WriteString("</body>\n</html>\n")

	return page.String(), nil
}

// LoadCSS reads a stylesheet from disk, falling back to DefaultCSS for an
// empty path.
func LoadCSS(path string) (string, error) {
	if path == "" {
		return DefaultCSS, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading stylesheet: %w", err)
	}
	return string(data), nil
}
