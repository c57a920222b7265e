// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pdiddy/mdreader/internal/document"
)

func testDoc(t *testing.T) *document.Document {
	t.Helper()
	path := filepath.Join(t.TempDir(), "notes.md")
	content := "# Notes\n\nIntro **bold**.\n\n## Table\n\n| a | b |\n|---|---|\n| 1 | 2 |\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	doc, err := document.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

func TestHTML(t *testing.T) {
	doc := testDoc(t)

	page, err := HTML(doc, "")
	if err != nil {
		t.Fatal(err)
	}

	for _, want := range []string{
		"<!DOCTYPE html>",
		"<title>Notes</title>",
		`<meta name="viewport"`,
		"<h1", "<h2",
		"<strong>bold</strong>",
		"<table>", // GFM tables enabled
	} {
		if !strings.Contains(page, want) {
			t.Errorf("HTML missing %q", want)
		}
	}

	// The bundled stylesheet is inlined by default.
	if !strings.Contains(page, "<style>") || !strings.Contains(page, "font-family") {
		t.Error("default stylesheet not inlined")
	}
}

func TestHTMLCustomCSS(t *testing.T) {
	doc := testDoc(t)

	page, err := HTML(doc, "body { color: red; }")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(page, "color: red") {
		t.Error("custom CSS not inlined")
	}
	if strings.Contains(page, "font-family") {
		t.Error("default CSS should be replaced")
	}
}

func TestLoadCSS(t *testing.T) {
	if css, err := LoadCSS(""); err != nil || css != DefaultCSS {
		t.Errorf("empty path should return DefaultCSS (err=%v)", err)
	}

	path := filepath.Join(t.TempDir(), "custom.css")
	if err := os.WriteFile(path, []byte("p{}"), 0o644); err != nil {
		t.Fatal(err)
	}
	if css, err := LoadCSS(path); err != nil || css != "p{}" {
		t.Errorf("LoadCSS = %q, %v", css, err)
	}

	if _, err := LoadCSS(filepath.Join(t.TempDir(), "missing.css")); err == nil {
		t.Error("expected error for missing stylesheet")
	}
}

func TestExportHTMLOnly(t *testing.T) {
	doc := testDoc(t)

	res, err := Export(t.Context(), doc, Options{SkipPDF: true})
	if err != nil {
		t.Fatal(err)
	}

	wantHTML := strings.TrimSuffix(doc.Path, ".md") + ".html"
	if res.HTMLPath != wantHTML {
		t.Errorf("html path = %q, want %q", res.HTMLPath, wantHTML)
	}
	if res.PDFPath != "" {
		t.Errorf("pdf path = %q, want empty", res.PDFPath)
	}

	data, err := os.ReadFile(res.HTMLPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "<title>Notes</title>") {
		t.Error("written HTML lacks title")
	}
}

func TestExportWithEngine(t *testing.T) {
	doc := testDoc(t)

	exec := &mockExecutor{
		availableBins: map[string]bool{binWkhtmltopdf: true},
		silentOK:      true,
	}
	engine := &WkhtmltopdfEngine{exec: exec}

	res, err := Export(t.Context(), doc, Options{Engine: engine})
	if err != nil {
		t.Fatal(err)
	}
	if res.PDFPath != strings.TrimSuffix(doc.Path, ".md")+".pdf" {
		t.Errorf("pdf path = %q", res.PDFPath)
	}

	last := exec.calls[len(exec.calls)-1]
	if last[0] != binWkhtmltopdf {
		t.Errorf("engine did not invoke %s: %v", binWkhtmltopdf, last)
	}
}
