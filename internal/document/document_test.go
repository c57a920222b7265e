// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package document

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeDoc creates a Markdown file in a temp dir and opens it.
func writeDoc(t *testing.T, content string) *Document {
	t.Helper()
	path := filepath.Join(t.TempDir(), "notes.md")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	doc, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

const sample = `---
title: Notes
---

# Notes

Intro text.

## Research

Findings.

### Results

Numbers.

## Ideas

- one
- two
`

func TestOpen(t *testing.T) {
	doc := writeDoc(t, sample)

	if got := doc.Header().Name; got != "Notes" {
		t.Errorf("header = %q, want %q", got, "Notes")
	}
	if got := doc.Meta["title"]; got != "Notes" {
		t.Errorf("meta title = %v, want Notes", got)
	}
	if doc.Sections() != 4 {
		t.Errorf("sections = %d, want 4", doc.Sections())
	}

	research := doc.Section("Research")
	if research == nil {
		t.Fatal("missing Research section")
	}
	if research.Level != 2 {
		t.Errorf("Research level = %d, want 2", research.Level)
	}
	if got := research.Text(); got != "Findings." {
		t.Errorf("Research text = %q", got)
	}

	results := doc.Section("Results")
	if results == nil || results.Parent() != research {
		t.Error("Results should be a child of Research")
	}
	if got := results.Path(); got != "notes/Notes/Research/Results" {
		t.Errorf("Results path = %q", got)
	}
}

func TestOpenEmptyFrontmatter(t *testing.T) {
	doc := writeDoc(t, "---\n---\n# Title\n\nBody.\n")

	if len(doc.Meta) != 0 {
		t.Errorf("meta = %v, want empty", doc.Meta)
	}
	if got := doc.Header().Name; got != "Title" {
		t.Errorf("header = %q, want Title", got)
	}
	if got := doc.Header().Text(); got != "Body." {
		t.Errorf("header text = %q", got)
	}
}

func TestOpenErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{
			name:    "two level-1 headings",
			content: "# One\n\n# Two\n",
			wantErr: ErrMultipleHeaders,
		},
		{
			name:    "nesting jump",
			content: "# One\n\n### Deep\n",
			wantErr: ErrNesting,
		},
		{
			name:    "duplicate names",
			content: "# One\n\n## Part\n\n## part\n",
			wantErr: ErrDuplicateSection,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.md")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}
			_, err := Open(path)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestOpenRequiresMarkdownExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	if err := os.WriteFile(path, []byte("# X\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Open(path); err == nil {
		t.Error("expected error for non-.md path")
	}
}

func TestCodeFenceShieldsHeadings(t *testing.T) {
	doc := writeDoc(t, "# Top\n\n## Code\n\n```bash\n# not a heading\necho hi\n```\n")

	if doc.Sections() != 2 {
		t.Fatalf("sections = %d, want 2", doc.Sections())
	}
	code := doc.Section("Code")
	if !strings.Contains(code.Content, "# not a heading") {
		t.Errorf("fenced comment lost: %q", code.Content)
	}
}

func TestEmptyFileSynthesizesHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trip_report.md")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	doc, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := doc.Header().Name; got != "Trip Report" {
		t.Errorf("header = %q, want %q", got, "Trip Report")
	}

	// The synthesized header is written back to disk.
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := string(data); got != "# Trip Report\n" {
		t.Errorf("file = %q", got)
	}
}

func TestAddSection(t *testing.T) {
	doc := writeDoc(t, sample)

	s, err := doc.Section("Ideas").AddSection("Later", "Maybe.", AddOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if s.Level != 3 {
		t.Errorf("level = %d, want 3", s.Level)
	}
	if doc.Section("Later") != s {
		t.Error("new section not indexed")
	}

	// Update in place: content replaced, meta merged, moved to end.
	if _, err := doc.Section("Ideas").AddSection("Later", "Changed.", AddOptions{
		Meta: map[string]any{"k": "v"},
	}); err != nil {
		t.Fatal(err)
	}
	if got := doc.Section("Later").Content; got != "Changed." {
		t.Errorf("content = %q", got)
	}
	if got := doc.Section("Later").Meta["k"]; got != "v" {
		t.Errorf("meta = %v", got)
	}
}

func TestAddSectionDuplicate(t *testing.T) {
	doc := writeDoc(t, sample)

	// Same name under a different parent collides, case-insensitively.
	_, err := doc.Section("Ideas").AddSection("research", "", AddOptions{})
	if !errors.Is(err, ErrDuplicateSection) {
		t.Errorf("err = %v, want ErrDuplicateSection", err)
	}
	_, err = doc.Section("Ideas").AddSection("Results", "", AddOptions{OnExist: OnExistError})
	if !errors.Is(err, ErrDuplicateSection) {
		t.Errorf("err = %v, want ErrDuplicateSection", err)
	}

	// Replace moves the section under the new parent.
	s, err := doc.Section("Ideas").AddSection("Results", "Moved.", AddOptions{OnExist: OnExistReplace})
	if err != nil {
		t.Fatal(err)
	}
	if s.Parent() != doc.Section("Ideas") {
		t.Error("replaced section should live under Ideas")
	}
	if len(doc.Section("Research").Children()) != 0 {
		t.Error("old parent should have no children left")
	}
}

func TestAddSectionDemotesHeadings(t *testing.T) {
	doc := writeDoc(t, sample)

	s, err := doc.Section("Ideas").AddSection("Pasted", "## Sub\n\ntext\n\n```\n# keep\n```", AddOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(s.Content, "***Sub***") {
		t.Errorf("heading not demoted: %q", s.Content)
	}
	if !strings.Contains(s.Content, "# keep") {
		t.Errorf("fenced heading should survive: %q", s.Content)
	}
}

func TestDeleteSection(t *testing.T) {
	doc := writeDoc(t, sample)

	if err := doc.DeleteSection("Research"); err != nil {
		t.Fatal(err)
	}
	if doc.Section("Research") != nil || doc.Section("Results") != nil {
		t.Error("subtree should be gone from the index")
	}
	if err := doc.DeleteSection("never existed"); err != nil {
		t.Errorf("unknown name should be a no-op, got %v", err)
	}
	if err := doc.DeleteSection("Notes"); !errors.Is(err, ErrDeleteHeader) {
		t.Errorf("err = %v, want ErrDeleteHeader", err)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	doc := writeDoc(t, sample)

	if _, err := doc.Header().AddSection("Links", "See [docs](https://example.com).", AddOptions{}); err != nil {
		t.Fatal(err)
	}
	if err := doc.Save(); err != nil {
		t.Fatal(err)
	}

	again, err := Open(doc.Path)
	if err != nil {
		t.Fatal(err)
	}
	if again.Sections() != 5 {
		t.Errorf("sections = %d, want 5", again.Sections())
	}
	if got := again.Section("Links").Text(); got != "See [docs](https://example.com)." {
		t.Errorf("Links text = %q", got)
	}
	if got := again.Meta["title"]; got != "Notes" {
		t.Errorf("frontmatter lost: %v", got)
	}

	data, _ := os.ReadFile(doc.Path)
	if !strings.HasSuffix(string(data), ".\n") || strings.HasSuffix(string(data), "\n\n") {
		t.Errorf("file should end with a single newline: %q", string(data[len(data)-4:]))
	}
}

func TestTitleCase(t *testing.T) {
	tests := []struct{ in, want string }{
		{"trip_report", "Trip Report"},
		{"notes", "Notes"},
		{"отчёт_поездки", "Отчёт Поездки"},
	}
	for _, tt := range tests {
		if got := titleCase(tt.in); got != tt.want {
			t.Errorf("titleCase(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCreateUnique(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "report.md")
	if err := os.WriteFile(path, []byte("# Report\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	doc, err := CreateUnique(path)
	if err != nil {
		t.Fatal(err)
	}
	if doc.Path != filepath.Join(dir, "report_1.md") {
		t.Errorf("path = %q", doc.Path)
	}
	if doc.Header().Name != "Report 1" {
		t.Errorf("header = %q", doc.Header().Name)
	}
}

func TestParseHeading(t *testing.T) {
	tests := []struct {
		line      string
		wantLevel int
		wantName  string
	}{
		{"# Title", 1, "Title"},
		{"### Deep One ", 3, "Deep One"},
		{"##NoSpace", 2, "NoSpace"},
	}
	for _, tt := range tests {
		level, name := ParseHeading(tt.line)
		if level != tt.wantLevel || name != tt.wantName {
			t.Errorf("ParseHeading(%q) = (%d, %q), want (%d, %q)",
				tt.line, level, name, tt.wantLevel, tt.wantName)
		}
	}
}

func TestRenameSection(t *testing.T) {
	doc := writeDoc(t, sample)

	if err := doc.RenameSection(doc.Section("Ideas"), "Plans"); err != nil {
		t.Fatal(err)
	}
	if doc.Section("Ideas") != nil || doc.Section("Plans") == nil {
		t.Error("rename did not update the index")
	}
	if err := doc.RenameSection(doc.Section("Plans"), "research"); !errors.Is(err, ErrDuplicateSection) {
		t.Errorf("err = %v, want ErrDuplicateSection", err)
	}
}
