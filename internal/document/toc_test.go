// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package document

import (
	"os"
	"strings"
	"testing"
)

func TestTOC(t *testing.T) {
	doc := writeDoc(t, sample)

	toc := doc.TOC(nil)
	want := []string{
		"- [Notes](#notes)",
		"  - [Research](#research)",
		"    - [Results](#results)",
		"  - [Ideas](#ideas)",
	}
	if got := strings.Split(toc, "\n"); len(got) != len(want) {
		t.Fatalf("toc lines = %d, want %d:\n%s", len(got), len(want), toc)
	}
	for i, line := range strings.Split(toc, "\n") {
		if line != want[i] {
			t.Errorf("line %d = %q, want %q", i, line, want[i])
		}
	}
}

func TestSaveTOC(t *testing.T) {
	doc := writeDoc(t, sample)

	if err := doc.SaveTOC(nil); err != nil {
		t.Fatal(err)
	}

	// The TOC is the first child of the header.
	first := doc.Header().Children()[0]
	if first.Name != DefaultTOCName {
		t.Errorf("first child = %q, want %q", first.Name, DefaultTOCName)
	}
	if !strings.Contains(first.Content, "[Research](#research)") {
		t.Errorf("toc content = %q", first.Content)
	}

	// Regenerating replaces the old TOC and never lists it.
	if err := doc.SaveTOC(nil); err != nil {
		t.Fatal(err)
	}
	first = doc.Header().Children()[0]
	if strings.Contains(first.Content, "[Content](") {
		t.Errorf("toc lists itself: %q", first.Content)
	}

	// The saved file parses back with the TOC in place.
	again, err := Open(doc.Path)
	if err != nil {
		t.Fatal(err)
	}
	if again.Header().Children()[0].Name != DefaultTOCName {
		t.Error("saved TOC lost on reload")
	}
}

func TestSaveTOCCustomAnchor(t *testing.T) {
	doc := writeDoc(t, sample)
	for _, s := range []string{"Research", "Results", "Ideas"} {
		doc.Section(s).Meta = map[string]any{"path": "./" + strings.ToLower(s)}
	}

	err := doc.SaveTOC(func(s *Section) string {
		if p, ok := s.Meta["path"].(string); ok {
			return p
		}
		return GitHubAnchor(s)
	})
	if err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(doc.Path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "[Research](./research)") {
		t.Errorf("custom anchor missing:\n%s", data)
	}
}

func TestApplyTemplate(t *testing.T) {
	doc := writeDoc(t, "# Prompt\n")

	if err := doc.ApplyTemplate(TemplateLLM, OnExistError, false); err != nil {
		t.Fatal(err)
	}

	names := []string{"Context", "RAG", "CAG", "System Prompt", "History"}
	children := doc.Header().Children()
	if len(children) != len(names) {
		t.Fatalf("children = %d, want %d", len(children), len(names))
	}
	for i, name := range names {
		if children[i].Name != name {
			t.Errorf("child %d = %q, want %q", i, children[i].Name, name)
		}
	}
	if got := doc.Section("System Prompt").Content; got != "Respond in Markdown format" {
		t.Errorf("system prompt = %q", got)
	}
	if doc.Header().Content == "" {
		t.Error("header placeholder missing")
	}

	// A second application leaves existing sections untouched.
	doc.Section("Context").Content = "kept"
	if err := doc.ApplyTemplate(TemplateLLM, OnExistError, false); err != nil {
		t.Fatal(err)
	}
	if got := doc.Section("Context").Content; got != "kept" {
		t.Errorf("context = %q, want kept", got)
	}

	// Clear drops everything first.
	if err := doc.ApplyTemplate(TemplateLLM, OnExistError, true); err != nil {
		t.Fatal(err)
	}
	if got := doc.Section("Context").Content; got != "" {
		t.Errorf("context after clear = %q", got)
	}

	if err := doc.ApplyTemplate("weekly", OnExistError, false); err == nil {
		t.Error("unknown template should fail")
	}
}
