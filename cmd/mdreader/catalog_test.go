// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/pdiddy/mdreader/internal/catalog"
	"github.com/pdiddy/mdreader/pkg/types"
)

func TestFormatSearchOutput(t *testing.T) {
	results := []catalog.QueryResult{
		{
			SectionRecord: types.SectionRecord{
				ID:           "notes/" + strings.Repeat("я", 60),
				DocumentPath: "notes.md",
				Name:         "Методы",
				Level:        2,
				Content:      strings.Repeat("п", 60),
			},
			DocumentTitle: "Заметки",
		},
	}

	var buf bytes.Buffer
	if err := formatSearchOutput(&buf, results, false); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	if !utf8.ValidString(out) {
		t.Errorf("truncation broke UTF-8:\n%s", out)
	}
	if !strings.Contains(out, "...") {
		t.Errorf("long fields not truncated:\n%s", out)
	}
	if !strings.Contains(out, "1 results") {
		t.Errorf("missing result count:\n%s", out)
	}
}

func TestFormatSearchOutputEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := formatSearchOutput(&buf, nil, false); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "No results") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"short", 50, "short"},
		{strings.Repeat("a", 60), 50, strings.Repeat("a", 47) + "..."},
		{strings.Repeat("ё", 60), 50, strings.Repeat("ё", 47) + "..."},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.max); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
		}
	}
}
