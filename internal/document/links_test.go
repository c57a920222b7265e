// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package document

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLinks(t *testing.T) {
	dir := t.TempDir()
	attachment := filepath.Join(dir, "data.csv")
	if err := os.WriteFile(attachment, []byte("a,b\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	doc := writeDoc(t, "# Top\n\n## Refs\n\n"+
		"![diagram](<images/flow.png>)\n"+
		"See [the data]("+attachment+") and [the site](https://example.com).\n")
	refs := doc.Section("Refs")

	images := refs.Images()
	if len(images) != 1 || images[0] != "images/flow.png" {
		t.Errorf("images = %v", images)
	}

	docs := refs.Docs()
	if len(docs) != 1 || docs[0].Target != attachment || docs[0].Name != "the data" {
		t.Errorf("docs = %v", docs)
	}

	urls := refs.URLs()
	if len(urls) != 1 || urls[0].Target != "https://example.com" {
		t.Errorf("urls = %v", urls)
	}

	if got := len(refs.Resources()); got != 2 {
		t.Errorf("resources = %d, want 2", got)
	}
}

func TestLinksIgnoresImages(t *testing.T) {
	doc := writeDoc(t, "# Top\n\n## Refs\n\n![alt](pic.png) then [doc](missing.txt)\n")
	refs := doc.Section("Refs")

	for _, l := range refs.Resources() {
		if l.Name == "alt" {
			t.Errorf("image link leaked into resources: %v", l)
		}
	}
	if got := len(refs.URLs()); got != 1 {
		t.Errorf("urls = %d, want 1", got)
	}
}
