// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package scan snapshots a directory tree into a Markdown document.
// Directories become sections, files become sections whose content is a
// fenced code block tagged with the file's language. The result is saved
// with a table of contents whose anchors are the relative paths.
package scan

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/pdiddy/mdreader/internal/document"
)

// TOCName is the table-of-contents section name for snapshots.
const TOCName = "Directory Structure"

// Options tunes a directory scan.
type Options struct {
	// Output is the snapshot path (default <dir>_structure.md in the
	// working directory).
	Output string

	// Exclude lists doublestar patterns; matching paths are skipped.
	// Patterns match both the path relative to the scanned directory and
	// the base name.
	Exclude []string

	// Include lists doublestar patterns; when non-empty only matching
	// files are included. Directories are always descended into.
	Include []string
}

// entry is one BFS queue element.
type entry struct {
	section *Section
	path    string
}

// Section aliases document.Section for the queue type above.
type Section = document.Section

// Scan walks dir breadth-first and returns the saved snapshot document.
func Scan(dir string, opts Options) (*document.Document, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("scanning %s: not a directory", dir)
	}

	dir = filepath.Clean(dir)
	base := filepath.Base(dir)

	output := opts.Output
	if output == "" {
		output = base + "_structure.md"
	}

	doc, err := document.Create(output)
	if err != nil {
		return nil, err
	}
	doc.TOCName = TOCName
	if err := doc.RenameSection(doc.Header(), base); err != nil {
		return nil, err
	}
	doc.Header().Meta = map[string]any{"path": "./" + base}

	queue := []entry{{doc.Header(), dir}}
	for len(queue) > 0 {
		e := queue[0]
		queue = queue[1:]

		entries, err := os.ReadDir(e.path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", e.path, err)
		}
		sortEntries(entries)

		for _, item := range entries {
			itemPath := filepath.Join(e.path, item.Name())
			rel, err := filepath.Rel(dir, itemPath)
			if err != nil {
				return nil, err
			}
			if matchesAny(opts.Exclude, rel, item.Name()) {
				continue
			}
			if !item.IsDir() && len(opts.Include) > 0 && !matchesAny(opts.Include, rel, item.Name()) {
				continue
			}

			relLink := "./" + filepath.ToSlash(filepath.Join(base, rel))
			content := ""
			if !item.IsDir() {
				content = fileContent(itemPath, relLink)
			}

			section, err := addUnique(e.section, itemPath, content, relLink)
			if err != nil {
				return nil, err
			}
			if item.IsDir() {
				queue = append(queue, entry{section, itemPath})
			}
		}
	}

	if err := doc.SaveTOC(pathAnchor); err != nil {
		return nil, err
	}
	return doc, nil
}

// pathAnchor links TOC entries to the section's recorded relative path.
func pathAnchor(s *Section) string {
	if p, ok := s.Meta["path"].(string); ok {
		return p
	}
	return document.GitHubAnchor(s)
}

// sortEntries orders directories before files, then case-insensitively
// by name.
func sortEntries(entries []os.DirEntry) {
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].IsDir() != entries[j].IsDir() {
			return entries[i].IsDir()
		}
		return strings.ToLower(entries[i].Name()) < strings.ToLower(entries[j].Name())
	})
}

// matchesAny reports whether any pattern matches the relative path or the
// base name.
func matchesAny(patterns []string, rel, name string) bool {
	for _, p := range patterns {
		if ok, _ := doublestar.Match(p, filepath.ToSlash(rel)); ok {
			return true
		}
		if ok, _ := doublestar.Match(p, name); ok {
			return true
		}
	}
	return false
}

// fileContent renders a file as a fenced code block. Images and PDFs
// become links; unreadable or non-UTF-8 files degrade to a note.
func fileContent(path, relLink string) string {
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	switch filepath.Ext(path) {
	case ".png", ".jpeg", ".jpg":
		return fmt.Sprintf("![%s](%s)", stem, relLink)
	case ".pdf":
		return fmt.Sprintf("[%s](%s)", stem, relLink)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Sprintf("Could not read file: %v", err)
	}
	if !utf8.Valid(data) {
		return "Could not read file: not valid UTF-8"
	}
	return fmt.Sprintf("```%s\n%s\n```", languages[filepath.Ext(path)], data)
}

// addUnique adds a section named after the item, disambiguating clashes by
// prefixing ancestor directory names: name, parent|name, grandparent|parent|name.
func addUnique(parent *Section, itemPath, content, relLink string) (*Section, error) {
	name := filepath.Base(itemPath)
	ancestor := filepath.Dir(itemPath)
	for {
		s, err := parent.AddSection(name, content, document.AddOptions{
			Meta:    map[string]any{"path": relLink},
			OnExist: document.OnExistError,
		})
		if err == nil {
			return s, nil
		}

		up := filepath.Dir(ancestor)
		if up == ancestor {
			return nil, fmt.Errorf("naming %s: %w", itemPath, err)
		}
		name = filepath.Base(ancestor) + "|" + name
		ancestor = up
	}
}
