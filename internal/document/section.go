// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package document models a Markdown file as a tree of named sections.
// A document has YAML frontmatter, exactly one level-1 heading (the header)
// and nested subsections whose levels deepen one step at a time. The tree
// can be edited in place and serialized back to Markdown.
package document

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrDuplicateSection reports a section name already used in the
	// document. Names are compared case-insensitively.
	ErrDuplicateSection = errors.New("document: duplicate section name")

	// ErrMultipleHeaders reports more than one level-1 heading.
	ErrMultipleHeaders = errors.New("document: more than one level-1 heading")

	// ErrNesting reports a heading whose level jumps more than one step
	// below its parent.
	ErrNesting = errors.New("document: incorrect heading nesting")

	// ErrDeleteHeader reports an attempt to delete the document header.
	ErrDeleteHeader = errors.New("document: cannot delete the header section")
)

// OnExist selects the behavior of AddSection when the name is taken.
type OnExist string

const (
	// OnExistUpdate replaces the content of the existing child and merges
	// metadata. This is the default.
	OnExistUpdate OnExist = "update"

	// OnExistReplace removes the existing section, wherever it lives in
	// the tree, and creates a fresh one under the target parent.
	OnExistReplace OnExist = "replace"

	// OnExistError fails with ErrDuplicateSection.
	OnExistError OnExist = "error"
)

// Section is one node of the document tree.
type Section struct {
	// Name is the heading text, unique within the document.
	Name string

	// Level is the heading depth; the header is level 1.
	Level int

	// Content is the body between this heading and the next one,
	// surrounding blank lines trimmed.
	Content string

	// Meta carries free-form metadata for the section. It is not
	// serialized into the Markdown body.
	Meta map[string]any

	parent   *Section
	children []*Section
	doc      *Document
}

// Parent returns the enclosing section, or nil for the header.
func (s *Section) Parent() *Section { return s.parent }

// Children returns the child sections in document order. The returned
// slice is shared; callers must not modify it.
func (s *Section) Children() []*Section { return s.children }

// Child returns the direct child with the given name, or nil.
func (s *Section) Child(name string) *Section {
	for _, c := range s.children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// Path returns the slash-separated path from the document name down to
// this section, e.g. "notes/Research/Results".
func (s *Section) Path() string {
	if s.parent == nil {
		return s.doc.Name + "/" + s.Name
	}
	return s.parent.Path() + "/" + s.Name
}

// Text returns the section content with surrounding blank lines removed.
func (s *Section) Text() string {
	return strings.TrimSpace(strings.Trim(s.Content, "\n"))
}

// AddOptions tunes AddSection. The zero value updates an existing child in
// place and demotes embedded headings.
type AddOptions struct {
	// Meta is merged into the section metadata.
	Meta map[string]any

	// OnExist selects the collision behavior; empty means OnExistUpdate.
	OnExist OnExist

	// KeepHeadings leaves heading lines in content untouched. By default
	// embedded headings are demoted to ***name*** so pasted Markdown
	// cannot restructure the tree.
	KeepHeadings bool
}

// AddSection creates (or updates) a child section one level below s and
// returns it. Section names are unique across the document, compared
// case-insensitively; collisions follow opts.OnExist. A re-added section
// moves to the end of the parent's children.
func (s *Section) AddSection(name, content string, opts AddOptions) (*Section, error) {
	if !opts.KeepHeadings {
		content = demoteHeadings(content)
	}
	content = strings.TrimSpace(content)

	onExist := opts.OnExist
	if onExist == "" {
		onExist = OnExistUpdate
	}

	if existing := s.Child(name); existing != nil && onExist == OnExistUpdate {
		existing.Content = content
		for k, v := range opts.Meta {
			if existing.Meta == nil {
				existing.Meta = map[string]any{}
			}
			existing.Meta[k] = v
		}
		s.moveToEnd(existing)
		return existing, nil
	}

	if prior := s.doc.lookupFold(name); prior != nil {
		// The header can never be replaced by a child.
		if onExist != OnExistReplace || prior.parent == nil {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateSection, name)
		}
		s.doc.remove(prior)
	}

	child := &Section{
		Name:    name,
		Level:   s.Level + 1,
		Content: content,
		Meta:    opts.Meta,
		parent:  s,
		doc:     s.doc,
	}
	s.children = append(s.children, child)
	s.doc.index(child)
	return child, nil
}

// moveToEnd shifts an existing child to the last position.
func (s *Section) moveToEnd(child *Section) {
	for i, c := range s.children {
		if c == child {
			s.children = append(append(s.children[:i:i], s.children[i+1:]...), child)
			return
		}
	}
}

// insertFirst places child at the front of the children list.
func (s *Section) insertFirst(child *Section) {
	s.children = append([]*Section{child}, s.children...)
}

// walk visits s and all descendants depth-first in document order.
func (s *Section) walk(fn func(*Section)) {
	fn(s)
	for _, c := range s.children {
		c.walk(fn)
	}
}

// demoteHeadings rewrites heading lines outside code fences to
// ***name*** emphasis so embedded Markdown cannot introduce sections.
func demoteHeadings(content string) string {
	var (
		lines []string
		code  bool
	)
	for _, line := range strings.Split(content, "\n") {
		if strings.HasPrefix(line, "```") {
			code = !code
		}
		if strings.HasPrefix(line, "#") && !code {
			_, name := ParseHeading(line)
			lines = append(lines, "***"+name+"***")
			continue
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
