// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// DocumentRecord holds catalog metadata for an indexed Markdown document.
type DocumentRecord struct {
	// Path is the document's filesystem path, unique within the catalog.
	Path string `json:"path" yaml:"path"`

	// Title is the document header name (the single H1).
	Title string `json:"title" yaml:"title"`

	// ModTime is the file modification time recorded at indexing.
	ModTime time.Time `json:"mod_time" yaml:"mod_time"`
}

// SectionRecord holds one indexed section of a document.
type SectionRecord struct {
	// ID is the section's slash path within the document
	// (e.g. "notes/Research/Results").
	ID string `json:"id" yaml:"id"`

	// DocumentPath references the owning DocumentRecord.
	DocumentPath string `json:"document_path" yaml:"document_path"`

	// Name is the section heading text.
	Name string `json:"name" yaml:"name"`

	// Level is the heading depth (header is 1).
	Level int `json:"level" yaml:"level"`

	// Content is the section body, without child sections.
	Content string `json:"content" yaml:"content"`

	// Tags are free-form labels from the section metadata.
	Tags []string `json:"tags,omitempty" yaml:"tags,omitempty"`
}
