// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package document

import (
	"errors"
	"fmt"
)

// Template identifies a document scaffold applied by ApplyTemplate.
type Template string

// TemplateLLM seeds the skeleton used for prompt documents: a request
// placeholder in the header plus Context, RAG, CAG, System Prompt and
// History sections.
const TemplateLLM Template = "llm"

// ErrUnknownTemplate reports a template name ApplyTemplate does not know.
var ErrUnknownTemplate = errors.New("document: unknown template")

// llmSections lists the template sections in document order, with their
// seeded content.
var llmSections = []struct {
	name    string
	content string
}{
	{"Context", ""},
	{"RAG", ""},
	{"CAG", ""},
	{"System Prompt", "Respond in Markdown format"},
	{"History", ""},
}

// ApplyTemplate scaffolds the document with the named template and saves
// it. With onExist OnExistError, sections that already exist are left
// untouched; clear drops all existing children of the header first.
func (d *Document) ApplyTemplate(tmpl Template, onExist OnExist, clear bool) error {
	if tmpl != TemplateLLM {
		return fmt.Errorf("%w: %q", ErrUnknownTemplate, tmpl)
	}

	if clear {
		for _, c := range d.header.Children() {
			c.walk(func(n *Section) { delete(d.sections, n.Name) })
		}
		d.header.children = nil
	}

	if d.header.Content == "" {
		d.header.Content = "***Write your request here***"
	}

	for _, ts := range llmSections {
		_, err := d.header.AddSection(ts.name, ts.content, AddOptions{OnExist: onExist})
		if err != nil && !errors.Is(err, ErrDuplicateSection) {
			return err
		}
	}

	return d.Save()
}
