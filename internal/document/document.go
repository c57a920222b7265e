// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package document

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/pdiddy/mdreader/internal/frontmatter"
	"github.com/pdiddy/mdreader/internal/fsutil"
)

// DefaultTOCName is the section name used for generated tables of content.
const DefaultTOCName = "Content"

// Document is a Markdown file parsed into frontmatter and a section tree.
type Document struct {
	// Path is the backing file.
	Path string

	// Name is the file stem, used as the root of section paths.
	Name string

	// TOCName is the section that SaveTOC (re)generates.
	TOCName string

	// Meta is the YAML frontmatter.
	Meta frontmatter.Matter

	header   *Section
	sections map[string]*Section // keyed by exact name
}

// Open reads and parses an existing Markdown document.
func Open(path string) (*Document, error) {
	if err := fsutil.RequireMarkdown(path); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading document: %w", err)
	}
	return parse(path, data)
}

// Create creates (or truncates) a Markdown document at path with a header
// derived from the file stem.
func Create(path string) (*Document, error) {
	if err := fsutil.RequireMarkdown(path); err != nil {
		return nil, err
	}
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		return nil, fmt.Errorf("creating document: %w", err)
	}
	return parse(path, nil)
}

// CreateUnique creates a document at a collision-free variant of path
// (report.md, report_1.md, ...).
func CreateUnique(path string) (*Document, error) {
	if err := fsutil.RequireMarkdown(path); err != nil {
		return nil, err
	}
	return Create(fsutil.GeneratePath(path))
}

// Header returns the root section (the single H1).
func (d *Document) Header() *Section { return d.header }

// Section returns the section with the given name, or nil.
func (d *Document) Section(name string) *Section { return d.sections[name] }

// Sections returns the number of sections, header included.
func (d *Document) Sections() int { return len(d.sections) }

// DeleteSection removes the named section and its subtree. Deleting an
// unknown name is a no-op; deleting the header is an error.
func (d *Document) DeleteSection(name string) error {
	s, ok := d.sections[name]
	if !ok {
		return nil
	}
	if s.parent == nil {
		return ErrDeleteHeader
	}
	d.remove(s)
	return nil
}

// RenameSection changes a section's name, keeping the uniqueness
// invariant.
func (d *Document) RenameSection(s *Section, name string) error {
	if prior := d.lookupFold(name); prior != nil && prior != s {
		return fmt.Errorf("%w: %q", ErrDuplicateSection, name)
	}
	delete(d.sections, s.Name)
	s.Name = name
	d.sections[name] = s
	return nil
}

// Body renders the section tree to Markdown, without frontmatter.
func (d *Document) Body() string {
	var b strings.Builder
	d.header.walk(func(s *Section) {
		fmt.Fprintf(&b, "%s %s", strings.Repeat("#", s.Level), s.Name)
		if s.Content != "" {
			b.WriteString("\n\n" + s.Content)
		}
		b.WriteString("\n\n")
	})
	return b.String()
}

// Render serializes frontmatter and body, ending with a single newline.
func (d *Document) Render() ([]byte, error) {
	data, err := frontmatter.Dump(d.Meta, d.Body())
	if err != nil {
		return nil, err
	}
	out := strings.TrimRight(string(data), "\n") + "\n"
	return []byte(out), nil
}

// Save writes the document back to its path.
func (d *Document) Save() error {
	data, err := d.Render()
	if err != nil {
		return err
	}
	if err := os.WriteFile(d.Path, data, 0o644); err != nil {
		return fmt.Errorf("writing document: %w", err)
	}
	return nil
}

// lookupFold returns a section whose name matches case-insensitively.
func (d *Document) lookupFold(name string) *Section {
	if s, ok := d.sections[name]; ok {
		return s
	}
	for n, s := range d.sections {
		if strings.EqualFold(n, name) {
			return s
		}
	}
	return nil
}

// index registers a section and its descendants in the name index.
func (d *Document) index(s *Section) {
	s.walk(func(n *Section) { d.sections[n.Name] = n })
}

// remove detaches a section from its parent and drops its subtree from
// the index.
func (d *Document) remove(s *Section) {
	p := s.parent
	for i, c := range p.children {
		if c == s {
			p.children = append(p.children[:i:i], p.children[i+1:]...)
			break
		}
	}
	s.walk(func(n *Section) { delete(d.sections, n.Name) })
}

// ParseHeading splits a heading line into its level (number of leading
// '#' characters) and name.
func ParseHeading(line string) (level int, name string) {
	for _, r := range line {
		if r != '#' {
			break
		}
		level++
	}
	return level, strings.TrimSpace(line[level:])
}

// parse builds a Document from raw file contents. An empty file yields a
// synthesized header from the title-cased file stem, written back to disk.
func parse(path string, data []byte) (*Document, error) {
	meta, body, err := frontmatter.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	d := &Document{
		Path:     path,
		Name:     strings.TrimSuffix(filepath.Base(path), ".md"),
		TOCName:  DefaultTOCName,
		Meta:     meta,
		sections: map[string]*Section{},
	}

	if err := d.parseTree(body); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	if d.header == nil {
		d.header = &Section{Name: titleCase(d.Name), Level: 1, doc: d}
		d.sections[d.header.Name] = d.header
		if err := d.Save(); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// parseTree walks the body line by line, building sections from headings.
// Fenced code blocks shield '#' lines from heading detection.
func (d *Document) parseTree(body string) error {
	var (
		current *Section
		content strings.Builder
		code    bool
	)

	flush := func() {
		if current != nil {
			current.Content = strings.TrimSpace(content.String())
		}
		content.Reset()
	}

	for line := range strings.Lines(body) {
		if strings.HasPrefix(line, "```") {
			code = !code
		}
		if strings.HasPrefix(line, "#") && !code {
			flush()
			if err := d.addHeading(&current, strings.TrimRight(line, "\n")); err != nil {
				return err
			}
			continue
		}
		content.WriteString(line)
	}
	flush()
	return nil
}

// addHeading attaches a heading line to the tree, keeping the single-H1
// and one-step-nesting invariants.
func (d *Document) addHeading(current **Section, line string) error {
	level, name := ParseHeading(line)
	if prior := d.lookupFold(name); prior != nil {
		return fmt.Errorf("%w: %q", ErrDuplicateSection, name)
	}

	s := &Section{Name: name, Level: level, doc: d}

	if level == 1 {
		if d.header != nil {
			return ErrMultipleHeaders
		}
		d.header = s
		d.sections[name] = s
		*current = s
		return nil
	}

	if *current == nil {
		return fmt.Errorf("%w: %q appears before the header", ErrNesting, name)
	}

	parent := *current
	if level > parent.Level {
		if level != parent.Level+1 {
			return fmt.Errorf("%w: %q skips from level %d to %d", ErrNesting, name, parent.Level, level)
		}
	} else {
		for parent != nil && parent.Level+1 != level {
			parent = parent.parent
		}
		if parent == nil {
			return fmt.Errorf("%w: %q has no valid parent", ErrNesting, name)
		}
	}

	s.parent = parent
	parent.children = append(parent.children, s)
	d.sections[name] = s
	*current = s
	return nil
}

// titleCase upper-cases the first rune of each space-separated word.
func titleCase(s string) string {
	words := strings.Fields(strings.ReplaceAll(s, "_", " "))
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}
