// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package document

import (
	"fmt"
	"strings"
)

// AnchorFunc produces the link target for a section's TOC entry.
type AnchorFunc func(*Section) string

// GitHubAnchor links to the heading's GitHub-style anchor:
// "#name-lowercased-and-hyphenated".
func GitHubAnchor(s *Section) string {
	return "#" + strings.ReplaceAll(strings.ToLower(s.Name), " ", "-")
}

// TOC renders a nested bullet list over the whole tree, header included,
// indented two spaces per level. anchor defaults to GitHubAnchor.
func (d *Document) TOC(anchor AnchorFunc) string {
	if anchor == nil {
		anchor = GitHubAnchor
	}
	var b strings.Builder
	d.header.walk(func(s *Section) {
		indent := strings.Repeat(" ", (s.Level-1)*2)
		fmt.Fprintf(&b, "%s- [%s](%s)\n", indent, s.Name, anchor(s))
	})
	return strings.TrimRight(b.String(), "\n")
}

// SaveTOC regenerates the table-of-contents section (d.TOCName) as the
// first child of the header and writes the document to disk. The previous
// TOC section is removed first so it never lists itself.
func (d *Document) SaveTOC(anchor AnchorFunc) error {
	if err := d.DeleteSection(d.TOCName); err != nil {
		return err
	}

	toc, err := d.header.AddSection(d.TOCName, d.TOC(anchor), AddOptions{KeepHeadings: true})
	if err != nil {
		return err
	}

	d.header.children = d.header.children[:len(d.header.children)-1]
	d.header.insertFirst(toc)

	return d.Save()
}
