// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package document

import (
	"os"
	"regexp"
	"strings"
)

// imagePattern matches image links: ![alt](target).
var imagePattern = regexp.MustCompile(`!\[.*?\]\((.*?)\)`)

// linkPattern matches any link: [name](target). Image links are filtered
// out by inspecting the byte before the match, since Go regexps have no
// lookbehind.
var linkPattern = regexp.MustCompile(`\[([^\[\]]+)\]\(([^)]+)\)`)

// Link is a named non-image link extracted from section content.
type Link struct {
	// Name is the link text.
	Name string

	// Target is the link destination: a filesystem path or a URL.
	Target string

	// IsFile reports whether Target exists on disk.
	IsFile bool
}

// Images returns the image link targets in the section content, one per
// content line, with surrounding angle brackets stripped.
func (s *Section) Images() []string {
	var images []string
	for _, line := range strings.Split(s.Content, "\n") {
		m := imagePattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		images = append(images, strings.Trim(m[1], "<>"))
	}
	return images
}

// Resources returns all non-image links in the section content.
func (s *Section) Resources() []Link {
	var links []Link
	for _, line := range strings.Split(s.Content, "\n") {
		for _, idx := range linkPattern.FindAllStringSubmatchIndex(line, -1) {
			if idx[0] > 0 && line[idx[0]-1] == '!' {
				continue
			}
			target := strings.TrimSpace(line[idx[4]:idx[5]])
			_, err := os.Stat(target)
			links = append(links, Link{
				Name:   strings.TrimSpace(line[idx[2]:idx[3]]),
				Target: target,
				IsFile: err == nil,
			})
		}
	}
	return links
}

// Docs returns the non-image links whose targets exist on disk.
func (s *Section) Docs() []Link {
	var docs []Link
	for _, l := range s.Resources() {
		if l.IsFile {
			docs = append(docs, l)
		}
	}
	return docs
}

// URLs returns the non-image links whose targets do not exist on disk.
func (s *Section) URLs() []Link {
	var urls []Link
	for _, l := range s.Resources() {
		if !l.IsFile {
			urls = append(urls, l)
		}
	}
	return urls
}
