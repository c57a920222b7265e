// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package frontmatter splits and re-serializes YAML frontmatter in Markdown
// documents. Frontmatter is delimited by lines containing only "---" at the
// start of the file; the block between delimiters is parsed as YAML and the
// rest is returned as the body. A document without frontmatter is valid and
// yields empty metadata.
package frontmatter

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"go.yaml.in/yaml/v3"
)

const delimiter = "---"

var (
	// ErrUnclosed reports an opening delimiter without a closing one.
	ErrUnclosed = errors.New("frontmatter: unclosed delimiter")

	// ErrInvalidYAML reports a frontmatter block that is not valid YAML.
	ErrInvalidYAML = errors.New("frontmatter: invalid YAML")
)

// Matter is the parsed metadata block of a document.
type Matter map[string]any

// Parse splits data into frontmatter metadata and body. Both Unix and
// Windows line endings are handled. When data does not start with a
// delimiter line the whole input is the body.
func Parse(data []byte) (Matter, string, error) {
	text := strings.ReplaceAll(string(data), "\r\n", "\n")

	if !strings.HasPrefix(text, delimiter+"\n") && text != delimiter {
		return Matter{}, text, nil
	}

	rest := strings.TrimPrefix(text, delimiter+"\n")
	var block, body string
	switch end := strings.Index(rest, "\n"+delimiter+"\n"); {
	// An empty block closes on the very next line, so the delimiter has
	// no preceding newline to match on.
	case strings.HasPrefix(rest, delimiter+"\n"):
		body = rest[len(delimiter)+1:]
	case rest == delimiter:
	case end >= 0:
		block = rest[:end]
		body = rest[end+len(delimiter)+2:]
	case strings.HasSuffix(rest, "\n"+delimiter):
		block = strings.TrimSuffix(rest, "\n"+delimiter)
	default:
		return nil, "", ErrUnclosed
	}

	meta := Matter{}
	if err := yaml.Unmarshal([]byte(block), &meta); err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}
	if meta == nil {
		meta = Matter{}
	}

	return meta, strings.TrimPrefix(body, "\n"), nil
}

// Dump serializes metadata and body back into a Markdown document. Empty
// metadata emits the body alone. Keys are marshaled in sorted order so the
// output is stable across saves.
func Dump(meta Matter, body string) ([]byte, error) {
	if len(meta) == 0 {
		return []byte(body), nil
	}

	block, err := marshalSorted(meta)
	if err != nil {
		return nil, fmt.Errorf("marshaling frontmatter: %w", err)
	}

	var b strings.Builder
	b.WriteString(delimiter + "\n")
	b.Write(block)
	b.WriteString(delimiter + "\n\n")
	b.WriteString(body)
	return []byte(b.String()), nil
}

// marshalSorted emits the metadata map with deterministic key order.
func marshalSorted(meta Matter) ([]byte, error) {
	keys := make([]string, 0, len(meta))
	for k := range meta {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, k := range keys {
		var key, value yaml.Node
		key.SetString(k)
		if err := value.Encode(meta[k]); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, &key, &value)
	}
	return yaml.Marshal(node)
}
