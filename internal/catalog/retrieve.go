// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pdiddy/mdreader/pkg/types"
)

// QueryOptions holds parameters for catalog searches.
type QueryOptions struct {
	// Query is the FTS5 full-text search string over section names and
	// content.
	Query string

	// Document filters by document path.
	Document string

	// Name filters by exact section name.
	Name string

	// Level filters by heading depth. Zero means any level.
	Level int

	// MaxResults limits result count. Zero uses the store default.
	MaxResults int
}

// IsEmpty reports whether the query has no search terms or filters.
func (q QueryOptions) IsEmpty() bool {
	return q.Query == "" && q.Document == "" && q.Name == "" && q.Level == 0
}

// QueryResult is a SectionRecord with its document title attached.
type QueryResult struct {
	types.SectionRecord `yaml:",inline"`
	DocumentTitle       string `json:"document_title" yaml:"document_title"`
}

// Retrieve queries the catalog with optional full-text search and
// structural filters. Full-text results are ranked by relevance;
// filter-only queries are sorted by document path and section id.
func (s *Store) Retrieve(ctx context.Context, opts QueryOptions) ([]QueryResult, error) {
	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = s.maxResults
	}

	var (
		qb     strings.Builder
		args   []any
		useFTS = opts.Query != ""
	)

	if useFTS {
		qb.WriteString(
			`SELECT sec.id, sec.document_path, sec.name, sec.level, sec.content, sec.tags,
				d.title
			FROM sections_fts
			JOIN sections sec ON sec.rowid = sections_fts.rowid
			LEFT JOIN documents d ON sec.document_path = d.path
			WHERE sections_fts MATCH ?`)
		args = append(args, opts.Query)
	} else {
		qb.WriteString(
			`SELECT sec.id, sec.document_path, sec.name, sec.level, sec.content, sec.tags,
				d.title
			FROM sections sec
			LEFT JOIN documents d ON sec.document_path = d.path
			WHERE 1=1`)
	}

	if opts.Document != "" {
		qb.WriteString(` AND sec.document_path = ?`)
		args = append(args, opts.Document)
	}
	if opts.Name != "" {
		qb.WriteString(` AND sec.name = ?`)
		args = append(args, opts.Name)
	}
	if opts.Level != 0 {
		qb.WriteString(` AND sec.level = ?`)
		args = append(args, opts.Level)
	}

	if useFTS {
		qb.WriteString(` ORDER BY sections_fts.rank`)
	} else {
		qb.WriteString(` ORDER BY sec.document_path, sec.id`)
	}
	qb.WriteString(` LIMIT ?`)
	args = append(args, maxResults)

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("querying catalog: %w", err)
	}
	defer rows.Close()

	var results []QueryResult
	for rows.Next() {
		var (
			r        QueryResult
			tagsJSON string
			title    *string
		)
		if err := rows.Scan(&r.ID, &r.DocumentPath, &r.Name, &r.Level, &r.Content, &tagsJSON, &title); err != nil {
			return nil, fmt.Errorf("scanning result: %w", err)
		}
		if tagsJSON != "" {
			json.Unmarshal([]byte(tagsJSON), &r.Tags)
		}
		if title != nil {
			r.DocumentTitle = *title
		}
		results = append(results, r)
	}
	return results, rows.Err()
}
