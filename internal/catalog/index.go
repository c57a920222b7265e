// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pdiddy/mdreader/internal/document"
)

// IndexSummary holds counts from a catalog indexing run.
type IndexSummary struct {
	Indexed int
	Updated int
	Skipped int
	Failed  int
}

// Total returns the number of documents processed.
func (s IndexSummary) Total() int {
	return s.Indexed + s.Updated + s.Skipped + s.Failed
}

// IndexStatus reports what IndexDocument did with one document.
type IndexStatus string

const (
	StatusIndexed IndexStatus = "indexed"
	StatusUpdated IndexStatus = "updated"
	StatusSkipped IndexStatus = "skipped"
)

// IndexDocument parses and indexes one Markdown file. A file whose
// modification time matches the stored one is skipped.
func (s *Store) IndexDocument(ctx context.Context, path string) (IndexStatus, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("stating %s: %w", path, err)
	}
	modTime := info.ModTime().UTC().Format(time.RFC3339Nano)

	var storedModTime string
	err = s.db.QueryRowContext(ctx,
		`SELECT mod_time FROM documents WHERE path = ?`, path,
	).Scan(&storedModTime)

	if err == nil && storedModTime == modTime {
		return StatusSkipped, nil
	}
	isUpdate := err == nil

	doc, err := document.Open(path)
	if err != nil {
		return "", err
	}

	if err := s.indexSections(ctx, doc, modTime, isUpdate); err != nil {
		return "", err
	}
	if isUpdate {
		return StatusUpdated, nil
	}
	return StatusIndexed, nil
}

// IndexDir walks dir recursively, indexing every .md file and printing
// per-file status lines to w.
func (s *Store) IndexDir(ctx context.Context, dir string, w io.Writer) (IndexSummary, error) {
	var summary IndexSummary

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if strings.HasPrefix(d.Name(), ".") && path != dir {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) != ".md" {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		status, err := s.IndexDocument(ctx, path)
		if err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", path, err)
			summary.Failed++
			return nil
		}

		fmt.Fprintf(w, "%s %s\n", status, path)
		switch status {
		case StatusIndexed:
			summary.Indexed++
		case StatusUpdated:
			summary.Updated++
		case StatusSkipped:
			summary.Skipped++
		}
		return nil
	})
	if err != nil {
		return summary, err
	}

	fmt.Fprintf(w, "\nindexed: %d, updated: %d, skipped: %d, failed: %d\n",
		summary.Indexed, summary.Updated, summary.Skipped, summary.Failed)
	return summary, nil
}

func (s *Store) indexSections(ctx context.Context, doc *document.Document, modTime string, isUpdate bool) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if isUpdate {
		if _, err := tx.ExecContext(ctx, `DELETE FROM sections WHERE document_path = ?`, doc.Path); err != nil {
			return fmt.Errorf("deleting old sections: %w", err)
		}
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO documents (path, title, mod_time) VALUES (?, ?, ?)
		 ON CONFLICT(path) DO UPDATE SET title=excluded.title, mod_time=excluded.mod_time`,
		doc.Path, doc.Header().Name, modTime,
	)
	if err != nil {
		return fmt.Errorf("upserting document: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT OR REPLACE INTO sections (id, document_path, name, level, content, tags)
		 VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	var insertErr error
	walk(doc.Header(), func(sec *document.Section) {
		if insertErr != nil {
			return
		}
		tagsJSON, _ := json.Marshal(sectionTags(sec))
		_, insertErr = stmt.ExecContext(ctx,
			sec.Path(), doc.Path, sec.Name, sec.Level, sec.Content, string(tagsJSON),
		)
	})
	if insertErr != nil {
		return fmt.Errorf("inserting sections: %w", insertErr)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing: %w", err)
	}
	return nil
}

// walk visits a section and its descendants in document order.
func walk(s *document.Section, fn func(*document.Section)) {
	fn(s)
	for _, c := range s.Children() {
		walk(c, fn)
	}
}

// sectionTags extracts string tags from the section metadata.
func sectionTags(s *document.Section) []string {
	var tags []string
	switch v := s.Meta["tags"].(type) {
	case []string:
		tags = v
	case []any:
		for _, t := range v {
			if str, ok := t.(string); ok {
				tags = append(tags, str)
			}
		}
	}
	return tags
}
