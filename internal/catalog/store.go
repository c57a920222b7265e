// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog persists document sections in a SQLite full-text index.
// Documents are indexed incrementally by file modification time; sections
// can be searched with FTS5 queries and structural filters, and the whole
// catalog can be exported to YAML or JSON.
package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/mdreader/pkg/types"
)

const (
	indexDir = "index"
	dbFile   = "catalog.db"
)

// Store manages the catalog SQLite database.
type Store struct {
	db         *sql.DB
	catalogDir string
	maxResults int
}

// NewStore opens or creates the catalog database at
// catalogDir/index/catalog.db, creating the schema if needed.
func NewStore(cfg types.CatalogConfig) (*Store, error) {
	dbDir := filepath.Join(cfg.CatalogDir, indexDir)
	if err := os.MkdirAll(dbDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating index directory: %w", err)
	}

	dbPath := filepath.Join(dbDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 20
	}

	s := &Store{
		db:         db,
		catalogDir: cfg.CatalogDir,
		maxResults: maxResults,
	}

	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Documents lists the indexed documents ordered by path.
func (s *Store) Documents(ctx context.Context) ([]types.DocumentRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT path, title, mod_time FROM documents ORDER BY path`)
	if err != nil {
		return nil, fmt.Errorf("listing documents: %w", err)
	}
	defer rows.Close()

	var docs []types.DocumentRecord
	for rows.Next() {
		var (
			rec     types.DocumentRecord
			modTime string
		)
		if err := rows.Scan(&rec.Path, &rec.Title, &modTime); err != nil {
			return nil, fmt.Errorf("scanning document: %w", err)
		}
		rec.ModTime, _ = time.Parse(time.RFC3339Nano, modTime)
		docs = append(docs, rec)
	}
	return docs, rows.Err()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS documents (
			path TEXT PRIMARY KEY,
			title TEXT,
			mod_time TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS sections (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL,
			document_path TEXT NOT NULL REFERENCES documents(path),
			name TEXT NOT NULL,
			level INTEGER NOT NULL,
			content TEXT NOT NULL,
			tags TEXT,
			UNIQUE(document_path, id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_sections_document ON sections(document_path)`,
		`CREATE INDEX IF NOT EXISTS idx_sections_name ON sections(name)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}

	// FTS5 virtual table with triggers for sync.
	var ftsExists int
	if err := s.db.QueryRow(
		`SELECT count(*) FROM sqlite_master WHERE type='table' AND name='sections_fts'`,
	).Scan(&ftsExists); err != nil {
		return fmt.Errorf("checking FTS table: %w", err)
	}

	if ftsExists == 0 {
		ftsStatements := []string{
			`CREATE VIRTUAL TABLE sections_fts USING fts5(name, content, content=sections, content_rowid=rowid)`,
			`CREATE TRIGGER sections_ai AFTER INSERT ON sections BEGIN
				INSERT INTO sections_fts(rowid, name, content) VALUES (new.rowid, new.name, new.content);
			END`,
			`CREATE TRIGGER sections_ad AFTER DELETE ON sections BEGIN
				INSERT INTO sections_fts(sections_fts, rowid, name, content) VALUES('delete', old.rowid, old.name, old.content);
			END`,
			`CREATE TRIGGER sections_au AFTER UPDATE ON sections BEGIN
				INSERT INTO sections_fts(sections_fts, rowid, name, content) VALUES('delete', old.rowid, old.name, old.content);
				INSERT INTO sections_fts(rowid, name, content) VALUES (new.rowid, new.name, new.content);
			END`,
		}
		for _, stmt := range ftsStatements {
			if _, err := s.db.Exec(stmt); err != nil {
				return fmt.Errorf("creating FTS infrastructure: %w", err)
			}
		}
	}

	return nil
}
