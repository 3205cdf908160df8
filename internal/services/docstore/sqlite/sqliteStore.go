package sqliteStore

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/plateful/recipe-box/internal/services/docstore"
	_ "modernc.org/sqlite" // pure go sqlite driver
)

const schema = `CREATE TABLE IF NOT EXISTS documents (
	collection TEXT NOT NULL,
	id TEXT NOT NULL,
	doc TEXT NOT NULL,
	PRIMARY KEY (collection, id)
)`

// Store is the embedded document store used for local runs and tests.
// Documents live as JSON text in a single sqlite table.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the sqlite database at path and prepares the schema.
// Use ":memory:" for an ephemeral store.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if path == ":memory:" {
		// every pooled connection would otherwise see its own empty database
		db.SetMaxOpenConns(1)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return nil, fmt.Errorf("create documents table: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Scan(ctx context.Context, collection string) ([]docstore.Record, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, doc FROM documents WHERE collection = ?`, collection)
	if err != nil {
		return nil, &docstore.StoreError{Op: "scan", Collection: collection, Err: err}
	}
	defer func() { _ = rows.Close() }()

	var records []docstore.Record
	for rows.Next() {
		var id, raw string
		if err := rows.Scan(&id, &raw); err != nil {
			return nil, &docstore.StoreError{Op: "scan", Collection: collection, Err: err}
		}
		doc := docstore.Document{}
		if err := json.Unmarshal([]byte(raw), &doc); err != nil {
			return nil, &docstore.StoreError{Op: "scan", Collection: collection, Err: err}
		}
		records = append(records, docstore.Record{ID: id, Doc: doc})
	}
	if err := rows.Err(); err != nil {
		return nil, &docstore.StoreError{Op: "scan", Collection: collection, Err: err}
	}
	return records, nil
}

func (s *Store) Get(ctx context.Context, collection, id string) (docstore.Document, error) {
	var raw string
	err := s.db.QueryRowContext(ctx,
		`SELECT doc FROM documents WHERE collection = ? AND id = ?`, collection, id).Scan(&raw)
	if err == sql.ErrNoRows {
		return nil, docstore.ErrNotFound
	}
	if err != nil {
		return nil, &docstore.StoreError{Op: "get", Collection: collection, Err: err}
	}

	doc := docstore.Document{}
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, &docstore.StoreError{Op: "get", Collection: collection, Err: err}
	}
	return doc, nil
}

func (s *Store) Insert(ctx context.Context, collection string, doc docstore.Document) (string, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return "", &docstore.StoreError{Op: "insert", Collection: collection, Err: err}
	}

	id := uuid.NewString()
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO documents (collection, id, doc) VALUES (?, ?, ?)`, collection, id, string(raw))
	if err != nil {
		return "", &docstore.StoreError{Op: "insert", Collection: collection, Err: err}
	}
	return id, nil
}

func (s *Store) Set(ctx context.Context, collection, id string, doc docstore.Document) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return &docstore.StoreError{Op: "set", Collection: collection, Err: err}
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO documents (collection, id, doc) VALUES (?, ?, ?)
		 ON CONFLICT (collection, id) DO UPDATE SET doc = excluded.doc`, collection, id, string(raw))
	if err != nil {
		return &docstore.StoreError{Op: "set", Collection: collection, Err: err}
	}
	return nil
}
