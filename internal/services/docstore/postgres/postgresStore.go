package postgresStore

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/plateful/recipe-box/internal/services/docstore"
)

const schema = `CREATE TABLE IF NOT EXISTS documents (
	collection TEXT NOT NULL,
	id TEXT NOT NULL,
	doc JSONB NOT NULL,
	PRIMARY KEY (collection, id)
)`

// Store persists documents as JSONB rows in a single Postgres table.
type Store struct {
	db *sql.DB
}

// New creates the backing table if needed and returns the store.
func New(ctx context.Context, db *sql.DB) (*Store, error) {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return nil, fmt.Errorf("create documents table: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Scan(ctx context.Context, collection string) ([]docstore.Record, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, doc FROM documents WHERE collection = $1`, collection)
	if err != nil {
		return nil, &docstore.StoreError{Op: "scan", Collection: collection, Err: err}
	}
	defer func() { _ = rows.Close() }()

	var records []docstore.Record
	for rows.Next() {
		var id string
		var raw []byte
		if err := rows.Scan(&id, &raw); err != nil {
			return nil, &docstore.StoreError{Op: "scan", Collection: collection, Err: err}
		}
		doc := docstore.Document{}
		if err := json.Unmarshal(raw, &doc); err != nil {
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
	var raw []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT doc FROM documents WHERE collection = $1 AND id = $2`, collection, id).Scan(&raw)
	if err == sql.ErrNoRows {
		return nil, docstore.ErrNotFound
	}
	if err != nil {
		return nil, &docstore.StoreError{Op: "get", Collection: collection, Err: err}
	}

	doc := docstore.Document{}
	if err := json.Unmarshal(raw, &doc); err != nil {
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
		`INSERT INTO documents (collection, id, doc) VALUES ($1, $2, $3)`, collection, id, raw)
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
		`INSERT INTO documents (collection, id, doc) VALUES ($1, $2, $3)
		 ON CONFLICT (collection, id) DO UPDATE SET doc = EXCLUDED.doc`, collection, id, raw)
	if err != nil {
		return &docstore.StoreError{Op: "set", Collection: collection, Err: err}
	}
	return nil
}
