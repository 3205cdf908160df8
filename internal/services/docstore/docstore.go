package docstore

import (
	"context"
	"errors"
	"fmt"
)

// ErrNotFound is returned by Get when no document exists under the given id.
var ErrNotFound = errors.New("document not found")

// Document is a schemaless record as stored, keyed by field name.
type Document map[string]interface{}

// Record pairs a document with its store-assigned id.
type Record struct {
	ID  string
	Doc Document
}

// StoreError wraps a backend failure with the operation that hit it.
type StoreError struct {
	Op         string
	Collection string
	Err        error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("docstore: %s %s: %v", e.Op, e.Collection, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// Store is the document database surface the application depends on.
// Backends assign ids on Insert and never reuse them.
type Store interface {
	// Scan returns every document in the collection, in backend-defined order.
	Scan(ctx context.Context, collection string) ([]Record, error)
	// Get fetches one document, returning ErrNotFound when absent.
	Get(ctx context.Context, collection, id string) (Document, error)
	// Insert stores a new document and returns its assigned id.
	Insert(ctx context.Context, collection string, doc Document) (string, error)
	// Set writes a document under a caller-chosen id, replacing any previous value.
	Set(ctx context.Context, collection, id string, doc Document) error
}
