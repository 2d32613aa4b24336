package docstore

import (
	"context"
	"encoding/json"
	"errors"
	"time"
)

// MaxInValues is the largest number of values a single membership
// filter accepts. Callers batching reads over more keys must chunk
// their key list and issue one query per chunk.
const MaxInValues = 10

var (
	// ErrNotFound is returned by Get when no document has the given id.
	ErrNotFound = errors.New("document not found")

	// ErrTooManyValues is returned by QueryIn when the value list
	// exceeds MaxInValues.
	ErrTooManyValues = errors.New("membership filter exceeds max values")
)

// Document is a stored record as the document store returns it: an
// opaque id, the raw JSON payload, and store-native timestamps. The
// store assigns ids and timestamps; callers decode Data into their own
// schema at the adapter boundary.
type Document struct {
	ID        string
	Data      json.RawMessage
	CreatedAt time.Time
	UpdatedAt *time.Time
}

// Store is the managed document database contract: keyed documents
// grouped into named collections, with equality and bounded membership
// filters. Implementations own durability and id assignment.
type Store interface {
	// Put stores value as a new document and returns the created
	// document with its assigned id and creation timestamp.
	Put(ctx context.Context, collection string, value any) (*Document, error)

	// Get fetches one document by id. Returns ErrNotFound if absent.
	Get(ctx context.Context, collection, id string) (*Document, error)

	// Update replaces the document's payload and stamps its update
	// time. Returns ErrNotFound if absent.
	Update(ctx context.Context, collection, id string, value any) error

	// Delete removes one document by id. Returns ErrNotFound if absent.
	Delete(ctx context.Context, collection, id string) error

	// QueryEqual returns all documents whose payload field equals value.
	QueryEqual(ctx context.Context, collection, field, value string) ([]*Document, error)

	// QueryIn returns all documents whose payload field equals any of
	// values. len(values) must not exceed MaxInValues.
	QueryIn(ctx context.Context, collection, field string, values []string) ([]*Document, error)
}
