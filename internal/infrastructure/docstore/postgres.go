package docstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// =====================================================
// POSTGRES DOCUMENT STORE
// =====================================================

// postgresStore keeps every collection in a single documents table:
//
//	CREATE TABLE documents (
//	    collection  TEXT        NOT NULL,
//	    id          TEXT        NOT NULL,
//	    data        JSONB       NOT NULL,
//	    created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
//	    updated_at  TIMESTAMPTZ,
//	    PRIMARY KEY (collection, id)
//	);
//	CREATE INDEX documents_data_idx ON documents USING GIN (data);
//
// Collections are logical partitions of one physical table, which
// matches the shared-collection model the comment domain assumes.
type postgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(pool *pgxpool.Pool) Store {
	return &postgresStore{pool: pool}
}

func (s *postgresStore) Put(ctx context.Context, collection string, value any) (*Document, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}

	doc := &Document{
		ID:   uuid.NewString(),
		Data: data,
	}

	query := `
		INSERT INTO documents (collection, id, data)
		VALUES ($1, $2, $3)
		RETURNING created_at
	`

	if err := s.pool.QueryRow(ctx, query, collection, doc.ID, data).Scan(&doc.CreatedAt); err != nil {
		return nil, fmt.Errorf("failed to put document: %w", err)
	}

	return doc, nil
}

func (s *postgresStore) Get(ctx context.Context, collection, id string) (*Document, error) {
	query := `
		SELECT id, data, created_at, updated_at
		FROM documents
		WHERE collection = $1 AND id = $2
	`

	doc := &Document{}
	err := s.pool.QueryRow(ctx, query, collection, id).Scan(
		&doc.ID,
		&doc.Data,
		&doc.CreatedAt,
		&doc.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get document: %w", err)
	}

	return doc, nil
}

func (s *postgresStore) Update(ctx context.Context, collection, id string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}

	query := `
		UPDATE documents
		SET data = $3, updated_at = now()
		WHERE collection = $1 AND id = $2
	`

	result, err := s.pool.Exec(ctx, query, collection, id, data)
	if err != nil {
		return fmt.Errorf("failed to update document: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *postgresStore) Delete(ctx context.Context, collection, id string) error {
	query := `DELETE FROM documents WHERE collection = $1 AND id = $2`

	result, err := s.pool.Exec(ctx, query, collection, id)
	if err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *postgresStore) QueryEqual(ctx context.Context, collection, field, value string) ([]*Document, error) {
	query := `
		SELECT id, data, created_at, updated_at
		FROM documents
		WHERE collection = $1 AND data->>$2 = $3
	`

	rows, err := s.pool.Query(ctx, query, collection, field, value)
	if err != nil {
		return nil, fmt.Errorf("failed to query documents: %w", err)
	}
	defer rows.Close()

	return scanDocuments(rows)
}

func (s *postgresStore) QueryIn(ctx context.Context, collection, field string, values []string) ([]*Document, error) {
	if len(values) > MaxInValues {
		return nil, ErrTooManyValues
	}
	if len(values) == 0 {
		return nil, nil
	}

	query := `
		SELECT id, data, created_at, updated_at
		FROM documents
		WHERE collection = $1 AND data->>$2 = ANY($3)
	`

	rows, err := s.pool.Query(ctx, query, collection, field, values)
	if err != nil {
		return nil, fmt.Errorf("failed to query documents: %w", err)
	}
	defer rows.Close()

	return scanDocuments(rows)
}

func scanDocuments(rows pgx.Rows) ([]*Document, error) {
	var docs []*Document
	for rows.Next() {
		doc := &Document{}
		if err := rows.Scan(&doc.ID, &doc.Data, &doc.CreatedAt, &doc.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		docs = append(docs, doc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read documents: %w", err)
	}

	return docs, nil
}
