package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"bookshelf-backend/internal/domains/list/model"
	"bookshelf-backend/internal/infrastructure/docstore"
	"bookshelf-backend/pkg/logger"
)

// =====================================================
// DOCUMENT STORE REPOSITORY IMPLEMENTATION
// =====================================================

type docstoreListRepository struct {
	store docstore.Store
}

func NewDocstoreListRepository(store docstore.Store) ListRepository {
	return &docstoreListRepository{store: store}
}

// listDoc is the stored schema of a list item.
type listDoc struct {
	UserID    string `json:"userId"`
	BookID    string `json:"bookId"`
	Title     string `json:"title"`
	Thumbnail string `json:"thumbnail,omitempty"`
}

func decodeItem(doc *docstore.Document) (*model.ListItem, error) {
	var ld listDoc
	if err := json.Unmarshal(doc.Data, &ld); err != nil {
		return nil, fmt.Errorf("failed to decode list document %s: %w", doc.ID, err)
	}

	return &model.ListItem{
		ID:        doc.ID,
		UserID:    ld.UserID,
		BookID:    ld.BookID,
		Title:     ld.Title,
		Thumbnail: ld.Thumbnail,
		CreatedAt: doc.CreatedAt.UTC().Format(time.RFC3339Nano),
	}, nil
}

func (r *docstoreListRepository) Add(ctx context.Context, collection, userID string, req model.AddItemRequest) (*model.ListItem, error) {
	if userID == "" {
		return nil, model.NewValidationError("userId is required")
	}
	if req.BookID == "" {
		return nil, model.NewValidationError("bookId is required")
	}

	// Lists are sets: re-adding a book is a no-op returning the
	// existing entry.
	existing, err := r.findItem(ctx, collection, userID, req.BookID)
	if err != nil {
		return nil, model.NewStoreUnavailableError(err)
	}
	if existing != nil {
		return existing, nil
	}

	ld := listDoc{
		UserID:    userID,
		BookID:    req.BookID,
		Title:     req.Title,
		Thumbnail: req.Thumbnail,
	}

	doc, err := r.store.Put(ctx, collection, ld)
	if err != nil {
		logger.Error("failed to store list item", err)
		return nil, model.NewStoreUnavailableError(err)
	}

	return decodeItem(doc)
}

func (r *docstoreListRepository) ListByUser(ctx context.Context, collection, userID string) ([]*model.ListItem, error) {
	if userID == "" {
		return nil, model.NewValidationError("userId is required")
	}

	docs, err := r.store.QueryEqual(ctx, collection, "userId", userID)
	if err != nil {
		logger.Error("failed to list items, degrading to empty", err)
		return []*model.ListItem{}, nil
	}

	items := make([]*model.ListItem, 0, len(docs))
	for _, doc := range docs {
		item, err := decodeItem(doc)
		if err != nil {
			logger.Error("skipping undecodable list document", err)
			continue
		}
		items = append(items, item)
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt > items[j].CreatedAt
	})
	return items, nil
}

func (r *docstoreListRepository) Remove(ctx context.Context, collection, userID, bookID string) (bool, error) {
	if userID == "" {
		return false, model.NewValidationError("userId is required")
	}
	if bookID == "" {
		return false, model.NewValidationError("bookId is required")
	}

	item, err := r.findItem(ctx, collection, userID, bookID)
	if err != nil {
		return false, model.NewStoreUnavailableError(err)
	}
	if item == nil {
		return false, nil
	}

	if err := r.store.Delete(ctx, collection, item.ID); err != nil {
		return false, model.NewStoreUnavailableError(err)
	}
	return true, nil
}

func (r *docstoreListRepository) Clear(ctx context.Context, collection, userID string) error {
	if userID == "" {
		return model.NewValidationError("userId is required")
	}

	docs, err := r.store.QueryEqual(ctx, collection, "userId", userID)
	if err != nil {
		return model.NewStoreUnavailableError(err)
	}

	for _, doc := range docs {
		if err := r.store.Delete(ctx, collection, doc.ID); err != nil {
			return model.NewStoreUnavailableError(err)
		}
	}
	return nil
}

// findItem scans the user's list for one bookId. The list stays small
// (a personal cart), so a filtered scan is fine.
func (r *docstoreListRepository) findItem(ctx context.Context, collection, userID, bookID string) (*model.ListItem, error) {
	docs, err := r.store.QueryEqual(ctx, collection, "userId", userID)
	if err != nil {
		return nil, err
	}

	for _, doc := range docs {
		item, err := decodeItem(doc)
		if err != nil {
			logger.Error("skipping undecodable list document", err)
			continue
		}
		if item.BookID == bookID {
			return item, nil
		}
	}
	return nil, nil
}
