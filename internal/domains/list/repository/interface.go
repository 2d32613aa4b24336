package repository

import (
	"context"

	"bookshelf-backend/internal/domains/list/model"
)

// ListRepository stores per-user keyed sets of books. The same
// implementation backs both the cart and favorites collections; the
// collection name selects which list an operation touches.
type ListRepository interface {
	// Add inserts the book into the user's list. Adding a book already
	// present returns the existing item unchanged.
	Add(ctx context.Context, collection, userID string, req model.AddItemRequest) (*model.ListItem, error)

	// ListByUser returns the user's items, newest first. Store failures
	// degrade to an empty list.
	ListByUser(ctx context.Context, collection, userID string) ([]*model.ListItem, error)

	// Remove deletes one book from the user's list. Returns false when
	// the book was not in the list.
	Remove(ctx context.Context, collection, userID, bookID string) (bool, error)

	// Clear empties the user's list.
	Clear(ctx context.Context, collection, userID string) error
}
