package repository

import (
	"context"

	"bookshelf-backend/internal/domains/comment/model"
)

// =====================================================
// COMMENT REPOSITORY INTERFACE
// =====================================================

// CommentRepository is identifier-scoped: it never checks who is
// asking. Ownership of a comment is enforced by the service layer
// before update/delete reach it.
type CommentRepository interface {
	// Create persists a new comment. The store assigns id and creation
	// timestamp; isEdited starts false. Fails with a validation error
	// when bookId, userId or the comment text is empty.
	Create(ctx context.Context, req model.CreateCommentRequest) (*model.Comment, error)

	// GetByID fetches one comment by id.
	GetByID(ctx context.Context, id string) (*model.Comment, error)

	// ListByBook returns a book's comments, newest first. Store
	// unavailability degrades to an empty slice so browsing never
	// breaks on a ratings outage.
	ListByBook(ctx context.Context, bookID string) ([]*model.Comment, error)

	// ListByBooks returns comments for up to docstore.MaxInValues
	// books in one membership query, grouped by book id. Unlike
	// ListByBook it surfaces store errors: the aggregator decides how
	// to handle a failed chunk.
	ListByBooks(ctx context.Context, bookIDs []string) (map[string][]*model.Comment, error)

	// Update replaces a comment's text and rating, stamps updatedAt
	// and sets isEdited. Returns false (no error) when the comment
	// does not exist.
	Update(ctx context.Context, id, commentText string, rating int) (bool, error)

	// Delete removes a comment by id. Returns false (no error) when
	// the comment does not exist.
	Delete(ctx context.Context, id string) (bool, error)
}
