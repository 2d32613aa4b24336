package service

import (
	"context"

	"bookshelf-backend/internal/domains/comment/model"
)

// =====================================================
// COMMENT SERVICE INTERFACE
// =====================================================

// ServiceInterface is the ownership-enforcement boundary: update and
// delete verify the acting user against the comment's author before
// touching the identifier-scoped repository.
type ServiceInterface interface {
	// RatingFor derives one book's rating from its live comment set.
	// It never fails: any underlying problem yields the zero triplet.
	RatingFor(ctx context.Context, bookID string) model.BookRating

	// RatingsFor is the batch variant. Every requested id appears in
	// the result, with the zero triplet when unrated, and each entry
	// equals what RatingFor would return for that id individually.
	RatingsFor(ctx context.Context, bookIDs []string) map[string]model.BookRating

	// ListComments returns a book's comments, newest first.
	ListComments(ctx context.Context, bookID string) ([]*model.Comment, error)

	// CreateComment validates and persists a new comment.
	CreateComment(ctx context.Context, req model.CreateCommentRequest) (*model.Comment, error)

	// UpdateComment edits a comment's text and rating on behalf of
	// actorID, who must be its author.
	UpdateComment(ctx context.Context, actorID, commentID string, req model.UpdateCommentRequest) error

	// DeleteComment removes a comment on behalf of actorID, who must
	// be its author.
	DeleteComment(ctx context.Context, actorID, commentID string) error
}
