package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"bookshelf-backend/internal/domains/comment/model"
	"bookshelf-backend/internal/infrastructure/docstore"
	"bookshelf-backend/pkg/logger"
)

// =====================================================
// DOCUMENT STORE REPOSITORY IMPLEMENTATION
// =====================================================

type docstoreCommentRepository struct {
	store docstore.Store
}

func NewDocstoreCommentRepository(store docstore.Store) CommentRepository {
	return &docstoreCommentRepository{store: store}
}

// commentDoc is the explicit schema of a stored comment document.
// Decoding happens only here, at the store-adapter boundary; nothing
// above the repository sees raw documents.
type commentDoc struct {
	BookID    string `json:"bookId"`
	UserID    string `json:"userId"`
	UserName  string `json:"userName"`
	UserEmail string `json:"userEmail"`
	Comment   string `json:"comment"`
	Rating    int    `json:"rating"`
	IsEdited  bool   `json:"isEdited"`
}

// decodeComment turns a raw document into a Comment, normalizing the
// store-native timestamps to RFC3339 strings.
func decodeComment(doc *docstore.Document) (*model.Comment, error) {
	var cd commentDoc
	if err := json.Unmarshal(doc.Data, &cd); err != nil {
		return nil, fmt.Errorf("failed to decode comment document %s: %w", doc.ID, err)
	}

	c := &model.Comment{
		ID:        doc.ID,
		BookID:    cd.BookID,
		UserID:    cd.UserID,
		UserName:  cd.UserName,
		UserEmail: cd.UserEmail,
		Comment:   cd.Comment,
		Rating:    cd.Rating,
		IsEdited:  cd.IsEdited,
		CreatedAt: normalizeTimestamp(doc.CreatedAt),
	}
	if doc.UpdatedAt != nil {
		c.UpdatedAt = normalizeTimestamp(*doc.UpdatedAt)
	}

	return c, nil
}

func normalizeTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// =====================================================
// CREATE
// =====================================================

func (r *docstoreCommentRepository) Create(ctx context.Context, req model.CreateCommentRequest) (*model.Comment, error) {
	if req.BookID == "" {
		return nil, model.NewValidationError("bookId is required")
	}
	if req.UserID == "" {
		return nil, model.NewValidationError("userId is required")
	}
	if req.Comment == "" {
		return nil, model.NewValidationError("comment is required")
	}

	userName := req.UserName
	if userName == "" {
		userName = model.AnonymousUserName
	}

	cd := commentDoc{
		BookID:    req.BookID,
		UserID:    req.UserID,
		UserName:  userName,
		UserEmail: req.UserEmail,
		Comment:   req.Comment,
		Rating:    req.Rating,
		IsEdited:  false,
	}

	doc, err := r.store.Put(ctx, model.CommentsCollection, cd)
	if err != nil {
		logger.Error("failed to store comment", err)
		return nil, model.NewStoreUnavailableError(err)
	}

	return decodeComment(doc)
}

// =====================================================
// GET BY ID
// =====================================================

func (r *docstoreCommentRepository) GetByID(ctx context.Context, id string) (*model.Comment, error) {
	doc, err := r.store.Get(ctx, model.CommentsCollection, id)
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return nil, model.ErrCommentNotFound
		}
		return nil, model.NewStoreUnavailableError(err)
	}

	return decodeComment(doc)
}

// =====================================================
// LIST BY BOOK
// =====================================================

func (r *docstoreCommentRepository) ListByBook(ctx context.Context, bookID string) ([]*model.Comment, error) {
	if bookID == "" {
		return nil, model.NewValidationError("bookId is required")
	}

	docs, err := r.store.QueryEqual(ctx, model.CommentsCollection, "bookId", bookID)
	if err != nil {
		// Reads degrade to "no comments" so book browsing keeps
		// working through a store outage.
		logger.Error("failed to list comments, degrading to empty", err)
		return []*model.Comment{}, nil
	}

	comments := make([]*model.Comment, 0, len(docs))
	for _, doc := range docs {
		c, err := decodeComment(doc)
		if err != nil {
			logger.Error("skipping undecodable comment document", err)
			continue
		}
		comments = append(comments, c)
	}

	sortNewestFirst(comments)
	return comments, nil
}

// =====================================================
// LIST BY BOOKS (one membership query)
// =====================================================

func (r *docstoreCommentRepository) ListByBooks(ctx context.Context, bookIDs []string) (map[string][]*model.Comment, error) {
	if len(bookIDs) == 0 {
		return map[string][]*model.Comment{}, nil
	}

	docs, err := r.store.QueryIn(ctx, model.CommentsCollection, "bookId", bookIDs)
	if err != nil {
		return nil, model.NewStoreUnavailableError(err)
	}

	// Group by the document's own bookId field, never by which query
	// returned it, so chunk boundaries can't split a book's set.
	grouped := make(map[string][]*model.Comment, len(bookIDs))
	for _, doc := range docs {
		c, err := decodeComment(doc)
		if err != nil {
			logger.Error("skipping undecodable comment document", err)
			continue
		}
		grouped[c.BookID] = append(grouped[c.BookID], c)
	}

	return grouped, nil
}

// =====================================================
// UPDATE
// =====================================================

func (r *docstoreCommentRepository) Update(ctx context.Context, id, commentText string, rating int) (bool, error) {
	if commentText == "" {
		return false, model.NewValidationError("comment is required")
	}

	doc, err := r.store.Get(ctx, model.CommentsCollection, id)
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return false, nil
		}
		return false, model.NewStoreUnavailableError(err)
	}

	var cd commentDoc
	if err := json.Unmarshal(doc.Data, &cd); err != nil {
		return false, fmt.Errorf("failed to decode comment document %s: %w", id, err)
	}

	cd.Comment = commentText
	cd.Rating = rating
	cd.IsEdited = true

	if err := r.store.Update(ctx, model.CommentsCollection, id, cd); err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return false, nil
		}
		return false, model.NewStoreUnavailableError(err)
	}

	return true, nil
}

// =====================================================
// DELETE
// =====================================================

func (r *docstoreCommentRepository) Delete(ctx context.Context, id string) (bool, error) {
	if err := r.store.Delete(ctx, model.CommentsCollection, id); err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return false, nil
		}
		return false, model.NewStoreUnavailableError(err)
	}

	return true, nil
}

// sortNewestFirst orders comments by creation time descending. The
// store's native ordering is not trusted: it may not support compound
// ordering on filtered queries, so the sort is always redone here.
func sortNewestFirst(comments []*model.Comment) {
	sort.SliceStable(comments, func(i, j int) bool {
		return comments[i].CreatedTime().After(comments[j].CreatedTime())
	})
}
