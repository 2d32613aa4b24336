package service

import (
	"context"

	"bookshelf-backend/internal/domains/comment/model"
	"bookshelf-backend/internal/domains/comment/repository"
	"bookshelf-backend/internal/infrastructure/docstore"
	"bookshelf-backend/pkg/logger"
)

// =====================================================
// SERVICE IMPLEMENTATION
// =====================================================

type commentService struct {
	commentRepo repository.CommentRepository
	ratingCache RatingCache
}

func NewCommentService(commentRepo repository.CommentRepository, ratingCache RatingCache) ServiceInterface {
	if ratingCache == nil {
		ratingCache = NewNopRatingCache()
	}
	return &commentService{
		commentRepo: commentRepo,
		ratingCache: ratingCache,
	}
}

// =====================================================
// RATING AGGREGATION
// =====================================================

// RatingFor recomputes the rating triplet from whatever comments exist
// right now. There is no stored aggregate to race against: concurrent
// writers only ever append/update/delete individual comments.
func (s *commentService) RatingFor(ctx context.Context, bookID string) model.BookRating {
	if bookID == "" {
		return model.BookRating{}
	}

	if rating, ok := s.ratingCache.Get(ctx, bookID); ok {
		return rating
	}

	comments, err := s.commentRepo.ListByBook(ctx, bookID)
	if err != nil {
		// Validation aside, the repository already degrades reads;
		// whatever still errors maps to "no rating yet".
		return model.BookRating{}
	}

	rating := model.ComputeRating(comments)
	s.ratingCache.Set(ctx, bookID, rating)
	return rating
}

// RatingsFor batches rating derivation across many books. Input ids
// are deduplicated, then chunked to the store's membership-filter cap;
// comments are regrouped by their own bookId before the same per-book
// reduction as the single path, so chunk boundaries can never split or
// double-count a book's set.
func (s *commentService) RatingsFor(ctx context.Context, bookIDs []string) map[string]model.BookRating {
	unique := dedupe(bookIDs)

	grouped := make(map[string][]*model.Comment, len(unique))
	for _, chunk := range chunkIDs(unique, docstore.MaxInValues) {
		part, err := s.commentRepo.ListByBooks(ctx, chunk)
		if err != nil {
			// Best-effort: one failed chunk must not take down the
			// whole batch. Books in this chunk fall back to the zero
			// triplet.
			logger.Error("batch rating chunk failed, merging remaining chunks", err)
			continue
		}
		for bookID, comments := range part {
			grouped[bookID] = append(grouped[bookID], comments...)
		}
	}

	ratings := make(map[string]model.BookRating, len(unique))
	for _, bookID := range unique {
		ratings[bookID] = model.ComputeRating(grouped[bookID])
	}

	return ratings
}

// =====================================================
// COMMENT OPERATIONS
// =====================================================

func (s *commentService) ListComments(ctx context.Context, bookID string) ([]*model.Comment, error) {
	return s.commentRepo.ListByBook(ctx, bookID)
}

func (s *commentService) CreateComment(ctx context.Context, req model.CreateCommentRequest) (*model.Comment, error) {
	if err := req.Validate(); err != nil {
		return nil, model.NewValidationError(err.Error())
	}

	comment, err := s.commentRepo.Create(ctx, req)
	if err != nil {
		return nil, err
	}

	s.ratingCache.Invalidate(ctx, comment.BookID)
	return comment, nil
}

func (s *commentService) UpdateComment(ctx context.Context, actorID, commentID string, req model.UpdateCommentRequest) error {
	if err := req.Validate(); err != nil {
		return model.NewValidationError(err.Error())
	}

	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		if err == model.ErrCommentNotFound {
			return model.NewCommentNotFoundError()
		}
		return err
	}

	if comment.UserID != actorID {
		return model.NewNotOwnerError()
	}

	ok, err := s.commentRepo.Update(ctx, commentID, req.Comment, req.Rating)
	if err != nil {
		return err
	}
	if !ok {
		return model.NewCommentNotFoundError()
	}

	s.ratingCache.Invalidate(ctx, comment.BookID)
	return nil
}

func (s *commentService) DeleteComment(ctx context.Context, actorID, commentID string) error {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		if err == model.ErrCommentNotFound {
			return model.NewCommentNotFoundError()
		}
		return err
	}

	if comment.UserID != actorID {
		return model.NewNotOwnerError()
	}

	ok, err := s.commentRepo.Delete(ctx, commentID)
	if err != nil {
		return err
	}
	if !ok {
		return model.NewCommentNotFoundError()
	}

	s.ratingCache.Invalidate(ctx, comment.BookID)
	return nil
}

// =====================================================
// HELPERS
// =====================================================

// dedupe drops repeated ids while keeping first-seen order, so a
// duplicated id is fetched once and reduced once.
func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	unique := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	return unique
}

// chunkIDs partitions ids into groups of at most size.
func chunkIDs(ids []string, size int) [][]string {
	var chunks [][]string
	for start := 0; start < len(ids); start += size {
		end := start + size
		if end > len(ids) {
			end = len(ids)
		}
		chunks = append(chunks, ids[start:end])
	}
	return chunks
}
