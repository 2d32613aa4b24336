package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	bookmodel "bookshelf-backend/internal/domains/book/model"
	commentmodel "bookshelf-backend/internal/domains/comment/model"
	"bookshelf-backend/internal/infrastructure/catalog"
)

type mockCatalog struct {
	mock.Mock
}

func (m *mockCatalog) Search(ctx context.Context, query string, page int) (*catalog.SearchPage, error) {
	args := m.Called(ctx, query, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.SearchPage), args.Error(1)
}

type stubCommentService struct {
	ratings map[string]commentmodel.BookRating
}

func (s *stubCommentService) RatingFor(ctx context.Context, bookID string) commentmodel.BookRating {
	return s.ratings[bookID]
}

func (s *stubCommentService) RatingsFor(ctx context.Context, bookIDs []string) map[string]commentmodel.BookRating {
	out := make(map[string]commentmodel.BookRating, len(bookIDs))
	for _, id := range bookIDs {
		out[id] = s.ratings[id]
	}
	return out
}

func (s *stubCommentService) ListComments(ctx context.Context, bookID string) ([]*commentmodel.Comment, error) {
	return nil, nil
}

func (s *stubCommentService) CreateComment(ctx context.Context, req commentmodel.CreateCommentRequest) (*commentmodel.Comment, error) {
	return nil, nil
}

func (s *stubCommentService) UpdateComment(ctx context.Context, actorID, commentID string, req commentmodel.UpdateCommentRequest) error {
	return nil
}

func (s *stubCommentService) DeleteComment(ctx context.Context, actorID, commentID string) error {
	return nil
}

func TestBrowse(t *testing.T) {
	ctx := context.Background()

	t.Run("decorates books with their ratings", func(t *testing.T) {
		cat := new(mockCatalog)
		cat.On("Search", ctx, "go", 0).Return(&catalog.SearchPage{
			TotalItems: 2,
			PageSize:   20,
			Books: []catalog.Book{
				{ID: "b1", Title: "Book One"},
				{ID: "b2", Title: "Book Two"},
			},
		}, nil)

		comments := &stubCommentService{ratings: map[string]commentmodel.BookRating{
			"b1": {AverageRating: 4.5, TotalRatings: 9, RatingsCount: 2},
		}}
		svc := NewBookService(cat, comments)

		result, err := svc.Browse(ctx, "go", 0)

		require.NoError(t, err)
		require.Len(t, result.Books, 2)
		assert.Equal(t, 4.5, result.Books[0].Rating.AverageRating)
		assert.Equal(t, commentmodel.BookRating{}, result.Books[1].Rating)
	})

	t.Run("catalog failure maps to unavailable", func(t *testing.T) {
		cat := new(mockCatalog)
		cat.On("Search", ctx, "go", 0).Return(nil, errors.New("upstream down"))
		svc := NewBookService(cat, &stubCommentService{})

		_, err := svc.Browse(ctx, "go", 0)

		var bookErr *bookmodel.BookError
		require.ErrorAs(t, err, &bookErr)
		assert.Equal(t, bookmodel.ErrCodeCatalogUnavailable, bookErr.Code)
	})

	t.Run("rejects a negative page", func(t *testing.T) {
		cat := new(mockCatalog)
		svc := NewBookService(cat, &stubCommentService{})

		_, err := svc.Browse(ctx, "go", -1)

		var bookErr *bookmodel.BookError
		require.ErrorAs(t, err, &bookErr)
		assert.Equal(t, bookmodel.ErrCodeValidation, bookErr.Code)
		cat.AssertNotCalled(t, "Search")
	})
}
