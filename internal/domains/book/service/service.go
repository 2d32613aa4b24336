package service

import (
	"context"

	"bookshelf-backend/internal/domains/book/model"
	commentservice "bookshelf-backend/internal/domains/comment/service"
	"bookshelf-backend/internal/infrastructure/catalog"
)

// ServiceInterface exposes catalog browsing.
type ServiceInterface interface {
	Browse(ctx context.Context, query string, page int) (*model.BrowseResponse, error)
}

// Catalog is the slice of the catalog client the book service needs.
type Catalog interface {
	Search(ctx context.Context, query string, page int) (*catalog.SearchPage, error)
}

type bookService struct {
	catalog        Catalog
	commentService commentservice.ServiceInterface
}

func NewBookService(cat Catalog, commentService commentservice.ServiceInterface) ServiceInterface {
	return &bookService{
		catalog:        cat,
		commentService: commentService,
	}
}

// Browse fetches one page from the catalog and decorates each book
// with its aggregate rating. Rating lookups never fail the browse:
// books without ratings carry the zero triplet.
func (s *bookService) Browse(ctx context.Context, query string, page int) (*model.BrowseResponse, error) {
	if page < 0 {
		return nil, model.NewValidationError("page must not be negative")
	}

	result, err := s.catalog.Search(ctx, query, page)
	if err != nil {
		return nil, model.NewCatalogUnavailableError(err)
	}

	ids := make([]string, 0, len(result.Books))
	for _, b := range result.Books {
		ids = append(ids, b.ID)
	}
	ratings := s.commentService.RatingsFor(ctx, ids)

	books := make([]model.BookWithRating, 0, len(result.Books))
	for _, b := range result.Books {
		books = append(books, model.BookWithRating{
			Book:   b,
			Rating: ratings[b.ID],
		})
	}

	return &model.BrowseResponse{
		TotalItems: result.TotalItems,
		Page:       result.Page,
		PageSize:   result.PageSize,
		Books:      books,
	}, nil
}
