package model

import (
	commentmodel "bookshelf-backend/internal/domains/comment/model"
	"bookshelf-backend/internal/infrastructure/catalog"
)

// BookWithRating is a catalog summary decorated with the book's
// aggregate rating.
type BookWithRating struct {
	catalog.Book
	Rating commentmodel.BookRating `json:"rating"`
}

// BrowseResponse is one page of browsable books.
type BrowseResponse struct {
	TotalItems int              `json:"totalItems"`
	Page       int              `json:"page"`
	PageSize   int              `json:"pageSize"`
	Books      []BookWithRating `json:"books"`
}
