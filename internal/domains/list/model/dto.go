package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"
)

// AddItemRequest adds one book to a cart or favorites list.
type AddItemRequest struct {
	BookID    string `json:"bookId"`
	Title     string `json:"title"`
	Thumbnail string `json:"thumbnail"`
}

func (r AddItemRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.BookID, validation.Required),
		validation.Field(&r.Title, validation.Length(0, 500)),
	)
}

// ItemsResponse lists a favorites-style collection.
type ItemsResponse struct {
	Items []*ListItem `json:"items"`
}

// CartResponse lists the cart together with its running total.
type CartResponse struct {
	Items []*ListItem     `json:"items"`
	Total decimal.Decimal `json:"total"`
}
