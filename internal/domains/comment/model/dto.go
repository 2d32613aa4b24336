package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// =====================================================
// REQUEST DTOs
// =====================================================

// CreateCommentRequest is the body of POST /comments.
type CreateCommentRequest struct {
	BookID    string `json:"bookId"`
	UserID    string `json:"userId"`
	UserName  string `json:"userName,omitempty"`
	UserEmail string `json:"userEmail,omitempty"`
	Comment   string `json:"comment"`
	Rating    int    `json:"rating,omitempty"`
}

func (r CreateCommentRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.BookID,
			validation.Required.Error("bookId is required"),
		),
		validation.Field(&r.UserID,
			validation.Required.Error("userId is required"),
		),
		validation.Field(&r.Comment,
			validation.Required.Error("comment is required"),
		),
		validation.Field(&r.Rating,
			validation.Min(MinRating).Error("rating must not be negative"),
			validation.Max(MaxRating).Error("rating must not exceed 5"),
		),
		validation.Field(&r.UserEmail,
			is.Email.Error("invalid email format"),
		),
	)
}

// UpdateCommentRequest is the body of PUT /comments?commentId=<id>.
// Both fields are required: an edit always restates the full comment.
type UpdateCommentRequest struct {
	Comment string `json:"comment"`
	Rating  int    `json:"rating"`
}

func (r UpdateCommentRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Comment,
			validation.Required.Error("comment is required"),
		),
		validation.Field(&r.Rating,
			validation.Min(MinRating).Error("rating must not be negative"),
			validation.Max(MaxRating).Error("rating must not exceed 5"),
		),
	)
}

// =====================================================
// RESPONSE DTOs
// =====================================================

// CommentsResponse wraps GET /comments output.
type CommentsResponse struct {
	Comments []*Comment `json:"comments"`
}

// RatingResponse wraps the single-book GET /ratings output.
type RatingResponse struct {
	Rating BookRating `json:"rating"`
}

// RatingsResponse wraps the batch GET /ratings output. Every requested
// book id appears as a key, with the zero triplet when unrated.
type RatingsResponse struct {
	Ratings map[string]BookRating `json:"ratings"`
}
