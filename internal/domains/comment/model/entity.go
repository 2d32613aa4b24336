package model

import (
	"math"
	"time"
)

// Comment represents a user comment on a book, optionally carrying a
// star rating. Timestamps are RFC3339 strings: the document store's
// native timestamp type is normalized once, at the store-adapter
// boundary, and everything above works with calendar strings.
type Comment struct {
	ID        string `json:"id"`
	BookID    string `json:"bookId"`
	UserID    string `json:"userId"`
	UserName  string `json:"userName"`
	UserEmail string `json:"userEmail"`
	Comment   string `json:"comment"`
	Rating    int    `json:"rating"` // 0 = no rating, 1-5 = stars
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt,omitempty"`
	IsEdited  bool   `json:"isEdited"`
}

// IsRated reports whether the comment contributes to the book's rating.
// A rating of 0 means a text-only comment.
func (c *Comment) IsRated() bool {
	return c.Rating > 0
}

// CreatedTime parses the creation timestamp for sorting. A comment with
// an unparseable timestamp sorts as the zero time (oldest).
func (c *Comment) CreatedTime() time.Time {
	t, err := time.Parse(time.RFC3339Nano, c.CreatedAt)
	if err != nil {
		return time.Time{}
	}
	return t
}

// BookRating is the derived rating summary for one book. It is never
// persisted: it is recomputed from the live comment set on every read,
// so concurrent writers can never leave a stale stored aggregate.
type BookRating struct {
	AverageRating float64 `json:"averageRating"`
	TotalRatings  int     `json:"totalRatings"`
	RatingsCount  int     `json:"ratingsCount"`
}

// ComputeRating reduces a book's comments to its rating triplet.
// Comments with rating 0 are excluded. The average is rounded to one
// decimal place, half away from zero, so the result is reproducible
// for a given rating multiset.
func ComputeRating(comments []*Comment) BookRating {
	var total, count int
	for _, c := range comments {
		if c.IsRated() {
			total += c.Rating
			count++
		}
	}

	if count == 0 {
		return BookRating{}
	}

	return BookRating{
		AverageRating: Round10(float64(total) / float64(count)),
		TotalRatings:  total,
		RatingsCount:  count,
	}
}

// Round10 rounds to one decimal place, half away from zero.
func Round10(v float64) float64 {
	return math.Round(v*10) / 10
}
