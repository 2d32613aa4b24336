package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func rated(rating int) *Comment {
	return &Comment{
		BookID:  "book-1",
		UserID:  "user-1",
		Comment: "some text",
		Rating:  rating,
	}
}

func TestComputeRating(t *testing.T) {
	t.Run("no comments yields zero triplet", func(t *testing.T) {
		assert.Equal(t, BookRating{}, ComputeRating(nil))
		assert.Equal(t, BookRating{}, ComputeRating([]*Comment{}))
	})

	t.Run("text-only comments yield zero triplet", func(t *testing.T) {
		rating := ComputeRating([]*Comment{rated(0), rated(0)})
		assert.Equal(t, BookRating{}, rating)
	})

	t.Run("unrated comments are excluded from the average", func(t *testing.T) {
		rating := ComputeRating([]*Comment{rated(4), rated(0), rated(5)})

		assert.Equal(t, 4.5, rating.AverageRating)
		assert.Equal(t, 9, rating.TotalRatings)
		assert.Equal(t, 2, rating.RatingsCount)
	})

	t.Run("average rounds to one decimal place", func(t *testing.T) {
		// (5 + 4 + 4) / 3 = 4.333... -> 4.3
		rating := ComputeRating([]*Comment{rated(5), rated(4), rated(4)})

		assert.Equal(t, 4.3, rating.AverageRating)
		assert.Equal(t, 13, rating.TotalRatings)
		assert.Equal(t, 3, rating.RatingsCount)
	})

	t.Run("half rounds away from zero", func(t *testing.T) {
		// (4 + 5) / 2 = 4.5 stays 4.5; (1 + 2 + 2 + 2) / 4 = 1.75 -> 1.8
		rating := ComputeRating([]*Comment{rated(1), rated(2), rated(2), rated(2)})

		assert.Equal(t, 1.8, rating.AverageRating)
	})

	t.Run("same multiset always reduces to the same triplet", func(t *testing.T) {
		a := ComputeRating([]*Comment{rated(3), rated(5), rated(1)})
		b := ComputeRating([]*Comment{rated(1), rated(3), rated(5)})

		assert.Equal(t, a, b)
	})
}

func TestRound10(t *testing.T) {
	assert.Equal(t, 4.3, Round10(4.333333))
	assert.Equal(t, 4.7, Round10(4.666666))
	assert.Equal(t, 1.8, Round10(1.75))
	assert.Equal(t, 5.0, Round10(5.0))
	assert.Equal(t, 0.0, Round10(0.04))
}

func TestCommentIsRated(t *testing.T) {
	assert.False(t, rated(0).IsRated())
	assert.True(t, rated(1).IsRated())
	assert.True(t, rated(5).IsRated())
}

func TestCommentCreatedTime(t *testing.T) {
	c := &Comment{CreatedAt: "2025-03-01T10:00:00Z"}
	assert.Equal(t, 2025, c.CreatedTime().Year())

	broken := &Comment{CreatedAt: "not-a-timestamp"}
	assert.True(t, broken.CreatedTime().IsZero())
}
