package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"bookshelf-backend/internal/domains/comment/model"
	"bookshelf-backend/pkg/logger"
)

// =====================================================
// RATING CACHE (invalidate-on-write, optional)
// =====================================================

// RatingCache sits in front of the aggregator. It is never the source
// of truth: every write path invalidates, and a miss or any cache
// error falls through to a full recompute.
type RatingCache interface {
	Get(ctx context.Context, bookID string) (model.BookRating, bool)
	Set(ctx context.Context, bookID string, rating model.BookRating)
	Invalidate(ctx context.Context, bookID string)
}

// nopRatingCache disables caching: every read recomputes.
type nopRatingCache struct{}

func NewNopRatingCache() RatingCache {
	return nopRatingCache{}
}

func (nopRatingCache) Get(context.Context, string) (model.BookRating, bool) {
	return model.BookRating{}, false
}
func (nopRatingCache) Set(context.Context, string, model.BookRating) {}
func (nopRatingCache) Invalidate(context.Context, string)            {}

// redisRatingCache keeps rating triplets in redis with a short TTL as
// a backstop against missed invalidations.
type redisRatingCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisRatingCache(client *redis.Client, ttl time.Duration) RatingCache {
	return &redisRatingCache{client: client, ttl: ttl}
}

func ratingKey(bookID string) string {
	return "rating:" + bookID
}

func (c *redisRatingCache) Get(ctx context.Context, bookID string) (model.BookRating, bool) {
	data, err := c.client.Get(ctx, ratingKey(bookID)).Bytes()
	if err != nil {
		if err != redis.Nil {
			logger.Error("rating cache get failed", err)
		}
		return model.BookRating{}, false
	}

	var rating model.BookRating
	if err := json.Unmarshal(data, &rating); err != nil {
		logger.Error("rating cache entry corrupt, dropping", err)
		c.Invalidate(ctx, bookID)
		return model.BookRating{}, false
	}

	return rating, true
}

func (c *redisRatingCache) Set(ctx context.Context, bookID string, rating model.BookRating) {
	data, err := json.Marshal(rating)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, ratingKey(bookID), data, c.ttl).Err(); err != nil {
		logger.Error("rating cache set failed", err)
	}
}

func (c *redisRatingCache) Invalidate(ctx context.Context, bookID string) {
	if err := c.client.Del(ctx, ratingKey(bookID)).Err(); err != nil {
		logger.Error("rating cache invalidate failed", err)
	}
}
