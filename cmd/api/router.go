package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookshelf-backend/internal/shared/middleware"
	"bookshelf-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	auth := middleware.AuthMiddleware(c.JWTManager)

	// Health check
	router.GET("/health", healthCheckHandler(c))

	// ========================================
	// RATING ROUTES
	// ========================================
	router.GET("/ratings", c.CommentHandler.GetRatings)

	// ========================================
	// COMMENT ROUTES
	// ========================================
	router.GET("/comments", c.CommentHandler.ListComments)
	router.POST("/comments", auth, c.CommentHandler.CreateComment)
	router.PUT("/comments", auth, c.CommentHandler.UpdateComment)
	router.DELETE("/comments", auth, c.CommentHandler.DeleteComment)

	// ========================================
	// BOOK ROUTES
	// ========================================
	router.GET("/books", c.BookHandler.Browse)

	// ========================================
	// CART + FAVORITES ROUTES
	// ========================================
	router.GET("/cart", auth, c.ListHandler.GetCart)
	router.POST("/cart", auth, c.ListHandler.AddToCart)
	router.DELETE("/cart", auth, c.ListHandler.RemoveFromCart)

	router.GET("/favorites", auth, c.ListHandler.GetFavorites)
	router.POST("/favorites", auth, c.ListHandler.AddToFavorites)
	router.DELETE("/favorites", auth, c.ListHandler.RemoveFromFavorites)

	return router
}

// healthCheckHandler reports service and dependency status.
func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		dbStatus := "ok"
		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			dbStatus = "unavailable"
		}

		redisStatus := "disabled"
		if c.Redis != nil {
			redisStatus = "ok"
			if err := c.Redis.HealthCheck(ctx.Request.Context()); err != nil {
				redisStatus = "unavailable"
			}
		}

		status := http.StatusOK
		if dbStatus != "ok" {
			status = http.StatusServiceUnavailable
		}

		ctx.JSON(status, gin.H{
			"status":  dbStatus,
			"version": c.Config.App.Version,
			"deps": gin.H{
				"database": dbStatus,
				"redis":    redisStatus,
			},
		})
	}
}
