package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"bookshelf-backend/pkg/jwt"
)

const actorKey = "actor"

// Actor is the authenticated identity attached to the request context.
type Actor struct {
	ID    string
	Name  string
	Email string
}

// AuthMiddleware verifies the bearer token and stores the resulting
// Actor on the gin context for handlers to pick up via ActorFrom.
func AuthMiddleware(manager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(401, gin.H{"error": "missing authorization header"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(401, gin.H{"error": "invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := manager.ValidateToken(parts[1])
		if err != nil {
			c.JSON(401, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}

		c.Set(actorKey, Actor{
			ID:    claims.UserID,
			Name:  claims.Name,
			Email: claims.Email,
		})

		c.Next()
	}
}

// ActorFrom returns the authenticated actor, if any.
func ActorFrom(c *gin.Context) (Actor, bool) {
	v, ok := c.Get(actorKey)
	if !ok {
		return Actor{}, false
	}
	actor, ok := v.(Actor)
	return actor, ok
}
