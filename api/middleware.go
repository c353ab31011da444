package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/eventgrid/eventgrid/internal/domain"
)

const userContextKey = "currentUser"

// IdentityDirectory resolves an opaque bearer token to a user record. Token
// issuance and verification live outside this service.
type IdentityDirectory interface {
	ResolveToken(ctx context.Context, token string) (*domain.User, error)
}

// Auth rejects requests without a resolvable bearer token and stashes the
// resolved user in the gin context for the handlers.
func Auth(identity IdentityDirectory) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, envelope{
				Success: false,
				Error:   &errorBody{Code: string(domain.CodeUnauthorized), Message: "Missing bearer token"},
			})
			return
		}

		user, err := identity.ResolveToken(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, envelope{
				Success: false,
				Error:   &errorBody{Code: string(domain.CodeUnauthorized), Message: "Invalid or missing credentials"},
			})
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

func currentUser(c *gin.Context) *domain.User {
	if v, ok := c.Get(userContextKey); ok {
		if user, ok := v.(*domain.User); ok {
			return user
		}
	}
	return nil
}
