package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"bookhub/internal/service"
)

// Context keys set by the auth middlewares.
const (
	ContextUserKey   = "user"
	ContextUserIDKey = "userID"
	ContextClaimsKey = "claims"
)

// bearerToken extracts the token from an "Authorization: Bearer <token>" header.
func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", false
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", false
	}
	return parts[1], true
}

// VerifyToken is the lighter of the two auth middlewares: it checks that the
// bearer token is a valid, unexpired access token and stashes its claims, but
// does not touch the database. Good enough for reads and for creates that only
// need the subject ID.
func VerifyToken(tokens service.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing or malformed authorization header"})
			c.Abort()
			return
		}

		claims, err := tokens.Verify(tokenString, service.TokenTypeAccess)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}

		c.Set(ContextClaimsKey, claims)
		c.Set(ContextUserIDKey, claims.Subject)
		c.Next()
	}
}

// RequireUser verifies the access token and then resolves the subject to a
// live user row. A token can outlive its account; resolving on every request
// closes that window, so a deleted user is 401 immediately even with a valid
// token in hand.
func RequireUser(tokens service.TokenService, users service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing or malformed authorization header"})
			c.Abort()
			return
		}

		claims, err := tokens.Verify(tokenString, service.TokenTypeAccess)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}

		user, err := users.GetUser(claims.Subject)
		if err != nil {
			if errors.Is(err, service.ErrUserNotFound) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to resolve user"})
			}
			c.Abort()
			return
		}

		c.Set(ContextClaimsKey, claims)
		c.Set(ContextUserKey, user)
		c.Set(ContextUserIDKey, user.ID)
		c.Next()
	}
}
