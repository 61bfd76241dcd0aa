// auth.go - JWT authentication middleware
//
// Authentication Flow:
// 1. Extract the bearer token from the Authorization header
// 2. Validate the token signature and expiration
// 3. Look up the session row named by the jti claim
// 4. Store the resolved user ID in the request context for handlers

package middleware // Declares the package name

import (
	"net/http"
	"strings"
	"time"

	"go-recipe-backend/config"   // Project config (for JWT secret)
	"go-recipe-backend/database" // Session lookups

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Claims are the token claims minted at login. The session ID travels as the
// registered jti claim.
type Claims struct {
	UserID uint `json:"user_id"`
	jwt.RegisteredClaims
}

// ContextUserKey is where Auth stores the resolved user ID in the gin context.
const ContextUserKey = "user_id"

// ContextSessionKey is where Auth stores the session ID for logout.
const ContextSessionKey = "session_id"

// Auth returns the gin middleware guarding private routes. A request passes
// only when it carries a well-signed token AND the session row the token
// names still exists; logout deletes the row, which revokes the token.
func Auth(store *database.Store, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "missing or invalid authorization header"})
			return
		}
		tokenStr := strings.TrimPrefix(header, "Bearer ")

		claims := &Claims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "invalid token"})
			return
		}

		sess, err := store.SessionByID(c.Request.Context(), claims.ID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "session expired or revoked"})
			return
		}
		if time.Now().After(sess.ExpiresAt) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "session expired or revoked"})
			return
		}

		c.Set(ContextUserKey, sess.UserID)
		c.Set(ContextSessionKey, sess.ID)
		c.Next()
	}
}
