package middleware

import (
	"net/http"                 // HTTP status codes
	"strings"                  // String manipulation
	"toolstore/internal/utils" // JWT utility functions

	"github.com/gin-gonic/gin" // Gin web framework
)

// SessionCookie is the cookie the session token is carried in.
const SessionCookie = "session"

// tokenFromRequest extracts the session token from the Authorization header
// or, failing that, from the session cookie.
func tokenFromRequest(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization") // Get Authorization header
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ") // Extract the bearer token
	}
	cookie, err := c.Cookie(SessionCookie) // Fall back to the session cookie
	if err != nil {
		return "" // No token present
	}
	return cookie
}

// AuthMiddleware validates session tokens and extracts user information.
// Requests without a valid token are rejected with 401.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := tokenFromRequest(c) // Extract the token string
		if tokenStr == "" {
			// No token at all, abort with unauthorized status
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing session token"})
			return
		}
		claims, err := utils.ParseJWT(tokenStr, secret) // Parse the session token
		if err != nil {
			// If parsing fails, abort with unauthorized status
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}
		c.Set("userID", claims.UserID) // Store userID in context
		c.Next()                       // Proceed to the next handler
	}
}

// OptionalAuthMiddleware resolves the caller's identity when a valid token is
// present but never rejects the request. Used by public operations such as
// auth.me that behave differently for signed-in callers.
func OptionalAuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenStr := tokenFromRequest(c); tokenStr != "" {
			if claims, err := utils.ParseJWT(tokenStr, secret); err == nil {
				c.Set("userID", claims.UserID) // Store userID in context when valid
			}
		}
		c.Next() // Always proceed
	}
}
