package api

import (
	"net/http" // HTTP status codes
	"time"     // Timestamps

	"toolstore/internal/domain" // Importing domain models
	"toolstore/internal/middleware"
	"toolstore/internal/utils" // Utility functions

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
)

// SessionRequest carries the identity fields the OAuth callback resolved.
// The provider has already verified the user; we only record who they are.
type SessionRequest struct {
	OpenID      string `json:"open_id" binding:"required"` // Provider-issued identifier
	Name        string `json:"name"`                       // Display name
	Email       string `json:"email"`                      // Contact email
	LoginMethod string `json:"login_method"`               // Provider login method
}

// AuthResponse carries the minted session token and the resolved user
type AuthResponse struct {
	Token string      `json:"token"` // Session token
	User  domain.User `json:"user"`  // The signed-in user
}

// SessionHandler exchanges a completed OAuth callback for a session token.
// The user row is upserted by OpenID; the configured store owner is promoted
// to admin on every sign-in.
func SessionHandler(db *gorm.DB, jwtSecret, ownerOpenID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SessionRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		var user domain.User // Upsert user by OpenID
		err := db.Where("open_id = ?", req.OpenID).First(&user).Error
		if err == gorm.ErrRecordNotFound {
			// First sign-in, create the user
			user = domain.User{
				OpenID:       req.OpenID,      // Provider identifier
				Name:         req.Name,        // Display name
				Email:        req.Email,       // Contact email
				LoginMethod:  req.LoginMethod, // Provider login method
				LastSignedIn: time.Now(),      // First session
			}
			if req.OpenID == ownerOpenID && ownerOpenID != "" {
				user.Role = domain.RoleAdmin // Store owner gets admin
			}
			if err := db.Create(&user).Error; err != nil {
				logrus.WithFields(logrus.Fields{
					"open_id": req.OpenID,  // Provider identifier
					"error":   err.Error(), // Error message
				}).Error("Failed to create user") // Log failure
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
				return
			}
		} else if err != nil {
			// Any other lookup error is a data store failure
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up user"})
			return
		} else {
			// Returning user, refresh the identity fields we were handed
			updates := map[string]any{
				"last_signed_in": time.Now(), // Record the sign-in
			}
			if req.Name != "" {
				updates["name"] = req.Name // Refresh display name
			}
			if req.Email != "" {
				updates["email"] = req.Email // Refresh email
			}
			if req.LoginMethod != "" {
				updates["login_method"] = req.LoginMethod // Refresh login method
			}
			if req.OpenID == ownerOpenID && ownerOpenID != "" {
				updates["role"] = domain.RoleAdmin // Keep the owner promoted
			}
			if err := db.Model(&user).Updates(updates).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
				return
			}
		}
		// Mint the session token
		token, err := utils.GenerateJWT(user.ID, jwtSecret)
		if err != nil {
			// If token generation fails, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
			return
		}
		// Log the session exchange
		logrus.WithFields(logrus.Fields{
			"user_id": user.ID,   // User ID
			"role":    user.Role, // Resolved role
		}).Info("Session created")
		// Carry the token in the session cookie as well as the body
		c.SetCookie(middleware.SessionCookie, token, int(24*time.Hour/time.Second), "/", "", false, true)
		c.JSON(http.StatusOK, AuthResponse{Token: token, User: user})
	}
}

// MeHandler returns the signed-in user, or null for anonymous callers
func MeHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c) // Resolved by the optional auth middleware
		if !ok {
			c.JSON(http.StatusOK, gin.H{"user": nil}) // Anonymous caller
			return
		}
		var user domain.User // Fetch user from database
		if err := db.First(&user, userID).Error; err != nil {
			c.JSON(http.StatusOK, gin.H{"user": nil}) // Stale token, treat as anonymous
			return
		}
		c.JSON(http.StatusOK, gin.H{"user": user}) // Return the user
	}
}

// LogoutHandler clears the session cookie
func LogoutHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Expire the cookie immediately
		c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
		c.JSON(http.StatusOK, gin.H{"success": true}) // Return success
	}
}
