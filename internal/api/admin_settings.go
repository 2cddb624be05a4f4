package api

import (
	"context"  // Context for Redis operations
	"net/http" // HTTP status codes

	"toolstore/internal/domain" // Importing domain models
	"toolstore/internal/utils"  // Utility functions

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logging library
	"gorm.io/gorm"                 // GORM ORM library
)

// UpdateSettingsRequest represents the admin's payment-collection profile.
// UPIID is the only mandatory field; omitted optionals are cleared, not kept.
type UpdateSettingsRequest struct {
	UPIID       string `json:"upi_id" binding:"required"` // UPI collection identifier
	UPIName     string `json:"upi_name"`                  // Name shown with the UPI ID
	QRCode      string `json:"qr_code"`                   // QR image data
	BankAccount string `json:"bank_account"`              // Optional bank reference
	PhoneNumber string `json:"phone_number"`              // Optional phone number
}

// GetAdminSettingsHandler returns the caller's payment profile, if any
func GetAdminSettingsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		adminID, ok := currentUserID(c) // Get userID from context
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		var settings domain.AdminSettings // Settings struct to hold data
		err := db.Where("admin_id = ?", adminID).First(&settings).Error
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusOK, gin.H{"settings": nil}) // Not configured yet
			return
		} else if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch settings"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"settings": settings}) // Return the profile
	}
}

// UpdateAdminSettingsHandler upserts the caller's payment profile and marks
// it active. Optional fields are overwritten with whatever was sent, so
// omitting a field clears it.
func UpdateAdminSettingsHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		adminID, ok := currentUserID(c) // Get userID from context
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		var req UpdateSettingsRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// UPI ID is mandatory
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		settings := domain.AdminSettings{
			AdminID:     adminID,         // Owning admin
			UPIID:       req.UPIID,       // UPI collection identifier
			UPIName:     req.UPIName,     // Display name
			QRCode:      req.QRCode,      // QR image data
			BankAccount: req.BankAccount, // Bank reference
			PhoneNumber: req.PhoneNumber, // Phone number
			IsActive:    true,            // Updated profiles are active
		}
		var existing domain.AdminSettings // Look for an existing row
		err := db.Where("admin_id = ?", adminID).First(&existing).Error
		if err == gorm.ErrRecordNotFound {
			// First configuration, insert
			if err := db.Create(&settings).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save settings"})
				return
			}
		} else if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch settings"})
			return
		} else {
			// Update in place; Select so empty optionals clear prior values
			settings.ID = existing.ID
			if err := db.Model(&existing).
				Select("upi_id", "upi_name", "qr_code", "bank_account", "phone_number", "is_active").
				Updates(&settings).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save settings"})
				return
			}
		}
		// Drop the cached public profile
		if err := utils.DeleteCache(context.Background(), rdb, cacheKeyPublicUPI); err != nil {
			logrus.WithField("error", err.Error()).Warn("Settings cache invalidation failed")
		}
		logrus.WithField("admin_id", adminID).Info("Payment profile updated")
		c.JSON(http.StatusOK, gin.H{"settings": settings}) // Return the saved profile
	}
}
