package api

import (
	"net/http" // HTTP status codes

	"toolstore/internal/domain" // Importing domain models

	"github.com/gin-gonic/gin" // Gin web framework
	"gorm.io/gorm"             // GORM ORM library
)

// ListDeliverablesHandler returns every deliverable granted to the caller
func ListDeliverablesHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c) // Get userID from context
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		var deliverables []domain.Deliverable // Slice to hold deliverables
		if err := db.Where("user_id = ?", userID).Find(&deliverables).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch deliverables"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"deliverables": deliverables}) // Return deliverables
	}
}

// GetDeliverableHandler returns the deliverable created for one payment
// request, ownership-checked the same way payment lookups are.
func GetDeliverableHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c) // Get userID from context
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		requestID, ok := paramID(c, "paymentRequestId") // Parse the payment request ID
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payment request id"})
			return
		}
		var deliverable domain.Deliverable // Deliverable struct to hold data
		err := db.Where("payment_request_id = ?", requestID).First(&deliverable).Error
		if err == gorm.ErrRecordNotFound || (err == nil && deliverable.UserID != userID) {
			// Absent and not-yours look identical to the caller
			c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
			return
		} else if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch deliverable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"deliverable": deliverable}) // Return the deliverable
	}
}
