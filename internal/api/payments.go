package api

import (
	"errors"   // Sentinel errors for transaction outcomes
	"net/http" // HTTP status codes

	"toolstore/internal/domain" // Importing domain models

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
)

// errDuplicatePending marks a second pending request for the same product
var errDuplicatePending = errors.New("duplicate pending payment request")

// SubmitPaymentRequest represents a buyer's manual payment claim
type SubmitPaymentRequest struct {
	ProductID     uint   `json:"product_id" binding:"required"`     // Product being paid for
	Amount        int64  `json:"amount" binding:"required,gte=0"`   // Claimed amount in minor units
	TransactionID string `json:"transaction_id" binding:"required"` // UTR / transaction reference
	PaymentMethod string `json:"payment_method"`                    // Defaults to upi
}

// SubmitPaymentHandler creates a pending payment request. A user may have at
// most one pending request per product; duplicates are rejected so an admin
// never reviews the same claim twice.
func SubmitPaymentHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c) // Get userID from context
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		var req SubmitPaymentRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If invalid, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		if req.PaymentMethod == "" {
			req.PaymentMethod = "upi" // Default payment method
		}
		request := domain.PaymentRequest{
			UserID:        userID,                // Submitting user
			ProductID:     req.ProductID,         // Product being paid for
			Amount:        req.Amount,            // Claimed amount
			Status:        domain.PaymentPending, // Requests always start pending
			TransactionID: req.TransactionID,     // UTR reference
			PaymentMethod: req.PaymentMethod,     // Payment method tag
		}
		// Duplicate check and insert run in one transaction
		err := db.Transaction(func(tx *gorm.DB) error {
			var count int64 // Existing pending requests for the pair
			if err := tx.Model(&domain.PaymentRequest{}).
				Where("user_id = ? AND product_id = ? AND status = ?", userID, req.ProductID, domain.PaymentPending).
				Count(&count).Error; err != nil {
				return err // Data store failure, rollback
			}
			if count > 0 {
				return errDuplicatePending // Already awaiting review
			}
			return tx.Create(&request).Error // Insert the request
		})
		if err == errDuplicatePending {
			// One pending claim per product at a time
			c.JSON(http.StatusConflict, gin.H{"error": "A pending request for this product already exists"})
			return
		} else if err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id":    userID,        // User ID
				"product_id": req.ProductID, // Product ID
				"error":      err.Error(),   // Error message
			}).Error("Payment request submission failed") // Log failure
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit payment request"})
			return
		}
		// Log the new claim
		logrus.WithFields(logrus.Fields{
			"user_id":        userID,            // User ID
			"request_id":     request.ID,        // Payment request ID
			"product_id":     req.ProductID,     // Product ID
			"amount":         req.Amount,        // Claimed amount
			"transaction_id": req.TransactionID, // UTR reference
		}).Info("Payment request submitted")
		c.JSON(http.StatusCreated, gin.H{"request": request}) // Return the new request
	}
}

// ListPaymentsHandler returns all of the caller's payment requests, any status
func ListPaymentsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c) // Get userID from context
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		var requests []domain.PaymentRequest // Slice to hold requests
		if err := db.Where("user_id = ?", userID).Find(&requests).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch payment requests"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"requests": requests}) // Return requests
	}
}

// GetPaymentHandler returns one payment request, ownership-checked: callers
// only ever see their own requests, a mismatch reads as forbidden.
func GetPaymentHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c) // Get userID from context
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		id, ok := paramID(c, "id") // Parse the request ID
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request id"})
			return
		}
		var request domain.PaymentRequest // Request struct to hold data
		err := db.First(&request, id).Error
		if err == gorm.ErrRecordNotFound || (err == nil && request.UserID != userID) {
			// Absent and not-yours look identical to the caller
			c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
			return
		} else if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch payment request"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"request": request}) // Return the request
	}
}
