package api

import (
	"errors"   // Sentinel errors for transaction outcomes
	"net/http" // HTTP status codes
	"time"     // Expiry timestamps

	"toolstore/internal/domain" // Importing domain models

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
)

// Sentinel errors distinguishing transaction outcomes for status mapping
var (
	errRequestNotFound  = errors.New("payment request not found")
	errInvalidTransition = errors.New("invalid payment status transition")
)

// ReviewRequest carries optional admin notes on an approve/reject decision
type ReviewRequest struct {
	Notes string `json:"notes"` // Overwrites prior notes when provided
}

// DeliverRequest carries the access artifact for an approved payment
type DeliverRequest struct {
	DeliveryType string     `json:"delivery_type" binding:"required"` // course, api, tool, service
	AccessLink   string     `json:"access_link"`                      // Access URL, if any
	APIKey       string     `json:"api_key"`                          // API key, if any
	Credentials  string     `json:"credentials"`                      // JSON credentials blob, if any
	ExpiresAt    *time.Time `json:"expires_at"`                       // Optional expiry
}

// ListAllPaymentsHandler returns every payment request in the system
func ListAllPaymentsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var requests []domain.PaymentRequest // Slice to hold requests
		if err := db.Find(&requests).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch payment requests"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"requests": requests}) // Return requests
	}
}

// GetPaymentDetailsHandler returns one payment request for admin review
func GetPaymentDetailsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c, "id") // Parse the request ID
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request id"})
			return
		}
		var request domain.PaymentRequest // Request struct to hold data
		if err := db.First(&request, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Payment request not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch payment request"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"request": request}) // Return the request
	}
}

// reviewPayment moves a pending request to the given decision state. The
// UPDATE is guarded on the current status so a request that already left
// pending is never silently overwritten; status only moves forward.
func reviewPayment(db *gorm.DB, id uint, decision domain.PaymentStatus, notes string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var request domain.PaymentRequest // Current state of the request
		if err := tx.First(&request, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return errRequestNotFound // Unknown request
			}
			return err // Data store failure
		}
		if !request.Status.CanTransitionTo(decision) {
			return errInvalidTransition // Already reviewed or delivered
		}
		updates := map[string]any{"status": decision} // New state
		if notes != "" {
			updates["notes"] = notes // Overwrite prior notes when provided
		}
		// Guarded update: only applies while the row is still pending
		res := tx.Model(&domain.PaymentRequest{}).
			Where("id = ? AND status = ?", id, request.Status).
			Updates(updates)
		if res.Error != nil {
			return res.Error // Data store failure, rollback
		}
		if res.RowsAffected == 0 {
			return errInvalidTransition // Lost a race with another reviewer
		}
		return nil // Commit
	})
}

// ReviewPaymentHandler builds the approve and reject endpoints; both share
// the guarded transition, only the target state differs.
func ReviewPaymentHandler(db *gorm.DB, decision domain.PaymentStatus) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c, "id") // Parse the request ID
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request id"})
			return
		}
		var req ReviewRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
			// Notes are optional; an empty body is fine
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		// Apply the decision
		switch err := reviewPayment(db, id, decision, req.Notes); err {
		case nil:
			// Log the decision
			logrus.WithFields(logrus.Fields{
				"request_id": id,       // Payment request ID
				"decision":   decision, // approved or rejected
			}).Info("Payment request reviewed")
			c.JSON(http.StatusOK, gin.H{"message": "Payment request " + string(decision)})
		case errRequestNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": "Payment request not found"}) // Unknown request
		case errInvalidTransition:
			c.JSON(http.StatusConflict, gin.H{"error": "Payment request already reviewed"}) // Forward-only
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update payment request"})
		}
	}
}

// DeliverPaymentHandler creates the deliverable for an approved request and
// marks the request delivered, both writes inside one transaction so a crash
// can never leave a delivered request without its deliverable. A second
// deliver call fails on the status guard instead of duplicating the
// deliverable.
func DeliverPaymentHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c, "id") // Parse the request ID
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request id"})
			return
		}
		var req DeliverRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If invalid, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		if !domain.ValidDeliveryType(req.DeliveryType) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid delivery type"})
			return
		}
		var deliverable domain.Deliverable // The artifact being granted
		err := db.Transaction(func(tx *gorm.DB) error {
			var request domain.PaymentRequest // Look up the payment request
			if err := tx.First(&request, id).Error; err != nil {
				if err == gorm.ErrRecordNotFound {
					return errRequestNotFound // Unknown request
				}
				return err // Data store failure
			}
			if !request.Status.CanTransitionTo(domain.PaymentDelivered) {
				return errInvalidTransition // Only approved requests are deliverable
			}
			deliverable = domain.Deliverable{
				ProductID:        request.ProductID, // Copied from the request
				PaymentRequestID: request.ID,        // Source payment request
				UserID:           request.UserID,    // Copied from the request
				DeliveryType:     req.DeliveryType,  // Kind of access granted
				AccessLink:       req.AccessLink,    // Access URL, if any
				APIKey:           req.APIKey,        // API key, if any
				Credentials:      req.Credentials,   // Credentials blob, if any
				ExpiresAt:        req.ExpiresAt,     // Optional expiry
				IsActive:         true,              // Granted deliverables start active
			}
			// First write: create the deliverable
			if err := tx.Create(&deliverable).Error; err != nil {
				return err // Rollback, no half-delivered state
			}
			// Second write: mark the request delivered, guarded on approved
			res := tx.Model(&domain.PaymentRequest{}).
				Where("id = ? AND status = ?", id, domain.PaymentApproved).
				Update("status", domain.PaymentDelivered)
			if res.Error != nil {
				return res.Error // Rollback
			}
			if res.RowsAffected == 0 {
				return errInvalidTransition // Lost a race with another deliver
			}
			return nil // Commit both writes together
		})
		switch err {
		case nil:
			// Log the delivery
			logrus.WithFields(logrus.Fields{
				"request_id":     id,               // Payment request ID
				"deliverable_id": deliverable.ID,   // New deliverable ID
				"user_id":        deliverable.UserID, // Receiving user
				"delivery_type":  req.DeliveryType, // Kind of access granted
			}).Info("Content delivered")
			c.JSON(http.StatusCreated, gin.H{"deliverable": deliverable})
		case errRequestNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": "Payment request not found"}) // Unknown request
		case errInvalidTransition:
			c.JSON(http.StatusConflict, gin.H{"error": "Payment request is not approved"}) // Not deliverable
		default:
			logrus.WithFields(logrus.Fields{
				"request_id": id,          // Payment request ID
				"error":      err.Error(), // Error message
			}).Error("Delivery failed") // Log failure
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to deliver content"})
		}
	}
}
