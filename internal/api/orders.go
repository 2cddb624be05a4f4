package api

import (
	"encoding/json" // Snapshot serialization
	"net/http"      // HTTP status codes

	"toolstore/internal/domain" // Importing domain models

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
)

// CreateOrderRequest represents an order creation request.
// The total is computed client-side from the cart and trusted as-is; the
// service does not recompute it against current product prices. Callers own
// that trust boundary.
type CreateOrderRequest struct {
	TotalAmount int64              `json:"total_amount" binding:"required,gte=0"` // Total in minor units
	Items       []domain.OrderItem `json:"items" binding:"required,min=1"`        // Cart snapshot
}

// CreateOrderHandler inserts a new pending order with a frozen item snapshot
func CreateOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c) // Get userID from context
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		var req CreateOrderRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If invalid, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		snapshot, err := json.Marshal(req.Items) // Freeze the item list
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid items"})
			return
		}
		order := domain.Order{
			UserID:      userID,              // Owning user
			TotalAmount: req.TotalAmount,     // Caller-supplied total
			Status:      domain.OrderPending, // Orders always start pending
			Items:       string(snapshot),    // Frozen snapshot
		}
		// Insert the order
		if err := db.Create(&order).Error; err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id": userID,      // User ID
				"total":   req.TotalAmount, // Order total
				"error":   err.Error(), // Error message
			}).Error("Order creation failed") // Log failure
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
			return
		}
		// Log the new order
		logrus.WithFields(logrus.Fields{
			"user_id":  userID,          // User ID
			"order_id": order.ID,        // Order ID
			"total":    req.TotalAmount, // Order total
		}).Info("Order created")
		c.JSON(http.StatusCreated, gin.H{"order": order}) // Return the new order
	}
}

// ListOrdersHandler returns all orders for the authenticated user
func ListOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c) // Get userID from context
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		var orders []domain.Order // Slice to hold orders
		if err := db.Where("user_id = ?", userID).Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"orders": orders}) // Return orders
	}
}
