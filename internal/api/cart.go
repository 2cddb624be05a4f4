package api

import (
	"net/http" // HTTP status codes

	"toolstore/internal/domain" // Importing domain models

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
	"gorm.io/gorm/clause"        // Conflict clauses for upserts
)

// AddToCartRequest represents an add-or-update cart mutation
type AddToCartRequest struct {
	ProductID uint `json:"product_id" binding:"required"`       // Product to add
	Quantity  int  `json:"quantity" binding:"required,gte=1"`   // New quantity, at least 1
}

// GetCartHandler returns all cart rows for the authenticated user
func GetCartHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c) // Get userID from context
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		var items []domain.CartItem // Slice to hold cart rows
		if err := db.Where("user_id = ?", userID).Find(&items).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": items}) // Return cart rows
	}
}

// AddToCartHandler upserts the (user, product) cart row. An existing row's
// quantity is overwritten, not incremented. The single ON CONFLICT statement
// keeps concurrent upserts for the same pair from ever creating two rows.
func AddToCartHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c) // Get userID from context
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		var req AddToCartRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If invalid, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		item := domain.CartItem{
			UserID:    userID,        // Owning user
			ProductID: req.ProductID, // Product to add
			Quantity:  req.Quantity,  // New quantity
		}
		// Upsert on the (user_id, product_id) unique pair
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "product_id"}}, // Conflict target
			DoUpdates: clause.AssignmentColumns([]string{"quantity"}),           // Overwrite quantity
		}).Create(&item).Error
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id":    userID,        // User ID
				"product_id": req.ProductID, // Product ID
				"error":      err.Error(),   // Error message
			}).Error("Cart upsert failed") // Log failure
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart updated"}) // Return success
	}
}

// RemoveFromCartHandler deletes the (user, product) row; removing a product
// that is not in the cart is a no-op, not an error.
func RemoveFromCartHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c) // Get userID from context
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		productID, ok := paramID(c, "productId") // Parse the product ID
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
			return
		}
		// Delete the pair's row if present
		if err := db.Where("user_id = ? AND product_id = ?", userID, productID).
			Delete(&domain.CartItem{}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove item"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Item removed"}) // Return success either way
	}
}

// ClearCartHandler deletes every cart row for the authenticated user
func ClearCartHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c) // Get userID from context
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		// Delete all rows for the user
		if err := db.Where("user_id = ?", userID).Delete(&domain.CartItem{}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"}) // Return success
	}
}
