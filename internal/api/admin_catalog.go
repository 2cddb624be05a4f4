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

// UpsertProductRequest represents an admin product create-or-update.
// A zero ID creates; a non-zero ID updates in place.
type UpsertProductRequest struct {
	ID            uint   `json:"id"`                              // Zero for create
	CategoryID    uint   `json:"category_id" binding:"required"`  // Owning category
	Name          string `json:"name" binding:"required"`         // Product name
	Description   string `json:"description"`                     // Product description
	Price         int64  `json:"price" binding:"required,gte=0"`  // Price in minor units
	OriginalPrice *int64 `json:"original_price"`                  // Pre-discount price, if any
	Image         string `json:"image"`                           // Image reference
	Stock         int    `json:"stock"`                           // Informational stock count
	IsActive      *bool  `json:"is_active"`                       // Defaults to true on create
	Features      string `json:"features"`                        // JSON-encoded feature list
}

// UpsertCategoryRequest represents an admin category create-or-update
type UpsertCategoryRequest struct {
	ID          uint   `json:"id"`                      // Zero for create
	Name        string `json:"name" binding:"required"` // Category name
	Description string `json:"description"`             // Category description
	Icon        string `json:"icon"`                    // Icon identifier
}

// invalidateProductCache drops the cached product list and, for updates, the
// cached single product, mirroring how mutations invalidate reads elsewhere.
func invalidateProductCache(rdb *redis.Client, id uint) {
	ctx := context.Background() // Context for Redis operations
	keys := []string{cacheKeyProducts}
	if id != 0 {
		keys = append(keys, cacheKeyProduct(id)) // Also drop the single-product entry
	}
	if err := utils.DeleteCache(ctx, rdb, keys...); err != nil {
		logrus.WithField("error", err.Error()).Warn("Product cache invalidation failed") // Cache is best-effort
	}
}

// AdminListProductsHandler returns every product, inactive ones included
func AdminListProductsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []domain.Product // Slice to hold products
		if err := db.Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"products": products}) // Return products
	}
}

// UpsertProductHandler creates or updates a product
func UpsertProductHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpsertProductRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If invalid, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		active := true // New products default to active
		if req.IsActive != nil {
			active = *req.IsActive // Explicit flag wins
		}
		product := domain.Product{
			ID:            req.ID,            // Zero for create
			CategoryID:    req.CategoryID,    // Owning category
			Name:          req.Name,          // Product name
			Description:   req.Description,   // Product description
			Price:         req.Price,         // Price in minor units
			OriginalPrice: req.OriginalPrice, // Pre-discount price
			Image:         req.Image,         // Image reference
			Stock:         req.Stock,         // Stock count
			IsActive:      active,            // Soft-delete flag
			Features:      req.Features,      // Feature list
		}
		if req.ID != 0 {
			// Update in place; Select covers zero-valued fields like IsActive
			res := db.Model(&domain.Product{}).Where("id = ?", req.ID).
				Select("category_id", "name", "description", "price", "original_price",
					"image", "stock", "is_active", "features").
				Updates(&product)
			if res.Error != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
				return
			}
			if res.RowsAffected == 0 {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"}) // Unknown product
				return
			}
		} else if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}
		invalidateProductCache(rdb, req.ID) // Drop stale catalog entries
		// Log the mutation
		logrus.WithFields(logrus.Fields{
			"product_id": product.ID, // Product ID
			"name":       req.Name,   // Product name
		}).Info("Product upserted")
		c.JSON(http.StatusOK, gin.H{"product": product}) // Return the product
	}
}

// DeleteProductHandler soft-deletes a product by clearing its active flag.
// Products are never hard-deleted; existing orders keep referencing them.
func DeleteProductHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c, "id") // Parse the product ID
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
			return
		}
		res := db.Model(&domain.Product{}).Where("id = ?", id).Update("is_active", false)
		if res.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
			return
		}
		if res.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"}) // Unknown product
			return
		}
		invalidateProductCache(rdb, id) // Drop stale catalog entries
		logrus.WithField("product_id", id).Info("Product deactivated")
		c.JSON(http.StatusOK, gin.H{"message": "Product deleted"}) // Return success
	}
}

// AdminListCategoriesHandler returns every category for the admin console
func AdminListCategoriesHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var categories []domain.Category // Slice to hold categories
		if err := db.Find(&categories).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"categories": categories}) // Return categories
	}
}

// UpsertCategoryHandler creates or updates a category
func UpsertCategoryHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpsertCategoryRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If invalid, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		category := domain.Category{
			ID:          req.ID,          // Zero for create
			Name:        req.Name,        // Category name
			Description: req.Description, // Category description
			Icon:        req.Icon,        // Icon identifier
		}
		if req.ID != 0 {
			// Update in place
			res := db.Model(&domain.Category{}).Where("id = ?", req.ID).
				Select("name", "description", "icon").Updates(&category)
			if res.Error != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update category"})
				return
			}
			if res.RowsAffected == 0 {
				c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"}) // Unknown category
				return
			}
		} else if err := db.Create(&category).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category"})
			return
		}
		// Drop the stale category list
		if err := utils.DeleteCache(context.Background(), rdb, cacheKeyCategories); err != nil {
			logrus.WithField("error", err.Error()).Warn("Category cache invalidation failed")
		}
		c.JSON(http.StatusOK, gin.H{"category": category}) // Return the category
	}
}

// AdminListOrdersHandler returns every order in the system
func AdminListOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []domain.Order // Slice to hold orders
		if err := db.Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"orders": orders}) // Return orders
	}
}
