package api

import (
	"context"  // Context for Redis operations
	"net/http" // HTTP status codes
	"time"     // Time durations

	"toolstore/internal/domain" // Importing domain models
	"toolstore/internal/utils"  // Utility functions

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"gorm.io/gorm"                 // GORM ORM library
)

// ListCategoriesHandler returns every category, cached
func ListCategoriesHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background()                                          // Context for Redis operations
		var categories []domain.Category                                     // Slice to hold categories
		found, err := utils.GetCache(ctx, rdb, cacheKeyCategories, &categories) // Try the cache first
		if err == nil && found {
			// Return cached categories
			c.JSON(http.StatusOK, gin.H{"categories": categories, "cached": true})
			return
		}
		// Not cached, fetch from DB
		if err := db.Find(&categories).Error; err != nil {
			// Surface the data store failure instead of returning an empty list
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
			return
		}
		_ = utils.SetCache(ctx, rdb, cacheKeyCategories, categories, cacheTTL*time.Second) // Cache for next time
		c.JSON(http.StatusOK, gin.H{"categories": categories, "cached": false})            // Return categories
	}
}

// ListProductsHandler returns active products, optionally narrowed by
// category and/or a substring search over name or description. Both filters
// are conjunctive with each other; the search matches name OR description.
func ListProductsHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		categoryID := c.Query("category_id") // Optional category filter
		search := c.Query("search")          // Optional substring search
		ctx := context.Background()          // Context for Redis operations
		var products []domain.Product        // Slice to hold products
		// Only the unfiltered list is cached; filter combinations are unbounded
		if categoryID == "" && search == "" {
			found, err := utils.GetCache(ctx, rdb, cacheKeyProducts, &products)
			if err == nil && found {
				// Return cached products
				c.JSON(http.StatusOK, gin.H{"products": products, "cached": true})
				return
			}
		}
		query := db.Where("is_active = ?", true) // List views hide inactive products
		if categoryID != "" {
			query = query.Where("category_id = ?", categoryID) // Exact category match
		}
		if search != "" {
			term := "%" + search + "%" // Substring match, collation decides case policy
			query = query.Where("name LIKE ? OR description LIKE ?", term, term)
		}
		// Fetch matching products
		if err := query.Find(&products).Error; err != nil {
			// Surface the data store failure instead of returning an empty list
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		if categoryID == "" && search == "" {
			_ = utils.SetCache(ctx, rdb, cacheKeyProducts, products, cacheTTL*time.Second) // Cache the full list
		}
		c.JSON(http.StatusOK, gin.H{"products": products, "cached": false}) // Return products
	}
}

// GetProductHandler returns a single product by ID. No active-flag filter is
// applied here: product-detail views may show inactive products even though
// list views hide them.
func GetProductHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c, "id") // Parse the product ID
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
			return
		}
		ctx := context.Background()                                        // Context for Redis operations
		var product domain.Product                                         // Product struct to hold data
		found, err := utils.GetCache(ctx, rdb, cacheKeyProduct(id), &product) // Try the cache first
		if err == nil && found {
			// Return cached product
			c.JSON(http.StatusOK, gin.H{"product": product, "cached": true})
			return
		}
		// Not cached, fetch from DB
		if err := db.First(&product, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"}) // Unknown product
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
			return
		}
		_ = utils.SetCache(ctx, rdb, cacheKeyProduct(id), product, cacheTTL*time.Second) // Cache the product
		c.JSON(http.StatusOK, gin.H{"product": product, "cached": false})                // Return the product
	}
}

// GetPublicUPIHandler returns the payment-collection profile shown to buyers.
// When several admins have active profiles the most recently updated one
// wins; the tie-break is deterministic so the storefront never flaps.
func GetPublicUPIHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background()                                           // Context for Redis operations
		var settings domain.AdminSettings                                     // Settings struct to hold data
		found, err := utils.GetCache(ctx, rdb, cacheKeyPublicUPI, &settings) // Try the cache first
		if err == nil && found {
			// Return cached settings
			c.JSON(http.StatusOK, gin.H{"settings": settings, "cached": true})
			return
		}
		// Most recently updated active profile wins
		err = db.Where("is_active = ?", true).Order("updated_at desc").First(&settings).Error
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "No payment profile configured"}) // Nothing active yet
			return
		} else if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch payment profile"})
			return
		}
		_ = utils.SetCache(ctx, rdb, cacheKeyPublicUPI, settings, cacheTTL*time.Second) // Cache the profile
		c.JSON(http.StatusOK, gin.H{"settings": settings, "cached": false})             // Return the profile
	}
}
