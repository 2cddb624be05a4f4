package api

import (
	"strconv" // String conversion

	"github.com/gin-gonic/gin" // Gin web framework
)

// Cache keys for the hot public reads. Mutating admin handlers delete these
// so the next read repopulates from the database.
const (
	cacheKeyCategories = "catalog:categories"     // All categories
	cacheKeyProducts   = "catalog:products:active" // Unfiltered active product list
	cacheKeyPublicUPI  = "settings:upi:public"    // Active payment profile
)

// cacheTTL is how long cached reads live before expiring on their own.
const cacheTTL = 60 // seconds

// cacheKeyProduct builds the cache key for a single product.
func cacheKeyProduct(id uint) string {
	return "catalog:product:" + strconv.Itoa(int(id))
}

// currentUserID returns the authenticated caller's user ID from the gin
// context, as set by the auth middleware.
func currentUserID(c *gin.Context) (uint, bool) {
	v, exists := c.Get("userID") // Get userID from context
	if !exists {
		return 0, false // Not authenticated
	}
	id, ok := v.(uint) // Middleware always stores a uint
	return id, ok
}

// paramID parses a numeric path parameter.
func paramID(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.Atoi(c.Param(name)) // Convert parameter to integer
	if err != nil || v <= 0 {
		return 0, false // Not a valid ID
	}
	return uint(v), true
}
