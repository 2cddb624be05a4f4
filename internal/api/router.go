package api

import (
	"toolstore/internal/config"     // Application configuration
	"toolstore/internal/domain"     // Importing domain models
	"toolstore/internal/middleware" // Auth and role middleware

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"gorm.io/gorm"                 // GORM ORM library
)

// SetupRouter wires every route group to its handlers and trust tier.
// Three tiers exist: public, authenticated (valid session required), and
// admin (authenticated plus the admin role, re-checked from the database).
func SetupRouter(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config) {
	// Auth routes (public; me resolves identity when a token is present)
	auth := r.Group("/auth")
	auth.POST("/session", SessionHandler(db, cfg.JWTSecret, cfg.OwnerOpenID)) // OAuth callback exchange
	auth.GET("/me", middleware.OptionalAuthMiddleware(cfg.JWTSecret), MeHandler(db)) // Current user or null
	auth.POST("/logout", LogoutHandler())                                     // Clear the session cookie

	// Public catalog routes
	r.GET("/categories", ListCategoriesHandler(db, rdb))  // All categories
	r.GET("/products", ListProductsHandler(db, rdb))      // Active products, filterable
	r.GET("/products/:id", GetProductHandler(db, rdb))    // Single product, no active filter
	r.GET("/settings/upi", GetPublicUPIHandler(db, rdb))  // Public payment instructions

	// Authenticated routes (valid session required)
	authed := r.Group("")
	authed.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	authed.GET("/cart", GetCartHandler(db))                     // Cart contents
	authed.POST("/cart", AddToCartHandler(db))                  // Upsert a cart row
	authed.DELETE("/cart/:productId", RemoveFromCartHandler(db)) // Remove one product
	authed.DELETE("/cart", ClearCartHandler(db))                // Empty the cart
	authed.GET("/orders", ListOrdersHandler(db))                // Own orders
	authed.POST("/orders", CreateOrderHandler(db))              // Snapshot order creation
	authed.POST("/payments", SubmitPaymentHandler(db))          // Submit a payment claim
	authed.GET("/payments", ListPaymentsHandler(db))            // Own payment requests
	authed.GET("/payments/:id", GetPaymentHandler(db))          // One request, ownership-checked
	authed.GET("/deliverables", ListDeliverablesHandler(db))    // Own deliverables
	authed.GET("/deliverables/:paymentRequestId", GetDeliverableHandler(db)) // By payment request

	// Admin routes (authenticated, admin role required)
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(cfg.JWTSecret), middleware.AdminOnlyMiddleware(db))
	admin.GET("/products", AdminListProductsHandler(db))            // All products, inactive included
	admin.POST("/products", UpsertProductHandler(db, rdb))          // Create or update a product
	admin.DELETE("/products/:id", DeleteProductHandler(db, rdb))    // Soft delete
	admin.GET("/categories", AdminListCategoriesHandler(db))        // All categories
	admin.POST("/categories", UpsertCategoryHandler(db, rdb))       // Create or update a category
	admin.GET("/orders", AdminListOrdersHandler(db))                // Every order
	admin.GET("/settings", GetAdminSettingsHandler(db))             // Own payment profile
	admin.PUT("/settings", UpdateAdminSettingsHandler(db, rdb))     // Upsert payment profile
	admin.GET("/payments", ListAllPaymentsHandler(db))              // Every payment request
	admin.GET("/payments/:id", GetPaymentDetailsHandler(db))        // One request
	admin.POST("/payments/:id/approve", ReviewPaymentHandler(db, domain.PaymentApproved)) // Approve claim
	admin.POST("/payments/:id/reject", ReviewPaymentHandler(db, domain.PaymentRejected))  // Reject claim
	admin.POST("/payments/:id/deliver", DeliverPaymentHandler(db))  // Deliver content
}
