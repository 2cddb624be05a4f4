package domain

import "time"

// CartItem Model
// One row per (user, product) pair; adding the same product again
// overwrites the quantity rather than incrementing it.
type CartItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`                            // Primary key
	UserID    uint      `gorm:"not null;uniqueIndex:idx_cart_user_product" json:"user_id"`    // Owning user
	ProductID uint      `gorm:"not null;uniqueIndex:idx_cart_user_product" json:"product_id"` // Product in the cart
	Quantity  int       `gorm:"default:1;not null" json:"quantity"`              // Quantity, always >= 1
	CreatedAt time.Time `json:"created_at"`                                      // Creation timestamp
	UpdatedAt time.Time `json:"updated_at"`                                      // Last update timestamp
}
