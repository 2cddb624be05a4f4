package domain

import "time"

// Product Model
// Prices are stored in minor currency units (paise/cents) to avoid decimals.
// Products are never hard-deleted; IsActive=false hides them from list views.
type Product struct {
	ID            uint      `gorm:"primaryKey" json:"id"`             // Primary key
	CategoryID    uint      `gorm:"index;not null" json:"category_id"` // Owning category
	Name          string    `gorm:"size:255;not null" json:"name"`    // Product name
	Description   string    `json:"description"`                      // Product description
	Price         int64     `gorm:"not null" json:"price"`            // Price in minor units
	OriginalPrice *int64    `json:"original_price"`                   // Pre-discount price, if any
	Image         string    `gorm:"size:500" json:"image"`            // Image reference
	Stock         int       `gorm:"default:0" json:"stock"`           // Informational stock count
	IsActive      bool      `gorm:"default:true" json:"is_active"`    // Soft-delete flag
	Features      string    `json:"features"`                         // JSON-encoded feature list
	CreatedAt     time.Time `json:"created_at"`                       // Creation timestamp
	UpdatedAt     time.Time `json:"updated_at"`                       // Last update timestamp
}
