package domain

import "time"

// Delivery types for a deliverable.
const (
	DeliveryCourse  = "course"
	DeliveryAPI     = "api"
	DeliveryTool    = "tool"
	DeliveryService = "service"
)

// ValidDeliveryType reports whether t is one of the known delivery types.
func ValidDeliveryType(t string) bool {
	switch t {
	case DeliveryCourse, DeliveryAPI, DeliveryTool, DeliveryService:
		return true
	}
	return false
}

// Deliverable Model
// The access artifact an admin grants after a payment request is approved:
// a link, an API key, or a credentials blob, optionally expiring.
type Deliverable struct {
	ID               uint       `gorm:"primaryKey" json:"id"`                    // Primary key
	ProductID        uint       `gorm:"index;not null" json:"product_id"`        // Product delivered
	PaymentRequestID uint       `gorm:"index;not null" json:"payment_request_id"` // Source payment request
	UserID           uint       `gorm:"index;not null" json:"user_id"`           // Receiving user
	DeliveryType     string     `gorm:"size:16;not null" json:"delivery_type"`   // course, api, tool, service
	AccessLink       string     `gorm:"size:500" json:"access_link"`             // Access URL, if any
	APIKey           string     `gorm:"size:500" json:"api_key"`                 // API key, if any
	Credentials      string     `json:"credentials"`                             // JSON credentials blob, if any
	ExpiresAt        *time.Time `json:"expires_at"`                              // Optional expiry
	IsActive         bool       `gorm:"default:true" json:"is_active"`           // Soft-enable flag
	CreatedAt        time.Time  `json:"created_at"`                              // Creation timestamp
	UpdatedAt        time.Time  `json:"updated_at"`                              // Last update timestamp
}
