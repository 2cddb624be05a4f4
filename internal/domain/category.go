package domain

import "time"

// Category Model
type Category struct {
	ID          uint      `gorm:"primaryKey" json:"id"`      // Primary key
	Name        string    `gorm:"size:255;not null" json:"name"` // Category name
	Description string    `json:"description"`               // Category description
	Icon        string    `gorm:"size:255" json:"icon"`      // Icon identifier
	CreatedAt   time.Time `json:"created_at"`                // Creation timestamp
}
