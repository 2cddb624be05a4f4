package domain

import "time"

// Order statuses. Transitions out of pending are modeled in the schema but
// no operation performs them; orders stay pending indefinitely.
const (
	OrderPending   = "pending"
	OrderCompleted = "completed"
	OrderCancelled = "cancelled"
)

// OrderItem is one line of the serialized order snapshot.
type OrderItem struct {
	ProductID uint `json:"product_id"` // Product at time of order
	Quantity  int  `json:"quantity"`   // Quantity at time of order
}

// Order Model
// Items is a frozen JSON copy of the cart at creation time, never a live
// join — later price or product changes are not reconciled back into it.
type Order struct {
	ID          uint      `gorm:"primaryKey" json:"id"`                // Primary key
	UserID      uint      `gorm:"index;not null" json:"user_id"`       // Owning user
	TotalAmount int64     `gorm:"not null" json:"total_amount"`        // Total in minor units, caller-supplied
	Status      string    `gorm:"size:16;default:pending" json:"status"` // pending, completed, cancelled
	Items       string    `json:"items"`                               // JSON-encoded []OrderItem snapshot
	CreatedAt   time.Time `json:"created_at"`                          // Creation timestamp
	UpdatedAt   time.Time `json:"updated_at"`                          // Last update timestamp
}
