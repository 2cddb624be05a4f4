package domain

import "time"

// PaymentStatus is the state of a payment request in the review workflow.
type PaymentStatus string

// Payment request states: pending -> approved|rejected, approved -> delivered.
// rejected and delivered are terminal.
const (
	PaymentPending   PaymentStatus = "pending"   // Awaiting admin review
	PaymentApproved  PaymentStatus = "approved"  // Verified, awaiting delivery
	PaymentRejected  PaymentStatus = "rejected"  // Verification failed (terminal)
	PaymentDelivered PaymentStatus = "delivered" // Content delivered (terminal)
)

// CanTransitionTo reports whether the workflow permits moving from s to next.
// Status only ever moves forward; terminal states admit no transition.
func (s PaymentStatus) CanTransitionTo(next PaymentStatus) bool {
	switch s {
	case PaymentPending:
		return next == PaymentApproved || next == PaymentRejected
	case PaymentApproved:
		return next == PaymentDelivered
	default:
		return false
	}
}

// PaymentRequest Model
// A buyer's claim that a manual UPI payment was made, identified by the
// transaction reference (UTR) they submit. Admins review and either reject
// the claim or approve it and later deliver the purchased content.
type PaymentRequest struct {
	ID            uint          `gorm:"primaryKey" json:"id"`                  // Primary key
	UserID        uint          `gorm:"index;not null" json:"user_id"`         // Submitting user
	ProductID     uint          `gorm:"index;not null" json:"product_id"`      // Product being paid for
	Amount        int64         `gorm:"not null" json:"amount"`                // Claimed amount in minor units
	Status        PaymentStatus `gorm:"size:16;default:pending" json:"status"` // Workflow state
	TransactionID string        `gorm:"size:255;not null" json:"transaction_id"` // UTR / transaction reference
	PaymentMethod string        `gorm:"size:50;default:upi" json:"payment_method"` // Payment method tag
	Notes         string        `json:"notes"`                                 // Admin review notes
	CreatedAt     time.Time     `json:"created_at"`                            // Creation timestamp
	UpdatedAt     time.Time     `json:"updated_at"`                            // Last update timestamp
}
