package domain

import "time"

// AdminSettings Model
// Per-admin UPI payment-collection profile. The row flagged active with the
// most recent update is the one shown to buyers as payment instructions.
type AdminSettings struct {
	ID          uint      `gorm:"primaryKey" json:"id"`               // Primary key
	AdminID     uint      `gorm:"uniqueIndex;not null" json:"admin_id"` // Owning admin
	UPIID       string    `gorm:"size:255;not null" json:"upi_id"`    // UPI collection identifier
	UPIName     string    `gorm:"size:255" json:"upi_name"`           // Name shown with the UPI ID
	QRCode      string    `json:"qr_code"`                            // QR image data, if provided
	BankAccount string    `gorm:"size:255" json:"bank_account"`       // Optional bank reference
	PhoneNumber string    `gorm:"size:20" json:"phone_number"`        // Optional phone number
	IsActive    bool      `gorm:"default:true" json:"is_active"`      // Publicly visible flag
	CreatedAt   time.Time `json:"created_at"`                         // Creation timestamp
	UpdatedAt   time.Time `json:"updated_at"`                         // Last update timestamp
}
