package domain

import "time"

// User roles
const (
	RoleUser  = "user"  // Regular buyer
	RoleAdmin = "admin" // Store administrator
)

// User Model
// Identity is asserted by the external OAuth provider; OpenID is the
// provider-issued identifier and the only unique handle we hold.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`                  // Primary key
	OpenID       string    `gorm:"size:64;uniqueIndex;not null" json:"-"` // OAuth provider identifier
	Name         string    `json:"name"`                                  // Display name
	Email        string    `gorm:"size:320" json:"email"`                 // Contact email
	LoginMethod  string    `gorm:"size:64" json:"login_method"`           // Provider login method
	Role         string    `gorm:"size:16;default:user" json:"role"`      // Role: user or admin
	CreatedAt    time.Time `json:"created_at"`                            // Creation timestamp
	UpdatedAt    time.Time `json:"updated_at"`                            // Last update timestamp
	LastSignedIn time.Time `json:"last_signed_in"`                        // Last session exchange
}

// IsAdmin reports whether the user holds the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
