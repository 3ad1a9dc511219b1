package model

import (
	"time"

	"github.com/google/uuid"
)

// Roles
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is a registered account. The email address also ties the account to
// any info requests submitted with it, which is what grants review
// entitlement.
type User struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`

	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Phone     *string `json:"phone"`
	Role      string  `json:"role"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
