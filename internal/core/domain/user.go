package domain

import "time"

// User models a registered account. The password hash never leaves the
// backend; it is excluded from every outward serialization.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
