package models

import "time"

// UserDB represents a user record in the database
type UserDB struct {
	UserID       int64     `json:"user_id" db:"user_id"`       // Primary key
	Name         string    `json:"name" db:"name"`             // Display name
	Email        string    `json:"email" db:"email"`           // Unique (case-insensitive) email
	PasswordHash string    `json:"-" db:"password"`            // Bcrypt hash, never serialized
	CreatedAt    time.Time `json:"created_at" db:"created_at"` // Creation timestamp
}

// UserUpdate holds the profile fields to change. Nil fields are left untouched.
type UserUpdate struct {
	Name     *string
	Email    *string
	Password *string // plaintext on input, replaced by its hash before storage
}

// IsEmpty reports whether no field is set.
func (u UserUpdate) IsEmpty() bool {
	return u.Name == nil && u.Email == nil && u.Password == nil
}
