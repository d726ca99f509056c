// Package models defines the domain entities shared by the storage, service
// and transport layers: users, their owned finance records, request inputs
// and authentication tokens.
package models

import "time"

// User represents a registered account holder.
// PasswordHash must always be a bcrypt hash, never plaintext, and is not
// exposed via JSON.
type User struct {
	// UserID is the server-assigned unique identifier.
	UserID int64 `json:"id"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Email is the unique email address used for login.
	Email string `json:"email"`

	// Username is the unique public handle of the user.
	Username string `json:"username"`

	// PasswordHash is the bcrypt hash of the user's password.
	// Never serialized.
	PasswordHash string `json:"-"`

	// CreatedAt is the registration timestamp.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (User) TableName() string {
	return "users"
}

// RegisterRequest is the payload of POST /api/auth/register.
// All fields are required.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginRequest is the payload of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
