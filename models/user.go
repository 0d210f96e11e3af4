package models

import "time"

// User is a registered account. Only the PHC-encoded password hash is stored.
type User struct {
	// UserID is assigned by the store and never exposed via JSON.
	UserID int64 `json:"-"`

	// Email is the unique login identifier (case-sensitive as stored).
	Email string `json:"email"`

	// PasswordHash is the argon2id PHC string. Never serialised.
	PasswordHash string `json:"-"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Credentials carries a plaintext email/password pair from the transport
// layer into the auth service. It must never be logged.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterResponse is returned by POST /api/register.
type RegisterResponse struct {
	Detail string `json:"detail"`
}
