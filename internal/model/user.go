// File: internal/model/user.go
package model

import "time"

// User is a row of the users table. PasswordHash carries the bcrypt
// hash and must never leave the service; response payloads go through
// api projections and the json tag is the backstop.
type User struct {
	ID           int       `db:"id" json:"id"`
	Username     string    `db:"username" json:"username"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Name         string    `db:"name" json:"name,omitempty"`
	Image        string    `db:"image" json:"image,omitempty"`
	IsAdmin      bool      `db:"is_admin" json:"is_admin"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// Redacted returns a copy with the password hash cleared.
func (u User) Redacted() User {
	u.PasswordHash = ""
	return u
}
