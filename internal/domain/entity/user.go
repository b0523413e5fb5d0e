// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User represents a registered account. Username and email are both unique
// across the system; PasswordHash stores the bcrypt digest, never the plaintext.
type User struct {
	ID           int64     // Auto-assigned numeric identifier.
	Username     string    // Unique login name, at most 80 characters.
	Email        string    // Unique contact address, at most 120 characters.
	PasswordHash string    // Salted one-way hash of the password.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}
