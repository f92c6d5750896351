// Package models defines the record types persisted in the Scana key-value
// namespace. JSON tags match the shapes the mobile app stores, so a database
// written by one can be read by the other.
package models

import "time"

// User is a registered local account.
type User struct {
	// ID is an opaque unique identifier assigned at creation.
	ID string `json:"id"`

	// Name is the display name; defaults to the email's local part.
	Name string `json:"name"`

	// Email is expected to be unique within the directory. Uniqueness is
	// checked by the signup flow, not enforced by the store itself.
	Email string `json:"email"`

	// PasswordHash is a bcrypt hash. Plaintext passwords are never persisted.
	PasswordHash string `json:"password"`

	CreatedAt time.Time `json:"createdAt"`
}

// Session is the single logged-in identity. Presence of a persisted session
// record means "logged in"; absence means "logged out".
type Session struct {
	User User `json:"user"`

	// Token is an HS256 token signed with the per-device secret. A session
	// whose token fails verification is treated as logged-out.
	Token string `json:"token"`

	LoginTimestamp time.Time `json:"timestamp"`
}
