// Package common defines shared constants and sentinel errors used across
// the Scana stores and services. Callers should use errors.Is to match
// these values.
package common

import "errors"

var (
	// Storage-level errors. The key-value adapter wraps driver failures
	// into one of these so higher layers can react uniformly.
	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrStorageFull        = errors.New("storage full")

	// Store-level errors.
	ErrNotFound = errors.New("not found")

	// Auth / signup errors.
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid token")
	ErrValidation         = errors.New("validation error")
)
