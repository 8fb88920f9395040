// Package common defines shared constants and sentinel errors used across the
// foorum client layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Auth errors. Both messages are shown to the user verbatim.
	ErrInvalidCredentials = errors.New("Invalid email or password")
	ErrEmailExists        = errors.New("Email already exists")

	// Input validation errors (post content, signup fields).
	ErrValidation = errors.New("validation error")

	// Composer errors.
	ErrNotAuthenticated = errors.New("login required")
)
