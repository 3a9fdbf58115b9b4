package domain

import "errors"

// Sentinel errors for the auth module. Callers match them with errors.Is;
// delivery translates them to HTTP status/message pairs.
var (
	// ErrEmailTaken is returned when a registration collides with an
	// existing account, whether caught by the pre-check or by the
	// unique index on email.
	ErrEmailTaken = errors.New("user already exists")

	// ErrInvalidCredentials covers both unknown email and wrong password.
	// The two cases are deliberately indistinguishable so login errors
	// cannot be used to enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrUserNotFound is returned when a valid token references a user
	// record that no longer exists.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidToken covers malformed, tampered and expired tokens.
	ErrInvalidToken = errors.New("invalid token")
)
