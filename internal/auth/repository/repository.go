package repository

import authdomain "taskflow-backend/internal/auth/domain"

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create inserts a new user. Returns domain.ErrEmailTaken when the
	// email unique index rejects the insert.
	Create(user *authdomain.User) error

	// FindByEmail returns the user with the given email, or nil when no
	// such user exists. The match is case-sensitive on the stored value.
	FindByEmail(email string) (*authdomain.User, error)

	// FindByID returns the user with the given id, or nil when absent.
	FindByID(id string) (*authdomain.User, error)
}
