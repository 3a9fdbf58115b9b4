package usecase

import (
	authdomain "taskflow-backend/internal/auth/domain"
	authdto "taskflow-backend/internal/auth/dto"
)

// AuthUsecase defines the interface for authentication business logic
type AuthUsecase interface {
	// Register creates a new account and issues a token for it.
	Register(req *authdto.RegisterRequest) (*authdto.AuthResponse, error)

	// Login checks credentials and issues a token. Unknown email and
	// wrong password both fail with domain.ErrInvalidCredentials.
	Login(req *authdto.LoginRequest) (*authdto.AuthResponse, error)

	// ValidateToken verifies a bearer token and resolves the user it
	// identifies.
	ValidateToken(tokenString string) (*authdomain.User, error)
}
