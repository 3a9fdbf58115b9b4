package usecase

import (
	authdomain "taskflow-backend/internal/auth/domain"
	authdto "taskflow-backend/internal/auth/dto"
	"taskflow-backend/internal/auth/repository"
	"taskflow-backend/internal/auth/token"
	"taskflow-backend/pkg/config"
)

// authUsecase implements AuthUsecase interface
type authUsecase struct {
	userRepo repository.UserRepository
	config   *config.Config
}

// NewAuthUsecase creates a new instance of authUsecase
func NewAuthUsecase(userRepo repository.UserRepository, cfg *config.Config) AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		config:   cfg,
	}
}

func (u *authUsecase) Register(req *authdto.RegisterRequest) (*authdto.AuthResponse, error) {
	existing, err := u.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, authdomain.ErrEmailTaken
	}

	hashedPassword, err := repository.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &authdomain.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hashedPassword,
	}

	// The pre-check above is not atomic with this insert; the unique
	// index on email is the backstop for concurrent registrations.
	if err := u.userRepo.Create(user); err != nil {
		return nil, err
	}

	return u.issueToken(user)
}

func (u *authUsecase) Login(req *authdto.LoginRequest) (*authdto.AuthResponse, error) {
	user, err := u.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, err
	}

	if user == nil || !repository.CheckPasswordHash(req.Password, user.Password) {
		return nil, authdomain.ErrInvalidCredentials
	}

	return u.issueToken(user)
}

func (u *authUsecase) ValidateToken(tokenString string) (*authdomain.User, error) {
	userID, err := token.Verify(tokenString, []byte(u.config.JWTSecret))
	if err != nil {
		return nil, err
	}

	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, authdomain.ErrUserNotFound
	}

	return user, nil
}

func (u *authUsecase) issueToken(user *authdomain.User) (*authdto.AuthResponse, error) {
	signed, err := token.Issue(user.ID, []byte(u.config.JWTSecret), u.config.TokenTTL)
	if err != nil {
		return nil, err
	}

	return &authdto.AuthResponse{
		User:  user,
		Token: signed,
	}, nil
}
