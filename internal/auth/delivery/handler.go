package delivery

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	authdomain "taskflow-backend/internal/auth/domain"
	authdto "taskflow-backend/internal/auth/dto"
	"taskflow-backend/internal/auth/usecase"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// AuthHandler handles authentication HTTP requests
type AuthHandler struct {
	authUsecase usecase.AuthUsecase
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authUsecase usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
	}
}

// Register creates a new account
// POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req authdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": bindingErrorMessage(err)})
		return
	}

	resp, err := h.authUsecase.Register(&req)
	if err != nil {
		if errors.Is(err, authdomain.ErrEmailTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "User already exists"})
			return
		}
		log.Printf("Register error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// Login checks credentials and issues a token
// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req authdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// A malformed login attempt can never succeed, so it gets the
		// same answer as wrong credentials.
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid email or password"})
		return
	}

	resp, err := h.authUsecase.Login(&req)
	if err != nil {
		if errors.Is(err, authdomain.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid email or password"})
			return
		}
		log.Printf("Login error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Me returns the authenticated user
// GET /api/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	user, exists := c.Get("user")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "No token provided, authorization denied"})
		return
	}
	c.JSON(http.StatusOK, user)
}

// bindingErrorMessage flattens a gin binding failure into a single message
// listing every violated field constraint.
func bindingErrorMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "Invalid request body"
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", field))
		case "email":
			msgs = append(msgs, fmt.Sprintf("%s must be a valid email address", field))
		case "min":
			msgs = append(msgs, fmt.Sprintf("%s must be at least %s characters", field, fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s is invalid", field))
		}
	}
	return strings.Join(msgs, ", ")
}
