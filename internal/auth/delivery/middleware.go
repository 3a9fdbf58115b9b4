package delivery

import (
	"errors"
	"net/http"
	"strings"

	authdomain "taskflow-backend/internal/auth/domain"
	"taskflow-backend/internal/auth/usecase"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware gates every task endpoint. It extracts the bearer token,
// verifies it, resolves the user and stores the identity in the request
// context. It is the only authorization boundary in the system; everything
// past it relies on the userID it sets.
func AuthMiddleware(authUsecase usecase.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		parts := strings.Split(authHeader, " ")
		if authHeader == "" || len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "No token provided, authorization denied"})
			c.Abort()
			return
		}

		user, err := authUsecase.ValidateToken(parts[1])
		if err != nil {
			if errors.Is(err, authdomain.ErrUserNotFound) {
				c.JSON(http.StatusUnauthorized, gin.H{"message": "User not found, authorization denied"})
			} else {
				c.JSON(http.StatusUnauthorized, gin.H{"message": "Token is not valid"})
			}
			c.Abort()
			return
		}

		c.Set("user", user)
		c.Set("userID", user.ID)
		c.Next()
	}
}
