package api

import (
	authUsecase "taskflow-backend/internal/auth/usecase"
	"taskflow-backend/internal/metrics"
	taskUsecase "taskflow-backend/internal/task/usecase"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Handler struct {
	authUsecase authUsecase.AuthUsecase
	taskUsecase taskUsecase.TaskUsecase
}

func NewHandler(authUc authUsecase.AuthUsecase, taskUc taskUsecase.TaskUsecase) *Handler {
	return &Handler{
		authUsecase: authUc,
		taskUsecase: taskUc,
	}
}

func (h *Handler) Start(addr string) error {
	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()

	// CORS middleware
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
			c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		}
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	r.Use(metrics.Middleware())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	SetupRoutes(r, h.authUsecase, h.taskUsecase)

	return r.Run(addr)
}
