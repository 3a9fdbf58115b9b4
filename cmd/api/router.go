package api

import (
	"net/http"
	"time"

	authDelivery "taskflow-backend/internal/auth/delivery"
	authUsecase "taskflow-backend/internal/auth/usecase"
	"taskflow-backend/internal/middleware"
	taskDelivery "taskflow-backend/internal/task/delivery"
	taskUsecase "taskflow-backend/internal/task/usecase"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, authUc authUsecase.AuthUsecase, taskUc taskUsecase.TaskUsecase) {
	authHandler := authDelivery.NewAuthHandler(authUc)
	taskHandler := taskDelivery.NewTaskHandler(taskUc)

	authGate := authDelivery.AuthMiddleware(authUc)
	loginLimit := middleware.RateLimit(20, time.Minute)

	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/register", loginLimit, authHandler.Register)
			auth.POST("/login", loginLimit, authHandler.Login)
			auth.GET("/me", authGate, authHandler.Me)
		}

		// Task routes (protected)
		tasks := api.Group("/tasks")
		tasks.Use(authGate)
		{
			tasks.GET("", taskHandler.GetTasks)
			tasks.POST("", taskHandler.CreateTask)
			tasks.GET("/summary", taskHandler.GetSummary)
			tasks.GET("/board", taskHandler.GetBoard)
			tasks.GET("/:id", taskHandler.GetTaskByID)
			tasks.PUT("/:id", taskHandler.UpdateTask)
			tasks.DELETE("/:id", taskHandler.DeleteTask)
		}
	}
}
