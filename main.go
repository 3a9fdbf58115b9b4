package main

import (
	"log"

	api "taskflow-backend/cmd/api"
	authdomain "taskflow-backend/internal/auth/domain"
	authRepo "taskflow-backend/internal/auth/repository"
	authUsecase "taskflow-backend/internal/auth/usecase"
	"taskflow-backend/internal/seed"
	taskdomain "taskflow-backend/internal/task/domain"
	taskRepo "taskflow-backend/internal/task/repository"
	taskUsecase "taskflow-backend/internal/task/usecase"
	"taskflow-backend/pkg/config"
	"taskflow-backend/pkg/database"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(&authdomain.User{}, &taskdomain.Task{}); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize repositories (dependency injection)
	userRepository := authRepo.NewUserRepository(db)
	taskRepository := taskRepo.NewGormTaskRepository(db)

	// Seed demo data if requested
	if cfg.SeedDemoData {
		if err := seed.Run(userRepository, taskRepository); err != nil {
			log.Fatal("Failed to seed demo data:", err)
		}
	}

	// Initialize use cases
	authUsecaseInstance := authUsecase.NewAuthUsecase(userRepository, cfg)
	taskUsecaseInstance := taskUsecase.NewTaskUsecase(taskRepository)

	// Initialize HTTP handler
	handler := api.NewHandler(authUsecaseInstance, taskUsecaseInstance)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
