package repository

import "taskflow-backend/internal/task/domain"

// TaskRepository defines the interface for task data access. Every read
// and mutation below FindByUserID is keyed by {id, user_id} in a single
// store call, so ownership filtering and the operation itself cannot be
// separated.
type TaskRepository interface {
	// Create inserts a new task
	Create(task *domain.Task) error

	// FindByUserID returns all tasks owned by userID, oldest first
	FindByUserID(userID string) ([]*domain.Task, error)

	// FindOwned returns the task with the given id owned by userID, or
	// domain.ErrTaskNotFound
	FindOwned(userID, id string) (*domain.Task, error)

	// UpdateOwned applies the given column updates to the task with the
	// given id owned by userID. Fails with domain.ErrTaskNotFound when
	// no such row exists.
	UpdateOwned(userID, id string, updates map[string]interface{}) error

	// DeleteOwned removes the task with the given id owned by userID.
	// Fails with domain.ErrTaskNotFound when no such row exists.
	DeleteOwned(userID, id string) error
}
