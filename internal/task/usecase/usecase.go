package usecase

import "taskflow-backend/internal/task/domain"

// TaskUsecase defines the interface for task business logic. Every
// operation takes the authenticated user id as its scoping parameter;
// records owned by other users are out of reach by construction.
type TaskUsecase interface {
	// CreateTask creates a new task owned by userID, status pending
	CreateTask(userID string, req CreateTaskRequest) (*domain.Task, error)

	// GetUserTasks returns all tasks owned by userID
	GetUserTasks(userID string) ([]*domain.Task, error)

	// GetTaskByID retrieves one task; cross-owner access is
	// indistinguishable from a missing task
	GetTaskByID(userID, taskID string) (*domain.Task, error)

	// UpdateTask applies only the fields present in the request
	UpdateTask(userID, taskID string, updates UpdateTaskRequest) (*domain.Task, error)

	// DeleteTask removes a task; a repeat delete fails with
	// domain.ErrTaskNotFound
	DeleteTask(userID, taskID string) error

	// Summarize derives the dashboard counters from the user's tasks
	Summarize(userID string) (*Summary, error)

	// Board groups the user's tasks by priority
	Board(userID string) (*BoardView, error)
}

// CreateTaskRequest carries the client-settable fields of a new task.
type CreateTaskRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	DueDate     string `json:"due_date" binding:"required"`
	Priority    string `json:"priority" binding:"required"`
}

// UpdateTaskRequest represents the fields that can be updated. Absent
// fields are left untouched; id and owner are not settable at all.
type UpdateTaskRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	DueDate     *string `json:"due_date,omitempty"`
	Priority    *string `json:"priority,omitempty"`
	Status      *string `json:"status,omitempty"`
}

// Summary holds the dashboard counters. Overdue, DueToday and DueTomorrow
// only count pending tasks.
type Summary struct {
	Total       int `json:"total"`
	Completed   int `json:"completed"`
	Pending     int `json:"pending"`
	Overdue     int `json:"overdue"`
	DueToday    int `json:"due_today"`
	DueTomorrow int `json:"due_tomorrow"`
}

// BoardView holds the user's tasks grouped by priority.
type BoardView struct {
	High   []*domain.Task `json:"high"`
	Medium []*domain.Task `json:"medium"`
	Low    []*domain.Task `json:"low"`
}
