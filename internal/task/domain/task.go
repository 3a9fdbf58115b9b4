package domain

import "time"

// Priority represents task priority level
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Valid reports whether p is one of the known priority levels.
func (p Priority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// Status represents the current state of a task
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	return s == StatusPending || s == StatusCompleted
}

// Task represents a to-do item owned by exactly one user. UserID is set
// once at creation from the authenticated caller and never changed by any
// update.
type Task struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	UserID      string    `json:"user_id" gorm:"index;not null"`
	Title       string    `json:"title" gorm:"not null"`
	Description string    `json:"description" gorm:"not null"`
	DueDate     time.Time `json:"due_date"`
	Priority    Priority  `json:"priority" gorm:"default:medium"`
	Status      Status    `json:"status" gorm:"default:pending"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// IsOverdue reports whether the task is past due and still pending.
// Derived at read time, never persisted.
func (t *Task) IsOverdue(now time.Time) bool {
	return t.Status == StatusPending && t.DueDate.Before(now)
}
