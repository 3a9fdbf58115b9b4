package usecase

import (
	"time"

	"taskflow-backend/internal/task/domain"
	"taskflow-backend/internal/task/repository"
)

// timeNow is swapped out in tests that exercise date-relative derivations.
var timeNow = time.Now

// taskUsecase implements TaskUsecase interface
type taskUsecase struct {
	taskRepo repository.TaskRepository
}

// NewTaskUsecase creates a new instance of taskUsecase
func NewTaskUsecase(taskRepo repository.TaskRepository) TaskUsecase {
	return &taskUsecase{
		taskRepo: taskRepo,
	}
}

func (u *taskUsecase) CreateTask(userID string, req CreateTaskRequest) (*domain.Task, error) {
	var problems []string

	priority := domain.Priority(req.Priority)
	if !priority.Valid() {
		problems = append(problems, "priority must be one of high, medium, low")
	}

	dueDate, err := parseDueDate(req.DueDate)
	if err != nil {
		problems = append(problems, "due_date must be a valid RFC 3339 date or date-time")
	}

	if len(problems) > 0 {
		return nil, domain.NewValidationError(problems...)
	}

	task := &domain.Task{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		DueDate:     dueDate,
		Priority:    priority,
		Status:      domain.StatusPending,
	}

	if err := u.taskRepo.Create(task); err != nil {
		return nil, err
	}

	return task, nil
}

func (u *taskUsecase) GetUserTasks(userID string) ([]*domain.Task, error) {
	return u.taskRepo.FindByUserID(userID)
}

func (u *taskUsecase) GetTaskByID(userID, taskID string) (*domain.Task, error) {
	return u.taskRepo.FindOwned(userID, taskID)
}

func (u *taskUsecase) UpdateTask(userID, taskID string, req UpdateTaskRequest) (*domain.Task, error) {
	updates := map[string]interface{}{}
	var problems []string

	if req.Title != nil {
		if *req.Title == "" {
			problems = append(problems, "title must not be empty")
		} else {
			updates["title"] = *req.Title
		}
	}
	if req.Description != nil {
		if *req.Description == "" {
			problems = append(problems, "description must not be empty")
		} else {
			updates["description"] = *req.Description
		}
	}
	if req.DueDate != nil {
		t, err := parseDueDate(*req.DueDate)
		if err != nil {
			problems = append(problems, "due_date must be a valid RFC 3339 date or date-time")
		} else {
			updates["due_date"] = t
		}
	}
	if req.Priority != nil {
		p := domain.Priority(*req.Priority)
		if !p.Valid() {
			problems = append(problems, "priority must be one of high, medium, low")
		} else {
			updates["priority"] = p
		}
	}
	if req.Status != nil {
		s := domain.Status(*req.Status)
		if !s.Valid() {
			problems = append(problems, "status must be one of pending, completed")
		} else {
			updates["status"] = s
		}
	}

	if len(problems) > 0 {
		return nil, domain.NewValidationError(problems...)
	}

	// Ownership filtering and the mutation are a single store call; an
	// empty update still has to confirm the task is the caller's.
	if err := u.taskRepo.UpdateOwned(userID, taskID, updates); err != nil {
		return nil, err
	}

	return u.taskRepo.FindOwned(userID, taskID)
}

func (u *taskUsecase) DeleteTask(userID, taskID string) error {
	return u.taskRepo.DeleteOwned(userID, taskID)
}

func (u *taskUsecase) Summarize(userID string) (*Summary, error) {
	tasks, err := u.taskRepo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}

	now := timeNow()
	summary := &Summary{Total: len(tasks)}
	for _, t := range tasks {
		if t.Status == domain.StatusCompleted {
			summary.Completed++
			continue
		}
		summary.Pending++
		if t.IsOverdue(now) {
			summary.Overdue++
		}
		if sameDay(t.DueDate, now) {
			summary.DueToday++
		}
		if sameDay(t.DueDate, now.AddDate(0, 0, 1)) {
			summary.DueTomorrow++
		}
	}

	return summary, nil
}

func (u *taskUsecase) Board(userID string) (*BoardView, error) {
	tasks, err := u.taskRepo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}

	board := &BoardView{
		High:   []*domain.Task{},
		Medium: []*domain.Task{},
		Low:    []*domain.Task{},
	}
	for _, t := range tasks {
		switch t.Priority {
		case domain.PriorityHigh:
			board.High = append(board.High, t)
		case domain.PriorityLow:
			board.Low = append(board.Low, t)
		default:
			board.Medium = append(board.Medium, t)
		}
	}

	return board, nil
}

// parseDueDate accepts RFC 3339 timestamps and bare calendar dates, which
// is what the task form submits.
func parseDueDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
