package delivery

import (
	"errors"
	"log"
	"net/http"

	"taskflow-backend/internal/task/domain"
	"taskflow-backend/internal/task/usecase"

	"github.com/gin-gonic/gin"
)

// TaskHandler handles task-related HTTP requests
type TaskHandler struct {
	taskUsecase usecase.TaskUsecase
}

// NewTaskHandler creates a new TaskHandler
func NewTaskHandler(taskUsecase usecase.TaskUsecase) *TaskHandler {
	return &TaskHandler{
		taskUsecase: taskUsecase,
	}
}

// CreateTask creates a new task for the authenticated user
// POST /api/tasks
func (h *TaskHandler) CreateTask(c *gin.Context) {
	userID := c.GetString("userID")

	var req usecase.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "title, description, due_date and priority are required"})
		return
	}

	task, err := h.taskUsecase.CreateTask(userID, req)
	if err != nil {
		h.writeError(c, "Create Task", err)
		return
	}

	c.JSON(http.StatusCreated, task)
}

// GetTasks returns all tasks for the authenticated user
// GET /api/tasks
func (h *TaskHandler) GetTasks(c *gin.Context) {
	userID := c.GetString("userID")

	tasks, err := h.taskUsecase.GetUserTasks(userID)
	if err != nil {
		h.writeError(c, "Get Tasks", err)
		return
	}

	// Return an empty array instead of null when the user owns nothing
	if tasks == nil {
		tasks = []*domain.Task{}
	}

	c.JSON(http.StatusOK, tasks)
}

// GetTaskByID returns a specific task
// GET /api/tasks/:id
func (h *TaskHandler) GetTaskByID(c *gin.Context) {
	userID := c.GetString("userID")
	taskID := c.Param("id")

	task, err := h.taskUsecase.GetTaskByID(userID, taskID)
	if err != nil {
		h.writeError(c, "Get Task by ID", err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// UpdateTask applies a partial update to an existing task
// PUT /api/tasks/:id
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	userID := c.GetString("userID")
	taskID := c.Param("id")

	var updates usecase.UpdateTaskRequest
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	task, err := h.taskUsecase.UpdateTask(userID, taskID, updates)
	if err != nil {
		h.writeError(c, "Update Task", err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// DeleteTask deletes a task
// DELETE /api/tasks/:id
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	userID := c.GetString("userID")
	taskID := c.Param("id")

	if err := h.taskUsecase.DeleteTask(userID, taskID); err != nil {
		h.writeError(c, "Delete Task", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully"})
}

// GetSummary returns the dashboard counters for the authenticated user
// GET /api/tasks/summary
func (h *TaskHandler) GetSummary(c *gin.Context) {
	userID := c.GetString("userID")

	summary, err := h.taskUsecase.Summarize(userID)
	if err != nil {
		h.writeError(c, "Get Summary", err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// GetBoard returns the authenticated user's tasks grouped by priority
// GET /api/tasks/board
func (h *TaskHandler) GetBoard(c *gin.Context) {
	userID := c.GetString("userID")

	board, err := h.taskUsecase.Board(userID)
	if err != nil {
		h.writeError(c, "Get Board", err)
		return
	}

	c.JSON(http.StatusOK, board)
}

// writeError maps domain errors onto the HTTP contract. Not-found covers
// both missing tasks and tasks owned by someone else; anything unexpected
// is logged with detail and reported generically.
func (h *TaskHandler) writeError(c *gin.Context, op string, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.Is(err, domain.ErrTaskNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Task not found"})
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"message": verr.Error()})
	default:
		log.Printf("%s error: %v", op, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
	}
}
