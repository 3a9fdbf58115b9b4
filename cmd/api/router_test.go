package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	authdomain "taskflow-backend/internal/auth/domain"
	authrepo "taskflow-backend/internal/auth/repository"
	authUsecase "taskflow-backend/internal/auth/usecase"
	taskdomain "taskflow-backend/internal/task/domain"
	taskrepo "taskflow-backend/internal/task/repository"
	taskUsecase "taskflow-backend/internal/task/usecase"
	"taskflow-backend/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// In-memory stores so the full HTTP stack runs without Postgres.

type memUserRepo struct {
	users map[string]*authdomain.User
}

func (m *memUserRepo) Create(user *authdomain.User) error {
	for _, u := range m.users {
		if u.Email == user.Email {
			return authdomain.ErrEmailTaken
		}
	}
	user.ID = uuid.New().String()
	user.CreatedAt = time.Now()
	cp := *user
	m.users[user.ID] = &cp
	return nil
}

func (m *memUserRepo) FindByEmail(email string) (*authdomain.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memUserRepo) FindByID(id string) (*authdomain.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

type memTaskRepo struct {
	tasks map[string]*taskdomain.Task
}

func (m *memTaskRepo) Create(task *taskdomain.Task) error {
	if task.ID == "" {
		task.ID = uuid.New().String()
	}
	task.CreatedAt = time.Now()
	task.UpdatedAt = time.Now()
	cp := *task
	m.tasks[task.ID] = &cp
	return nil
}

func (m *memTaskRepo) FindByUserID(userID string) ([]*taskdomain.Task, error) {
	var out []*taskdomain.Task
	for _, t := range m.tasks {
		if t.UserID == userID {
			cp := *t
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *memTaskRepo) FindOwned(userID, id string) (*taskdomain.Task, error) {
	t, ok := m.tasks[id]
	if !ok || t.UserID != userID {
		return nil, taskdomain.ErrTaskNotFound
	}
	cp := *t
	return &cp, nil
}

func (m *memTaskRepo) UpdateOwned(userID, id string, updates map[string]interface{}) error {
	t, ok := m.tasks[id]
	if !ok || t.UserID != userID {
		return taskdomain.ErrTaskNotFound
	}
	for col, val := range updates {
		switch col {
		case "title":
			t.Title = val.(string)
		case "description":
			t.Description = val.(string)
		case "due_date":
			t.DueDate = val.(time.Time)
		case "priority":
			t.Priority = val.(taskdomain.Priority)
		case "status":
			t.Status = val.(taskdomain.Status)
		case "updated_at":
			t.UpdatedAt = val.(time.Time)
		}
	}
	return nil
}

func (m *memTaskRepo) DeleteOwned(userID, id string) error {
	t, ok := m.tasks[id]
	if !ok || t.UserID != userID {
		return taskdomain.ErrTaskNotFound
	}
	delete(m.tasks, id)
	return nil
}

var (
	_ authrepo.UserRepository = (*memUserRepo)(nil)
	_ taskrepo.TaskRepository = (*memTaskRepo)(nil)
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{JWTSecret: "e2e-secret", TokenTTL: 168 * time.Hour}

	authUc := authUsecase.NewAuthUsecase(&memUserRepo{users: map[string]*authdomain.User{}}, cfg)
	taskUc := taskUsecase.NewTaskUsecase(&memTaskRepo{tasks: map[string]*taskdomain.Task{}})

	r := gin.New()
	SetupRoutes(r, authUc, taskUc)
	return r
}

func request(r *gin.Engine, method, path, token string, payload any) *httptest.ResponseRecorder {
	var body *bytes.Reader
	if payload != nil {
		raw, _ := json.Marshal(payload)
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func registerUser(t *testing.T, r *gin.Engine, name, email string) string {
	t.Helper()
	w := request(r, http.MethodPost, "/api/auth/register", "", gin.H{
		"name": name, "email": email, "password": "secret1",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	return decode(t, w)["token"].(string)
}

func TestEndToEnd_RegisterLoginAndTaskIsolation(t *testing.T) {
	r := newTestRouter()

	// Register Ann.
	w := request(r, http.MethodPost, "/api/auth/register", "", gin.H{
		"name": "Ann", "email": "ann@x.com", "password": "secret1",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	annToken := decode(t, w)["token"].(string)
	require.NotEmpty(t, annToken)

	// Login with the wrong password fails with the uniform message.
	w = request(r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email": "ann@x.com", "password": "wrong",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid email or password", decode(t, w)["message"])

	// Login with the right password succeeds.
	w = request(r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email": "ann@x.com", "password": "secret1",
	})
	require.Equal(t, http.StatusOK, w.Code)
	annToken = decode(t, w)["token"].(string)

	// Ann creates a task; status defaults to pending.
	w = request(r, http.MethodPost, "/api/tasks", annToken, gin.H{
		"title": "Buy milk", "description": "2%", "due_date": "2025-01-01", "priority": "low",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	created := decode(t, w)
	assert.Equal(t, "pending", created["status"])
	taskID := created["id"].(string)

	// Bob registers and sees an empty list.
	bobToken := registerUser(t, r, "Bob", "bob@x.com")
	w = request(r, http.MethodGet, "/api/tasks", bobToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list []any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Empty(t, list)

	// Ann's task does not exist as far as Bob can tell.
	w = request(r, http.MethodGet, "/api/tasks/"+taskID, bobToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Ann still sees it.
	w = request(r, http.MethodGet, "/api/tasks/"+taskID, annToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestEndToEnd_UnauthenticatedRejected(t *testing.T) {
	r := newTestRouter()

	w := request(r, http.MethodGet, "/api/tasks", "", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "No token provided, authorization denied", decode(t, w)["message"])

	w = request(r, http.MethodGet, "/api/tasks", "garbage-token", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Token is not valid", decode(t, w)["message"])
}

func TestEndToEnd_DuplicateRegistration(t *testing.T) {
	r := newTestRouter()
	registerUser(t, r, "Ann", "ann@x.com")

	w := request(r, http.MethodPost, "/api/auth/register", "", gin.H{
		"name": "Other Ann", "email": "ann@x.com", "password": "secret2",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "User already exists", decode(t, w)["message"])
}

func TestEndToEnd_SummaryAndBoard(t *testing.T) {
	r := newTestRouter()
	token := registerUser(t, r, "Ann", "ann@x.com")

	for i, prio := range []string{"high", "low", "low"} {
		w := request(r, http.MethodPost, "/api/tasks", token, gin.H{
			"title":       fmt.Sprintf("task %d", i),
			"description": "d",
			"due_date":    "2030-01-01",
			"priority":    prio,
		})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := request(r, http.MethodGet, "/api/tasks/summary", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	summary := decode(t, w)
	assert.EqualValues(t, 3, summary["total"])
	assert.EqualValues(t, 3, summary["pending"])
	assert.EqualValues(t, 0, summary["overdue"])

	w = request(r, http.MethodGet, "/api/tasks/board", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	board := decode(t, w)
	assert.Len(t, board["high"], 1)
	assert.Len(t, board["medium"], 0)
	assert.Len(t, board["low"], 2)
}

func TestEndToEnd_MeEndpoint(t *testing.T) {
	r := newTestRouter()
	token := registerUser(t, r, "Ann", "ann@x.com")

	w := request(r, http.MethodGet, "/api/auth/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	me := decode(t, w)
	assert.Equal(t, "Ann", me["name"])
	assert.Equal(t, "ann@x.com", me["email"])
	assert.NotContains(t, me, "password")
}

func TestEndToEnd_PartialUpdate(t *testing.T) {
	r := newTestRouter()
	token := registerUser(t, r, "Ann", "ann@x.com")

	w := request(r, http.MethodPost, "/api/tasks", token, gin.H{
		"title": "Original", "description": "keep me", "due_date": "2030-01-01", "priority": "high",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	taskID := decode(t, w)["id"].(string)

	w = request(r, http.MethodPut, "/api/tasks/"+taskID, token, gin.H{"status": "completed"})
	require.Equal(t, http.StatusOK, w.Code)
	updated := decode(t, w)
	assert.Equal(t, "completed", updated["status"])
	assert.Equal(t, "Original", updated["title"])
	assert.Equal(t, "keep me", updated["description"])
	assert.Equal(t, "high", updated["priority"])
}
