package seed

import (
	"testing"
	"time"

	authdomain "taskflow-backend/internal/auth/domain"
	taskdomain "taskflow-backend/internal/task/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memUserRepo struct {
	users []*authdomain.User
}

func (m *memUserRepo) Create(user *authdomain.User) error {
	for _, u := range m.users {
		if u.Email == user.Email {
			return authdomain.ErrEmailTaken
		}
	}
	user.ID = uuid.New().String()
	user.CreatedAt = time.Now()
	m.users = append(m.users, user)
	return nil
}

func (m *memUserRepo) FindByEmail(email string) (*authdomain.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (m *memUserRepo) FindByID(id string) (*authdomain.User, error) {
	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

type memTaskRepo struct {
	tasks []*taskdomain.Task
}

func (m *memTaskRepo) Create(task *taskdomain.Task) error {
	if task.ID == "" {
		task.ID = uuid.New().String()
	}
	m.tasks = append(m.tasks, task)
	return nil
}

func (m *memTaskRepo) FindByUserID(userID string) ([]*taskdomain.Task, error) {
	var out []*taskdomain.Task
	for _, t := range m.tasks {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (m *memTaskRepo) FindOwned(userID, id string) (*taskdomain.Task, error) {
	return nil, taskdomain.ErrTaskNotFound
}

func (m *memTaskRepo) UpdateOwned(string, string, map[string]interface{}) error {
	return taskdomain.ErrTaskNotFound
}

func (m *memTaskRepo) DeleteOwned(string, string) error {
	return taskdomain.ErrTaskNotFound
}

func TestRun_SeedsOnce(t *testing.T) {
	users := &memUserRepo{}
	tasks := &memTaskRepo{}

	require.NoError(t, Run(users, tasks))

	assert.Len(t, users.users, 1)
	assert.Equal(t, demoEmail, users.users[0].Email)
	assert.NotEqual(t, demoPassword, users.users[0].Password, "seed must store a hash")
	assert.Len(t, tasks.tasks, 3)
	for _, task := range tasks.tasks {
		assert.Equal(t, users.users[0].ID, task.UserID)
	}
}

func TestRun_Idempotent(t *testing.T) {
	users := &memUserRepo{}
	tasks := &memTaskRepo{}

	require.NoError(t, Run(users, tasks))
	require.NoError(t, Run(users, tasks))

	// A second boot inserts nothing.
	assert.Len(t, users.users, 1)
	assert.Len(t, tasks.tasks, 3)
}
