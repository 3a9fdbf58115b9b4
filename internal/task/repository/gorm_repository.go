package repository

import (
	"errors"
	"time"

	"taskflow-backend/internal/task/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormTaskRepository implements TaskRepository using GORM
type gormTaskRepository struct {
	db *gorm.DB
}

// NewGormTaskRepository creates a new GORM-based TaskRepository
func NewGormTaskRepository(db *gorm.DB) TaskRepository {
	return &gormTaskRepository{db: db}
}

func (r *gormTaskRepository) Create(task *domain.Task) error {
	if task.ID == "" {
		task.ID = uuid.New().String()
	}
	task.CreatedAt = time.Now()
	task.UpdatedAt = time.Now()
	return r.db.Create(task).Error
}

func (r *gormTaskRepository) FindByUserID(userID string) ([]*domain.Task, error) {
	var tasks []*domain.Task
	err := r.db.Where("user_id = ?", userID).Order("created_at ASC").Find(&tasks).Error
	return tasks, err
}

func (r *gormTaskRepository) FindOwned(userID, id string) (*domain.Task, error) {
	var task domain.Task
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&task).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, err
	}
	return &task, nil
}

func (r *gormTaskRepository) UpdateOwned(userID, id string, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now()
	res := r.db.Model(&domain.Task{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

func (r *gormTaskRepository) DeleteOwned(userID, id string) error {
	res := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&domain.Task{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}
