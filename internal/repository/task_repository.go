package repository

import (
	"github.com/studify/studify-api/internal/database"
	"github.com/studify/studify-api/internal/models"
	"gorm.io/gorm"
)

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

func (r *GormTaskRepository) Create(task *models.Task) error {
	return r.db.Create(task).Error
}

func (r *GormTaskRepository) ListByUser(userID uint64) ([]models.Task, error) {
	var tasks []models.Task
	if err := r.db.Scopes(database.OwnedBy(userID)).Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *GormTaskRepository) FindByID(id, userID uint64) (*models.Task, error) {
	var task models.Task
	if err := r.db.Scopes(database.OwnedBy(userID)).First(&task, id).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *GormTaskRepository) Save(task *models.Task) error {
	return r.db.Save(task).Error
}

func (r *GormTaskRepository) Delete(id, userID uint64) error {
	res := r.db.Scopes(database.OwnedBy(userID)).Delete(&models.Task{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
