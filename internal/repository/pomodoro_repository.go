package repository

import (
	"github.com/studify/studify-api/internal/database"
	"github.com/studify/studify-api/internal/models"
	"gorm.io/gorm"
)

// GormPomodoroRepository is a GORM implementation of PomodoroRepository
type GormPomodoroRepository struct {
	db *gorm.DB
}

// NewPomodoroRepository creates a new PomodoroRepository
func NewPomodoroRepository(db *gorm.DB) PomodoroRepository {
	return &GormPomodoroRepository{db: db}
}

func (r *GormPomodoroRepository) Create(session *models.PomodoroSession) error {
	return r.db.Create(session).Error
}

func (r *GormPomodoroRepository) ListByUser(userID uint64) ([]models.PomodoroSession, error) {
	var sessions []models.PomodoroSession
	err := r.db.Scopes(database.OwnedBy(userID)).
		Order("date DESC").
		Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *GormPomodoroRepository) Delete(id, userID uint64) error {
	res := r.db.Scopes(database.OwnedBy(userID)).Delete(&models.PomodoroSession{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
