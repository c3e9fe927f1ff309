package repository

import (
	"github.com/studify/studify-api/internal/database"
	"github.com/studify/studify-api/internal/models"
	"gorm.io/gorm"
)

// GormEventRepository is a GORM implementation of EventRepository
type GormEventRepository struct {
	db *gorm.DB
}

// NewEventRepository creates a new EventRepository
func NewEventRepository(db *gorm.DB) EventRepository {
	return &GormEventRepository{db: db}
}

func (r *GormEventRepository) Create(event *models.Event) error {
	return r.db.Create(event).Error
}

func (r *GormEventRepository) ListByUser(userID uint64) ([]models.Event, error) {
	var events []models.Event
	if err := r.db.Scopes(database.OwnedBy(userID)).Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (r *GormEventRepository) FindByID(id, userID uint64) (*models.Event, error) {
	var event models.Event
	if err := r.db.Scopes(database.OwnedBy(userID)).First(&event, id).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *GormEventRepository) Save(event *models.Event) error {
	return r.db.Save(event).Error
}

func (r *GormEventRepository) Delete(id, userID uint64) error {
	res := r.db.Scopes(database.OwnedBy(userID)).Delete(&models.Event{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
