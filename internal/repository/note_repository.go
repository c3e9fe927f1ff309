package repository

import (
	"github.com/studify/studify-api/internal/database"
	"github.com/studify/studify-api/internal/models"
	"gorm.io/gorm"
)

// GormNoteRepository is a GORM implementation of NoteRepository
type GormNoteRepository struct {
	db *gorm.DB
}

// NewNoteRepository creates a new NoteRepository
func NewNoteRepository(db *gorm.DB) NoteRepository {
	return &GormNoteRepository{db: db}
}

func (r *GormNoteRepository) Create(note *models.Note) error {
	return r.db.Create(note).Error
}

func (r *GormNoteRepository) ListByUser(userID uint64) ([]models.Note, error) {
	var notes []models.Note
	err := r.db.Scopes(database.OwnedBy(userID)).
		Order("fecha_creacion DESC").
		Find(&notes).Error
	if err != nil {
		return nil, err
	}
	return notes, nil
}

func (r *GormNoteRepository) FindByID(id, userID uint64) (*models.Note, error) {
	var note models.Note
	if err := r.db.Scopes(database.OwnedBy(userID)).First(&note, id).Error; err != nil {
		return nil, err
	}
	return &note, nil
}

func (r *GormNoteRepository) Save(note *models.Note) error {
	return r.db.Save(note).Error
}

func (r *GormNoteRepository) Delete(id, userID uint64) error {
	res := r.db.Scopes(database.OwnedBy(userID)).Delete(&models.Note{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
