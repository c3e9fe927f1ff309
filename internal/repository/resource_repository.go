package repository

import (
	"github.com/studify/studify-api/internal/database"
	"github.com/studify/studify-api/internal/models"
	"gorm.io/gorm"
)

// GormResourceRepository is a GORM implementation of ResourceRepository
type GormResourceRepository struct {
	db *gorm.DB
}

// NewResourceRepository creates a new ResourceRepository
func NewResourceRepository(db *gorm.DB) ResourceRepository {
	return &GormResourceRepository{db: db}
}

func (r *GormResourceRepository) Create(resource *models.Resource) error {
	return r.db.Create(resource).Error
}

func (r *GormResourceRepository) ListByUser(userID uint64) ([]models.Resource, error) {
	var resources []models.Resource
	if err := r.db.Scopes(database.OwnedBy(userID)).Find(&resources).Error; err != nil {
		return nil, err
	}
	return resources, nil
}

func (r *GormResourceRepository) FindByID(id, userID uint64) (*models.Resource, error) {
	var resource models.Resource
	if err := r.db.Scopes(database.OwnedBy(userID)).First(&resource, id).Error; err != nil {
		return nil, err
	}
	return &resource, nil
}

// Search matches the term as a substring of the file name or the tag.
// LIKE is case-insensitive under the default MySQL collation, which is
// the behavior clients rely on.
func (r *GormResourceRepository) Search(userID uint64, term string) ([]models.Resource, error) {
	var resources []models.Resource
	like := "%" + term + "%"
	err := r.db.Scopes(database.OwnedBy(userID)).
		Where("nombre_archivo LIKE ? OR etiqueta LIKE ?", like, like).
		Find(&resources).Error
	if err != nil {
		return nil, err
	}
	return resources, nil
}

func (r *GormResourceRepository) Delete(id, userID uint64) error {
	res := r.db.Scopes(database.OwnedBy(userID)).Delete(&models.Resource{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
