package repository

import (
	"github.com/studify/studify-api/internal/database"
	"github.com/studify/studify-api/internal/models"
	"gorm.io/gorm"
)

// GormCourseRepository is a GORM implementation of CourseRepository
type GormCourseRepository struct {
	db *gorm.DB
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(db *gorm.DB) CourseRepository {
	return &GormCourseRepository{db: db}
}

func (r *GormCourseRepository) Create(course *models.Course) error {
	return r.db.Create(course).Error
}

func (r *GormCourseRepository) ListByUser(userID uint64) ([]models.Course, error) {
	var courses []models.Course
	if err := r.db.Scopes(database.OwnedBy(userID)).Find(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}

func (r *GormCourseRepository) FindByID(id, userID uint64) (*models.Course, error) {
	var course models.Course
	if err := r.db.Scopes(database.OwnedBy(userID)).First(&course, id).Error; err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *GormCourseRepository) Save(course *models.Course) error {
	return r.db.Save(course).Error
}

// SetCertificate attaches a stored certificate path in a single update.
func (r *GormCourseRepository) SetCertificate(id, userID uint64, path string) error {
	res := r.db.Model(&models.Course{}).
		Scopes(database.OwnedBy(userID)).
		Where("id_curso = ?", id).
		Update("certificado", path)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GormCourseRepository) Delete(id, userID uint64) error {
	res := r.db.Scopes(database.OwnedBy(userID)).Delete(&models.Course{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
