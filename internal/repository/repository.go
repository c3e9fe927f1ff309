package repository

import (
	"github.com/studify/studify-api/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByEmail finds a user by email
	FindByEmail(email string) (*models.User, error)
}

// TaskRepository defines the interface for task data access.
// Every method is scoped to the owning user; rows belonging to someone
// else behave exactly like missing rows.
type TaskRepository interface {
	Create(task *models.Task) error
	ListByUser(userID uint64) ([]models.Task, error)
	FindByID(id, userID uint64) (*models.Task, error)
	Save(task *models.Task) error
	Delete(id, userID uint64) error
}

// NoteRepository defines the interface for note data access
type NoteRepository interface {
	Create(note *models.Note) error
	// ListByUser returns notes newest-created first
	ListByUser(userID uint64) ([]models.Note, error)
	FindByID(id, userID uint64) (*models.Note, error)
	Save(note *models.Note) error
	Delete(id, userID uint64) error
}

// EventRepository defines the interface for planner event data access
type EventRepository interface {
	Create(event *models.Event) error
	ListByUser(userID uint64) ([]models.Event, error)
	FindByID(id, userID uint64) (*models.Event, error)
	Save(event *models.Event) error
	Delete(id, userID uint64) error
}

// CourseRepository defines the interface for course data access
type CourseRepository interface {
	Create(course *models.Course) error
	ListByUser(userID uint64) ([]models.Course, error)
	FindByID(id, userID uint64) (*models.Course, error)
	Save(course *models.Course) error
	// SetCertificate associates a stored certificate path with a course
	// in a single update; gorm.ErrRecordNotFound when no row matched.
	SetCertificate(id, userID uint64, path string) error
	Delete(id, userID uint64) error
}

// ResourceRepository defines the interface for library resource data access
type ResourceRepository interface {
	Create(resource *models.Resource) error
	ListByUser(userID uint64) ([]models.Resource, error)
	FindByID(id, userID uint64) (*models.Resource, error)
	// Search matches the term as a case-insensitive substring of the
	// file name or the tag, scoped to the owner.
	Search(userID uint64, term string) ([]models.Resource, error)
	Delete(id, userID uint64) error
}

// PomodoroRepository defines the interface for pomodoro session data access
type PomodoroRepository interface {
	Create(session *models.PomodoroSession) error
	// ListByUser returns sessions newest-date first
	ListByUser(userID uint64) ([]models.PomodoroSession, error)
	Delete(id, userID uint64) error
}
