package repositories

import (
	"errors"

	"course-server/entities"
)

// Sentinel errors returned by repository implementations so callers never
// depend on ORM error types.
var (
	ErrNotFound       = errors.New("record not found")
	ErrDuplicateEmail = errors.New("email address already registered")
)

type UserRepository interface {
	Create(user *entities.User) error
	GetByID(id uint) (*entities.User, error)
	GetByEmail(email string) (*entities.User, error)
}

type CourseRepository interface {
	Create(course *entities.Course) error
	GetByID(id uint) (*entities.Course, error)
	GetAll() ([]entities.Course, error)
	GetByUserID(userID uint) ([]entities.Course, error)
	Update(course *entities.Course) error
	Delete(id uint) error
}
