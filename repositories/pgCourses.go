package repositories

import (
	"errors"

	"course-server/db"
	"course-server/entities"

	"gorm.io/gorm"
)

type coursePgRepository struct {
	db db.Database
}

func NewCoursePgRepository(database db.Database) CourseRepository {
	return &coursePgRepository{db: database}
}

func (r *coursePgRepository) Create(course *entities.Course) error {
	return r.db.GetDB().Create(course).Error
}

func (r *coursePgRepository) GetByID(id uint) (*entities.Course, error) {
	var course entities.Course
	err := r.db.GetDB().Preload("User").Where("id = ?", id).First(&course).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *coursePgRepository) GetAll() ([]entities.Course, error) {
	var courses []entities.Course
	err := r.db.GetDB().Preload("User").Order("created_at ASC").Find(&courses).Error
	return courses, err
}

func (r *coursePgRepository) GetByUserID(userID uint) ([]entities.Course, error) {
	var courses []entities.Course
	err := r.db.GetDB().Where("user_id = ?", userID).Order("created_at ASC").Find(&courses).Error
	return courses, err
}

func (r *coursePgRepository) Update(course *entities.Course) error {
	return r.db.GetDB().Save(course).Error
}

func (r *coursePgRepository) Delete(id uint) error {
	return r.db.GetDB().Where("id = ?", id).Delete(&entities.Course{}).Error
}
