package usecases

import (
	"errors"

	"course-server/entities"
	"course-server/repositories"
	"course-server/services"
)

// ErrNotOwner is returned when a user tries to change a course they don't own.
var ErrNotOwner = errors.New("course belongs to another user")

type CourseUseCase struct {
	CourseRepo repositories.CourseRepository
	Recorder   *services.ActivityRecorder
}

func NewCourseUseCase(courseRepo repositories.CourseRepository, recorder *services.ActivityRecorder) *CourseUseCase {
	return &CourseUseCase{
		CourseRepo: courseRepo,
		Recorder:   recorder,
	}
}

// CreateCourse validates and persists a course owned by the given user.
func (uc *CourseUseCase) CreateCourse(course *entities.Course, owner *entities.User) error {
	// ID, owner and association are server-assigned regardless of what the
	// request body carried; an explicit primary key would bypass the sequence.
	course.ID = 0
	course.UserID = owner.ID
	course.User = nil

	if errs := course.Validate(); len(errs) > 0 {
		return errs
	}
	if err := uc.CourseRepo.Create(course); err != nil {
		return err
	}

	if uc.Recorder != nil {
		uc.Recorder.Record(entities.ActivityEvent{
			Kind:     entities.ActivityCourseCreated,
			UserID:   owner.ID,
			CourseID: course.ID,
			Title:    course.Title,
		})
	}
	return nil
}

// GetCourse retrieves a course by ID with its owner preloaded.
func (uc *CourseUseCase) GetCourse(id uint) (*entities.Course, error) {
	return uc.CourseRepo.GetByID(id)
}

// GetAllCourses retrieves all courses with their owners preloaded.
func (uc *CourseUseCase) GetAllCourses() ([]entities.Course, error) {
	return uc.CourseRepo.GetAll()
}

// UpdateCourse applies the provided fields to an existing course. Only the
// owner may update; other authenticated users get ErrNotOwner.
func (uc *CourseUseCase) UpdateCourse(course *entities.Course, principal *entities.User) error {
	existing, err := uc.CourseRepo.GetByID(course.ID)
	if err != nil {
		return err
	}
	if existing.UserID != principal.ID {
		return ErrNotOwner
	}

	// Update only provided fields
	if course.Title != "" {
		existing.Title = course.Title
	}
	if course.Description != "" {
		existing.Description = course.Description
	}
	if course.EstimatedTime != "" {
		existing.EstimatedTime = course.EstimatedTime
	}
	if course.MaterialsNeeded != "" {
		existing.MaterialsNeeded = course.MaterialsNeeded
	}

	if errs := existing.Validate(); len(errs) > 0 {
		return errs
	}
	existing.User = nil
	if err := uc.CourseRepo.Update(existing); err != nil {
		return err
	}

	if uc.Recorder != nil {
		uc.Recorder.Record(entities.ActivityEvent{
			Kind:     entities.ActivityCourseUpdated,
			UserID:   principal.ID,
			CourseID: existing.ID,
			Title:    existing.Title,
		})
	}
	return nil
}

// DeleteCourse removes a course. Only the owner may delete.
func (uc *CourseUseCase) DeleteCourse(id uint, principal *entities.User) error {
	existing, err := uc.CourseRepo.GetByID(id)
	if err != nil {
		return err
	}
	if existing.UserID != principal.ID {
		return ErrNotOwner
	}

	if err := uc.CourseRepo.Delete(id); err != nil {
		return err
	}

	if uc.Recorder != nil {
		uc.Recorder.Record(entities.ActivityEvent{
			Kind:     entities.ActivityCourseDeleted,
			UserID:   principal.ID,
			CourseID: existing.ID,
			Title:    existing.Title,
		})
	}
	return nil
}
