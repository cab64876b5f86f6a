package usecases

import (
	"errors"
	"fmt"

	"course-server/crypto"
	"course-server/entities"
	"course-server/repositories"
	"course-server/services"
)

type UserUseCase struct {
	UserRepo   repositories.UserRepository
	CourseRepo repositories.CourseRepository
	Recorder   *services.ActivityRecorder
	HashCost   int
}

func NewUserUseCase(userRepo repositories.UserRepository, courseRepo repositories.CourseRepository, recorder *services.ActivityRecorder, hashCost int) *UserUseCase {
	return &UserUseCase{
		UserRepo:   userRepo,
		CourseRepo: courseRepo,
		Recorder:   recorder,
		HashCost:   hashCost,
	}
}

// CreateUser validates a signup request, hashes the password and persists the
// user. All violated rules are reported together as ValidationErrors. The
// plaintext password is hashed exactly once, here, before the repository is
// ever touched; a hashing failure aborts the create.
func (uc *UserUseCase) CreateUser(input *entities.NewUser) (*entities.User, error) {
	input.EmailAddress = entities.NormalizeEmail(input.EmailAddress)

	errs := input.Validate()
	if len(errs) == 0 {
		// Friendly uniqueness pre-check; the unique index is the backstop.
		_, err := uc.UserRepo.GetByEmail(input.EmailAddress)
		switch {
		case err == nil:
			errs = append(errs, "Email Address must be unique")
		case !errors.Is(err, repositories.ErrNotFound):
			return nil, fmt.Errorf("checking email uniqueness: %w", err)
		}
	}
	if len(errs) > 0 {
		return nil, errs
	}

	hash, err := crypto.HashPassword(input.Password, uc.HashCost)
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		EmailAddress: input.EmailAddress,
		Password:     hash,
	}
	if err := uc.UserRepo.Create(user); err != nil {
		if errors.Is(err, repositories.ErrDuplicateEmail) {
			// Lost a race against a concurrent signup with the same email.
			return nil, entities.ValidationErrors{"Email Address must be unique"}
		}
		return nil, err
	}

	if uc.Recorder != nil {
		uc.Recorder.Record(entities.ActivityEvent{
			Kind:   entities.ActivityUserCreated,
			UserID: user.ID,
		})
	}
	return user, nil
}

// GetCurrentUser returns the user plus the titles of the courses they own.
// The titles slice is never nil, so the JSON response always carries an array.
func (uc *UserUseCase) GetCurrentUser(id uint) (*entities.User, []string, error) {
	user, err := uc.UserRepo.GetByID(id)
	if err != nil {
		return nil, nil, err
	}

	courses, err := uc.CourseRepo.GetByUserID(id)
	if err != nil {
		return nil, nil, err
	}

	titles := make([]string, 0, len(courses))
	for _, course := range courses {
		titles = append(titles, course.Title)
	}
	return user, titles, nil
}
