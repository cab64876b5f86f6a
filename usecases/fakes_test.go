package usecases

import (
	"course-server/entities"
	"course-server/repositories"
)

// In-memory repositories for exercising the use cases without a database.

type fakeUserRepo struct {
	users  []*entities.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{nextID: 1}
}

func (r *fakeUserRepo) Create(user *entities.User) error {
	for _, u := range r.users {
		if u.EmailAddress == user.EmailAddress {
			return repositories.ErrDuplicateEmail
		}
	}
	user.ID = r.nextID
	r.nextID++
	r.users = append(r.users, user)
	return nil
}

func (r *fakeUserRepo) GetByID(id uint) (*entities.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *fakeUserRepo) GetByEmail(email string) (*entities.User, error) {
	for _, u := range r.users {
		if u.EmailAddress == email {
			return u, nil
		}
	}
	return nil, repositories.ErrNotFound
}

type fakeCourseRepo struct {
	courses []*entities.Course
	nextID  uint
}

func newFakeCourseRepo() *fakeCourseRepo {
	return &fakeCourseRepo{nextID: 1}
}

func (r *fakeCourseRepo) Create(course *entities.Course) error {
	// like gorm, an explicit primary key is inserted as-is
	if course.ID == 0 {
		course.ID = r.nextID
		r.nextID++
	}
	stored := *course
	r.courses = append(r.courses, &stored)
	return nil
}

func (r *fakeCourseRepo) GetByID(id uint) (*entities.Course, error) {
	for _, c := range r.courses {
		if c.ID == id {
			copied := *c
			return &copied, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *fakeCourseRepo) GetAll() ([]entities.Course, error) {
	out := make([]entities.Course, 0, len(r.courses))
	for _, c := range r.courses {
		out = append(out, *c)
	}
	return out, nil
}

func (r *fakeCourseRepo) GetByUserID(userID uint) ([]entities.Course, error) {
	var out []entities.Course
	for _, c := range r.courses {
		if c.UserID == userID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *fakeCourseRepo) Update(course *entities.Course) error {
	for i, c := range r.courses {
		if c.ID == course.ID {
			stored := *course
			r.courses[i] = &stored
			return nil
		}
	}
	return repositories.ErrNotFound
}

func (r *fakeCourseRepo) Delete(id uint) error {
	for i, c := range r.courses {
		if c.ID == id {
			r.courses = append(r.courses[:i], r.courses[i+1:]...)
			return nil
		}
	}
	return repositories.ErrNotFound
}
