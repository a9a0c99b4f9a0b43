package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/msomdec/course-api/internal/domain"
	"github.com/msomdec/course-api/internal/validate"
)

// CreateCourseInput is the payload for creating a course. UserID names the
// owner and is taken as given; it is not inferred from the caller.
type CreateCourseInput struct {
	Title           string  `json:"title" validate:"required"`
	Description     string  `json:"description" validate:"required"`
	UserID          int64   `json:"userId" validate:"required"`
	EstimatedTime   *string `json:"estimatedTime"`
	MaterialsNeeded *string `json:"materialsNeeded"`
}

// UpdateCourseInput is a partial update. Nil fields are left unchanged;
// title and description may not be set to empty strings.
type UpdateCourseInput struct {
	Title           *string `json:"title" validate:"omitnil,min=1"`
	Description     *string `json:"description" validate:"omitnil,min=1"`
	EstimatedTime   *string `json:"estimatedTime"`
	MaterialsNeeded *string `json:"materialsNeeded"`
}

// CourseService handles course reads and owner-restricted mutations.
type CourseService struct {
	courses   domain.CourseRepository
	users     domain.UserRepository
	validator *validate.Validator
}

// NewCourseService creates a new CourseService.
func NewCourseService(courses domain.CourseRepository, users domain.UserRepository, v *validate.Validator) *CourseService {
	return &CourseService{courses: courses, users: users, validator: v}
}

// List returns every course with its owner.
func (s *CourseService) List(ctx context.Context) ([]domain.Course, error) {
	courses, err := s.courses.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	return courses, nil
}

// Get returns a single course with its owner.
func (s *CourseService) Get(ctx context.Context, id int64) (*domain.Course, error) {
	course, err := s.courses.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get course %d: %w", id, err)
	}
	return course, nil
}

// Create validates in and stores a new course owned by in.UserID.
func (s *CourseService) Create(ctx context.Context, in CreateCourseInput) (*domain.Course, error) {
	if err := s.validator.Struct(in); err != nil {
		return nil, err
	}

	if _, err := s.users.GetByID(ctx, in.UserID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewValidationError(
				fmt.Sprintf("The \"userId\" field must reference an existing user; no user with id %d", in.UserID))
		}
		return nil, fmt.Errorf("get owner: %w", err)
	}

	course := &domain.Course{
		UserID:          in.UserID,
		Title:           in.Title,
		Description:     in.Description,
		EstimatedTime:   in.EstimatedTime,
		MaterialsNeeded: in.MaterialsNeeded,
	}
	if err := s.courses.Create(ctx, course); err != nil {
		return nil, fmt.Errorf("create course: %w", err)
	}
	return course, nil
}

// Update applies in to the course with the given id. Only the owner may
// update a course.
func (s *CourseService) Update(ctx context.Context, actor *domain.User, id int64, in UpdateCourseInput) error {
	if err := s.validator.Struct(in); err != nil {
		return err
	}

	course, err := s.ownedCourse(ctx, actor, id)
	if err != nil {
		return err
	}

	if in.Title != nil {
		course.Title = *in.Title
	}
	if in.Description != nil {
		course.Description = *in.Description
	}
	if in.EstimatedTime != nil {
		course.EstimatedTime = in.EstimatedTime
	}
	if in.MaterialsNeeded != nil {
		course.MaterialsNeeded = in.MaterialsNeeded
	}

	if err := s.courses.Update(ctx, course); err != nil {
		return fmt.Errorf("update course %d: %w", id, err)
	}
	return nil
}

// Delete removes the course with the given id. Only the owner may delete
// a course.
func (s *CourseService) Delete(ctx context.Context, actor *domain.User, id int64) error {
	if _, err := s.ownedCourse(ctx, actor, id); err != nil {
		return err
	}
	if err := s.courses.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete course %d: %w", id, err)
	}
	return nil
}

func (s *CourseService) ownedCourse(ctx context.Context, actor *domain.User, id int64) (*domain.Course, error) {
	if actor == nil {
		return nil, domain.ErrUnauthenticated
	}
	course, err := s.courses.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get course %d: %w", id, err)
	}
	if !course.OwnedBy(actor.ID) {
		return nil, domain.ErrForbidden
	}
	return course, nil
}
