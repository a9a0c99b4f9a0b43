package domain

import (
	"context"
	"time"
)

// Course is a course owned by exactly one user.
type Course struct {
	ID              int64
	UserID          int64
	Title           string
	Description     string
	EstimatedTime   *string
	MaterialsNeeded *string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Owner is populated by the repository read methods.
	Owner *User
}

// OwnedBy reports whether the user with the given ID owns the course.
func (c *Course) OwnedBy(userID int64) bool {
	return c.UserID == userID
}

// CourseRepository defines persistence operations for courses.
type CourseRepository interface {
	Create(ctx context.Context, course *Course) error
	// List returns every course with its Owner joined, ordered by ID.
	List(ctx context.Context) ([]Course, error)
	// GetByID returns the course with its Owner joined.
	GetByID(ctx context.Context, id int64) (*Course, error)
	Update(ctx context.Context, course *Course) error
	Delete(ctx context.Context, id int64) error
}
