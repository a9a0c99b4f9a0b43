package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"

	"github.com/msomdec/course-api/internal/domain"
)

// CourseRepository implements domain.CourseRepository.
type CourseRepository struct {
	db *bun.DB
}

// NewCourseRepository creates a new CourseRepository on db.
func NewCourseRepository(db *DB) *CourseRepository {
	return &CourseRepository{db: db.bun}
}

func (r *CourseRepository) Create(ctx context.Context, course *domain.Course) error {
	ts := now()
	m := courseModelFrom(course)
	m.ID = 0
	m.CreatedAt = ts
	m.UpdatedAt = ts

	if _, err := r.db.NewInsert().Model(m).Exec(ctx); err != nil {
		return fmt.Errorf("insert course: %w", err)
	}

	course.ID = m.ID
	course.CreatedAt = ts
	course.UpdatedAt = ts
	return nil
}

func (r *CourseRepository) List(ctx context.Context) ([]domain.Course, error) {
	var models []courseModel
	err := r.db.NewSelect().
		Model(&models).
		Relation("Owner").
		OrderExpr("c.id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}

	courses := make([]domain.Course, len(models))
	for i := range models {
		courses[i] = models[i].toDomain()
	}
	return courses, nil
}

func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*domain.Course, error) {
	m := new(courseModel)
	err := r.db.NewSelect().
		Model(m).
		Relation("Owner").
		Where("c.id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("query course by id: %w", err)
	}
	course := m.toDomain()
	return &course, nil
}

// Update writes the mutable columns of course. The owner and creation time
// never change.
func (r *CourseRepository) Update(ctx context.Context, course *domain.Course) error {
	m := courseModelFrom(course)
	m.UpdatedAt = now()

	// RowsAffected is not checked: MySQL reports 0 for rows whose values did
	// not change. Callers load the course before updating it.
	_, err := r.db.NewUpdate().
		Model(m).
		Column("title", "description", "estimated_time", "materials_needed", "updated_at").
		WherePK().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("update course: %w", err)
	}

	course.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *CourseRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.NewDelete().
		Model((*courseModel)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete course: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete course rows affected: %w", err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
