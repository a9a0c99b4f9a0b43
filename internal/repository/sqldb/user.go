package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"

	"github.com/msomdec/course-api/internal/domain"
)

// UserRepository implements domain.UserRepository.
type UserRepository struct {
	db *bun.DB
}

// NewUserRepository creates a new UserRepository on db.
func NewUserRepository(db *DB) *UserRepository {
	return &UserRepository{db: db.bun}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	ts := now()
	m := &userModel{
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		EmailAddress: user.EmailAddress,
		Password:     user.PasswordHash,
		CreatedAt:    ts,
		UpdatedAt:    ts,
	}
	if _, err := r.db.NewInsert().Model(m).Exec(ctx); err != nil {
		if isUniqueConstraintError(err) {
			return domain.ErrDuplicateEmail
		}
		return fmt.Errorf("insert user: %w", err)
	}

	user.ID = m.ID
	user.CreatedAt = ts
	user.UpdatedAt = ts
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	m := new(userModel)
	err := r.db.NewSelect().Model(m).Where("u.id = ?", id).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("query user by id: %w", err)
	}
	return m.toDomain(), nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	m := new(userModel)
	err := r.db.NewSelect().Model(m).Where("u.email_address = ?", email).Limit(1).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("query user by email: %w", err)
	}
	return m.toDomain(), nil
}
